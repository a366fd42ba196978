package boolexpr

import "fmt"

// TokenType defines the type of a token.
type TokenType int

const (
	TokenEOF    TokenType = iota // end of input
	TokenIdent                   // single-letter variable
	TokenAnd                     // "and"
	TokenOr                      // "or"
	TokenNot                     // "not"
	TokenTrue                    // "True"
	TokenFalse                   // "False"
	TokenLParen                  // '('
	TokenRParen                  // ')'
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "Ident"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenNot:
		return "not"
	case TokenTrue:
		return "True"
	case TokenFalse:
		return "False"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "Unknown"
	}
}

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType // type of this token
	Value    string    // the literal string for this token
	Position int       // byte offset in the original input
}

var keywords = map[string]TokenType{
	"and":   TokenAnd,
	"or":    TokenOr,
	"not":   TokenNot,
	"True":  TokenTrue,
	"False": TokenFalse,
}

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Pos int // byte offset where the problem was detected
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("col %d: %s", e.Pos+1, e.Msg)
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
