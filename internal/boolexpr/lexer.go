package boolexpr

// Lexer is responsible for scanning the input string and producing tokens.
type Lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
// The last token is always TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case isIdentifierStart(c):
			if err := l.lexWord(currentPos); err != nil {
				return nil, err
			}

		default:
			return nil, syntaxErrorf(currentPos, "unexpected character %q", rune(c))
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexWord scans an identifier-like word. Keywords become their own token
// type, single letters become variables and anything else is rejected.
func (l *Lexer) lexWord(startPos int) error {
	start := l.position
	for l.position < len(l.input) && isIdentifierChar(l.input[l.position]) {
		l.position++
	}
	word := l.input[start:l.position]

	if tt, ok := keywords[word]; ok {
		l.addToken(tt, word, startPos)
		return nil
	}
	if len(word) == 1 && isASCIILetter(word[0]) {
		l.addToken(TokenIdent, word, startPos)
		return nil
	}
	return syntaxErrorf(startPos, "unknown identifier %q", word)
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

// Lex tokenizes input in one call.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentifierStart(c byte) bool {
	return isASCIILetter(c) || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || ('0' <= c && c <= '9')
}
