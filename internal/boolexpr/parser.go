package boolexpr

// Parser builds an expression tree from a token sequence using
// recursive descent. See the package documentation for the grammar.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a parser over tokens. The slice must end with TokenEOF,
// which is what Lexer.Tokenize produces.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the whole token stream into a single expression.
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, syntaxErrorf(p.peek().Position, "empty expression")
	}

	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		if tok.Type == TokenRParen {
			return nil, syntaxErrorf(tok.Position, "unbalanced ')'")
		}
		return nil, syntaxErrorf(tok.Position, "unexpected %q after expression", tok.Value)
	}
	return expr, nil
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(TokenOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(TokenAnd) {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
	return left, nil
}

func (p *Parser) parseNot() (Expr, error) {
	if p.match(TokenNot) {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenIdent:
		return Var(tok.Value), nil
	case TokenTrue:
		return BoolLit(true), nil
	case TokenFalse:
		return BoolLit(false), nil
	case TokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.match(TokenRParen) {
			return nil, syntaxErrorf(tok.Position, "unbalanced '('")
		}
		return inner, nil
	case TokenEOF:
		return nil, syntaxErrorf(tok.Position, "unexpected end of expression")
	default:
		return nil, syntaxErrorf(tok.Position, "unexpected %q", tok.Value)
	}
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) match(tt TokenType) bool {
	if p.peek().Type != tt {
		return false
	}
	p.current++
	return true
}

// Parse lexes and parses input. All failures are *SyntaxError.
func Parse(input string) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}
