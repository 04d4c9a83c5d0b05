package lexer

// TokenScanner is a read-only cursor over a token sequence that ends with
// EOF. It never moves past the EOF token.
type TokenScanner interface {
	Peek() *Token
	Previous() *Token
	Advance() *Token
	Check(kind TokenKind) bool
	AtEnd() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}

		terminated := make([]Token, len(tokens), len(tokens)+1)
		copy(terminated, tokens)
		tokens = append(terminated, Token{Kind: EOF, Line: line})
	}

	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Peek() *Token {
	return &s.tokens[s.pos]
}

// Previous returns the most recently consumed token, or the current one if
// nothing has been consumed yet.
func (s *SimpleTokenScanner) Previous() *Token {
	if s.pos == 0 {
		return &s.tokens[0]
	}
	return &s.tokens[s.pos-1]
}

func (s *SimpleTokenScanner) Advance() *Token {
	if !s.AtEnd() {
		s.pos++
	}

	return s.Previous()
}

func (s *SimpleTokenScanner) Check(kind TokenKind) bool {
	return s.Peek().Kind == kind
}

func (s *SimpleTokenScanner) AtEnd() bool {
	return s.Peek().Kind == EOF
}
