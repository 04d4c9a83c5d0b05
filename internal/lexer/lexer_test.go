package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/lexer"
)

func tokenize(t *testing.T, src string) ([]lexer.Token, *compiler_errors.CompilerErrorHandler) {
	t.Helper()

	eh := compiler_errors.NewErrorHandler(nil)
	tokens := lexer.NewLexer([]byte(src), eh).Tokenize()

	require.NotEmpty(t, tokens)
	require.Equal(t, lexer.EOF, tokens[len(tokens)-1].Kind)
	for _, token := range tokens[:len(tokens)-1] {
		require.NotEqual(t, lexer.EOF, token.Kind)
	}

	return tokens, eh
}

func kinds(tokens []lexer.Token) []lexer.TokenKind {
	result := make([]lexer.TokenKind, len(tokens))
	for i, token := range tokens {
		result[i] = token.Kind
	}
	return result
}

func TestTokenizeSingleTokens(t *testing.T) {
	tests := []struct {
		src  string
		kind lexer.TokenKind
	}{
		{"(", lexer.LEFT_PAREN},
		{")", lexer.RIGHT_PAREN},
		{"{", lexer.LEFT_BRACE},
		{"}", lexer.RIGHT_BRACE},
		{",", lexer.COMMA},
		{".", lexer.DOT},
		{"-", lexer.MINUS},
		{"+", lexer.PLUS},
		{";", lexer.SEMICOLON},
		{"/", lexer.SLASH},
		{"*", lexer.STAR},
		{"!", lexer.BANG},
		{"!=", lexer.BANG_EQUAL},
		{"=", lexer.EQUAL},
		{"==", lexer.EQUAL_EQUAL},
		{">", lexer.GREATER},
		{">=", lexer.GREATER_EQUAL},
		{"<", lexer.LESS},
		{"<=", lexer.LESS_EQUAL},
		{"foo", lexer.IDENTIFIER},
		{"\"foo\"", lexer.STRING},
		{"42", lexer.NUMBER},
		{"and", lexer.AND},
		{"class", lexer.CLASS},
		{"else", lexer.ELSE},
		{"false", lexer.FALSE},
		{"fun", lexer.FUN},
		{"for", lexer.FOR},
		{"if", lexer.IF},
		{"nil", lexer.NIL},
		{"or", lexer.OR},
		{"print", lexer.PRINT},
		{"return", lexer.RETURN},
		{"super", lexer.SUPER},
		{"this", lexer.THIS},
		{"true", lexer.TRUE},
		{"var", lexer.VAR},
		{"while", lexer.WHILE},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tokens, eh := tokenize(t, tt.src)

			require.False(t, eh.HadError())
			require.Equal(t, []lexer.TokenKind{tt.kind, lexer.EOF}, kinds(tokens))
			assert.Equal(t, tt.src, tokens[0].Lexeme)
			assert.Equal(t, 1, tokens[0].Line)
			assert.Equal(t, "", tokens[1].Lexeme)
			assert.Equal(t, 1, tokens[1].Line)
		})
	}
}

func TestTokenizeEmptySource(t *testing.T) {
	tokens, eh := tokenize(t, "")

	require.False(t, eh.HadError())
	require.Len(t, tokens, 1)
	assert.Equal(t, lexer.Token{Kind: lexer.EOF, Line: 1}, tokens[0])
}

func TestTokenizeCommentOnly(t *testing.T) {
	tokens, eh := tokenize(t, "// comment only\n")

	require.False(t, eh.HadError())
	require.Len(t, tokens, 1)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestTokenizeCommentAtEndOfInput(t *testing.T) {
	tokens, eh := tokenize(t, "1 / 2 // trailing, no newline")

	require.False(t, eh.HadError())
	assert.Equal(t, []lexer.TokenKind{lexer.NUMBER, lexer.SLASH, lexer.NUMBER, lexer.EOF}, kinds(tokens))
}

func TestTokenizeWhitespaceAndLines(t *testing.T) {
	tokens, eh := tokenize(t, " \t1\r\n\n  +\n2")

	require.False(t, eh.HadError())
	require.Equal(t, []lexer.TokenKind{lexer.NUMBER, lexer.PLUS, lexer.NUMBER, lexer.EOF}, kinds(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 3, tokens[1].Line)
	assert.Equal(t, 4, tokens[2].Line)
	assert.Equal(t, 4, tokens[3].Line)
}

func TestTokenizeString(t *testing.T) {
	tokens, eh := tokenize(t, "\"hello // not a comment\"")

	require.False(t, eh.HadError())
	require.Equal(t, []lexer.TokenKind{lexer.STRING, lexer.EOF}, kinds(tokens))
	assert.Equal(t, "\"hello // not a comment\"", tokens[0].Lexeme)
	assert.Equal(t, "hello // not a comment", tokens[0].Literal)
}

func TestTokenizeStringWithoutEscapes(t *testing.T) {
	tokens, eh := tokenize(t, `"a\n"`)

	require.False(t, eh.HadError())
	assert.Equal(t, `a\n`, tokens[0].Literal)
}

func TestTokenizeMultiLineString(t *testing.T) {
	tokens, eh := tokenize(t, "\"a\nb\" +")

	require.False(t, eh.HadError())
	require.Equal(t, []lexer.TokenKind{lexer.STRING, lexer.PLUS, lexer.EOF}, kinds(tokens))
	assert.Equal(t, "a\nb", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 2, tokens[2].Line)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens, eh := tokenize(t, "\"abc")

	require.True(t, eh.HadError())
	require.Len(t, eh.Errors(), 1)
	assert.Equal(t, "Unterminated string.", eh.Errors()[0].GetMessage())
	assert.Equal(t, 1, eh.Errors()[0].GetLine())

	require.Equal(t, []lexer.TokenKind{lexer.STRING, lexer.EOF}, kinds(tokens))
	assert.Equal(t, "abc", tokens[0].Literal)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		kinds    []lexer.TokenKind
		literals []string
	}{
		{
			name:     "integer",
			src:      "123",
			kinds:    []lexer.TokenKind{lexer.NUMBER, lexer.EOF},
			literals: []string{"123", ""},
		},
		{
			name:     "fraction",
			src:      "12.50",
			kinds:    []lexer.TokenKind{lexer.NUMBER, lexer.EOF},
			literals: []string{"12.50", ""},
		},
		{
			name:     "trailing dot",
			src:      "1.",
			kinds:    []lexer.TokenKind{lexer.NUMBER, lexer.DOT, lexer.EOF},
			literals: []string{"1", "", ""},
		},
		{
			name:     "leading dot",
			src:      ".5",
			kinds:    []lexer.TokenKind{lexer.DOT, lexer.NUMBER, lexer.EOF},
			literals: []string{"", "5", ""},
		},
		{
			name:     "no exponent",
			src:      "1e5",
			kinds:    []lexer.TokenKind{lexer.NUMBER, lexer.IDENTIFIER, lexer.EOF},
			literals: []string{"1", "", ""},
		},
		{
			name:     "single fraction only",
			src:      "1.2.3",
			kinds:    []lexer.TokenKind{lexer.NUMBER, lexer.DOT, lexer.NUMBER, lexer.EOF},
			literals: []string{"1.2", "", "3", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, eh := tokenize(t, tt.src)

			require.False(t, eh.HadError())
			require.Equal(t, tt.kinds, kinds(tokens))
			for i, literal := range tt.literals {
				assert.Equal(t, literal, tokens[i].Literal, "token %d", i)
			}
		})
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tokens, eh := tokenize(t, "classify _tmp1 orchid var2 or")

	require.False(t, eh.HadError())
	require.Equal(t, []lexer.TokenKind{
		lexer.IDENTIFIER,
		lexer.IDENTIFIER,
		lexer.IDENTIFIER,
		lexer.IDENTIFIER,
		lexer.OR,
		lexer.EOF,
	}, kinds(tokens))
	assert.Equal(t, "classify", tokens[0].Lexeme)
	assert.Equal(t, "_tmp1", tokens[1].Lexeme)
}

func TestTokenizeReportsEveryUnexpectedCharacter(t *testing.T) {
	tokens, eh := tokenize(t, "1 @ 2\n# 3")

	require.Equal(t, []lexer.TokenKind{lexer.NUMBER, lexer.NUMBER, lexer.NUMBER, lexer.EOF}, kinds(tokens))
	require.Len(t, eh.Errors(), 2)
	for i, line := range []int{1, 2} {
		assert.Equal(t, "Unexpected character.", eh.Errors()[i].GetMessage())
		assert.Equal(t, line, eh.Errors()[i].GetLine())
		assert.Equal(t, "", eh.Errors()[i].GetWhere())
	}
}

func TestTokenizeReportsMultiByteCharacterOnce(t *testing.T) {
	tokens, eh := tokenize(t, "1 + é\n€ 2")

	require.Equal(t, []lexer.TokenKind{lexer.NUMBER, lexer.PLUS, lexer.NUMBER, lexer.EOF}, kinds(tokens))
	require.Len(t, eh.Errors(), 2)
	assert.Equal(t, 1, eh.Errors()[0].GetLine())
	assert.Equal(t, 2, eh.Errors()[1].GetLine())
	assert.Equal(t, "2", tokens[2].Lexeme)
}

func TestTokenizeSkipsInvalidUTF8BytesSeparately(t *testing.T) {
	tokens, eh := tokenize(t, "1\xff\xfe2")

	require.Equal(t, []lexer.TokenKind{lexer.NUMBER, lexer.NUMBER, lexer.EOF}, kinds(tokens))
	assert.Len(t, eh.Errors(), 2)
}

func TestTokenizeLexemesMatchSource(t *testing.T) {
	src := "(1 + 2.5) >= \"x y\" != !false // done"
	tokens, eh := tokenize(t, src)
	require.False(t, eh.HadError())

	var sb strings.Builder
	offset := 0
	for _, token := range tokens[:len(tokens)-1] {
		idx := strings.Index(src[offset:], token.Lexeme)
		require.GreaterOrEqual(t, idx, 0, "lexeme %q not found", token.Lexeme)
		require.Empty(t, strings.TrimSpace(src[offset:offset+idx]))

		offset += idx + len(token.Lexeme)
		sb.WriteString(token.Lexeme)
	}
	assert.Equal(t, "(1+2.5)>=\"x y\"!=!false", sb.String())
}

func TestTokenizeIsIdempotent(t *testing.T) {
	src := "(1 + @2) * \"abc\n"

	first, firstEh := tokenize(t, src)
	second, secondEh := tokenize(t, src)

	assert.Equal(t, first, second)
	assert.Equal(t, firstEh.Errors(), secondEh.Errors())
	assert.Len(t, firstEh.Errors(), 2)
}

func TestTokenString(t *testing.T) {
	tokens, _ := tokenize(t, "12 + \"s\"")

	assert.Equal(t, "NUMBER 12 12", tokens[0].String())
	assert.Equal(t, "PLUS +", tokens[1].String())
	assert.Equal(t, "STRING \"s\" s", tokens[2].String())
}
