package lexer

import (
	"unicode/utf8"

	"github.com/kievzenit/ylox/internal/compiler_errors"
)

const (
	unexpectedCharacterMessage = "Unexpected character."
	unterminatedStringMessage  = "Unterminated string."
)

type Lexer struct {
	buf []byte

	// start is where the current token began, current is the next unread byte.
	start, current int
	line           int

	tokens []Token

	eh compiler_errors.ErrorHandler
}

func NewLexer(buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		buf: buf,

		start:   0,
		current: 0,
		line:    1,

		eh: eh,
	}
}

// Tokenize scans the whole buffer and returns the tokens terminated by a
// single EOF token. Lexical errors are reported and skipped, so the result
// is always complete.
func (l *Lexer) Tokenize() []Token {
	l.tokens = make([]Token, 0)

	for !l.atEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Kind:    EOF,
		Lexeme:  "",
		Literal: "",
		Line:    l.line,
	})

	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()

	switch c {
	case '(':
		l.addToken(LEFT_PAREN)
	case ')':
		l.addToken(RIGHT_PAREN)
	case '{':
		l.addToken(LEFT_BRACE)
	case '}':
		l.addToken(RIGHT_BRACE)
	case ',':
		l.addToken(COMMA)
	case '.':
		l.addToken(DOT)
	case '-':
		l.addToken(MINUS)
	case '+':
		l.addToken(PLUS)
	case ';':
		l.addToken(SEMICOLON)
	case '*':
		l.addToken(STAR)

	case '!':
		l.addTokenIf('=', BANG_EQUAL, BANG)
	case '=':
		l.addTokenIf('=', EQUAL_EQUAL, EQUAL)
	case '<':
		l.addTokenIf('=', LESS_EQUAL, LESS)
	case '>':
		l.addTokenIf('=', GREATER_EQUAL, GREATER)

	case '/':
		if l.match('/') {
			l.processOneLineComment()
			break
		}
		l.addToken(SLASH)

	case ' ', '\t', '\r':
	case '\n':
		l.line++

	case '"':
		l.processStringLiteral()

	default:
		switch {
		case isDigit(c):
			l.processNumber()
		case isIdentifierStart(c):
			l.processIdentifier()
		default:
			l.skipUnexpectedCharacter()
		}
	}
}

// skipUnexpectedCharacter reports the character starting at start once,
// consuming all of its UTF-8 bytes. Invalid bytes are skipped one at a time.
func (l *Lexer) skipUnexpectedCharacter() {
	_, size := utf8.DecodeRune(l.buf[l.start:])
	l.current = l.start + size

	l.eh.Report(l.line, "", unexpectedCharacterMessage)
}

func (l *Lexer) processOneLineComment() {
	for l.peek() != '\n' && !l.atEnd() {
		l.advance()
	}
}

func (l *Lexer) processStringLiteral() {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.atEnd() {
		l.eh.Report(l.line, "", unterminatedStringMessage)
		l.addLiteralToken(STRING, string(l.buf[l.start+1:l.current]))
		return
	}

	// closing quote
	l.advance()

	l.addLiteralToken(STRING, string(l.buf[l.start+1:l.current-1]))
}

func (l *Lexer) processNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	l.addLiteralToken(NUMBER, l.lexeme())
}

func (l *Lexer) processIdentifier() {
	for isIdentifierStart(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	if kind, ok := Keywords[l.lexeme()]; ok {
		l.addToken(kind)
		return
	}

	l.addToken(IDENTIFIER)
}

func (l *Lexer) addTokenIf(expected byte, matched TokenKind, otherwise TokenKind) {
	if l.match(expected) {
		l.addToken(matched)
		return
	}

	l.addToken(otherwise)
}

func (l *Lexer) addToken(kind TokenKind) {
	l.addLiteralToken(kind, "")
}

func (l *Lexer) addLiteralToken(kind TokenKind, literal string) {
	l.tokens = append(l.tokens, Token{
		Kind:    kind,
		Lexeme:  l.lexeme(),
		Literal: literal,
		Line:    l.line,
	})
}

func (l *Lexer) lexeme() string {
	return string(l.buf[l.start:l.current])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// The cursor helpers below never index outside buf; at the end of input
// peek and peekNext return 0, which matches no scanning rule.

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.buf)
}

func (l *Lexer) advance() byte {
	if l.atEnd() {
		return 0
	}

	c := l.buf[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.buf[l.current] != expected {
		return false
	}

	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.buf[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.buf) {
		return 0
	}
	return l.buf[l.current+1]
}
