package parser

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/lexer"
)

func whereToken(token *lexer.Token) string {
	if token.Kind == lexer.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", token.Lexeme)
}

type UnexpectedExpectedError struct {
	Unexpected *lexer.Token
	Expected   lexer.TokenKind

	Message string
}

func (e *UnexpectedExpectedError) GetMessage() string { return e.Message }
func (e *UnexpectedExpectedError) GetLine() int       { return e.Unexpected.Line }
func (e *UnexpectedExpectedError) GetWhere() string   { return whereToken(e.Unexpected) }

func (e *UnexpectedExpectedError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.GetLine(), e.GetWhere(), e.GetMessage())
}

type UnexpectedError struct {
	Unexpected *lexer.Token

	Message string
}

func (e *UnexpectedError) GetMessage() string { return e.Message }
func (e *UnexpectedError) GetLine() int       { return e.Unexpected.Line }
func (e *UnexpectedError) GetWhere() string   { return whereToken(e.Unexpected) }

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.GetLine(), e.GetWhere(), e.GetMessage())
}
