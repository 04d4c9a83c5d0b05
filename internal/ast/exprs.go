package ast

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/lexer"
)

type UnaryOp int

const (
	Negate UnaryOp = iota // -
	Not                   // !
)

func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "!"
	default:
		panic(fmt.Sprintf("UnaryOp.String(): received illegal operator: %d", op))
	}
}

var unaryOpLookup = map[lexer.TokenKind]UnaryOp{
	lexer.MINUS: Negate,
	lexer.BANG:  Not,
}

// UnaryOpFor maps an operator token kind to its unary operator.
func UnaryOpFor(kind lexer.TokenKind) (UnaryOp, bool) {
	op, ok := unaryOpLookup[kind]
	return op, ok
}

type BinaryOp int

const (
	Equal        BinaryOp = iota // ==
	NotEqual                     // !=
	Less                         // <
	LessEqual                    // <=
	Greater                      // >
	GreaterEqual                 // >=
	Add                          // +
	Subtract                     // -
	Multiply                     // *
	Divide                       // /
)

func (op BinaryOp) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case LessEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterEqual:
		return ">="
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		panic(fmt.Sprintf("BinaryOp.String(): received illegal operator: %d", op))
	}
}

var binaryOpLookup = map[lexer.TokenKind]BinaryOp{
	lexer.EQUAL_EQUAL:   Equal,
	lexer.BANG_EQUAL:    NotEqual,
	lexer.LESS:          Less,
	lexer.LESS_EQUAL:    LessEqual,
	lexer.GREATER:       Greater,
	lexer.GREATER_EQUAL: GreaterEqual,
	lexer.PLUS:          Add,
	lexer.MINUS:         Subtract,
	lexer.STAR:          Multiply,
	lexer.SLASH:         Divide,
}

// BinaryOpFor maps an operator token kind to its binary operator.
func BinaryOpFor(kind lexer.TokenKind) (BinaryOp, bool) {
	op, ok := binaryOpLookup[kind]
	return op, ok
}

// LiteralExpr holds a float64, string, bool or nil.
type LiteralExpr struct {
	StartToken *lexer.Token

	Value any
}

type UnaryExpr struct {
	StartToken *lexer.Token

	Op    UnaryOp
	Right Expr
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left    Expr
	Op      BinaryOp
	OpToken *lexer.Token
	Right   Expr
}

type GroupingExpr struct {
	StartToken *lexer.Token

	Inner Expr
}

func (LiteralExpr) AstNode()  {}
func (UnaryExpr) AstNode()    {}
func (BinaryExpr) AstNode()   {}
func (GroupingExpr) AstNode() {}

func (e *LiteralExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *UnaryExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *GroupingExpr) FirstToken() *lexer.Token { return e.StartToken }

func (LiteralExpr) ExprNode()  {}
func (UnaryExpr) ExprNode()    {}
func (BinaryExpr) ExprNode()   {}
func (GroupingExpr) ExprNode() {}
