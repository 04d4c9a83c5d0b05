package ast

import "github.com/kievzenit/ylox/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Expr is one of *LiteralExpr, *UnaryExpr, *BinaryExpr or *GroupingExpr.
type Expr interface {
	AstNode
	ExprNode()
}
