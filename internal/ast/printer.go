package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders expr in parenthesized prefix form, e.g. (* (group (+ 1 2)) 3).
func Print(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		sb.WriteString(FormatValue(e.Value))
	case *UnaryExpr:
		parenthesize(sb, e.Op.String(), e.Right)
	case *BinaryExpr:
		parenthesize(sb, e.Op.String(), e.Left, e.Right)
	case *GroupingExpr:
		parenthesize(sb, "group", e.Inner)
	case nil:
		sb.WriteString("<nil>")
	default:
		panic(fmt.Sprintf("ast.Print(): unknown expression type %T", expr))
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, expr)
	}
	sb.WriteByte(')')
}

// FormatValue renders a literal value the way it would be written in source.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		panic(fmt.Sprintf("ast.FormatValue(): unsupported literal type %T", value))
	}
}
