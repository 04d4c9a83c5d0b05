package parser

import (
	"strconv"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/lexer"
)

// bailout unwinds the recursive descent after the first syntax error.
type bailout struct {
	err error
}

type Parser struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler
}

func NewParser(scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		scanner: scanner,
		eh:      eh,
	}
}

// Parse parses a single expression followed by EOF. The first syntax error
// is reported to the error handler and returned; no partial tree is produced.
func (p *Parser) Parse() (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			expr, err = nil, b.err
		}
	}()

	expr = p.parseExpr()
	if !p.scanner.AtEnd() {
		p.unexpected("Expect end of expression.")
	}

	return expr, nil
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseEqualityExpr()
}

func (p *Parser) parseEqualityExpr() ast.Expr {
	return p.parseBinaryExpr(p.parseComparisonExpr, lexer.BANG_EQUAL, lexer.EQUAL_EQUAL)
}

func (p *Parser) parseComparisonExpr() ast.Expr {
	return p.parseBinaryExpr(p.parseTermExpr,
		lexer.GREATER,
		lexer.GREATER_EQUAL,
		lexer.LESS,
		lexer.LESS_EQUAL)
}

func (p *Parser) parseTermExpr() ast.Expr {
	return p.parseBinaryExpr(p.parseFactorExpr, lexer.MINUS, lexer.PLUS)
}

func (p *Parser) parseFactorExpr() ast.Expr {
	return p.parseBinaryExpr(p.parseUnaryExpr, lexer.STAR, lexer.SLASH)
}

// parseBinaryExpr folds operators of one precedence level to the left:
// operand (op operand)*.
func (p *Parser) parseBinaryExpr(operand func() ast.Expr, kinds ...lexer.TokenKind) ast.Expr {
	left := operand()

	for p.matchAny(kinds...) {
		opToken := p.scanner.Previous()
		op, ok := ast.BinaryOpFor(opToken.Kind)
		if !ok {
			panic("unreachable")
		}

		right := operand()

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:    left,
			Op:      op,
			OpToken: opToken,
			Right:   right,
		}
	}

	return left
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.matchAny(lexer.BANG, lexer.MINUS) {
		startToken := p.scanner.Previous()
		op, ok := ast.UnaryOpFor(startToken.Kind)
		if !ok {
			panic("unreachable")
		}

		right := p.parseUnaryExpr()

		return &ast.UnaryExpr{
			StartToken: startToken,

			Op:    op,
			Right: right,
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.scanner.Peek().Kind {
	case lexer.TRUE:
		return p.parseLiteralExpr(true)
	case lexer.FALSE:
		return p.parseLiteralExpr(false)
	case lexer.NIL:
		return p.parseLiteralExpr(nil)
	case lexer.NUMBER:
		return p.parseNumberExpr()
	case lexer.STRING:
		return p.parseLiteralExpr(p.scanner.Peek().Literal)
	case lexer.LEFT_PAREN:
		return p.parseGroupingExpr()
	}

	p.unexpected("Expect expression.")
	panic("unreachable")
}

func (p *Parser) parseLiteralExpr(value any) *ast.LiteralExpr {
	startToken := p.scanner.Advance()

	return &ast.LiteralExpr{
		StartToken: startToken,

		Value: value,
	}
}

func (p *Parser) parseNumberExpr() *ast.LiteralExpr {
	startToken := p.scanner.Advance()

	// The lexer only produces well-formed numbers.
	float, err := strconv.ParseFloat(startToken.Literal, 64)
	if err != nil {
		panic(err)
	}

	return &ast.LiteralExpr{
		StartToken: startToken,

		Value: float,
	}
}

func (p *Parser) parseGroupingExpr() *ast.GroupingExpr {
	startToken := p.scanner.Advance()

	inner := p.parseExpr()

	p.expect(lexer.RIGHT_PAREN, "Expect ')' after expression.")
	p.scanner.Advance()

	return &ast.GroupingExpr{
		StartToken: startToken,

		Inner: inner,
	}
}

func (p *Parser) matchAny(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if p.scanner.Check(kind) {
			p.scanner.Advance()
			return true
		}
	}

	return false
}

func (p *Parser) expect(kind lexer.TokenKind, message string) {
	if p.scanner.Check(kind) {
		return
	}

	p.fail(&UnexpectedExpectedError{
		Unexpected: p.scanner.Peek(),
		Expected:   kind,

		Message: message,
	})
}

func (p *Parser) unexpected(message string) {
	p.fail(&UnexpectedError{
		Unexpected: p.scanner.Peek(),

		Message: message,
	})
}

type parseError interface {
	compiler_errors.CompilerError
	error
}

func (p *Parser) fail(err parseError) {
	p.eh.AddError(err)
	panic(bailout{err: err})
}
