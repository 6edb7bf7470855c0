package parser

import (
	"strconv"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/lexer"
)

func (p *Parser) parseExpressionList() ([]ast.Expression, error) {
	var exprs []ast.Expression
	for {
		e, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	return exprs, nil
}

// parseExpression implements precedence climbing: only infix operators
// binding tighter than minPrec are consumed by this call; operators at
// or below minPrec are left for the caller.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.cur.Type]
		if !ok || prec <= minPrec {
			break
		}
		opTok := p.cur
		p.advance()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left, err = combine(opTok, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func combine(opTok lexer.Token, left, right ast.Expression) (ast.Expression, error) {
	pos := opTok.Pos
	switch opTok.Type {
	case lexer.OR:
		return &ast.Logical{Position: pos, Op: ast.LogicalOr, Left: left, Right: right}, nil
	case lexer.AND:
		return &ast.Logical{Position: pos, Op: ast.LogicalAnd, Left: left, Right: right}, nil
	case lexer.EQ:
		return &ast.Comparison{Position: pos, Op: ast.Eq, Left: left, Right: right}, nil
	case lexer.NOT_EQ:
		return &ast.Comparison{Position: pos, Op: ast.NotEq, Left: left, Right: right}, nil
	case lexer.LT:
		return &ast.Comparison{Position: pos, Op: ast.Lt, Left: left, Right: right}, nil
	case lexer.LTE:
		return &ast.Comparison{Position: pos, Op: ast.Lte, Left: left, Right: right}, nil
	case lexer.GT:
		return &ast.Comparison{Position: pos, Op: ast.Gt, Left: left, Right: right}, nil
	case lexer.GTE:
		return &ast.Comparison{Position: pos, Op: ast.Gte, Left: left, Right: right}, nil
	case lexer.PLUS:
		return &ast.Arithmetic{Position: pos, Op: ast.Add, Left: left, Right: right}, nil
	case lexer.MINUS:
		return &ast.Arithmetic{Position: pos, Op: ast.Sub, Left: left, Right: right}, nil
	case lexer.ASTERISK:
		return &ast.Arithmetic{Position: pos, Op: ast.Mult, Left: left, Right: right}, nil
	case lexer.SLASH:
		return &ast.Arithmetic{Position: pos, Op: ast.Div, Left: left, Right: right}, nil
	default:
		return nil, &parseError{pos: pos, msg: "unknown infix operator " + opTok.Type.String()}
	}
}

type parseError struct {
	pos lexer.Position
	msg string
}

func (e *parseError) Error() string { return e.pos.String() + ": " + e.msg }

// parseUnary handles the two prefix operators (not, unary -) before
// falling through to a primary expression.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.NOT:
		pos := p.cur.Pos
		p.advance()
		arg, err := p.parseExpression(andPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Not{Position: pos, Arg: arg}, nil
	case lexer.MINUS:
		pos := p.cur.Pos
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if num, ok := operand.(*ast.NumberLiteral); ok {
			return &ast.NumberLiteral{Position: pos, Value: -num.Value}, nil
		}
		return &ast.Arithmetic{Position: pos, Op: ast.Sub, Left: &ast.NumberLiteral{Position: pos, Value: 0}, Right: operand}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Type {
	case lexer.INT:
		pos := p.cur.Pos
		n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", p.cur.Literal)
		}
		p.advance()
		return &ast.NumberLiteral{Position: pos, Value: n}, nil

	case lexer.STRING:
		pos := p.cur.Pos
		s := p.cur.Literal
		p.advance()
		return &ast.StringLiteral{Position: pos, Value: s}, nil

	case lexer.TRUE:
		pos := p.cur.Pos
		p.advance()
		return &ast.BoolLiteral{Position: pos, Value: true}, nil

	case lexer.FALSE:
		pos := p.cur.Pos
		p.advance()
		return &ast.BoolLiteral{Position: pos, Value: false}, nil

	case lexer.NONE:
		pos := p.cur.Pos
		p.advance()
		return &ast.NoneLiteral{Position: pos}, nil

	case lexer.STR:
		pos := p.cur.Pos
		p.advance()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Stringify{Position: pos, Arg: arg}, nil

	case lexer.NEW:
		pos := p.cur.Pos
		p.advance()
		if p.cur.Type != lexer.IDENT {
			return nil, p.errorf("expected class name after 'new'")
		}
		className := p.cur.Literal
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &ast.NewInstance{Position: pos, ClassName: className, Args: args}, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.IDENT, lexer.SELF:
		pos := p.cur.Pos
		ident := p.cur.Literal
		isSelf := p.cur.Type == lexer.SELF
		p.advance()
		// A call on a bare name is construction: Point(3, 4) is
		// equivalent to new Point(3, 4).
		if !isSelf && p.cur.Type == lexer.LPAREN {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return p.parseTrailingChain(&ast.NewInstance{Position: pos, ClassName: ident, Args: args})
		}
		return p.parsePostfixChain(pos, ident)

	default:
		return nil, p.errorf("unexpected token %s in expression", p.cur.Type)
	}
}

// parsePostfixChain parses the dotted-path / method-call suffix that
// follows a leading identifier, producing a VariableValue or a
// MethodCall.
func (p *Parser) parsePostfixChain(pos lexer.Position, first string) (ast.Expression, error) {
	path := []string{first}
	for p.cur.Type == lexer.DOT {
		p.advance()
		if p.cur.Type != lexer.IDENT && p.cur.Type != lexer.SELF {
			return nil, p.errorf("expected identifier after '.'")
		}
		name := p.cur.Literal
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			receiver := ast.Expression(&ast.VariableValue{Position: pos, Path: path})
			call := &ast.MethodCall{Position: pos, Receiver: receiver, Method: name, Args: args}
			return p.parseTrailingChain(call)
		}
		path = append(path, name)
	}
	return &ast.VariableValue{Position: pos, Path: path}, nil
}

// parseTrailingChain allows further .method(...) calls chained onto
// the result of a method call (e.g. a().b()); a plain attribute read
// on a call result is not representable by VariableValue and is
// rejected.
func (p *Parser) parseTrailingChain(expr ast.Expression) (ast.Expression, error) {
	for p.cur.Type == lexer.DOT {
		p.advance()
		if p.cur.Type != lexer.IDENT && p.cur.Type != lexer.SELF {
			return nil, p.errorf("expected identifier after '.'")
		}
		name := p.cur.Literal
		p.advance()
		if p.cur.Type != lexer.LPAREN {
			return nil, p.errorf("cannot read attribute '%s' of a call result", name)
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		expr = &ast.MethodCall{Position: expr.Pos(), Receiver: expr, Method: name, Args: args}
	}
	return expr, nil
}

func (p *Parser) parseArgList() ([]ast.Expression, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.cur.Type == lexer.RPAREN {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}
