// Package parser turns a Mython token stream into an AST via
// hand-written recursive descent. Expressions use precedence climbing
// over the small, fixed set of arithmetic, comparison, and logical
// operators.
package parser

import (
	"fmt"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/lexer"
)

// Precedence levels for infix operators, lowest to highest.
const (
	lowest = iota
	orPrec
	andPrec
	comparePrec
	sumPrec
	productPrec
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       orPrec,
	lexer.AND:      andPrec,
	lexer.EQ:       comparePrec,
	lexer.NOT_EQ:   comparePrec,
	lexer.LT:       comparePrec,
	lexer.LTE:      comparePrec,
	lexer.GT:       comparePrec,
	lexer.GTE:      comparePrec,
	lexer.PLUS:     sumPrec,
	lexer.MINUS:    sumPrec,
	lexer.ASTERISK: productPrec,
	lexer.SLASH:    productPrec,
}

// Parser is a hand-written recursive-descent/precedence-climbing
// parser over a token stream from internal/lexer.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s at %s", fmt.Sprintf(format, args...), p.cur.Pos)
}

func (p *Parser) expect(t lexer.TokenType) error {
	if p.cur.Type != t {
		return p.errorf("expected %s, got %s", t, p.cur.Type)
	}
	p.advance()
	return nil
}

// expectNewline consumes a single NEWLINE, or accepts EOF/DEDENT as an
// implicit line terminator (the last line of a file or block need not
// end in an explicit newline token).
func (p *Parser) expectNewline() error {
	switch p.cur.Type {
	case lexer.NEWLINE:
		p.advance()
		return nil
	case lexer.EOF, lexer.DEDENT:
		return nil
	default:
		return p.errorf("expected end of line, got %s", p.cur.Type)
	}
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.NEWLINE {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.CLASS:
		return p.parseClassDef()
	case lexer.IF:
		return p.parseIfElse()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IDENT, lexer.SELF:
		return p.parseIdentStatement()
	default:
		return nil, p.errorf("unexpected token %s at start of statement", p.cur.Type)
	}
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	pos := p.cur.Pos
	p.advance() // consume 'print'
	args, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return &ast.Print{Position: pos, Args: args}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	pos := p.cur.Pos
	p.advance() // consume 'return'
	value, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return &ast.Return{Position: pos, Value: value}, nil
}

// parseIdentStatement parses a dotted-path-rooted statement: a plain
// assignment, a field assignment, or a bare expression statement
// (most commonly a method call performed for its side effects).
func (p *Parser) parseIdentStatement() (ast.Statement, error) {
	pos := p.cur.Pos
	path := []string{p.cur.Literal}
	p.advance()
	for p.cur.Type == lexer.DOT {
		p.advance()
		if p.cur.Type != lexer.IDENT && p.cur.Type != lexer.SELF {
			return nil, p.errorf("expected identifier after '.'")
		}
		path = append(path, p.cur.Literal)
		p.advance()
	}

	switch p.cur.Type {
	case lexer.ASSIGN:
		p.advance()
		value, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		if len(path) == 1 {
			return &ast.Assignment{Position: pos, Name: path[0], Value: value}, nil
		}
		target := &ast.VariableValue{Position: pos, Path: path[:len(path)-1]}
		return &ast.FieldAssignment{Position: pos, Target: target, Field: path[len(path)-1], Value: value}, nil

	case lexer.LPAREN:
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		// A call on a bare name is construction (Point(3, 4)); on a
		// dotted path it is a method call. Mython has no free
		// functions, so the two never collide.
		var callee ast.Expression
		if len(path) == 1 {
			callee = &ast.NewInstance{Position: pos, ClassName: path[0], Args: args}
		} else {
			receiver := ast.Expression(&ast.VariableValue{Position: pos, Path: path[:len(path)-1]})
			callee = &ast.MethodCall{Position: pos, Receiver: receiver, Method: path[len(path)-1], Args: args}
		}
		expr, err := p.parseTrailingChain(callee)
		if err != nil {
			return nil, err
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Position: pos, Expr: expr}, nil

	default:
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Position: pos, Expr: &ast.VariableValue{Position: pos, Path: path}}, nil
	}
}

func (p *Parser) parseIfElse() (ast.Statement, error) {
	pos := p.cur.Pos
	p.advance() // consume 'if'
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Compound
	if p.cur.Type == lexer.ELSE {
		p.advance()
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfElse{Position: pos, Condition: cond, Then: thenBlock, Else: elseBlock}, nil
}

// parseBlock parses a NEWLINE INDENT statement* DEDENT sequence.
func (p *Parser) parseBlock() (*ast.Compound, error) {
	pos := p.cur.Pos
	if err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.cur.Type != lexer.DEDENT && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.NEWLINE {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if p.cur.Type == lexer.DEDENT {
		p.advance()
	}
	return &ast.Compound{Position: pos, Statements: stmts}, nil
}

func (p *Parser) parseClassDef() (ast.Statement, error) {
	pos := p.cur.Pos
	p.advance() // consume 'class'
	if p.cur.Type != lexer.IDENT {
		return nil, p.errorf("expected class name")
	}
	name := p.cur.Literal
	p.advance()

	parent := ""
	if p.cur.Type == lexer.LPAREN {
		p.advance()
		if p.cur.Type == lexer.IDENT {
			parent = p.cur.Literal
			p.advance()
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	methods, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDefinition{Position: pos, Name: name, Parent: parent, Methods: methods}, nil
}

func (p *Parser) parseClassBody() ([]*ast.MethodDecl, error) {
	if err := p.expect(lexer.NEWLINE); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.INDENT); err != nil {
		return nil, err
	}
	var methods []*ast.MethodDecl
	for p.cur.Type != lexer.DEDENT && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.NEWLINE {
			p.advance()
			continue
		}
		if p.cur.Type != lexer.DEF {
			return nil, p.errorf("expected method definition inside class body, got %s", p.cur.Type)
		}
		m, err := p.parseMethodDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if p.cur.Type == lexer.DEDENT {
		p.advance()
	}
	return methods, nil
}

func (p *Parser) parseMethodDecl() (*ast.MethodDecl, error) {
	pos := p.cur.Pos
	p.advance() // consume 'def'
	if p.cur.Type != lexer.IDENT {
		return nil, p.errorf("expected method name")
	}
	name := p.cur.Literal
	p.advance()
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.SELF {
		return nil, p.errorf("method's first parameter must be 'self'")
	}
	p.advance()
	var params []string
	for p.cur.Type == lexer.COMMA {
		p.advance()
		if p.cur.Type != lexer.IDENT {
			return nil, p.errorf("expected parameter name")
		}
		params = append(params, p.cur.Literal)
		p.advance()
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDecl{Position: pos, Name: name, Params: params, Body: body}, nil
}
