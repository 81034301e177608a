// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"
	"strings"

	"github.com/chocopy-lang/chocopy-go/pkg/ast"
	"github.com/chocopy-lang/chocopy-go/pkg/lexer"
	"github.com/chocopy-lang/chocopy-go/pkg/token"
)

// tokenSource is the single primitive the parser needs from its input:
// one token per call, forever EOF after the stream is exhausted.
type tokenSource interface {
	NextToken() (token.Token, error)
}

// A Parser is a hand-written recursive-descent parser with two tokens of
// lookahead (current and next), enough to disambiguate every production
// in ChocoPy's LL(2) grammar without backtracking.
type Parser struct {
	lx      tokenSource
	current token.Token
	next    token.Token
}

// New primes a Parser from lx by reading its first two tokens.
func New(lx *lexer.Lexer) (*Parser, error) {
	return newFromSource(lx)
}

func newFromSource(lx tokenSource) (*Parser, error) {
	p := &Parser{lx: lx}
	first, err := lx.NextToken()
	if err != nil {
		return nil, err
	}
	second, err := lx.NextToken()
	if err != nil {
		return nil, err
	}
	p.current, p.next = first, second
	return p, nil
}

func (p *Parser) check(k token.Kind) bool { return p.current.Kind == k }

func (p *Parser) checkNext(k token.Kind) bool { return p.next.Kind == k }

// consume returns the current token and advances the lookahead window.
func (p *Parser) consume() (token.Token, error) {
	tok := p.current
	p.current = p.next
	nt, err := p.lx.NextToken()
	if err != nil {
		return tok, err
	}
	p.next = nt
	return tok, nil
}

// expect consumes the current token if it has kind k, otherwise raises a
// SyntaxError naming what was expected and what was actually found.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.check(k) {
		return token.Token{}, token.NewSyntaxError(
			fmt.Sprintf("Expected %s but got %s", k, p.current.Kind), p.current.Position)
	}
	return p.consume()
}

// expectBlockIndent consumes the NEWLINE and INDENT that must open any
// indented block (class body, function body, or statement block). When
// indentation never actually increases — the block's body is empty —
// no INDENT token exists to consume, which the grammar treats the same
// way as a block with no statements in it.
func (p *Parser) expectBlockIndent() error {
	if _, err := p.expect(token.NEWLINE); err != nil {
		return err
	}
	if !p.check(token.INDENT) {
		return token.NewSyntaxError("Empty blocks are not allowed", p.current.Position)
	}
	_, err := p.consume()
	return err
}

// expectStmtEnd consumes a NEWLINE terminating a simple statement, or
// accepts EOF/DEDENT as an implicit terminal position.
func (p *Parser) expectStmtEnd() error {
	if p.check(token.NEWLINE) {
		_, err := p.consume()
		return err
	}
	if p.check(token.EOF) || p.check(token.DEDENT) {
		return nil
	}
	return token.NewSyntaxError(
		fmt.Sprintf("Expected NEWLINE but got %s", p.current.Kind), p.current.Position)
}

// parseStmtsUntilDedent parses statements, skipping any stray blank
// NEWLINEs between them, until it reaches a DEDENT. It is shared by
// every construct whose body is "stmt+ DEDENT" once its own leading
// declarations (if any) have already been consumed.
func (p *Parser) parseStmtsUntilDedent() ([]ast.Stmt, error) {
	var body []ast.Stmt
	for !p.check(token.DEDENT) {
		if p.check(token.NEWLINE) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			continue
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, st)
	}
	return body, nil
}

// ParseProgram parses a whole ChocoPy source file: class definitions,
// then variable definitions, then function definitions, then top-level
// statements, in that order.
func ParseProgram(lx *lexer.Lexer) (*ast.Program, error) {
	p, err := New(lx)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	startPos := p.current.Position

	var decls []ast.Decl
	for p.check(token.CLASS) {
		cd, err := p.parseClassDef()
		if err != nil {
			return nil, err
		}
		decls = append(decls, cd)
	}
	for p.check(token.ID) && p.checkNext(token.COLON) {
		vd, err := p.parseVarDef()
		if err != nil {
			return nil, err
		}
		decls = append(decls, vd)
	}
	for p.check(token.DEF) {
		fd, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		decls = append(decls, fd)
	}

	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		if p.check(token.NEWLINE) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			continue
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}

	return &ast.Program{Declarations: decls, Statements: stmts, Position: startPos}, nil
}

// parseClassDef parses "class ID ( ID ) : NEWLINE INDENT class_body DEDENT".
func (p *Parser) parseClassDef() (*ast.ClassDef, error) {
	classTok, err := p.expect(token.CLASS)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_LEFT); err != nil {
		return nil, err
	}
	superTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_RIGHT); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if err := p.expectBlockIndent(); err != nil {
		return nil, err
	}

	cd := &ast.ClassDef{Name: nameTok.Lexeme, Super: superTok.Lexeme, Position: classTok.Position}

	if p.check(token.PASS) {
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		if err := p.expectStmtEnd(); err != nil {
			return nil, err
		}
	} else {
		for p.check(token.ID) && p.checkNext(token.COLON) {
			vd, err := p.parseVarDef()
			if err != nil {
				return nil, err
			}
			cd.VarDefs = append(cd.VarDefs, vd)
		}
		for p.check(token.DEF) {
			fd, err := p.parseFuncDef()
			if err != nil {
				return nil, err
			}
			cd.Methods = append(cd.Methods, fd)
		}
	}

	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return cd, nil
}

// parseFuncDef parses "def ID ( params? ) -> type : NEWLINE INDENT func_body DEDENT".
func (p *Parser) parseFuncDef() (*ast.FuncDef, error) {
	defTok, err := p.expect(token.DEF)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_LEFT); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PAREN_RIGHT); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if err := p.expectBlockIndent(); err != nil {
		return nil, err
	}

	fd := &ast.FuncDef{Name: nameTok.Lexeme, Params: params, ReturnType: retType, Position: defTok.Position}

	for p.check(token.ID) && p.checkNext(token.COLON) || p.check(token.GLOBAL) || p.check(token.NONLOCAL) {
		switch {
		case p.check(token.GLOBAL):
			gd, err := p.parseGlobalDecl()
			if err != nil {
				return nil, err
			}
			fd.Decls = append(fd.Decls, gd)
		case p.check(token.NONLOCAL):
			nd, err := p.parseNonlocalDecl()
			if err != nil {
				return nil, err
			}
			fd.Decls = append(fd.Decls, nd)
		default:
			vd, err := p.parseVarDef()
			if err != nil {
				return nil, err
			}
			fd.VarDefs = append(fd.VarDefs, vd)
		}
	}

	for p.check(token.DEF) {
		nested, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		fd.NestedFuncs = append(fd.NestedFuncs, nested)
	}

	body, err := p.parseStmtsUntilDedent()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, token.NewSyntaxError("Empty blocks are not allowed", p.current.Position)
	}
	fd.Body = body

	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return fd, nil
}

func (p *Parser) parseParams() ([]ast.TypedVar, error) {
	if p.check(token.PAREN_RIGHT) {
		return nil, nil
	}
	var params []ast.TypedVar
	tv, err := p.parseTypedVar()
	if err != nil {
		return nil, err
	}
	params = append(params, tv)
	for p.check(token.COMMA) {
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		tv, err := p.parseTypedVar()
		if err != nil {
			return nil, err
		}
		params = append(params, tv)
	}
	return params, nil
}

// parseTypedVar parses "ID : Type".
func (p *Parser) parseTypedVar() (ast.TypedVar, error) {
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return ast.TypedVar{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.TypedVar{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.TypedVar{}, err
	}
	return ast.TypedVar{Name: nameTok.Lexeme, Type: typ, Position: nameTok.Position}, nil
}

// parseType parses "ID | [ Type ]", with arbitrary list nesting.
func (p *Parser) parseType() (ast.TypeAnnotation, error) {
	if p.check(token.ID) {
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		return &ast.ClassType{Name: tok.Lexeme, Position: tok.Position}, nil
	}
	if p.check(token.BRACKET_LEFT) {
		lb, err := p.consume()
		if err != nil {
			return nil, err
		}
		el, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_RIGHT); err != nil {
			return nil, err
		}
		return &ast.ListType{Element: el, Position: lb.Position}, nil
	}
	return nil, token.NewSyntaxError(
		fmt.Sprintf("Expected a type but got %s", p.current.Kind), p.current.Position)
}

// parseVarDef parses "TypedVar = Literal NEWLINE?".
func (p *Parser) parseVarDef() (*ast.VarDef, error) {
	tv, err := p.parseTypedVar()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUAL); err != nil {
		return nil, err
	}
	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.expectStmtEnd(); err != nil {
		return nil, err
	}
	return &ast.VarDef{Var: tv, Literal: lit, Position: tv.Position}, nil
}

// parseLiteral parses "None | True | False | INTEGER | STRING | ID". The
// ID form becomes an IdString; semantic analysis, not this parser,
// decides whether that is valid.
func (p *Parser) parseLiteral() (ast.Expr, error) {
	tok := p.current
	switch tok.Kind {
	case token.NONE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.NoneLit{Position: tok.Position}, nil
	case token.TRUE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Value: true, Position: tok.Position}, nil
	case token.FALSE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Value: false, Position: tok.Position}, nil
	case token.INTEGER:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: int32(tok.Literal.(token.IntegerLiteral)), Position: tok.Position}, nil
	case token.STRING:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.StrLit{Value: string(tok.Literal.(token.StringLiteral)), Position: tok.Position}, nil
	case token.ID:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.IdString{Name: tok.Lexeme, Position: tok.Position}, nil
	}
	return nil, token.NewSyntaxError(
		fmt.Sprintf("Expected a literal but got %s", tok.Kind), tok.Position)
}

func (p *Parser) parseGlobalDecl() (*ast.GlobalDecl, error) {
	tok, err := p.expect(token.GLOBAL)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if err := p.expectStmtEnd(); err != nil {
		return nil, err
	}
	return &ast.GlobalDecl{Name: nameTok.Lexeme, Position: tok.Position}, nil
}

func (p *Parser) parseNonlocalDecl() (*ast.NonlocalDecl, error) {
	tok, err := p.expect(token.NONLOCAL)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if err := p.expectStmtEnd(); err != nil {
		return nil, err
	}
	return &ast.NonlocalDecl{Name: nameTok.Lexeme, Position: tok.Position}, nil
}

// ---- Statements -----------------------------------------------------------

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.current.Kind {
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	default:
		return p.parseSimpleStmt()
	}
}

func (p *Parser) parseIfStmt() (*ast.If, error) {
	ifTok, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	elseBody, err := p.parseElseOrElif()
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBody, Position: ifTok.Position}, nil
}

// parseElseOrElif parses the optional tail of an if statement: either an
// "elif", represented as a single nested *ast.If in the returned slice,
// or an "else" block, or nothing.
func (p *Parser) parseElseOrElif() ([]ast.Stmt, error) {
	switch {
	case p.check(token.ELIF):
		elifTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		then, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		tail, err := p.parseElseOrElif()
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.If{Cond: cond, Then: then, Else: tail, Position: elifTok.Position}}, nil
	case p.check(token.ELSE):
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		return p.parseBlock()
	default:
		return nil, nil
	}
}

func (p *Parser) parseWhileStmt() (*ast.While, error) {
	whileTok, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Position: whileTok.Position}, nil
}

func (p *Parser) parseForStmt() (*ast.For, error) {
	forTok, err := p.expect(token.FOR)
	if err != nil {
		return nil, err
	}
	idTok, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Id: idTok.Lexeme, Iterable: iterable, Body: body, Position: forTok.Position}, nil
}

// parseBlock parses "NEWLINE INDENT stmt+ DEDENT", skipping blank
// NEWLINEs inside, and rejects an empty statement list.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if err := p.expectBlockIndent(); err != nil {
		return nil, err
	}
	body, err := p.parseStmtsUntilDedent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return body, nil
}

// parseSimpleStmt parses "pass | return expr? | expr ( = expr )?".
func (p *Parser) parseSimpleStmt() (ast.Stmt, error) {
	switch p.current.Kind {
	case token.PASS:
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		if err := p.expectStmtEnd(); err != nil {
			return nil, err
		}
		return &ast.Pass{Position: tok.Position}, nil

	case token.RETURN:
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		var value ast.Expr
		if !p.check(token.NEWLINE) && !p.check(token.EOF) && !p.check(token.DEDENT) {
			value, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectStmtEnd(); err != nil {
			return nil, err
		}
		return &ast.Return{Value: value, Position: tok.Position}, nil

	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.check(token.EQUAL) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			if !isAssignable(expr) {
				return nil, token.NewSyntaxError(
					fmt.Sprintf("cannot assign to %s", nodeTypeName(expr)), expr.Pos())
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectStmtEnd(); err != nil {
				return nil, err
			}
			return &ast.AssignStmt{Target: expr, Value: value, Position: expr.Pos()}, nil
		}
		if err := p.expectStmtEnd(); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: expr, Position: expr.Pos()}, nil
	}
}

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Variable, *ast.Member, *ast.Index:
		return true
	default:
		return false
	}
}

func nodeTypeName(n ast.Node) string {
	name := fmt.Sprintf("%T", n)
	name = strings.TrimPrefix(name, "*ast.")
	return name
}

// ---- Expressions: precedence climbing, lowest to highest -----------------

// parseExpr is the ternary level: "or_expr [ if or_expr else expr ]",
// right-associative.
func (p *Parser) parseExpr() (ast.Expr, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.check(token.IF) {
		return cond, nil
	}
	ifTok, err := p.consume()
	if err != nil {
		return nil, err
	}
	ifCond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Then: cond, Cond: ifCond, Else: elseExpr, Position: ifTok.Position}, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.OR) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: opTok.Position}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.AND) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: opTok.Position}
	}
	return left, nil
}

var comparisonOps = map[token.Kind]bool{
	token.DOUBLE_EQUAL: true, token.NOT_EQUAL: true,
	token.LESS: true, token.GREATER: true,
	token.LESS_EQUAL: true, token.GREATER_EQUAL: true,
	token.IS: true,
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseArithmetic()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.current.Kind] {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseArithmetic()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: opTok.Position}
	}
	return left, nil
}

func (p *Parser) parseArithmetic() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: opTok.Position}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(token.MULTIPLY) || p.check(token.DOUBLE_SLASH) || p.check(token.PERCENT) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: opTok.Lexeme, Right: right, Position: opTok.Position}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.check(token.MINUS) || p.check(token.NOT) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: opTok.Lexeme, Operand: operand, Position: opTok.Position}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses "atom ( . ID | [ expr ] | ( arglist? ) )*",
// chaining postfix accesses left to right without limit.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.DOT):
			dotTok, err := p.consume()
			if err != nil {
				return nil, err
			}
			memberTok, err := p.expect(token.ID)
			if err != nil {
				return nil, err
			}
			atom = &ast.Member{
				Obj:      atom,
				Member:   &ast.Variable{Name: memberTok.Lexeme, Position: memberTok.Position},
				Position: dotTok.Position,
			}
		case p.check(token.BRACKET_LEFT):
			lbTok, err := p.consume()
			if err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.BRACKET_RIGHT); err != nil {
				return nil, err
			}
			atom = &ast.Index{List: atom, Index: idx, Position: lbTok.Position}
		case p.check(token.PAREN_LEFT):
			lpTok, err := p.consume()
			if err != nil {
				return nil, err
			}
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.PAREN_RIGHT); err != nil {
				return nil, err
			}
			atom = &ast.Call{Callee: atom, Args: args, Position: lpTok.Position}
		default:
			return atom, nil
		}
	}
}

func (p *Parser) parseArgList() ([]ast.Expr, error) {
	if p.check(token.PAREN_RIGHT) {
		return nil, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []ast.Expr{first}
	for p.check(token.COMMA) {
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	return args, nil
}

// parseAtom parses "literal | ID | ( expr ) | [ expr (, expr)* ]".
func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.current
	switch tok.Kind {
	case token.NONE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.NoneLit{Position: tok.Position}, nil
	case token.TRUE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Value: true, Position: tok.Position}, nil
	case token.FALSE:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Value: false, Position: tok.Position}, nil
	case token.INTEGER:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: int32(tok.Literal.(token.IntegerLiteral)), Position: tok.Position}, nil
	case token.STRING:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.StrLit{Value: string(tok.Literal.(token.StringLiteral)), Position: tok.Position}, nil
	case token.ID:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		return &ast.Variable{Name: tok.Lexeme, Position: tok.Position}, nil
	case token.PAREN_LEFT:
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.PAREN_RIGHT); err != nil {
			return nil, err
		}
		return inner, nil
	case token.BRACKET_LEFT:
		lbTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		if p.check(token.BRACKET_RIGHT) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			return &ast.ListLiteral{Position: lbTok.Position}, nil
		}
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements := []ast.Expr{first}
		for p.check(token.COMMA) {
			if _, err := p.consume(); err != nil {
				return nil, err
			}
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)
		}
		if _, err := p.expect(token.BRACKET_RIGHT); err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Elements: elements, Position: lbTok.Position}, nil
	}
	return nil, token.NewSyntaxError(
		fmt.Sprintf("Expected expression but got %s", tok.Kind), tok.Position)
}
