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

package ast

import "github.com/chocopy-lang/chocopy-go/pkg/token"

// A Node is anything the parser produces that carries a source position.
// Only pointers to structures implement the family interfaces below
// (Expr, Stmt, Decl, TypeAnnotation); each family's marker method is
// unexported so no type outside this package can satisfy it, which keeps
// each family's set of variants closed to the types declared here. A type
// switch over a family is not checked by the compiler for missing cases.
type Node interface {
	Pos() token.Position
}

// An Expr is an expression node: a literal, a name, an operation, or a
// chained postfix access.
type Expr interface {
	Node
	exprNode()
}

// A Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// A Decl is a top-level or function-body declaration: a class, a
// variable, a function, or a global/nonlocal binding.
type Decl interface {
	Node
	declNode()
}

// A TypeAnnotation is a type as written in source: a class name or a
// (possibly nested) list type.
type TypeAnnotation interface {
	Node
	typeNode()
}

// ---- Type annotations ----------------------------------------------------

// ClassType is a bare class name used as a type, e.g. "int" or "Animal".
type ClassType struct {
	Name     string
	Position token.Position
}

func (n *ClassType) Pos() token.Position { return n.Position }
func (*ClassType) typeNode()             {}

// ListType is a list type, strictly right-recursive on Element, e.g.
// "[int]" or "[[int]]".
type ListType struct {
	Element  TypeAnnotation
	Position token.Position
}

func (n *ListType) Pos() token.Position { return n.Position }
func (*ListType) typeNode()             {}

// ---- Expressions ----------------------------------------------------------

// NoneLit is the literal "None".
type NoneLit struct {
	Position token.Position
}

func (n *NoneLit) Pos() token.Position { return n.Position }
func (*NoneLit) exprNode()             {}

// BoolLit is the literal "True" or "False".
type BoolLit struct {
	Value    bool
	Position token.Position
}

func (n *BoolLit) Pos() token.Position { return n.Position }
func (*BoolLit) exprNode()             {}

// IntLit is an integer literal in [0, 2^31-1].
type IntLit struct {
	Value    int32
	Position token.Position
}

func (n *IntLit) Pos() token.Position { return n.Position }
func (*IntLit) exprNode()             {}

// StrLit is a double-quoted string literal, already escape-decoded.
type StrLit struct {
	Value    string
	Position token.Position
}

func (n *StrLit) Pos() token.Position { return n.Position }
func (*StrLit) exprNode()             {}

// IdString is an identifier appearing where the literal production
// syntactically accepts one (only reachable while parsing the right-hand
// side of a variable definition). Semantic analysis, not this front-end,
// decides whether it is actually valid there.
type IdString struct {
	Name     string
	Position token.Position
}

func (n *IdString) Pos() token.Position { return n.Position }
func (*IdString) exprNode()             {}

// Variable is a bare name used as an expression.
type Variable struct {
	Name     string
	Position token.Position
}

func (n *Variable) Pos() token.Position { return n.Position }
func (*Variable) exprNode()             {}

// ListLiteral is a bracketed list expression, e.g. "[1, 2, 3]".
type ListLiteral struct {
	Elements []Expr
	Position token.Position
}

func (n *ListLiteral) Pos() token.Position { return n.Position }
func (*ListLiteral) exprNode()             {}

// Unary is a prefix "-" or "not" expression.
type Unary struct {
	Op       string
	Operand  Expr
	Position token.Position
}

func (n *Unary) Pos() token.Position { return n.Position }
func (*Unary) exprNode()             {}

// Binary is a binary operator expression. Op is the operator's lexeme
// ("+", "and", "is", ...); Position is the operator token's position.
type Binary struct {
	Left     Expr
	Op       string
	Right    Expr
	Position token.Position
}

func (n *Binary) Pos() token.Position { return n.Position }
func (*Binary) exprNode()             {}

// IfExpr is the ternary "Then if Cond else Else" expression.
type IfExpr struct {
	Then     Expr
	Cond     Expr
	Else     Expr
	Position token.Position
}

func (n *IfExpr) Pos() token.Position { return n.Position }
func (*IfExpr) exprNode()             {}

// Member is a "Obj.Member" attribute access. Position is the "."'s
// position.
type Member struct {
	Obj      Expr
	Member   *Variable
	Position token.Position
}

func (n *Member) Pos() token.Position { return n.Position }
func (*Member) exprNode()             {}

// Index is a "List[Index]" subscript. Position is the "["'s position.
type Index struct {
	List     Expr
	Index    Expr
	Position token.Position
}

func (n *Index) Pos() token.Position { return n.Position }
func (*Index) exprNode()             {}

// Call is a "Callee(Args...)" call. Position is the "("'s position.
type Call struct {
	Callee   Expr
	Args     []Expr
	Position token.Position
}

func (n *Call) Pos() token.Position { return n.Position }
func (*Call) exprNode()             {}

// ---- Statements -------------------------------------------------------

// Pass is the "pass" statement.
type Pass struct {
	Position token.Position
}

func (n *Pass) Pos() token.Position { return n.Position }
func (*Pass) stmtNode()             {}

// ExprStmt is an expression evaluated for effect (a call, typically).
type ExprStmt struct {
	X        Expr
	Position token.Position
}

func (n *ExprStmt) Pos() token.Position { return n.Position }
func (*ExprStmt) stmtNode()             {}

// AssignStmt is "Target = Value". Target is always a Variable, Member,
// or Index.
type AssignStmt struct {
	Target   Expr
	Value    Expr
	Position token.Position
}

func (n *AssignStmt) Pos() token.Position { return n.Position }
func (*AssignStmt) stmtNode()             {}

// Return is "return" or "return Value". Value is nil for the bare form.
type Return struct {
	Value    Expr
	Position token.Position
}

func (n *Return) Pos() token.Position { return n.Position }
func (*Return) stmtNode()             {}

// If is "if Cond: Then" with an optional "else"/"elif" branch in Else.
// An "elif" is represented by Else holding a single nested *If.
type If struct {
	Cond     Expr
	Then     []Stmt
	Else     []Stmt
	Position token.Position
}

func (n *If) Pos() token.Position { return n.Position }
func (*If) stmtNode()             {}

// While is "while Cond: Body".
type While struct {
	Cond     Expr
	Body     []Stmt
	Position token.Position
}

func (n *While) Pos() token.Position { return n.Position }
func (*While) stmtNode()             {}

// For is "for Id in Iterable: Body".
type For struct {
	Id       string
	Iterable Expr
	Body     []Stmt
	Position token.Position
}

func (n *For) Pos() token.Position { return n.Position }
func (*For) stmtNode()             {}

// ---- Declarations -------------------------------------------------------

// TypedVar is the "name : Type" pair used in parameters and variable
// definitions. It is not itself a Decl; it is the shared shape VarDef
// and function parameters embed.
type TypedVar struct {
	Name     string
	Type     TypeAnnotation
	Position token.Position
}

// Pos returns v's position.
func (v TypedVar) Pos() token.Position { return v.Position }

// VarDef is "TypedVar = Literal".
type VarDef struct {
	Var      TypedVar
	Literal  Expr
	Position token.Position
}

func (n *VarDef) Pos() token.Position { return n.Position }
func (*VarDef) declNode()             {}

// GlobalDecl is "global Name".
type GlobalDecl struct {
	Name     string
	Position token.Position
}

func (n *GlobalDecl) Pos() token.Position { return n.Position }
func (*GlobalDecl) declNode()             {}

// NonlocalDecl is "nonlocal Name".
type NonlocalDecl struct {
	Name     string
	Position token.Position
}

func (n *NonlocalDecl) Pos() token.Position { return n.Position }
func (*NonlocalDecl) declNode()             {}

// FuncDef is a "def" statement: its body parses, in order, interleaved
// variable/global/nonlocal declarations, then nested function
// definitions, then one or more statements.
type FuncDef struct {
	Name        string
	Params      []TypedVar
	ReturnType  TypeAnnotation
	VarDefs     []*VarDef
	Decls       []Decl // *GlobalDecl / *NonlocalDecl, in source order
	NestedFuncs []*FuncDef
	Body        []Stmt
	Position    token.Position
}

func (n *FuncDef) Pos() token.Position { return n.Position }
func (*FuncDef) declNode()             {}

// ClassDef is a "class" statement. VarDefs always precedes Methods.
type ClassDef struct {
	Name     string
	Super    string
	VarDefs  []*VarDef
	Methods  []*FuncDef
	Position token.Position
}

func (n *ClassDef) Pos() token.Position { return n.Position }
func (*ClassDef) declNode()             {}

// ---- Program --------------------------------------------------------------

// Program is the root of the AST: every class/variable/function
// declaration, in source order, followed by the top-level statements.
type Program struct {
	Declarations []Decl
	Statements   []Stmt
	Position     token.Position
}

func (n *Program) Pos() token.Position { return n.Position }
