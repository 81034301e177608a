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

// Package token defines the vocabulary shared by the ChocoPy lexer and
// parser: source positions, the closed set of token kinds, the literal
// payloads a token may carry, and the three error kinds a front-end pass
// can raise.
package token

import "fmt"

// A Position identifies a location in ChocoPy source text. Both Line and
// Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// String renders p the way error messages expect it: "[L, C]".
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Line, p.Column)
}

// Kind is a closed enumeration of ChocoPy token categories.
type Kind int

const (
	// Keywords used by the grammar.
	NONE Kind = iota
	TRUE
	FALSE
	AND
	NOT
	OR
	IS
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	PASS
	RETURN
	DEF
	CLASS
	GLOBAL
	NONLOCAL

	// Reserved keywords: recognized so they can never be used as
	// identifiers, never produced by any grammar production.
	AS
	ASSERT
	ASYNC
	AWAIT
	DEL
	BREAK
	CONTINUE
	EXCEPT
	FINALLY
	FROM
	IMPORT
	LAMBDA
	RAISE
	TRY
	WITH
	YIELD

	// Literals and identifiers.
	ID
	INTEGER
	STRING

	// Operators and punctuation.
	PLUS
	MINUS
	MULTIPLY
	DOUBLE_SLASH
	PERCENT
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
	DOUBLE_EQUAL
	NOT_EQUAL
	EQUAL
	PAREN_LEFT
	PAREN_RIGHT
	BRACKET_LEFT
	BRACKET_RIGHT
	COMMA
	COLON
	DOT
	ARROW

	// Layout.
	NEWLINE
	INDENT
	DEDENT
	EOF
)

var kindNames = map[Kind]string{
	NONE: "NONE", TRUE: "TRUE", FALSE: "FALSE", AND: "AND", NOT: "NOT", OR: "OR",
	IS: "IS", IF: "IF", ELIF: "ELIF", ELSE: "ELSE", WHILE: "WHILE", FOR: "FOR",
	IN: "IN", PASS: "PASS", RETURN: "RETURN", DEF: "DEF", CLASS: "CLASS",
	GLOBAL: "GLOBAL", NONLOCAL: "NONLOCAL",
	AS: "AS", ASSERT: "ASSERT", ASYNC: "ASYNC", AWAIT: "AWAIT", DEL: "DEL",
	BREAK: "BREAK", CONTINUE: "CONTINUE", EXCEPT: "EXCEPT", FINALLY: "FINALLY",
	FROM: "FROM", IMPORT: "IMPORT", LAMBDA: "LAMBDA", RAISE: "RAISE", TRY: "TRY",
	WITH: "WITH", YIELD: "YIELD",
	ID: "ID", INTEGER: "INTEGER", STRING: "STRING",
	PLUS: "PLUS", MINUS: "MINUS", MULTIPLY: "MULTIPLY", DOUBLE_SLASH: "DOUBLE_SLASH",
	PERCENT: "PERCENT", LESS: "LESS", GREATER: "GREATER", LESS_EQUAL: "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL", DOUBLE_EQUAL: "DOUBLE_EQUAL", NOT_EQUAL: "NOT_EQUAL",
	EQUAL: "EQUAL", PAREN_LEFT: "PAREN_LEFT", PAREN_RIGHT: "PAREN_RIGHT",
	BRACKET_LEFT: "BRACKET_LEFT", BRACKET_RIGHT: "BRACKET_RIGHT", COMMA: "COMMA",
	COLON: "COLON", DOT: "DOT", ARROW: "ARROW",
	NEWLINE: "NEWLINE", INDENT: "INDENT", DEDENT: "DEDENT", EOF: "EOF",
}

// String returns the canonical name of k, e.g. "PLUS".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps canonical spelling to Kind for every keyword in the
// grammar, including the reserved-but-unused ones. Lookup is
// case-sensitive: "None" is NONE, "none" is an ordinary ID.
var Keywords = map[string]Kind{
	"None": NONE, "True": TRUE, "False": FALSE,
	"and": AND, "not": NOT, "or": OR, "is": IS,
	"if": IF, "elif": ELIF, "else": ELSE,
	"while": WHILE, "for": FOR, "in": IN,
	"pass": PASS, "return": RETURN,
	"def": DEF, "class": CLASS,
	"global": GLOBAL, "nonlocal": NONLOCAL,
	"as": AS, "assert": ASSERT, "async": ASYNC, "await": AWAIT, "del": DEL,
	"break": BREAK, "continue": CONTINUE, "except": EXCEPT, "finally": FINALLY,
	"from": FROM, "import": IMPORT, "lambda": LAMBDA, "raise": RAISE,
	"try": TRY, "with": WITH, "yield": YIELD,
}

// Literal is the payload a token carries beyond its raw text: the decoded
// value of an INTEGER, STRING, TRUE, FALSE, or NONE token. ID and every
// other kind carry no literal.
type Literal interface {
	literal()
}

// IntegerLiteral is the decoded value of an INTEGER token, always in
// [0, 2^31-1].
type IntegerLiteral int32

func (IntegerLiteral) literal() {}

// BoolLiteral is the decoded value of a TRUE or FALSE token.
type BoolLiteral bool

func (BoolLiteral) literal() {}

// StringLiteral is the decoded (escape-processed) value of a STRING token.
type StringLiteral string

func (StringLiteral) literal() {}

// NoneLiteral is the (sole) value of a NONE token.
type NoneLiteral struct{}

func (NoneLiteral) literal() {}

// Token is one lexical unit: a kind, its raw source text, the position of
// its first character, and an optional decoded literal.
type Token struct {
	Kind     Kind
	Lexeme   string
	Position Position
	Literal  Literal
}

// String renders t for debugging and test failure messages.
func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("%s%s", t.Kind, t.Position)
	}
	return fmt.Sprintf("%s(%q)%s", t.Kind, t.Lexeme, t.Position)
}
