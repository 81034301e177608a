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
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/chocopy-lang/chocopy-go/pkg/ast"
	"github.com/chocopy-lang/chocopy-go/pkg/lexer"
)

// TestWholeProgram is S6: two classes (Animal, Dog, with Dog extending
// Animal), two global variables, one function (outer) with a nested
// function (inner), and a top-level if/else.
func TestWholeProgram(t *testing.T) {
	src := "" +
		"class Animal(object):\n" +
		"    name:str = \"\"\n" +
		"    def speak(self:Animal) -> str:\n" +
		"        return \"...\"\n" +
		"\n" +
		"class Dog(Animal):\n" +
		"    def speak(self:Animal) -> str:\n" +
		"        return \"Woof\"\n" +
		"\n" +
		"count:int = 0\n" +
		"last:str = \"\"\n" +
		"\n" +
		"def outer(x:int) -> int:\n" +
		"    def inner(y:int) -> int:\n" +
		"        return y\n" +
		"    return inner(x)\n" +
		"\n" +
		"if count > 0:\n" +
		"    last = \"pos\"\n" +
		"else:\n" +
		"    last = \"non-pos\"\n"

	prog, err := ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	var classes []*ast.ClassDef
	var vars []*ast.VarDef
	var funcs []*ast.FuncDef
	for _, d := range prog.Declarations {
		switch n := d.(type) {
		case *ast.ClassDef:
			classes = append(classes, n)
		case *ast.VarDef:
			vars = append(vars, n)
		case *ast.FuncDef:
			funcs = append(funcs, n)
		default:
			t.Fatalf("unexpected declaration type %T", d)
		}
	}

	if len(classes) != 2 {
		t.Fatalf("len(classes) = %d, want 2", len(classes))
	}
	if len(vars) != 2 {
		t.Fatalf("len(vars) = %d, want 2", len(vars))
	}
	if len(funcs) != 1 {
		t.Fatalf("len(funcs) = %d, want 1", len(funcs))
	}

	outer := funcs[0]
	if outer.Name != "outer" {
		t.Errorf("funcs[0].Name = %q, want outer", outer.Name)
	}
	if len(outer.NestedFuncs) != 1 || outer.NestedFuncs[0].Name != "inner" {
		t.Errorf("outer.NestedFuncs = %+v, want [inner]", outer.NestedFuncs)
	}

	dog := classes[1]
	if dog.Name != "Dog" || dog.Super != "Animal" {
		t.Errorf("classes[1] = {Name: %q, Super: %q}, want {Dog Animal}", dog.Name, dog.Super)
	}

	if len(prog.Statements) != 1 {
		t.Fatalf("len(Statements) = %d, want 1", len(prog.Statements))
	}
	ifStmt, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.If", prog.Statements[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("if statement shape = {Then: %d stmts, Else: %d stmts}, want {1 1}", len(ifStmt.Then), len(ifStmt.Else))
	}
}

// TestWholeProgramIsDeterministic parses the S6 program twice and
// pretty-prints both trees, the way marshal_test.go in the teacher
// diffs a got/want pair with pretty.Compare rather than comparing
// structs field-by-field by hand. Parsing has no map iteration or other
// source of nondeterminism, so the two pretty-printed trees must match
// byte for byte.
func TestWholeProgramIsDeterministic(t *testing.T) {
	src := "" +
		"class Animal(object):\n" +
		"    name:str = \"\"\n" +
		"    def speak(self:Animal) -> str:\n" +
		"        return \"...\"\n" +
		"\n" +
		"class Dog(Animal):\n" +
		"    def speak(self:Animal) -> str:\n" +
		"        return \"Woof\"\n" +
		"\n" +
		"count:int = 0\n" +
		"last:str = \"\"\n" +
		"\n" +
		"def outer(x:int) -> int:\n" +
		"    def inner(y:int) -> int:\n" +
		"        return y\n" +
		"    return inner(x)\n" +
		"\n" +
		"if count > 0:\n" +
		"    last = \"pos\"\n" +
		"else:\n" +
		"    last = \"non-pos\"\n"

	first, err := ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("ParseProgram (first): %v", err)
	}
	second, err := ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("ParseProgram (second): %v", err)
	}

	got := pretty.Sprint(first)
	want := pretty.Sprint(second)
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("ParseProgram is not deterministic, diff(-first,+second):\n%s", diff)
	}
}

// TestEmptyClassBody is S7.
func TestEmptyClassBody(t *testing.T) {
	src := "class Empty(object):\n    pass\n"
	prog, err := ParseProgram(lexer.New(src))
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("len(Declarations) = %d, want 1", len(prog.Declarations))
	}
	cd, ok := prog.Declarations[0].(*ast.ClassDef)
	if !ok {
		t.Fatalf("Declarations[0] = %T, want *ast.ClassDef", prog.Declarations[0])
	}
	if len(cd.VarDefs) != 0 {
		t.Errorf("len(VarDefs) = %d, want 0", len(cd.VarDefs))
	}
	if len(cd.Methods) != 0 {
		t.Errorf("len(Methods) = %d, want 0", len(cd.Methods))
	}
}
