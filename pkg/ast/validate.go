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

import "fmt"

// Validate walks p and reports the first structural invariant it finds
// broken: a nil declaration/statement slice entry, or an
// If/While/For/FuncDef or method body that is empty. A ClassDef with no
// VarDefs and no Methods (a pass-only class) is accepted. The program's own
// top-level statement list is not a "block" in that sense — a
// declarations-only program (no top-level statements at all) is valid
// ChocoPy — so it is only walked for nil entries and nested compound
// statements, never required to be non-empty. It exists for tests and
// tooling, not for the parser itself, which is expected to only ever
// build trees that already satisfy these invariants.
func (p *Program) Validate() error {
	for _, d := range p.Declarations {
		if d == nil {
			return fmt.Errorf("program: nil declaration")
		}
		if err := validateDecl(d); err != nil {
			return err
		}
	}
	return validateStmts(p.Statements, "program")
}

func validateDecl(d Decl) error {
	switch n := d.(type) {
	case *ClassDef:
		for _, m := range n.Methods {
			if err := validateBlock(m.Body, fmt.Sprintf("method %s.%s", n.Name, m.Name)); err != nil {
				return err
			}
		}
	case *FuncDef:
		for _, nested := range n.NestedFuncs {
			if err := validateDecl(nested); err != nil {
				return err
			}
		}
		return validateBlock(n.Body, "function "+n.Name)
	}
	return nil
}

// validateBlock requires body to be a non-empty block (the If/While/For/
// FuncDef/method case) and then walks it like any other statement list.
func validateBlock(body []Stmt, where string) error {
	if len(body) == 0 {
		return fmt.Errorf("%s: empty block", where)
	}
	return validateStmts(body, where)
}

// validateStmts checks stmts for nil entries and recurses into any
// nested If/While/For bodies, without itself requiring stmts to be
// non-empty.
func validateStmts(stmts []Stmt, where string) error {
	for _, s := range stmts {
		if s == nil {
			return fmt.Errorf("%s: nil statement", where)
		}
		switch n := s.(type) {
		case *If:
			if err := validateBlock(n.Then, where+" if-then"); err != nil {
				return err
			}
			if len(n.Else) > 0 {
				if err := validateBlock(n.Else, where+" if-else"); err != nil {
					return err
				}
			}
		case *While:
			if err := validateBlock(n.Body, where+" while"); err != nil {
				return err
			}
		case *For:
			if err := validateBlock(n.Body, where+" for"); err != nil {
				return err
			}
		}
	}
	return nil
}
