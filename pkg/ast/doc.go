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

// Package ast defines the typed abstract syntax tree the parser builds.
//
// Every node is a struct implementing one of four family interfaces —
// Expr, Stmt, Decl, or TypeAnnotation — each of which embeds Node (a bare
// Pos() token.Position) plus an unexported marker method. The marker
// methods are what make the families sealed: only this package can
// implement exprNode(), so the set of Expr variants is exactly the *ast
// types declared here. The compiler does not check that a type switch
// over an Expr handles every one of them.
//
// The AST is a strict tree. Every node exclusively owns its children; no
// token from pkg/token ever appears inside it, only the Position values
// copied out of the tokens that introduced each node.
package ast
