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

// Package parser turns a token stream from pkg/lexer into a pkg/ast
// tree with a single hand-written recursive-descent parser.
//
// The grammar needs at most two tokens of lookahead: one production,
// the start of a statement, must distinguish "ID :" (a variable
// definition) from a bare expression statement beginning with an ID,
// and that takes current plus next. Every other production commits on
// current alone. Accordingly a Parser carries exactly two buffered
// tokens and never backtracks: each parse method either consumes
// tokens and returns a node, or returns an error built from whatever
// token it found where it didn't want one.
//
// Expression parsing is precedence climbing over nine levels, from the
// ternary "if/else" form down through "or", "and", comparisons,
// additive and multiplicative arithmetic, unary prefix operators, and
// finally primary expressions with their chained postfix accesses
// (attribute, subscript, call). Each level is its own method and calls
// only the level below it, so the call graph is the grammar.
//
// A Parser does not recover from a syntax error: the first one
// encountered is returned immediately, unwinding the whole parse. This
// matches ChocoPy's front end, which is meant to accept or reject a
// complete program, not to offer partial diagnostics for a broken one.
package parser
