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

// Package token is used by both pkg/lexer and pkg/parser to agree on what
// a token is; it imports neither of them.
//
// A Token carries a Kind (the closed set of keywords, operators, literal
// categories, and layout markers a ChocoPy source file can contain), the
// raw Lexeme that produced it, its source Position, and — for literal
// tokens — a decoded Literal value.
//
//	tok := token.Token{
//		Kind:     token.INTEGER,
//		Lexeme:   "42",
//		Position: token.Position{Line: 3, Column: 5},
//		Literal:  token.IntegerLiteral(42),
//	}
//
// The package also defines the three error kinds the front-end can raise:
// LexicalError, SyntaxError, and SemanticError (the last never raised
// here, reserved for the type checker). All three format their Error()
// text as "[L, C]: message".
package token
