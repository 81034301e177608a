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

// Package lexer tokenizes ChocoPy source text.
//
// A Lexer is a pull-based, single-pass scanner: each call to NextToken
// advances through the source and returns exactly one token. Internally
// it mixes ordinary character classification (keywords, operators,
// numbers, strings) with a stateful layout analyzer that tracks an
// indentation stack and synthesizes INDENT, DEDENT, and NEWLINE tokens so
// that a recursive-descent parser can consume ChocoPy's
// indentation-sensitive grammar as if blocks were explicitly delimited.
//
//	lx := lexer.New("if True:\n    pass\n")
//	for {
//		tok, err := lx.NextToken()
//		if err != nil {
//			// err is a *token.LexicalError; parsing must stop.
//		}
//		if tok.Kind == token.EOF {
//			break
//		}
//	}
//
// The indentation algorithm runs once per physical newline: it emits a
// NEWLINE, skips any run of blank or comment-only lines, measures the
// column of the next logical line, and compares it against the top of
// the indent stack to decide whether zero, one, or several INDENT/DEDENT
// tokens are needed. The stack's bottom is always 0; at end of input any
// remaining levels are unwound with DEDENT tokens before EOF is returned,
// and EOF is returned forever after.
package lexer
