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

package token

import "fmt"

// ChocoPyError is the common shape of every error this front-end raises:
// a message and the position it occurred at. It formats as
// "[L, C]: message", matching the driver-facing contract in the spec.
type ChocoPyError struct {
	Message  string
	Position Position
}

// Error implements the error interface.
func (e *ChocoPyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// LexicalError reports a malformed character sequence: a bad escape, an
// unterminated string, a leading zero, a float literal, an oversized
// integer, inconsistent indentation, or an unknown or incomplete operator.
type LexicalError struct {
	*ChocoPyError
}

// NewLexicalError constructs a LexicalError at pos with the given message.
func NewLexicalError(message string, pos Position) *LexicalError {
	return &LexicalError{&ChocoPyError{Message: message, Position: pos}}
}

// SyntaxError reports a token stream that does not match the grammar:
// an unexpected token, an invalid assignment target, or an empty block.
type SyntaxError struct {
	*ChocoPyError
}

// NewSyntaxError constructs a SyntaxError at pos with the given message.
func NewSyntaxError(message string, pos Position) *SyntaxError {
	return &SyntaxError{&ChocoPyError{Message: message, Position: pos}}
}

// SemanticError is reserved for downstream consumers (type checking and
// beyond); this front-end never raises one.
type SemanticError struct {
	*ChocoPyError
}

// NewSemanticError constructs a SemanticError at pos with the given message.
func NewSemanticError(message string, pos Position) *SemanticError {
	return &SemanticError{&ChocoPyError{Message: message, Position: pos}}
}
