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

package lexer

import (
	"fmt"
	"strconv"

	"github.com/chocopy-lang/chocopy-go/pkg/token"
)

const eof = -1

const maxInt32 = 1<<31 - 1

// A Lexer turns ChocoPy source text into a stream of tokens, tracking
// logical-line indentation and synthesizing INDENT/DEDENT/NEWLINE markers
// so the parser can consume an indentation-sensitive grammar as if it
// were block-delimited.
//
// A Lexer is driven entirely by calls to NextToken: there is no
// background goroutine and no eager tokenization pass.
type Lexer struct {
	source string
	pos    int // byte offset of the next unread character
	line   int // line of the next unread character, 1-based
	col    int // column of the next unread character, 0-based

	indentStack []int         // bottom is always 0, strictly increasing
	queue       []token.Token // tokens produced but not yet returned
}

// New returns a Lexer over source.
func New(source string) *Lexer {
	return &Lexer{
		source:      source,
		line:        1,
		indentStack: []int{0},
	}
}

// NextToken returns the next token in the stream. It never returns an
// EOF-signalling error: once the input is exhausted it first returns any
// pending DEDENTs down to indentation level 0, then returns an EOF token
// forever after. The only error it returns is a *token.LexicalError
// describing a malformed character sequence; once returned, the Lexer
// should not be driven further.
func (l *Lexer) NextToken() (token.Token, error) {
	for len(l.queue) == 0 {
		if err := l.scan(); err != nil {
			return token.Token{}, err
		}
	}
	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, nil
}

func (l *Lexer) enqueue(t token.Token) {
	l.queue = append(l.queue, t)
}

func (l *Lexer) pos1(line, col int) token.Position {
	return token.Position{Line: line, Column: col + 1}
}

// peekByte returns the next unread byte without consuming it, or eof.
func (l *Lexer) peekByte() int {
	if l.pos >= len(l.source) {
		return eof
	}
	return int(l.source[l.pos])
}

// peekByte2 returns the byte after the next unread byte, or eof.
func (l *Lexer) peekByte2() int {
	if l.pos+1 >= len(l.source) {
		return eof
	}
	return int(l.source[l.pos+1])
}

// advance consumes and returns the next byte, updating line/col.
func (l *Lexer) advance() int {
	c := l.source[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return int(c)
}

func isAlpha(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c int) bool {
	return isAlpha(c) || isDigit(c)
}

// scan produces at least one token onto the queue, or returns a lexical
// error. It is the lexer's single entry point once the queue runs dry.
func (l *Lexer) scan() error {
	l.skipInlineWhitespace()
	if l.peekByte() == '#' {
		l.skipComment()
	}

	line, col := l.line, l.col
	pos := l.pos1(line, col)

	switch c := l.peekByte(); {
	case c == eof:
		return l.handleEOF(pos)
	case c == '\n':
		l.advance()
		return l.handleNewline(pos)
	case isAlpha(c) || c == '_':
		return l.lexIdentifier(pos)
	case isDigit(c):
		return l.lexNumber(pos)
	case c == '"':
		return l.lexString(pos)
	default:
		return l.lexOperator(pos)
	}
}

// skipInlineWhitespace skips spaces, tabs, and carriage returns.
func (l *Lexer) skipInlineWhitespace() {
	for {
		switch l.peekByte() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

// skipComment skips from '#' up to, but not including, the next '\n' (or
// EOF).
func (l *Lexer) skipComment() {
	for l.peekByte() != '\n' && l.peekByte() != eof {
		l.advance()
	}
}

// handleEOF is reached when the lexer encounters the end of input directly
// (not via a trailing newline): it flushes any remaining DEDENTs and emits
// EOF. Once the indent stack is back to [0], repeated calls just re-emit
// EOF.
func (l *Lexer) handleEOF(pos token.Position) error {
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.enqueue(token.Token{Kind: token.DEDENT, Position: pos})
	}
	l.enqueue(token.Token{Kind: token.EOF, Position: pos})
	return nil
}

// handleNewline implements the layout algorithm in full: it emits the
// NEWLINE, skips any run of blank or comment-only lines, and compares the
// indentation of the resulting logical line against the indent stack,
// emitting INDENT or DEDENT tokens as needed.
func (l *Lexer) handleNewline(newlinePos token.Position) error {
	l.enqueue(token.Token{Kind: token.NEWLINE, Lexeme: "\n", Position: newlinePos})

	for {
		l.skipInlineWhitespace()
		switch l.peekByte() {
		case '\n':
			l.advance()
			continue
		case '#':
			l.skipComment()
			continue
		}
		break
	}

	indentation := l.col
	if l.peekByte() == eof {
		indentation = 0
	}
	pos := l.pos1(l.line, l.col)

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case indentation > top:
		l.indentStack = append(l.indentStack, indentation)
		l.enqueue(token.Token{Kind: token.INDENT, Position: pos})
	case indentation < top:
		for len(l.indentStack) > 0 && l.indentStack[len(l.indentStack)-1] > indentation {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.enqueue(token.Token{Kind: token.DEDENT, Position: pos})
		}
		if l.indentStack[len(l.indentStack)-1] != indentation {
			return token.NewLexicalError("Inconsistent indentation level", pos)
		}
	}
	return nil
}

// lexIdentifier reads [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword or a plain ID.
func (l *Lexer) lexIdentifier(pos token.Position) error {
	start := l.pos
	l.advance() // first character already known to be alpha or '_'
	for isAlnum(l.peekByte()) || l.peekByte() == '_' {
		l.advance()
	}
	lexeme := l.source[start:l.pos]

	kind, ok := token.Keywords[lexeme]
	if !ok {
		l.enqueue(token.Token{Kind: token.ID, Lexeme: lexeme, Position: pos})
		return nil
	}

	var lit token.Literal
	switch kind {
	case token.TRUE:
		lit = token.BoolLiteral(true)
	case token.FALSE:
		lit = token.BoolLiteral(false)
	case token.NONE:
		lit = token.NoneLiteral{}
	}
	l.enqueue(token.Token{Kind: kind, Lexeme: lexeme, Position: pos, Literal: lit})
	return nil
}

// lexNumber reads a run of digits into an INTEGER token, rejecting a
// leading zero, a trailing float-looking dot, and values that overflow
// the ChocoPy int range [0, 2^31-1].
func (l *Lexer) lexNumber(pos token.Position) error {
	start := l.pos
	first := l.advance()
	if first == '0' && isDigit(l.peekByte()) {
		return token.NewLexicalError("Leading '0' is not allowed!", pos)
	}
	for isDigit(l.peekByte()) {
		l.advance()
	}
	if l.peekByte() == '.' && isDigit(l.peekByte2()) {
		return token.NewLexicalError("Floats are not allowed", pos)
	}

	lexeme := l.source[start:l.pos]
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil || value > maxInt32 {
		return token.NewLexicalError(fmt.Sprintf("Number %s is too big", lexeme), pos)
	}

	l.enqueue(token.Token{
		Kind:     token.INTEGER,
		Lexeme:   lexeme,
		Position: pos,
		Literal:  token.IntegerLiteral(value),
	})
	return nil
}

// lexString reads a double-quoted string, decoding \n, \t, \\, and \"
// escapes. Any other escape, an embedded newline, or running off the end
// of input before the closing quote is a lexical error.
func (l *Lexer) lexString(pos token.Position) error {
	start := l.pos
	l.advance() // opening '"'

	var decoded []byte
	for {
		switch c := l.peekByte(); c {
		case eof, '\n':
			return token.NewLexicalError("Unterminated string literal", pos)
		case '"':
			l.advance()
			lexeme := l.source[start:l.pos]
			l.enqueue(token.Token{
				Kind:     token.STRING,
				Lexeme:   lexeme,
				Position: pos,
				Literal:  token.StringLiteral(decoded),
			})
			return nil
		case '\\':
			l.advance()
			switch e := l.peekByte(); e {
			case eof:
				return token.NewLexicalError("Unterminated string literal", pos)
			case 'n':
				l.advance()
				decoded = append(decoded, '\n')
			case 't':
				l.advance()
				decoded = append(decoded, '\t')
			case '\\':
				l.advance()
				decoded = append(decoded, '\\')
			case '"':
				l.advance()
				decoded = append(decoded, '"')
			default:
				return token.NewLexicalError(
					fmt.Sprintf("Invalid escape sequence: \\%c", rune(e)), pos)
			}
		default:
			l.advance()
			decoded = append(decoded, byte(c))
		}
	}
}

// simpleOperators holds the single-character operators/punctuation that
// never need a byte of lookahead to resolve.
var simpleOperators = map[int]token.Kind{
	'+': token.PLUS, '*': token.MULTIPLY, '%': token.PERCENT,
	'(': token.PAREN_LEFT, ')': token.PAREN_RIGHT,
	'[': token.BRACKET_LEFT, ']': token.BRACKET_RIGHT,
	',': token.COMMA, ':': token.COLON, '.': token.DOT,
}

// lexOperator reads one operator or punctuation token, resolving
// multi-character operators with a single byte of lookahead.
func (l *Lexer) lexOperator(pos token.Position) error {
	c := l.advance()
	if kind, ok := simpleOperators[c]; ok {
		l.enqueue(token.Token{Kind: kind, Lexeme: string(rune(c)), Position: pos})
		return nil
	}

	switch c {
	case '/':
		if l.peekByte() == '/' {
			l.advance()
			l.enqueue(token.Token{Kind: token.DOUBLE_SLASH, Lexeme: "//", Position: pos})
			return nil
		}
		return token.NewLexicalError("Expected '/' after '/'", pos)
	case '!':
		if l.peekByte() == '=' {
			l.advance()
			l.enqueue(token.Token{Kind: token.NOT_EQUAL, Lexeme: "!=", Position: pos})
			return nil
		}
		return token.NewLexicalError("Expected '=' after '!'", pos)
	case '-':
		if l.peekByte() == '>' {
			l.advance()
			l.enqueue(token.Token{Kind: token.ARROW, Lexeme: "->", Position: pos})
			return nil
		}
		l.enqueue(token.Token{Kind: token.MINUS, Lexeme: "-", Position: pos})
		return nil
	case '<':
		return l.lexOptEqual(pos, "<", token.LESS, token.LESS_EQUAL)
	case '>':
		return l.lexOptEqual(pos, ">", token.GREATER, token.GREATER_EQUAL)
	case '=':
		return l.lexOptEqual(pos, "=", token.EQUAL, token.DOUBLE_EQUAL)
	}
	return token.NewLexicalError(fmt.Sprintf("Unexpected character %q", rune(c)), pos)
}

// lexOptEqual handles the <, >, = family: each may be followed by '=' to
// form a two-character relational or equality operator.
func (l *Lexer) lexOptEqual(pos token.Position, lexeme string, bare, withEqual token.Kind) error {
	if l.peekByte() == '=' {
		l.advance()
		l.enqueue(token.Token{Kind: withEqual, Lexeme: lexeme + "=", Position: pos})
		return nil
	}
	l.enqueue(token.Token{Kind: bare, Lexeme: lexeme, Position: pos})
	return nil
}
