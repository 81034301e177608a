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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/openconfig/gnmi/errdiff"

	"github.com/chocopy-lang/chocopy-go/pkg/token"
)

// kinds lexes src to EOF (inclusive) and returns the sequence of kinds
// seen, failing the test on any lexical error.
func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	lx := New(src)
	var got []token.Kind
	for {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		got = append(got, tok.Kind)
		if tok.Kind == token.EOF {
			return got
		}
	}
}

func TestKeywordsLexExactly(t *testing.T) {
	for word, kind := range token.Keywords {
		t.Run(word, func(t *testing.T) {
			lx := New(word)
			tok, err := lx.NextToken()
			if err != nil {
				t.Fatalf("NextToken: %v", err)
			}
			if tok.Kind != kind || tok.Lexeme != word {
				t.Errorf("got %v, want Kind=%v Lexeme=%q", tok, kind, word)
			}
			if tok.Position != (token.Position{Line: 1, Column: 1}) {
				t.Errorf("position = %v, want (1,1)", tok.Position)
			}
		})
	}
}

func TestKeywordSuffixOrPrefixIsID(t *testing.T) {
	for word := range token.Keywords {
		for _, variant := range []string{word + "x", "x" + word, word + "1"} {
			t.Run(variant, func(t *testing.T) {
				lx := New(variant)
				tok, err := lx.NextToken()
				if err != nil {
					t.Fatalf("NextToken: %v", err)
				}
				if tok.Kind != token.ID || tok.Lexeme != variant {
					t.Errorf("got %v, want ID %q", tok, variant)
				}
			})
		}
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	cases := []string{"If", "IF", "Class", "NONE", "none", "True", "TRUE", "while", "While"}
	for _, word := range cases {
		t.Run(word, func(t *testing.T) {
			if _, ok := token.Keywords[word]; ok {
				// word is itself a canonical keyword spelling; skip.
				return
			}
			lx := New(word)
			tok, err := lx.NextToken()
			if err != nil {
				t.Fatalf("NextToken: %v", err)
			}
			if tok.Kind != token.ID {
				t.Errorf("Kind = %v, want ID", tok.Kind)
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, "a\\b"},
		{`"a\"b"`, `a"b`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx := New(tt.in)
			tok, err := lx.NextToken()
			if err != nil {
				t.Fatalf("NextToken: %v", err)
			}
			if tok.Kind != token.STRING {
				t.Fatalf("Kind = %v, want STRING", tok.Kind)
			}
			got := string(tok.Literal.(token.StringLiteral))
			if got != tt.want {
				t.Errorf("literal = %q, want %q", got, tt.want)
			}
			if tok.Lexeme != tt.in {
				t.Errorf("lexeme = %q, want %q", tok.Lexeme, tt.in)
			}
		})
	}
}

func TestEOFIsReturnedForever(t *testing.T) {
	lx := New("pass")
	for i := 0; i < 5; i++ {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if i == 0 {
			continue // the PASS token
		}
		if tok.Kind != token.EOF {
			t.Fatalf("iteration %d: Kind = %v, want EOF", i, tok.Kind)
		}
	}
}

// S1 from the spec: basic layout.
func TestLayoutS1(t *testing.T) {
	got := kinds(t, "if True:\n    pass\npass")
	want := []token.Kind{
		token.IF, token.TRUE, token.COLON, token.NEWLINE, token.INDENT,
		token.PASS, token.NEWLINE, token.DEDENT, token.PASS, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

// S2 from the spec: nested layout, two INDENTs then two DEDENTs.
func TestLayoutS2(t *testing.T) {
	got := kinds(t, "if True:\n    if False:\n        pass\npass")
	want := []token.Kind{
		token.IF, token.TRUE, token.COLON, token.NEWLINE, token.INDENT,
		token.IF, token.FALSE, token.COLON, token.NEWLINE, token.INDENT,
		token.PASS, token.NEWLINE, token.DEDENT, token.DEDENT,
		token.PASS, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

// S3 from the spec: inconsistent indentation is a lexical error.
func TestInconsistentIndentation(t *testing.T) {
	lx := New("if True:\n    pass\n  pass")
	var err error
	for err == nil {
		var tok token.Token
		tok, err = lx.NextToken()
		if tok.Kind == token.EOF {
			break
		}
	}
	if diff := errdiff.Substring(err, "Inconsistent indentation level"); diff != "" {
		t.Errorf("unexpected error: %s", diff)
	}
}

func TestBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	got := kinds(t, "if True:\n    pass\n\n    # a comment\n    pass\npass")
	want := []token.Kind{
		token.IF, token.TRUE, token.COLON, token.NEWLINE, token.INDENT,
		token.PASS, token.NEWLINE,
		token.PASS, token.NEWLINE,
		token.DEDENT, token.PASS, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentDedentCountsBalance(t *testing.T) {
	src := "if True:\n    if False:\n        pass\n    elif True:\n        pass\n    else:\n        pass\npass"
	got := kinds(t, src)
	indents, dedents := 0, 0
	for _, k := range got {
		switch k {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	if indents != dedents {
		t.Errorf("INDENT count %d != DEDENT count %d", indents, dedents)
	}
}

func TestNegativeScenarios(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantErrSubs string
	}{
		{"N1_overflow", "2147483648", "Number 2147483648 is too big"},
		{"N2_float", "123.123", "Floats are not allowed"},
		{"N3_unterminated", `"unterminated`, "Unterminated string literal"},
		{"N4_bad_escape", `"bad \z"`, `Invalid escape sequence: \z`},
		{"leading_zero", "007", "Leading '0' is not allowed!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := New(tt.in)
			var err error
			for i := 0; i < 10 && err == nil; i++ {
				_, err = lx.NextToken()
			}
			if diff := errdiff.Substring(err, tt.wantErrSubs); diff != "" {
				t.Errorf("unexpected error: %s", diff)
			}
		})
	}
}

func TestIntegerLiteralRoundTrip(t *testing.T) {
	tests := []int32{0, 1, 42, 2147483647}
	for _, n := range tests {
		lx := New(fmtInt(n))
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("NextToken(%d): %v", n, err)
		}
		if tok.Kind != token.INTEGER {
			t.Fatalf("Kind = %v, want INTEGER", tok.Kind)
		}
		if got := int32(tok.Literal.(token.IntegerLiteral)); got != n {
			t.Errorf("literal = %d, want %d", got, n)
		}
	}
}

func fmtInt(n int32) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{byte('0' + n%10)}, buf...)
		n /= 10
	}
	return string(buf)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
	}{
		{"+", token.PLUS}, {"-", token.MINUS}, {"*", token.MULTIPLY},
		{"//", token.DOUBLE_SLASH}, {"%", token.PERCENT},
		{"<", token.LESS}, {">", token.GREATER},
		{"<=", token.LESS_EQUAL}, {">=", token.GREATER_EQUAL},
		{"==", token.DOUBLE_EQUAL}, {"!=", token.NOT_EQUAL}, {"=", token.EQUAL},
		{"(", token.PAREN_LEFT}, {")", token.PAREN_RIGHT},
		{"[", token.BRACKET_LEFT}, {"]", token.BRACKET_RIGHT},
		{",", token.COMMA}, {":", token.COLON}, {".", token.DOT}, {"->", token.ARROW},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx := New(tt.in)
			tok, err := lx.NextToken()
			if err != nil {
				t.Fatalf("NextToken: %v", err)
			}
			if tok.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.want)
			}
		})
	}
}

func TestOperatorLookaheadFailures(t *testing.T) {
	tests := []string{"/", "!"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx := New(in)
			_, err := lx.NextToken()
			if err == nil {
				t.Fatalf("NextToken(%q): want error, got nil", in)
			}
		})
	}
}

// Tokens (not just kinds) comparison using cmp, ignoring nothing important.
func TestTokenPositionsAdvanceAcrossLines(t *testing.T) {
	lx := New("a\nb")
	var got []token.Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		got = append(got, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	want := []token.Token{
		{Kind: token.ID, Lexeme: "a", Position: token.Position{Line: 1, Column: 1}},
		{Kind: token.NEWLINE, Lexeme: "\n", Position: token.Position{Line: 1, Column: 2}},
		{Kind: token.ID, Lexeme: "b", Position: token.Position{Line: 2, Column: 1}},
		{Kind: token.EOF, Position: token.Position{Line: 2, Column: 2}},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(token.Token{}, "Literal")); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
