package script

import (
	"strings"
	"testing"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer(NewReader(strings.NewReader(src)))
	var tokens []Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == EndOfInput {
			return tokens
		}
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	tokens := lexAll(t, "&& || << <= >> >= != ==")
	want := []TokenKind{LogicalAnd, LogicalOr, ShiftLeft, LessEqual, ShiftRight, GreaterEqual, NotEqual, Equal, EndOfInput}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestLexerSingleAmpersandIsBitAnd(t *testing.T) {
	tokens := lexAll(t, "&")
	if tokens[0].Kind != BitAnd {
		t.Fatalf("got %s, want BitAnd", tokens[0].Kind)
	}
}

func TestLexerNumberStates(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"0", LiteralInt},
		{"123", LiteralInt},
		{"0.5", LiteralFloat},
		{"3.14", LiteralFloat},
		{"1e10", LiteralFloat},
		{"1.5e-3", LiteralFloat},
		{"2E+8", LiteralFloat},
	}
	for _, tc := range cases {
		tokens := lexAll(t, tc.src)
		if tokens[0].Kind != tc.kind {
			t.Errorf("%q: got %s, want %s", tc.src, tokens[0].Kind, tc.kind)
		}
		if tokens[0].Content != tc.src {
			t.Errorf("%q: got content %q", tc.src, tokens[0].Content)
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tokens := lexAll(t, `"a\tb\n\"c\""`)
	if tokens[0].Kind != LiteralString {
		t.Fatalf("got %s, want LiteralString", tokens[0].Kind)
	}
	want := "a\tb\n\"c\""
	if tokens[0].Content != want {
		t.Errorf("got %q, want %q", tokens[0].Content, want)
	}
}

func TestLexerUnterminatedStringIsSyntaxError(t *testing.T) {
	lex := NewLexer(NewReader(strings.NewReader(`"abc`)))
	_, err := lex.NextToken()
	if err == nil {
		t.Fatal("expected syntax error for unterminated string")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
}

func TestLexerEmptyCharLiteralIsSyntaxError(t *testing.T) {
	lex := NewLexer(NewReader(strings.NewReader(`''`)))
	_, err := lex.NextToken()
	if err == nil {
		t.Fatal("expected syntax error for empty char literal")
	}
}

func TestLexerDigitFollowedByLetterIsParseErrorToken(t *testing.T) {
	tokens := lexAll(t, "123a")
	if tokens[0].Kind != ParseErrorToken {
		t.Fatalf("got %s, want ParseErrorToken", tokens[0].Kind)
	}
	if tokens[0].Content != "123a" {
		t.Errorf("got content %q, want %q", tokens[0].Content, "123a")
	}
}

func TestLexerRewindReproducesSameTokens(t *testing.T) {
	lex := NewLexer(NewReader(strings.NewReader("1 + 2 * 3")))
	var before []TokenKind
	for {
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		before = append(before, tok.Kind)
		if tok.Kind == EndOfInput {
			break
		}
	}
	lex.Rewind()
	var after []TokenKind
	for {
		tok, err := lex.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		after = append(after, tok.Kind)
		if tok.Kind == EndOfInput {
			break
		}
	}
	if len(before) != len(after) {
		t.Fatalf("got %d tokens after rewind, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("token %d: got %s after rewind, want %s", i, after[i], before[i])
		}
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	tokens := lexAll(t, "for while foo_bar true false")
	want := []TokenKind{KeywordFor, KeywordWhile, Identifier, LiteralTrue, LiteralFalse, EndOfInput}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}
