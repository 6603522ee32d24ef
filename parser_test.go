package script

import "testing"

func mustCompile(t *testing.T, src string) *Program {
	t.Helper()
	p, err := CompileString(src)
	if err != nil {
		t.Fatalf("CompileString(%q): %v", src, err)
	}
	return p
}

func mustRun(t *testing.T, src string) Value {
	t.Helper()
	v, err := EvalString(src)
	if err != nil {
		t.Fatalf("EvalString(%q): %v", src, err)
	}
	return v
}

func TestParserArithmeticPrecedence(t *testing.T) {
	v := mustRun(t, "return 2 + 3 * 4;")
	if v.Type != TypeInteger || v.Int != 14 {
		t.Fatalf("got %v, want int 14", v)
	}
}

func TestParserIntFloatPromotion(t *testing.T) {
	v := mustRun(t, "return 1 + 2.5;")
	if v.Type != TypeFloating || v.Float != 3.5 {
		t.Fatalf("got %v, want float 3.5", v)
	}
}

func TestParserStringConcat(t *testing.T) {
	v := mustRun(t, `return "foo" + "bar";`)
	if v.Type != TypeString || v.Str != "foobar" {
		t.Fatalf("got %v, want string foobar", v)
	}
}

func TestParserMismatchedTypesIsTypeError(t *testing.T) {
	_, err := CompileString(`return 1 + "x";`)
	if err == nil {
		t.Fatal("expected a type error")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}

func TestParserCast(t *testing.T) {
	v := mustRun(t, "return (int)3.9;")
	if v.Type != TypeInteger || v.Int != 3 {
		t.Fatalf("got %v, want int 3 (trunc toward zero)", v)
	}
	v = mustRun(t, "return (float)2;")
	if v.Type != TypeFloating || v.Float != 2 {
		t.Fatalf("got %v, want float 2", v)
	}
}

func TestParserInvalidCastIsTypeError(t *testing.T) {
	_, err := CompileString(`return (int)"x";`)
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}

func TestParserNewArray(t *testing.T) {
	v := mustRun(t, "return new int[3];")
	if v.Type != TypeArray || len(v.ArrayElem) != 3 {
		t.Fatalf("got %v, want array of 3 ints", v)
	}
	for _, e := range v.ArrayElem {
		if e.Type != TypeInteger || e.Int != 0 {
			t.Fatalf("element %v, want zero int", e)
		}
	}
}

func TestParserNewWithoutDimensionIsSyntaxError(t *testing.T) {
	_, err := CompileString("return new int;")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError for new without a dimension", err)
	}
}

func TestParserNewNestedArray(t *testing.T) {
	v := mustRun(t, "return new int[2][3];")
	if v.Type != TypeArray || len(v.ArrayElem) != 2 {
		t.Fatalf("got %v, want outer array of 2", v)
	}
	inner := v.ArrayElem[0]
	if inner.Type != TypeArray || len(inner.ArrayElem) != 3 {
		t.Fatalf("got %v, want inner array of 3", inner)
	}
}

func TestParserRelationalExcludesBoolOrdering(t *testing.T) {
	_, err := CompileString("return true < false;")
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError for bool ordering", err)
	}
}

func TestParserEqualityAllowsBool(t *testing.T) {
	v := mustRun(t, "return true == true;")
	if v.Type != TypeBoolean || !v.Bool {
		t.Fatalf("got %v, want true", v)
	}
}

func TestParserIdentifierNotSupported(t *testing.T) {
	_, err := CompileString("return x;")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError for identifier", err)
	}
}

func TestParserFormatRoundTripsReadably(t *testing.T) {
	p := mustCompile(t, "return 1 + 2;")
	out := p.Format()
	if out == "" {
		t.Fatal("expected non-empty formatted output")
	}
	v := mustRun(t, out)
	if v.Type != TypeInteger || v.Int != 3 {
		t.Fatalf("formatted output %q ran to %v, want int 3", out, v)
	}
}
