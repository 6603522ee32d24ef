package script

import "testing"

func TestEvalForLoopWithoutInitOrUpdate(t *testing.T) {
	v := mustRun(t, `
		for (; false ;) {
			return 0;
		}
		return 1;
	`)
	if v.Int != 1 {
		t.Fatalf("got %d, want 1 (loop body never runs)", v.Int)
	}
}

func TestEvalIdentifierStatementsAreRejected(t *testing.T) {
	// this language has no variable declarations or assignment, so a
	// program that declares or mutates a named variable must fail to
	// parse rather than silently doing nothing.
	_, err := CompileString(`
		int i;
		i = 0;
		return i;
	`)
	if err == nil {
		t.Fatal("expected a syntax error: variables are not part of this grammar")
	}
}

func TestEvalBreakInsideLoop(t *testing.T) {
	v := mustRun(t, `
		for (; true ;) {
			break;
		}
		return 1;
	`)
	if v.Int != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestEvalLogicalAndShortCircuits(t *testing.T) {
	// division by zero on the right side must never execute, because
	// the left side of && is false.
	v := mustRun(t, "return false && (1 / 0 == 0);")
	if v.Type != TypeBoolean || v.Bool {
		t.Fatalf("got %v, want false", v)
	}
}

func TestEvalLogicalOrShortCircuits(t *testing.T) {
	v := mustRun(t, "return true || (1 / 0 == 0);")
	if v.Type != TypeBoolean || !v.Bool {
		t.Fatalf("got %v, want true", v)
	}
}

func TestEvalDivisionByZeroIsExecuteError(t *testing.T) {
	_, err := EvalString("return 1 / 0;")
	if _, ok := err.(*ExecuteError); !ok {
		t.Fatalf("got %T, want *ExecuteError", err)
	}
}

func TestEvalNegativeShiftCountIsExecuteError(t *testing.T) {
	_, err := EvalString("return 1 << (0 - 1);")
	if _, ok := err.(*ExecuteError); !ok {
		t.Fatalf("got %T, want *ExecuteError", err)
	}
}

func TestEvalShiftCountReducedModulo32(t *testing.T) {
	v := mustRun(t, "return 1 << 33;")
	if v.Int != 2 {
		t.Fatalf("got %d, want 2 (33 mod 32 == 1)", v.Int)
	}
}

func TestEvalModulusRequiresBothInt(t *testing.T) {
	_, err := CompileString("return 5.0 % 2;")
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}

func TestEvalBreakOutsideLoopReturnsBroken(t *testing.T) {
	p := mustCompile(t, "break;")
	state, _, err := p.root.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != StateBroken {
		t.Fatalf("got state %v, want StateBroken", state)
	}
}

func TestEvalReturnPropagatesThroughNestedFor(t *testing.T) {
	v := mustRun(t, `
		for (;;) {
			return 42;
		}
	`)
	if v.Int != 42 {
		t.Fatalf("got %d, want 42", v.Int)
	}
}

func TestEvalBitwiseRequiresBothInt(t *testing.T) {
	_, err := CompileString("return true & false;")
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}
