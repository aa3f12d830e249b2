package analyzer

import "testing"

func TestUnusedVariables_UnusedLocal(t *testing.T) {
	src := "Procedure P()\n" +
		"  Var A;\n" +
		"  A = 1;\n" +
		"EndProcedure\n"

	issues, errs := parseAndRun(t, src, NewUnusedVariables())
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].Kind != KindUnusedLocalVariable {
		t.Errorf("got kind %q, want %q", issues[0].Kind, KindUnusedLocalVariable)
	}
}

func TestUnusedVariables_LoopConditionReadIsUsed(t *testing.T) {
	src := "Procedure P()\n" +
		"  Var A; A = 0;\n" +
		"  While A < 3 Do\n" +
		"    A = A + 1;\n" +
		"  EndDo;\n" +
		"EndProcedure\n"

	issues, errs := parseAndRun(t, src, NewUnusedVariables())
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: %+v", len(issues), issues)
	}
}

func TestUnusedVariables_ParameterReadIsUsed(t *testing.T) {
	src := "Procedure P(A)\n" +
		"  A = A + 1;\n" +
		"EndProcedure\n"

	issues, errs := parseAndRun(t, src, NewUnusedVariables())
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: %+v", len(issues), issues)
	}
}

func TestUnusedVariables_StrictParamsFlagsUnread(t *testing.T) {
	src := "Procedure P(A)\n" +
		"  Return;\n" +
		"EndProcedure\n"

	plugin := NewUnusedVariables()
	plugin.StrictParams = true
	issues, errs := parseAndRun(t, src, plugin)
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].Kind != KindUnusedParameter {
		t.Errorf("got kind %q, want %q", issues[0].Kind, KindUnusedParameter)
	}
}
