package analyzer

import "testing"

func TestDuplicateCondition(t *testing.T) {
	src := "If X = 1 Then\n" +
		"ElsIf X = 2 Then\n" +
		"ElsIf X = 1 Then\n" +
		"EndIf;\n"

	issues, errs := parseAndRun(t, src, NewDuplicateCondition())
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].Kind != KindDuplicateCondition {
		t.Errorf("got kind %q, want %q", issues[0].Kind, KindDuplicateCondition)
	}
	if issues[0].Place.BegLine != 3 {
		t.Errorf("got issue on line %d, want line 3 (the third condition)", issues[0].Place.BegLine)
	}
}

func TestDuplicateCondition_NoDuplicates(t *testing.T) {
	src := "If X = 1 Then\n" +
		"ElsIf X = 2 Then\n" +
		"ElsIf X = 3 Then\n" +
		"EndIf;\n"

	issues, errs := parseAndRun(t, src, NewDuplicateCondition())
	for _, e := range errs {
		if e.Fatal {
			t.Fatalf("unexpected fatal parse error: %s", e.Message)
		}
	}
	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0: %+v", len(issues), issues)
	}
}
