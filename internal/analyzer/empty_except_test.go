package analyzer

import "testing"

func TestEmptyExceptBlock(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			name: "empty except swallows the exception",
			src: "Procedure P()\n" +
				"  Try\n" +
				"    A = 1;\n" +
				"  Except\n" +
				"  EndTry;\n" +
				"EndProcedure\n",
			wantIssues: 1,
		},
		{
			name: "except with a handler is fine",
			src: "Procedure P()\n" +
				"  Try\n" +
				"    A = 1;\n" +
				"  Except\n" +
				"    B = 2;\n" +
				"  EndTry;\n" +
				"EndProcedure\n",
			wantIssues: 0,
		},
		{
			name: "try with no except clause at all",
			src: "Procedure P()\n" +
				"  Try\n" +
				"    A = 1;\n" +
				"  EndTry;\n" +
				"EndProcedure\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewEmptyExceptBlock())
			for _, e := range errs {
				if e.Fatal {
					t.Fatalf("unexpected fatal parse error: %s", e.Message)
				}
			}
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d: %+v", len(issues), tt.wantIssues, issues)
			}
		})
	}
}
