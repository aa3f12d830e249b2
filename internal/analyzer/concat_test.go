package analyzer

import "testing"

func TestInefficientConcat(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			name:       "three-way concat with strings",
			src:        `S = "a" + B + "c" + D;` + "\n",
			wantIssues: 1,
		},
		{
			name:       "single concat",
			src:        `S = "a" + B;` + "\n",
			wantIssues: 0,
		},
		{
			name:       "chained numeric addition, no strings",
			src:        `S = A + B + C;` + "\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewInefficientConcat())
			for _, e := range errs {
				if e.Fatal {
					t.Fatalf("unexpected fatal parse error: %s", e.Message)
				}
			}
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d: %+v", len(issues), tt.wantIssues, issues)
			}
			if tt.wantIssues > 0 && issues[0].Kind != KindInefficientConcat {
				t.Errorf("got kind %q, want %q", issues[0].Kind, KindInefficientConcat)
			}
		})
	}
}
