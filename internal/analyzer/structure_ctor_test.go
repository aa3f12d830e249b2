package analyzer

import "testing"

func TestStructureCtorMisuse(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			name:       "flat argument list misuse",
			src:        `S = New Structure("Key1", Val1, Val2);` + "\n",
			wantIssues: 1,
		},
		{
			// A string-literal first argument followed by more than one
			// further argument is exactly the ambiguous shape the check
			// flags, whether or not that string happens to contain a
			// comma-separated key list — the rule is syntactic, not a
			// key-count cross-check.
			name:       "comma-separated key list still matches the syntactic rule",
			src:        `S = New Structure("Key1, Key2", Val1, Val2);` + "\n",
			wantIssues: 1,
		},
		{
			name:       "two args is never ambiguous",
			src:        `S = New Structure("Key1", Val1);` + "\n",
			wantIssues: 0,
		},
		{
			name:       "unrelated constructor",
			src:        `S = New Array(1, 2, 3);` + "\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewStructureCtorMisuse())
			for _, e := range errs {
				if e.Fatal {
					t.Fatalf("unexpected fatal parse error: %s", e.Message)
				}
			}
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d: %+v", len(issues), tt.wantIssues, issues)
			}
			if tt.wantIssues > 0 && issues[0].Kind != KindStructureCtorMisuse {
				t.Errorf("got kind %q, want %q", issues[0].Kind, KindStructureCtorMisuse)
			}
		})
	}
}
