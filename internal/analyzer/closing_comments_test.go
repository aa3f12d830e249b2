package analyzer

import "testing"

func TestClosingComments_Method(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			name: "matching comment",
			src: "Function Test() Export\n" +
				"  Return 1;\n" +
				"EndFunction // Test()\n",
			wantIssues: 0,
		},
		{
			name: "lowercased comment",
			src: "Function Test() Export\n" +
				"  Return 1;\n" +
				"EndFunction // test()\n",
			wantIssues: 1,
		},
		{
			name: "missing call parens",
			src: "Function Test() Export\n" +
				"  Return 1;\n" +
				"EndFunction // Test\n",
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewClosingComments())
			for _, e := range errs {
				if e.Fatal {
					t.Fatalf("unexpected fatal parse error: %s", e.Message)
				}
			}
			if len(issues) != tt.wantIssues {
				t.Fatalf("got %d issues, want %d: %+v", len(issues), tt.wantIssues, issues)
			}
			if tt.wantIssues > 0 && issues[0].Kind != KindClosingCommentMismatch {
				t.Errorf("got kind %q, want %q", issues[0].Kind, KindClosingCommentMismatch)
			}
		})
	}
}

func TestClosingComments_Region(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			name:       "matching region comment",
			src:        "#Region Public\n#EndRegion // Public\n",
			wantIssues: 0,
		},
		{
			name:       "lowercased region comment",
			src:        "#Region Public\n#EndRegion // public\n",
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewClosingComments())
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
