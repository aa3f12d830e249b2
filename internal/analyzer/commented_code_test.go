package analyzer

import "testing"

func TestCommentedOutCode(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantIssues int
	}{
		{
			// A prose comment keeps the conventional space after "//",
			// which puts an empty string in word position 0 and the
			// first real word in position 1 — never "=", never a
			// keyword, never "|"/tab.
			name:       "prose comment",
			src:        "// this procedure rounds the total up\nA = 1;\n",
			wantIssues: 0,
		},
		{
			// Commented-out code is conventionally typed without that
			// space (// straight over the statement), putting the
			// assignment's left-hand side in word position 0 and "="
			// in position 1.
			name:       "assignment left commented out",
			src:        "//A = 1;\nB = 2;\n",
			wantIssues: 1,
		},
		{
			name:       "multi-line string continuation marker",
			src:        "//| continued text\nB = 2;\n",
			wantIssues: 1,
		},
		{
			name:       "contiguous block reported once",
			src: "//A = 1;\n" +
				"//A = 2;\n" +
				"B = 3;\n",
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, errs := parseAndRun(t, tt.src, NewCommentedOutCode())
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
