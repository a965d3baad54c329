package fuzzy

import "testing"

// TestSuggestBasic tests typo detection within the distance cutoff
func TestSuggestBasic(t *testing.T) {
	candidates := []string{"verbose", "version", "output"}
	cases := []struct {
		input string
		want  string
	}{
		{"verbsoe", "verbose"},
		{"versoin", "version"},
		{"outptu", "output"},
		{"completely-different", ""},
		{"v", ""},        // too short to suggest for
		{"verbose", ""},  // exact matches are not suggestions
	}
	for _, tc := range cases {
		if got := Suggest(tc.input, candidates, 2); got != tc.want {
			t.Errorf("Suggest(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

// TestSuggestCaseInsensitive tests that matching ignores case but returns
// the candidate as registered
func TestSuggestCaseInsensitive(t *testing.T) {
	if got := Suggest("VERBSOE", []string{"verbose"}, 2); got != "verbose" {
		t.Errorf("Expected 'verbose', got %q", got)
	}
}

// TestSuggestPrefixTieBreak tests that equal distances prefer the longer
// common prefix
func TestSuggestPrefixTieBreak(t *testing.T) {
	// Both candidates are one edit away from "porf"; "port" shares the
	// longer prefix.
	got := Suggest("porf", []string{"perf", "port"}, 2)
	if got != "port" {
		t.Errorf("Expected 'port', got %q", got)
	}
}

// TestDistanceEarlyTermination tests the bail-out when the distance is
// guaranteed to exceed the limit
func TestDistanceEarlyTermination(t *testing.T) {
	if d := distance("short", "a-very-long-candidate", 2); d != 3 {
		t.Errorf("Expected limit+1 (3), got %d", d)
	}
	if d := distance("abc", "abd", 2); d != 1 {
		t.Errorf("Expected 1, got %d", d)
	}
}
