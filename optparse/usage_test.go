package optparse

import (
	"io"
	"strings"
	"testing"
)

// TestUsageListing tests that the listing renders registration order, help
// text and non-empty defaults
func TestUsageListing(t *testing.T) {
	p := New()
	p.SetOutput(io.Discard)
	p.MustAddOption(Option{Short: "a", Long: "long-a", Kind: Value, Help: "option a", Default: "5"})
	p.MustAddOption(Option{Short: "b", Long: "long-b", Kind: Trigger, Help: "option b"})
	p.MustAddOption(Option{Long: "quiet", Kind: Trigger, Optional: true, Help: "silence output"})

	lines := strings.Split(strings.TrimRight(p.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), lines)
	}
	want := []string{
		"        -a/--long-a=: option a (default: 5)",
		"         -b/--long-b: option b",
		"             --quiet: silence output",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Expected line %d %q, got %q", i, want[i], lines[i])
		}
	}
}

// TestOptionName tests display-name formatting across the short/long/kind
// combinations
func TestOptionName(t *testing.T) {
	cases := []struct {
		opt  Option
		want string
	}{
		{Option{Short: "a", Long: "long-a", Kind: Value}, "-a/--long-a="},
		{Option{Short: "a", Long: "long-a", Kind: Trigger}, "-a/--long-a"},
		{Option{Short: "a", Kind: Value}, "-a"},
		{Option{Long: "long-a", Kind: Value}, "--long-a="},
		{Option{Long: "long-a", Kind: Trigger}, "--long-a"},
	}
	for _, tc := range cases {
		if got := tc.opt.Name(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}
