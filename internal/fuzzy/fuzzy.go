// Package fuzzy ranks near-miss option names for "did you mean" hints in
// parse warnings.
package fuzzy

import "strings"

// minInputLength guards against suggesting anything for one-character
// inputs, where nearly every short option would be within distance range.
const minInputLength = 2

// Suggest returns the candidate closest to input within maxDistance edits,
// or "" when nothing qualifies. Ties are broken by longer common prefix,
// then by candidate order. Matching is case-insensitive; exact matches are
// not suggestions and are skipped.
func Suggest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)
	best := ""
	bestDist := maxDistance + 1
	bestPrefix := -1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == input {
			continue
		}
		d := distance(input, lc, maxDistance)
		if d > maxDistance {
			continue
		}
		pfx := commonPrefixLength(input, lc)
		if d < bestDist || (d == bestDist && pfx > bestPrefix) {
			best = c
			bestDist = d
			bestPrefix = pfx
		}
	}
	return best
}

// distance computes the Levenshtein distance between a and b, bailing out
// with limit+1 as soon as the result is guaranteed to exceed limit.
func distance(a, b string, limit int) int {
	if abs(len(a)-len(b)) > limit {
		return limit + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = minInt(cur[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := minInt(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
