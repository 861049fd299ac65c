package common

import (
	"strings"

	"github.com/agext/levenshtein"
)

// SplitAliases splits a space-separated registration string into its
// individual alias tokens.
func SplitAliases(name string) []string {
	return strings.Fields(name)
}

// ClosestMatch returns the candidate closest to target, or the empty
// string if nothing is plausibly close. Case-insensitive prefix matches
// win outright; otherwise the smallest edit distance wins, subject to an
// adaptive threshold so wildly different names are never suggested.
// Candidates must be pre-sorted if deterministic output matters.
func ClosestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)

	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.Distance(low, strings.ToLower(c), nil)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= max(2, len(low)/3) {
		return best
	}
	return ""
}
