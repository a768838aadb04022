// Package suggest ranks candidate names by similarity to a mistyped input,
// for "did you mean" hints in error messages.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// Rank returns up to max candidates similar to target, best first. Ties
// break alphabetically. An empty target or non-positive max yields nil.
func Rank(target string, candidates []string, max int) []string {
	if target == "" || max <= 0 {
		return nil
	}

	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			ranked = append(ranked, scored{name: name, score: score})
		}
	}
	if len(ranked) == 0 {
		return nil
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

// similarity scores how close candidate is to target on a 0 to 1 scale. An
// exact case-insensitive match scores 1, a prefix match 0.9, everything
// else by normalized edit distance.
func similarity(target, candidate string) float64 {
	a := strings.ToLower(target)
	b := strings.ToLower(candidate)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	maxLen := max(len(a), len(b))
	return 1.0 - float64(editDistance(a, b))/float64(maxLen)
}

// editDistance is the Levenshtein distance between a and b, computed with
// two rolling rows.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
