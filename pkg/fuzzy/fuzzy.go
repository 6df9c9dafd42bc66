// Package fuzzy implements the subsequence matching and scoring used to
// rank repository entries against a launcher query.
//
// Matching is an ordered-subsequence test, not substring containment:
// "fc" matches "flow-code". Scoring is deterministic and additive, so the
// resulting order is reproducible across runs. The exact bonus values are
// load-bearing; changing them changes the ordering users see.
package fuzzy

import (
	"sort"
	"strings"
)

// Bonus values awarded per matched character. A match at the start of the
// target outranks one after a separator, which outranks one mid-word, and
// unbroken runs compound.
const (
	baseBonus        = 5
	startBonus       = 20
	separatorBonus   = 15
	consecutiveBonus = 10
)

// Match reports whether every character of query appears in target in
// order, case-insensitively. Characters do not need to be contiguous.
// An empty query matches anything.
func Match(query, target string) bool {
	if query == "" {
		return true
	}
	q := []rune(strings.ToLower(query))
	qi := 0
	for _, c := range strings.ToLower(target) {
		if q[qi] == c {
			qi++
			if qi == len(q) {
				return true
			}
		}
	}
	return false
}

// Score rates how well query matches target; higher is better. An empty
// query scores 0. When query is not an ordered subsequence of target the
// result is -1 and any partially accrued score is discarded, so -1 is a
// reliable "no match" sentinel for callers.
func Score(query, target string) int {
	if query == "" {
		return 0
	}
	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(target))

	score := 0
	qi := 0
	lastMatch := -1
	consecutive := 0

	for i, c := range t {
		if qi >= len(q) || q[qi] != c {
			continue
		}
		qi++

		// Runs of adjacent matches compound: the second character of a
		// run earns 10, the third 20, and so on.
		if lastMatch >= 0 {
			if i == lastMatch+1 {
				consecutive++
				score += consecutive * consecutiveBonus
			} else {
				consecutive = 0
			}
		}

		if i == 0 {
			score += startBonus
		} else if isSeparator(t[i-1]) {
			score += separatorBonus
		}

		lastMatch = i
		score += baseBonus
	}

	if qi < len(q) {
		return -1
	}
	return score
}

// Rank sorts items in place by descending Score of key(item). The sort is
// stable: items with equal scores keep their relative input order, so a
// lexicographically pre-sorted input stays lexicographic within ties.
func Rank[T any](items []T, query string, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Score(query, key(items[i])) > Score(query, key(items[j]))
	})
}

func isSeparator(c rune) bool {
	return c == '/' || c == '-' || c == '_' || c == ' '
}
