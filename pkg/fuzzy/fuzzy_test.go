package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   bool
	}{
		{"empty query matches anything", "", "anything", true},
		{"empty query matches empty target", "", "", true},
		{"subsequence across separator", "fc", "flow-code", true},
		{"exact prefix", "fl", "flow", true},
		{"exact match", "flow", "flow", true},
		{"case insensitive", "FL", "flow", true},
		{"case insensitive target", "fl", "FLOW", true},
		{"no overlap", "xyz", "abc", false},
		{"out of order", "fl", "leaf", false},
		{"query longer than target", "flows", "flow", false},
		{"non-empty query, empty target", "f", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.query, tt.target))
		})
	}
}

func TestScoreEmptyQuery(t *testing.T) {
	assert.Equal(t, 0, Score("", "anything"))
	assert.Equal(t, 0, Score("", ""))
}

func TestScoreNoMatchIsSentinel(t *testing.T) {
	// A partial match accrues score along the way; all of it must be
	// discarded when the query is not fully consumed.
	assert.Equal(t, -1, Score("fx", "flow"))
	assert.Equal(t, -1, Score("xyz", "abc"))
	assert.Equal(t, -1, Score("a", ""))
}

func TestScoreMatchImpliesNonNegative(t *testing.T) {
	targets := []string{"flow", "flow-code", "a/b/c", "nikivi/learn-anything"}
	for _, target := range targets {
		for _, query := range []string{"", "f", "fl", "nl", "zz"} {
			score := Score(query, target)
			if Match(query, target) {
				assert.GreaterOrEqual(t, score, 0, "query %q target %q", query, target)
			} else {
				assert.Equal(t, -1, score, "query %q target %q", query, target)
			}
		}
	}
}

func TestScoreArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   int
	}{
		// 20 start + 5 base
		{"single char at start", "f", "foo", 25},
		// 5 base only
		{"single char mid-word", "o", "foo", 5},
		// 15 separator + 5 base
		{"single char after separator", "b", "a_b", 20},
		// f: 20+5, l: run 1 -> 10, +5
		{"two char prefix run", "fl", "flow", 40},
		// a: 20+5, b: gap resets run, separator 15, +5
		{"gap match over separator", "ab", "a-b", 45},
		// a: 20+5, b: run 1 -> 10, +5; trailing chars score nothing
		{"prefix run with tail", "ab", "ab-x", 40},
		// runs compound: 25, then 10+5, then 20+5
		{"three char run", "abc", "abc", 65},
		// case folding changes nothing
		{"folded equals unfolded", "FL", "flow", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.query, tt.target))
		})
	}
}

func TestScorePrefixBeatsMidString(t *testing.T) {
	assert.Greater(t, Score("fl", "flow"), Score("fl", "aflow"))
}

func TestScoreConsecutiveBeatsScattered(t *testing.T) {
	// Same characters, same length, no separators involved: the unbroken
	// run must win.
	assert.Greater(t, Score("ab", "abx"), Score("ab", "axb"))
}

func TestScoreSeparatorBoundary(t *testing.T) {
	for _, sep := range []string{"/", "-", "_", " "} {
		target := "x" + sep + "b"
		assert.Equal(t, 20, Score("b", target), "separator %q", sep)
	}
	// Not a recognized separator
	assert.Equal(t, 5, Score("b", "x.b"))
}

func TestRankOrdersByDescendingScore(t *testing.T) {
	items := []string{"alfred", "a-flow", "flow"}
	Rank(items, "fl", func(s string) string { return s })
	assert.Equal(t, []string{"flow", "a-flow", "alfred"}, items)
}

func TestRankIsStable(t *testing.T) {
	// Both score identically for the query; input order must survive.
	items := []string{"abx", "aby"}
	Rank(items, "ab", func(s string) string { return s })
	assert.Equal(t, []string{"abx", "aby"}, items)

	items = []string{"aby", "abx"}
	Rank(items, "ab", func(s string) string { return s })
	assert.Equal(t, []string{"aby", "abx"}, items)
}

func TestRankEmptyQueryKeepsOrder(t *testing.T) {
	items := []string{"c", "a", "b"}
	Rank(items, "", func(s string) string { return s })
	assert.Equal(t, []string{"c", "a", "b"}, items)
}
