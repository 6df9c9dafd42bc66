package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikiv.dev/flow/pkg/discovery"
)

func entryFixture() []discovery.Entry {
	// Lexicographic order, as discovery produces.
	return []discovery.Entry{
		{Display: "a-flow", Path: "/home/u/code/a-flow"},
		{Display: "alfred", Path: "/home/u/code/alfred"},
		{Display: "flow", Path: "/home/u/code/flow"},
		{Display: "unrelated", Path: "/home/u/code/unrelated"},
	}
}

func TestBuildItemsEmptyQueryKeepsDiscoveryOrder(t *testing.T) {
	items := buildItems(entryFixture(), "", "~/code", discovery.Unbounded)

	require.Len(t, items, 4)
	assert.Equal(t, "a-flow", items[0].Title)
	assert.Equal(t, "alfred", items[1].Title)
	assert.Equal(t, "flow", items[2].Title)
	assert.Equal(t, "unrelated", items[3].Title)
}

func TestBuildItemsFiltersAndRanks(t *testing.T) {
	items := buildItems(entryFixture(), "fl", "~/code", discovery.Unbounded)

	// "alfred" and "unrelated" contain no ordered "fl" subsequence and
	// are filtered out; "flow" outranks "a-flow" on the prefix bonus.
	require.Len(t, items, 2)
	assert.Equal(t, "flow", items[0].Title)
	assert.Equal(t, "a-flow", items[1].Title)
}

func TestBuildItemsFields(t *testing.T) {
	items := buildItems(entryFixture()[:1], "", "~/code", discovery.Unbounded)

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "/home/u/code/a-flow", item.UID)
	assert.Equal(t, "/home/u/code/a-flow", item.Arg)
	assert.Equal(t, "a-flow", item.Match)
	assert.Equal(t, "a-flow", item.Autocomplete)
	assert.Equal(t, "file", item.Type)
	assert.Equal(t, "/home/u/code/a-flow", item.QuicklookURL)
	require.NotNil(t, item.Icon)
	assert.Equal(t, "fileicon", item.Icon.Type)
	require.NotNil(t, item.Text)
	assert.Equal(t, "~/code/a-flow", item.Text.Copy)
}

func TestBuildItemsStructuredModeHasNoFileType(t *testing.T) {
	entries := []discovery.Entry{{Display: "acme/widgets", Path: "/home/u/repos/acme/widgets"}}
	items := buildItems(entries, "", "~/repos", discovery.Structured)

	require.Len(t, items, 1)
	assert.Empty(t, items[0].Type)
	assert.Equal(t, "~/repos/acme/widgets", items[0].Text.Copy)
}

func TestBuildItemsRankingIsStable(t *testing.T) {
	entries := []discovery.Entry{
		{Display: "proj-one", Path: "/p/proj-one"},
		{Display: "proj-two", Path: "/p/proj-two"},
	}
	// Both score identically for this query; input order must survive.
	items := buildItems(entries, "proj", "~/code", discovery.Unbounded)

	require.Len(t, items, 2)
	assert.Equal(t, "proj-one", items[0].Title)
	assert.Equal(t, "proj-two", items[1].Title)
}

func TestBuildItemsNoMatches(t *testing.T) {
	items := buildItems(entryFixture(), "zzz", "~/code", discovery.Unbounded)
	assert.Empty(t, items)
}
