package alfred

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemJSONFieldNames(t *testing.T) {
	item := Item{
		UID:          "/p",
		Title:        "proj",
		Arg:          "/p",
		Match:        "proj",
		Autocomplete: "proj",
		Type:         "file",
		Icon:         FileIcon("/p"),
		QuicklookURL: "/p",
		Text:         &Text{Copy: "~/code/proj"},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// Field names are Alfred's schema, including the two renames.
	assert.Equal(t, "proj", raw["match"])
	assert.Equal(t, "file", raw["type"])
	assert.Equal(t, "/p", raw["quicklookurl"])
	assert.Equal(t, map[string]any{"type": "fileicon", "path": "/p"}, raw["icon"])
	assert.Equal(t, map[string]any{"copy": "~/code/proj"}, raw["text"])

	// Unset optionals are omitted, not null.
	assert.NotContains(t, raw, "subtitle")
	assert.NotContains(t, raw, "valid")
	assert.NotContains(t, raw, "mods")
}

func TestAlertIsInvalid(t *testing.T) {
	item := Alert("No directory found at ~/code", "Check your code.root setting")

	require.NotNil(t, item.Valid)
	assert.False(t, *item.Valid)
	require.NotNil(t, item.Icon)
	assert.Contains(t, item.Icon.Path, "AlertStopIcon")
}

func TestNoResults(t *testing.T) {
	item := NoResults("~/repos")

	assert.Equal(t, "No git repositories found", item.Title)
	assert.Equal(t, "in ~/repos", item.Subtitle)
	require.NotNil(t, item.Valid)
	assert.False(t, *item.Valid)
}

func TestMods(t *testing.T) {
	item := Item{Title: "proj"}
	item.CmdMod("/p", "Open in editor")
	item.AltMod("/p", "Open in terminal")

	require.NotNil(t, item.Mods)
	require.NotNil(t, item.Mods.Cmd)
	assert.Equal(t, "/p", item.Mods.Cmd.Arg)
	assert.Equal(t, "Open in editor", item.Mods.Cmd.Subtitle)
	require.NotNil(t, item.Mods.Alt)
	assert.Equal(t, "Open in terminal", item.Mods.Alt.Subtitle)
}

func TestIconHelpers(t *testing.T) {
	assert.Equal(t, &Icon{Path: "/img.png"}, PathIcon("/img.png"))
	assert.Equal(t, &Icon{Type: "fileicon", Path: "/p"}, FileIcon("/p"))
	assert.Equal(t, &Icon{Type: "filetype", Path: "public.folder"}, FiletypeIcon("public.folder"))
}
