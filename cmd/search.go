package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"nikiv.dev/flow/pkg/alfred"
	"nikiv.dev/flow/pkg/config"
	"nikiv.dev/flow/pkg/discovery"
	"nikiv.dev/flow/pkg/fuzzy"
)

// addSearchFlags registers the flags shared by the code and repos commands.
func addSearchFlags(fs *pflag.FlagSet) {
	fs.String("root", "", "root directory to scan (overrides config)")
	fs.Bool("refresh", false, "bypass the scan cache and rescan")
}

// runSearch is the shared discover, filter, rank, print pipeline behind
// the code and repos commands. It always emits a Script Filter document
// on stdout and exits zero: a missing root or an empty scan produce an
// alert item rather than an error, since a launcher query must always
// show something.
func runSearch(query, rootFlag string, mode discovery.Mode, refresh bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rawRoot := rootFlag
	configKey := "code.root"
	cacheName := "code.json"
	if mode == discovery.Structured {
		configKey = "repos.root"
		cacheName = "repos.json"
	}
	if rawRoot == "" {
		if mode == discovery.Structured {
			rawRoot = cfg.Repos.Root
		} else {
			rawRoot = cfg.Code.Root
		}
	}
	root := config.ExpandPath(rawRoot)

	if !isDir(root) {
		item := alfred.Alert(
			fmt.Sprintf("No directory found at %s", rawRoot),
			fmt.Sprintf("Check your %s setting", configKey),
		)
		return alfred.NewOutput([]alfred.Item{item}).Print()
	}

	engine := discovery.NewEngine(
		root,
		mode,
		filepath.Join(cfg.Discovery.CacheDir, cacheName),
		time.Duration(cfg.Discovery.CacheTTLHours)*time.Hour,
	)
	entries := engine.Entries(refresh)

	if len(entries) == 0 {
		return alfred.NewOutput([]alfred.Item{alfred.NoResults(rawRoot)}).Print()
	}

	return alfred.NewOutput(buildItems(entries, query, rawRoot, mode)).Print()
}

// buildItems filters entries against the query, wraps the survivors as
// Alfred items, and ranks them. Entries arrive lexicographically sorted;
// with no query that order is kept as-is, and with a query it survives
// score ties because the rank sort is stable.
func buildItems(entries []discovery.Entry, query, rawRoot string, mode discovery.Mode) []alfred.Item {
	items := make([]alfred.Item, 0, len(entries))
	for _, entry := range entries {
		if query != "" && !fuzzy.Match(query, entry.Display) {
			continue
		}
		item := alfred.Item{
			UID:          entry.Path,
			Title:        entry.Display,
			Arg:          entry.Path,
			Match:        entry.Display,
			Autocomplete: entry.Display,
			Icon:         alfred.FileIcon(entry.Path),
			QuicklookURL: entry.Path,
			Text:         &alfred.Text{Copy: rawRoot + "/" + entry.Display},
		}
		if mode == discovery.Unbounded {
			item.Type = "file"
		}
		items = append(items, item)
	}

	if query != "" {
		fuzzy.Rank(items, query, func(item alfred.Item) string { return item.Title })
	}
	return items
}
