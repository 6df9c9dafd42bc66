package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanStructured reads a curated two-level owner/repo layout (such as
// ~/repos) and returns every repository found, sorted ascending by
// display name. Exactly two directory levels are examined; there is no
// deeper descent. The noise-directory pruning from Scan does not apply
// here since the layout is assumed curated; only dot-prefixed owner and
// repo names are skipped. A repository qualifies if owner/repo/.git
// exists in any form. Display names are always "owner/repo".
func ScanStructured(root string) []Entry {
	var entries []Entry

	owners, err := os.ReadDir(root)
	if err != nil {
		return entries
	}

	for _, owner := range owners {
		if strings.HasPrefix(owner.Name(), ".") {
			continue
		}
		ownerPath := filepath.Join(root, owner.Name())
		if !isDir(ownerPath) {
			continue
		}

		repos, err := os.ReadDir(ownerPath)
		if err != nil {
			continue
		}

		for _, repo := range repos {
			if strings.HasPrefix(repo.Name(), ".") {
				continue
			}
			repoPath := filepath.Join(ownerPath, repo.Name())
			if !isDir(repoPath) {
				continue
			}

			if _, err := os.Stat(filepath.Join(repoPath, ".git")); err != nil {
				continue
			}

			entries = append(entries, Entry{
				Display: owner.Name() + "/" + repo.Name(),
				Path:    repoPath,
			})
		}
	}

	sortByDisplay(entries)
	return entries
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
