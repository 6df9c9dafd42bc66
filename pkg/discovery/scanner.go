// Package discovery finds git repositories on disk for the launcher to
// present. Two traversal modes exist: Scan walks a tree to arbitrary
// depth, ScanStructured reads a fixed two-level owner/repo layout.
//
// Neither mode returns errors. A launcher query must always produce a
// result list, so unreadable directories are skipped and a partially
// scanned tree is acceptable.
package discovery

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// noiseDirs are basenames that never hold repositories worth surfacing:
// dependency caches, build output, vendored code. They are pruned, never
// descended into, which also avoids permission noise inside tool caches.
var noiseDirs = map[string]bool{
	"node_modules":  true,
	"target":        true,
	"dist":          true,
	"build":         true,
	"__pycache__":   true,
	".pytest_cache": true,
	".mypy_cache":   true,
	"venv":          true,
	".venv":         true,
	"vendor":        true,
	"Pods":          true,
	".cargo":        true,
	".rustup":       true,
	".next":         true,
	".turbo":        true,
	".cache":        true,
}

// shouldSkip reports whether a directory is pruned from the unbounded
// scan. Hidden directories are always skipped, which also covers .git.
func shouldSkip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return noiseDirs[name]
}

// Scan walks the tree under root and returns every git repository found,
// sorted ascending by display name. A repository is a directory holding a
// .git entry in either form: a directory, or the pointer file git writes
// for worktrees and submodules.
//
// The walk uses an explicit stack rather than recursion so deep trees
// cannot exhaust the call stack. Once a directory is classified as a
// repository it is treated as a leaf; nested repositories below it are
// not reported. Only directories below root are examined, never root
// itself. Duplicate paths (e.g. a cycle resolving back to a repository
// already seen) collapse to a single entry.
func Scan(root string) []Entry {
	var entries []Entry
	seen := make(map[string]bool)
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dirents, err := os.ReadDir(dir)
		if err != nil {
			slog.Debug("skipping unreadable directory", "dir", dir, "err", err)
			continue
		}

		for _, d := range dirents {
			if !d.IsDir() {
				continue
			}
			if shouldSkip(d.Name()) {
				continue
			}

			path := filepath.Join(dir, d.Name())
			if isRepoRoot(path) {
				display := path
				if rel, err := filepath.Rel(root, path); err == nil {
					display = rel
				}
				key := path
				if resolved, err := filepath.EvalSymlinks(path); err == nil {
					key = resolved
				}
				if !seen[key] {
					seen[key] = true
					entries = append(entries, Entry{Display: display, Path: path})
				}
				continue
			}

			stack = append(stack, path)
		}
	}

	sortByDisplay(entries)
	return entries
}

// isRepoRoot reports whether dir holds a .git marker, as a metadata
// directory or as a worktree/submodule pointer file.
func isRepoRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

func sortByDisplay(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Display < entries[j].Display
	})
}
