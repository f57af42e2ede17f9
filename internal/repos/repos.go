// Package repos enumerates the git checkouts kept under a single root
// directory.
package repos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrRootMissing indicates the configured root directory does not exist.
var ErrRootMissing = errors.New("repository root not found")

// Repo is one checkout directly under the root.
type Repo struct {
	Name string
	Path string
}

// List returns the immediate subdirectories of root that contain a .git
// entry, sorted by name.
func List(root string) ([]Repo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootMissing, root)
		}
		return nil, err
	}
	var result []Repo
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isDir(path) || !isCheckout(path) {
			continue
		}
		result = append(result, Repo{Name: entry.Name(), Path: path})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Names returns the names of repos in order.
func Names(repos []Repo) []string {
	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.Name
	}
	return names
}

// Find returns the repo with exactly the given name.
func Find(repos []Repo, name string) (Repo, bool) {
	for _, r := range repos {
		if r.Name == name {
			return r, true
		}
	}
	return Repo{}, false
}

// RootExists reports whether root is an existing directory.
func RootExists(root string) bool {
	return isDir(root)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// isCheckout accepts both a .git directory and the .git file used by
// worktrees and submodules.
func isCheckout(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
