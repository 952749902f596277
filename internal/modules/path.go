package modules

import (
	"os"
	"path/filepath"
)

// PathEnv lists extra search roots, separated like PATH.
const PathEnv = "DJANGO_DEVELOP_PATH"

// SearchPath returns the roots settings modules are looked up in: the working
// directory, then the entries of DJANGO_DEVELOP_PATH, then extra. Empty and
// repeated entries are dropped; the first occurrence keeps its position.
func SearchPath(extra ...string) []string {
	var candidates []string
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, wd)
	}
	candidates = append(candidates, filepath.SplitList(os.Getenv(PathEnv))...)
	candidates = append(candidates, extra...)

	var roots []string
	seen := make(map[string]bool)
	for _, root := range candidates {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		if seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}
	return roots
}
