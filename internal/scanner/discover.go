// Package scanner discovers MSBuild project files under a root directory
// and drives their extraction into metadata records.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// projectExt is the file extension that marks a project file.
const projectExt = ".csproj"

// DefaultSkipDirs are directory names excluded from traversal by default.
// Build output and vendored trees never hold authored project files.
var DefaultSkipDirs = []string{".git", "bin", "obj", "node_modules"}

// Discover walks root recursively and returns the absolute paths of all
// project files found, in traversal order. Directory names in skip are not
// descended into. When the walk fails partway, the paths enumerated up to
// that point are returned alongside the error.
func Discover(root string, skip map[string]bool) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != abs && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), projectExt) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
