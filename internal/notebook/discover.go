// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook locates notebook documents under a directory tree.
package notebook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/nbexport/pkg/types"
)

var (
	// ErrRootNotFound is returned when the search root does not exist.
	ErrRootNotFound = errors.New("source directory does not exist")
	// ErrNotDirectory is returned when the search root is not a directory.
	ErrNotDirectory = errors.New("source path is not a directory")
)

// DiscoverOptions controls which files Discover matches.
type DiscoverOptions struct {
	// Extension is the file suffix to match, including the dot.
	// Defaults to types.DefaultExtension.
	Extension string

	// ExcludeDirs are directory names (e.g. ".ipynb_checkpoints") or
	// root-relative paths whose subtrees are skipped.
	ExcludeDirs []string

	// Warnings, when set, receives a line for every unreadable directory
	// that was skipped.
	Warnings io.Writer
}

// Discover walks root recursively and returns the absolute paths of all
// regular files ending in opts.Extension, sorted lexicographically. An
// empty result is not an error. Subdirectories that cannot be read for
// lack of permission are skipped; the rest of the tree is still walked.
func Discover(root string, opts DiscoverOptions) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	ext := opts.Extension
	if ext == "" {
		ext = types.DefaultExtension
	}
	names, paths := splitExcludes(abs, opts.ExcludeDirs)

	var found []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == abs || !errors.Is(walkErr, fs.ErrPermission) {
				return walkErr
			}
			if opts.Warnings != nil {
				fmt.Fprintf(opts.Warnings, "warning: skipping %s: %v\n", path, walkErr)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != abs && excluded(path, d.Name(), names, paths) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Follow file symlinks only; linked directories are not walked.
			target, err := os.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				return nil
			}
		}
		if strings.HasSuffix(d.Name(), ext) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}

// splitExcludes separates bare directory names from root-relative paths.
func splitExcludes(root string, excludes []string) (map[string]bool, []string) {
	names := make(map[string]bool)
	var paths []string
	for _, x := range excludes {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		if !strings.ContainsRune(filepath.ToSlash(x), '/') && !filepath.IsAbs(x) {
			names[x] = true
			continue
		}
		if !filepath.IsAbs(x) {
			x = filepath.Join(root, x)
		}
		paths = append(paths, filepath.Clean(x))
	}
	return names, paths
}

func excluded(path, name string, names map[string]bool, paths []string) bool {
	if names[name] {
		return true
	}
	sep := string(filepath.Separator)
	for _, p := range paths {
		if path == p || strings.HasPrefix(path, p+sep) {
			return true
		}
	}
	return false
}
