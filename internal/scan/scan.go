package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// ErrDirNotFound marks a channel pattern that resolved to zero or to more
// than one subdirectory.
var ErrDirNotFound = errors.New("directory not found")

// DirByPattern resolves a channel root: it matches the immediate
// subdirectories of base against the glob pattern and returns the single
// hit. Zero hits or multiple hits both fail with ErrDirNotFound, since
// either way there is no unambiguous channel directory. With caseSensitive
// unset, pattern and directory names are case-folded before matching.
func DirByPattern(base, pattern string, caseSensitive bool) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("read base directory %s: %w", base, err)
	}

	fold := cases.Fold()
	matchPattern := pattern
	if !caseSensitive {
		matchPattern = fold.String(pattern)
	}

	var matches []string
	for _, entry := range entries {
		path := filepath.Join(base, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("inspect %s: %w", path, err)
		}
		if !info.IsDir() {
			continue
		}
		name := entry.Name()
		if !caseSensitive {
			name = fold.String(name)
		}
		ok, err := filepath.Match(matchPattern, name)
		if err != nil {
			return "", fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%w: no directory matching %q in %s", ErrDirNotFound, pattern, base)
	default:
		return "", fmt.Errorf("%w: %d directories matching %q in %s", ErrDirNotFound, len(matches), pattern, base)
	}
}

// Files enumerates the files below root whose name carries the given
// extension, recursing into subdirectories and following symbolic links.
// The tree is assumed to be acyclic; a symlink loop under root is not
// detected. The extension match is case sensitive. Directories whose base
// name is in exclude are skipped at any depth; a root with no matching
// files yields an empty result, not an error.
func Files(root, ext string, exclude ...string) ([]string, error) {
	suffix := "." + strings.TrimPrefix(ext, ".")
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var files []string
	if err := walk(root, suffix, skip, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walk(dir, suffix string, skip map[string]struct{}, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// Stat, not Lstat: symlinked directories and files are followed.
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", path, err)
		}
		if info.IsDir() {
			if _, ok := skip[entry.Name()]; ok {
				continue
			}
			if err := walk(path, suffix, skip, files); err != nil {
				return err
			}
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			*files = append(*files, path)
		}
	}
	return nil
}
