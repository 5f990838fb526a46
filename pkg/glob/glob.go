// Package glob expands path specifiers into the regular files they name.
//
// Patterns use doublestar syntax (`**` crosses directories). A pattern that
// starts with `!` removes whatever it matches from the final list, so
//
//	[]string{"assets/**/*.png", "!assets/vendor/**"}
//
// yields every png under assets except the vendored ones.
package glob

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolver is the default glob resolver used by the pipeline.
type Resolver struct{}

func (Resolver) Resolve(patterns []string) ([]string, error) {
	return Files(patterns)
}

// Files expands patterns in order, keeping only regular files. Patterns that
// match nothing contribute nothing. Duplicates keep their first position.
func Files(patterns []string) ([]string, error) {
	var positive, negative []string
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			negative = append(negative, absPattern(strings.TrimPrefix(p, "!")))
			continue
		}
		positive = append(positive, p)
	}

	seen := map[string]bool{}
	files := []string{}
	for _, pattern := range positive {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(negative, m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}

// excluded compares absolute forms so a relative negation still applies to
// matches of an absolute pattern and the other way round.
func excluded(negative []string, path string) bool {
	path = absPattern(path)
	for _, n := range negative {
		if ok, _ := doublestar.PathMatch(n, path); ok {
			return true
		}
	}
	return false
}

func absPattern(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// Exclude returns patterns with a negation added for everything under dir.
func Exclude(patterns []string, dir string) []string {
	out := append([]string(nil), patterns...)
	return append(out, "!"+filepath.Join(dir, "**"))
}

// Base returns the static directory prefix of pattern, the part before the
// first meta character. Watchers use it to know which directory to poll.
func Base(pattern string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(strings.TrimPrefix(pattern, "!")))
	return filepath.FromSlash(base)
}
