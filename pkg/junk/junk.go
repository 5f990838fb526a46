// Package junk recognises file names that operating systems and editors drop
// next to real content (thumbnail caches, resource forks, swap files).
package junk

import "regexp"

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^npm-debug\.log$`),
	regexp.MustCompile(`^\..*\.swp$`),
	regexp.MustCompile(`^\.DS_Store$`),
	regexp.MustCompile(`^\.AppleDouble$`),
	regexp.MustCompile(`^\.LSOverride$`),
	regexp.MustCompile(`^Icon\r$`),
	regexp.MustCompile(`^\._.*`),
	regexp.MustCompile(`^\.Spotlight-V100(?:$|/)`),
	regexp.MustCompile(`\.Trashes`),
	regexp.MustCompile(`^__MACOSX$`),
	regexp.MustCompile(`~$`),
	// windows treats these case-insensitively, so do we
	regexp.MustCompile(`(?i)^thumbs\.db$`),
	regexp.MustCompile(`(?i)^ehthumbs\.db$`),
	regexp.MustCompile(`(?i)^desktop\.ini$`),
	regexp.MustCompile(`@eaDir$`),
}

// Filter is the default artifact filter used by the pipeline.
type Filter struct{}

func (Filter) IsArtifact(name string) bool {
	return Is(name)
}

// Is reports whether name is a junk file name. It expects a base name,
// not a path.
func Is(name string) bool {
	for _, p := range patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// Not is the negation of Is, handy as a filter predicate.
func Not(name string) bool {
	return !Is(name)
}
