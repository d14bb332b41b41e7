package tree

import (
	"strings"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"golang.org/x/text/cases"
)

// Filter returns the entries that survive the listing options, preserving order.
// Placeholders never survive.
func Filter(entries []*fs.Entry, cfg *config.Config) []*fs.Entry {
	match := patternMatcher(cfg)
	kept := entries[:0:0]
	for _, entry := range entries {
		if visible(entry, cfg) && match(entry.Name) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func visible(entry *fs.Entry, cfg *config.Config) bool {
	switch {
	case entry.IsPlaceholder():
		return false
	case entry.IsHidden() && !cfg.ShowAll:
		return false
	case cfg.DirsOnly && !entry.IsDir():
		return false
	}
	return true
}

func patternMatcher(cfg *config.Config) func(string) bool {
	if cfg.PatternMode == config.PatternNone {
		return func(string) bool { return true }
	}

	pattern := cfg.Pattern
	normalize := func(s string) string { return s }
	if cfg.IgnoreCase {
		folder := cases.Fold()
		normalize = folder.String
		pattern = normalize(pattern)
	}

	include := cfg.PatternMode == config.PatternInclude
	return func(name string) bool {
		return strings.Contains(normalize(name), pattern) == include
	}
}
