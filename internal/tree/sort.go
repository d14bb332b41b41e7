package tree

import (
	"slices"
	"strings"
	"time"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
)

// Sort orders siblings in place by running independent stable passes in a
// fixed order. Each pass decides the order except where it finds two entries
// equal, in which case the order left by the previous pass stands.
func Sort(entries []*fs.Entry, cfg *config.Config) {
	if cfg.Unsorted {
		return
	}
	if cfg.DirsFirst {
		slices.SortStableFunc(entries, compareDirsFirst)
	}
	if cfg.SortName {
		sortByName(entries)
	}
	if cfg.SortModTime {
		sortByTime(entries, (*fs.Entry).ModTime)
	}
	if cfg.SortChangeTime {
		sortByTime(entries, (*fs.Entry).ChangeTime)
	}
	if cfg.Reverse {
		slices.Reverse(entries)
	}
}

func compareDirsFirst(a, b *fs.Entry) int {
	switch {
	case a.IsDir() == b.IsDir():
		return 0
	case a.IsDir():
		return -1
	default:
		return 1
	}
}

func sortByName(entries []*fs.Entry) {
	slices.SortStableFunc(entries, func(a, b *fs.Entry) int {
		return compareNames(a.Name, b.Name)
	})
}

// compareNames orders names alphabetically; names differing only in case put
// the lowercase form first, so "a" < "b" < "B".
func compareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(b, a)
}

// sortByTime reads every timestamp once per pass so the comparator stays
// consistent even if the filesystem changes while sorting.
func sortByTime(entries []*fs.Entry, stamp func(*fs.Entry) time.Time) {
	stamps := make(map[*fs.Entry]time.Time, len(entries))
	for _, entry := range entries {
		stamps[entry] = stamp(entry)
	}
	slices.SortStableFunc(entries, func(a, b *fs.Entry) int {
		return stamps[a].Compare(stamps[b])
	})
}
