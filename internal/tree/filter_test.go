package tree

import (
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
)

func filtered(t *testing.T, root string, cfg *config.Config) []*fs.Entry {
	t.Helper()
	entries := Filter(children(t, root), cfg)
	sortByName(entries)
	return entries
}

func TestFilterHidden(t *testing.T) {
	root := buildTree(t, ".git/", ".env", "main.go")

	cfg := defaultConfig()
	assertNames(t, filtered(t, root, cfg), "main.go")

	cfg.ShowAll = true
	assertNames(t, filtered(t, root, cfg), ".env", ".git", "main.go")
}

func TestFilterDirsOnly(t *testing.T) {
	root := buildTree(t, "cmd/", "go.mod", "internal/")
	cfg := defaultConfig()
	cfg.DirsOnly = true
	assertNames(t, filtered(t, root, cfg), "cmd", "internal")
}

func TestFilterPatterns(t *testing.T) {
	root := buildTree(t, "app.log", "app.txt", "syslog")

	tests := []struct {
		name       string
		mode       config.PatternMode
		pattern    string
		ignoreCase bool
		want       []string
	}{
		{"include", config.PatternInclude, "log", false, []string{"app.log", "syslog"}},
		{"exclude", config.PatternExclude, "log", false, []string{"app.txt"}},
		{"case sensitive miss", config.PatternInclude, "LOG", false, nil},
		{"ignore case", config.PatternInclude, "LOG", true, []string{"app.log", "syslog"}},
		{"ignore case exclude", config.PatternExclude, "TXT", true, []string{"app.log", "syslog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.PatternMode = tt.mode
			cfg.Pattern = tt.pattern
			cfg.IgnoreCase = tt.ignoreCase
			assertNames(t, filtered(t, root, cfg), tt.want...)
		})
	}
}

func TestFilterDropsPlaceholders(t *testing.T) {
	root := buildTree(t, "kept")
	entries := append(children(t, root), fs.NewEntry(filepath.Join(root, "vanished"), root))

	cfg := defaultConfig()
	cfg.ShowAll = true
	assertNames(t, Filter(entries, cfg), "kept")
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	root := buildTree(t, ".a", "b", ".c", "d")
	entries := children(t, root)
	before := names(entries)

	_ = Filter(entries, defaultConfig())

	after := names(entries)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input slice changed: %q -> %q", before, after)
		}
	}
}
