package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
)

func defaultConfig() *config.Config {
	return &config.Config{
		SortName: true,
		Report:   true,
		Level:    config.Unlimited,
	}
}

// buildTree creates paths under a fresh root. Paths ending in "/" are directories.
func buildTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "root")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(p, "/")))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir parent of %s: %v", p, err)
		}
		if err := os.WriteFile(full, []byte(p), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return root
}

func children(t *testing.T, root string) []*fs.Entry {
	t.Helper()
	entries, err := fs.NewRoot(root).Children()
	if err != nil {
		t.Fatalf("Children(%s): %v", root, err)
	}
	return entries
}

func names(entries []*fs.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func assertNames(t *testing.T, got []*fs.Entry, want ...string) {
	t.Helper()
	gotNames := names(got)
	if strings.Join(gotNames, ",") != strings.Join(want, ",") {
		t.Fatalf("got %q, want %q", gotNames, want)
	}
}

type recordingRenderer struct {
	lines    []string
	onRender func(*fs.Entry)
}

func (r *recordingRenderer) Render(prefix string, entry *fs.Entry) error {
	if r.onRender != nil {
		r.onRender(entry)
	}
	r.lines = append(r.lines, prefix+entry.Name)
	return nil
}

func (r *recordingRenderer) output() string {
	return strings.Join(r.lines, "\n")
}
