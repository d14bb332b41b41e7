package tree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func walk(t *testing.T, root string, cfg *config.Config) (string, Counter) {
	t.Helper()
	r := &recordingRenderer{}
	counter, err := NewWalker(cfg, r, nil).Walk(fs.NewRoot(root))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return r.output(), counter
}

func assertCounts(t *testing.T, c Counter, wantDirs, wantFiles int) {
	t.Helper()
	dirs, files := c.Summary()
	if dirs != wantDirs || files != wantFiles {
		t.Fatalf("counts = (%d dirs, %d files), want (%d, %d)", dirs, files, wantDirs, wantFiles)
	}
}

func TestWalkDrawsConnectors(t *testing.T) {
	root := buildTree(t,
		"a/x.txt",
		"a/y/",
		"b.txt",
		"c/d/e.txt",
		".hidden",
	)

	got, counter := walk(t, root, defaultConfig())
	want := strings.Join([]string{
		"root",
		"├── a",
		"│   ├── x.txt",
		"│   └── y",
		"├── b.txt",
		"└── c",
		"    └── d",
		"        └── e.txt",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	assertCounts(t, counter, 4, 3)
}

func TestWalkNestedMiddleDirectories(t *testing.T) {
	root := buildTree(t,
		"a/b/c.txt",
		"a/b/d.txt",
		"a/z.txt",
		"m.txt",
	)

	got, _ := walk(t, root, defaultConfig())
	want := strings.Join([]string{
		"root",
		"├── a",
		"│   ├── b",
		"│   │   ├── c.txt",
		"│   │   └── d.txt",
		"│   └── z.txt",
		"└── m.txt",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWalkHiddenEntries(t *testing.T) {
	root := buildTree(t, ".config/app.yaml", ".env", "visible", "dir/.secret")

	got, _ := walk(t, root, defaultConfig())
	for _, line := range strings.Split(got, "\n")[1:] {
		name := line[strings.LastIndex(line, " ")+1:]
		if strings.HasPrefix(name, ".") {
			t.Fatalf("hidden entry printed without -a: %q", line)
		}
	}

	cfg := defaultConfig()
	cfg.ShowAll = true
	got, counter := walk(t, root, cfg)
	for _, name := range []string{".config", ".env", "visible", "dir", ".secret", "app.yaml"} {
		if !strings.Contains(got, name) {
			t.Fatalf("-a output missing %q:\n%s", name, got)
		}
	}
	assertCounts(t, counter, 2, 4)
}

func TestWalkEmptyAndFilteredDirectories(t *testing.T) {
	root := buildTree(t, "empty/", "onlyhidden/.x", "z")

	got, counter := walk(t, root, defaultConfig())
	want := strings.Join([]string{
		"root",
		"├── empty",
		"├── onlyhidden",
		"└── z",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	assertCounts(t, counter, 2, 1)
}

func TestWalkDepthLimit(t *testing.T) {
	root := buildTree(t, "a/b/c.txt", "d.txt")

	cfg := defaultConfig()
	cfg.Level = 1
	got, counter := walk(t, root, cfg)
	want := strings.Join([]string{
		"root",
		"├── a",
		"└── d.txt",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	assertCounts(t, counter, 1, 1)
}

func TestWalkNoIndentation(t *testing.T) {
	root := buildTree(t, "a/b.txt", "c.txt")

	cfg := defaultConfig()
	cfg.NoIndent = true
	got, _ := walk(t, root, cfg)
	if got != "root\na\nb.txt\nc.txt" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWalkASCIICharset(t *testing.T) {
	root := buildTree(t, "a/b.txt", "c.txt")

	cfg := defaultConfig()
	cfg.Charset = config.CharsetASCII
	got, _ := walk(t, root, cfg)
	want := "root\n|-- a\n|   `-- b.txt\n`-- c.txt"
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWalkIsRepeatable(t *testing.T) {
	root := buildTree(t, "a/b/c", "a/d", "e/", "f")
	cfg := defaultConfig()
	walker := NewWalker(cfg, &recordingRenderer{}, nil)

	first := &recordingRenderer{}
	walker.renderer = first
	c1, err := walker.Walk(fs.NewRoot(root))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	second := &recordingRenderer{}
	walker.renderer = second
	c2, err := walker.Walk(fs.NewRoot(root))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if first.output() != second.output() {
		t.Fatalf("outputs differ:\n%s\n---\n%s", first.output(), second.output())
	}
	if c1 != c2 {
		t.Fatalf("counters differ: %+v vs %+v", c1, c2)
	}
}

func TestWalkSkipsDirectoryThatVanishes(t *testing.T) {
	root := buildTree(t, "doomed/inner.txt", "keep/file.txt", "z.txt")

	core, logs := observer.New(zapcore.WarnLevel)
	r := &recordingRenderer{
		onRender: func(e *fs.Entry) {
			if e.Name == "doomed" {
				if err := os.RemoveAll(e.FullPath); err != nil {
					t.Fatalf("remove: %v", err)
				}
			}
		},
	}

	counter, err := NewWalker(defaultConfig(), r, zap.New(core)).Walk(fs.NewRoot(root))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := strings.Join([]string{
		"root",
		"├── doomed",
		"├── keep",
		"│   └── file.txt",
		"└── z.txt",
	}, "\n")
	if r.output() != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", r.output(), want)
	}
	assertCounts(t, counter, 2, 2)

	entries := logs.FilterMessage("skipping unreadable directory").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if path := entries[0].ContextMap()["path"]; path != filepath.Join(root, "doomed") {
		t.Fatalf("warning path = %v", path)
	}
}

func TestWalkSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := buildTree(t, "locked/secret/deep.txt", "open/a.txt", "z.txt")
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	got, counter := walk(t, root, defaultConfig())
	want := strings.Join([]string{
		"root",
		"├── locked",
		"├── open",
		"│   └── a.txt",
		"└── z.txt",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	assertCounts(t, counter, 2, 2)
}

type failingRenderer struct {
	failOn string
	calls  int
}

func (r *failingRenderer) Render(_ string, entry *fs.Entry) error {
	r.calls++
	if entry.Name == r.failOn {
		return errors.New("write failed")
	}
	return nil
}

func TestWalkStopsOnRenderError(t *testing.T) {
	root := buildTree(t, "a/b.txt", "c.txt", "d.txt")
	r := &failingRenderer{failOn: "b.txt"}

	_, err := NewWalker(defaultConfig(), r, nil).Walk(fs.NewRoot(root))
	if err == nil || err.Error() != "write failed" {
		t.Fatalf("Walk error = %v, want write failed", err)
	}
	if r.calls != 3 {
		t.Fatalf("renderer called %d times, want 3 (root, a, b.txt)", r.calls)
	}
}

func TestDescend(t *testing.T) {
	if descend(config.Unlimited) != config.Unlimited {
		t.Fatalf("unlimited budget must never reach zero")
	}
	if descend(2) != 1 || descend(1) != 0 {
		t.Fatalf("positive budgets must decrease by one")
	}
}

func TestWalkGitIgnore(t *testing.T) {
	root := buildTree(t,
		"app.log",
		"main.go",
		"build/out.bin",
		"src/keep.log",
		"src/lib.go",
		"src/tmp/x",
	)
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", ".gitignore"), []byte("!keep.log\n/tmp\n"), 0o644); err != nil {
		t.Fatalf("write nested .gitignore: %v", err)
	}

	cfg := defaultConfig()
	cfg.GitIgnore = true
	got, counter := walk(t, root, cfg)
	want := strings.Join([]string{
		"root",
		"├── main.go",
		"└── src",
		"    ├── keep.log",
		"    └── lib.go",
	}, "\n")
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
	assertCounts(t, counter, 1, 3)
}

func TestWalkGitIgnoreOffListsEverything(t *testing.T) {
	root := buildTree(t, "app.log")
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\n"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	got, _ := walk(t, root, defaultConfig())
	if got != "root\n└── app.log" {
		t.Fatalf("output = %q", got)
	}
}
