// Package tree walks a directory depth-first and drives the connector state
// for each printed entry.
package tree

import (
	"path/filepath"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"github.com/kk-code-lab/rtree/internal/ignore"
	"go.uber.org/zap"
)

// Renderer prints one entry line.
type Renderer interface {
	Render(prefix string, entry *fs.Entry) error
}

// Walker renders a directory tree.
type Walker struct {
	cfg      *config.Config
	renderer Renderer
	logger   *zap.Logger
}

// NewWalker creates a walker. A nil logger discards diagnostics.
func NewWalker(cfg *config.Config, renderer Renderer, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{cfg: cfg, renderer: renderer, logger: logger}
}

// Walk prints root and everything below it. Unreadable directories are
// skipped; only render failures abort the walk.
func (w *Walker) Walk(root *fs.Entry) (Counter, error) {
	mode := ModeTree
	if w.cfg.NoIndent {
		mode = ModeNone
	}
	glyphs := GlyphsFor(w.cfg.Charset)
	run := &traversal{
		Walker:  w,
		root:    root.FullPath,
		prefix:  NewPrefix(mode, glyphs),
		counter: &Counter{},
	}

	if err := w.renderer.Render(run.prefix.String(), root); err != nil {
		return *run.counter, err
	}

	var rules *ignore.Matcher
	if w.cfg.GitIgnore {
		var err error
		if rules, err = ignore.LoadRoot(root.FullPath); err != nil {
			w.logger.Warn("ignoring unreadable ignore rules", zap.Error(err))
		}
	}

	run.prefix.SetRoot(glyphs.Branch)
	err := run.walkDir(root, w.cfg.Level, rules)
	return *run.counter, err
}

// traversal is the state of a single Walk call.
type traversal struct {
	*Walker
	root    string
	prefix  *Prefix
	counter *Counter
}

func (w *traversal) walkDir(dir *fs.Entry, budget int, rules *ignore.Matcher) error {
	if budget == 0 {
		return nil
	}

	children, err := dir.Children()
	if err != nil {
		w.logger.Warn("skipping unreadable directory",
			zap.String("path", dir.FullPath),
			zap.Error(err))
		return nil
	}

	children = Filter(children, w.cfg)
	if w.cfg.GitIgnore {
		rules = w.loadRules(dir, rules)
		children = w.dropIgnored(children, rules)
	}
	Sort(children, w.cfg)

	n := len(children)
	for i, child := range children {
		pos := i + 1
		w.prefix.EnterSibling(pos == 1, pos == n, false)
		if err := w.renderer.Render(w.prefix.String(), child); err != nil {
			return err
		}
		w.counter.Tally(child.IsDir())

		if !child.IsDir() {
			continue
		}
		w.prefix.EnterSibling(false, pos == n, true)
		if err := w.walkDir(child, descend(budget), rules); err != nil {
			return err
		}
		w.prefix.LeaveDirectory(pos+1 == n)
	}
	return nil
}

// loadRules extends rules with dir's own .gitignore. The root's file is
// already part of the rules LoadRoot returned.
func (w *traversal) loadRules(dir *fs.Entry, rules *ignore.Matcher) *ignore.Matcher {
	if dir.FullPath == w.root {
		return rules
	}
	loaded, err := ignore.LoadDir(rules, dir.FullPath, w.rel(dir))
	if err != nil {
		w.logger.Warn("ignoring unreadable ignore rules",
			zap.String("path", dir.FullPath),
			zap.Error(err))
	}
	return loaded
}

func (w *traversal) dropIgnored(entries []*fs.Entry, rules *ignore.Matcher) []*fs.Entry {
	kept := entries[:0]
	for _, entry := range entries {
		if !rules.Match(w.rel(entry), entry.IsDir()) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// rel returns entry's path relative to the walk root.
func (w *traversal) rel(entry *fs.Entry) string {
	rel, err := filepath.Rel(w.root, entry.FullPath)
	if err != nil {
		return entry.Name
	}
	return rel
}

// descend spends one level of a positive budget; config.Unlimited stays put.
func descend(budget int) int {
	if budget > 0 {
		return budget - 1
	}
	return budget
}
