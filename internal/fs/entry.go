package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kk-code-lab/rtree/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

// ErrNotADirectory is returned when children are requested from a non-directory.
var ErrNotADirectory = errors.New("not a directory")

// Entry represents a single file or directory on disk.
//
// An Entry holds only what the listing needs to filter and order siblings.
// Everything else is fetched on demand through Metadata.
type Entry struct {
	Name     string
	FullPath string
	// RelPath is FullPath relative to the parent of the listing root; empty
	// when the root itself has no parent.
	RelPath string

	rootParent  string
	dir         bool
	placeholder bool
}

// NameOptions controls how DisplayName decorates an entry name.
type NameOptions struct {
	FullPath bool
	Quote    bool
	Mode     textutil.NameMode
}

// NewRoot builds the entry for the directory a listing starts from.
func NewRoot(path string) *Entry {
	return NewEntry(path, filepath.Dir(path))
}

// NewEntry lstats path. A path that disappeared between listing and stat
// yields a placeholder entry instead of an error.
func NewEntry(path, rootParent string) *Entry {
	info, err := os.Lstat(path)
	if err != nil {
		return &Entry{FullPath: path, rootParent: rootParent, placeholder: true}
	}

	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "/"
	}

	return &Entry{
		Name:       name,
		FullPath:   path,
		RelPath:    relativeTo(rootParent, path),
		rootParent: rootParent,
		dir:        info.IsDir(),
	}
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return ""
	}
	return rel
}

// IsDir reports whether the entry is a directory. Symlinks are never directories.
func (e *Entry) IsDir() bool {
	return e.dir
}

// IsHidden reports whether the entry should be treated as hidden.
func (e *Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// IsPlaceholder reports whether the entry stands in for a path that vanished.
func (e *Entry) IsPlaceholder() bool {
	return e.placeholder
}

// Children lists the entries inside e, unfiltered and in directory order.
func (e *Entry) Children() ([]*Entry, error) {
	if e.placeholder || !e.dir {
		return nil, fmt.Errorf("list %s: %w", e.FullPath, ErrNotADirectory)
	}

	dir, err := os.Open(e.FullPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dir.Close()
	}()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", e.FullPath, err)
	}

	children := make([]*Entry, 0, len(names))
	for _, name := range names {
		children = append(children, NewEntry(filepath.Join(e.FullPath, name), e.rootParent))
	}
	return children, nil
}

// DisplayName returns the name as it should appear on the entry's line.
func (e *Entry) DisplayName(opts NameOptions) string {
	name := e.Name
	if opts.FullPath && e.RelPath != "" {
		name = e.RelPath
	}
	name = norm.NFC.String(name)

	if opts.Quote {
		return strconv.Quote(name)
	}
	return textutil.CleanName(name, opts.Mode)
}

// LinkTarget returns the destination of a symlink entry.
func (e *Entry) LinkTarget() (string, error) {
	return os.Readlink(e.FullPath)
}
