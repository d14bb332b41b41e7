// Package render prints one listing line per entry.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"github.com/kk-code-lab/rtree/internal/textutil"
)

// Renderer writes entries as
// <prefix>[<attributes>] <colour><name><reset><classifier>[ -> target].
type Renderer struct {
	w      io.Writer
	cfg    *config.Config
	theme  ColorTheme
	owners *ownerCache
	names  fs.NameOptions
}

// New creates a renderer writing to w.
func New(w io.Writer, cfg *config.Config) *Renderer {
	return &Renderer{
		w:      w,
		cfg:    cfg,
		theme:  NewColorTheme(cfg.Palette),
		owners: newOwnerCache(),
		names: fs.NameOptions{
			FullPath: cfg.FullPath,
			Quote:    cfg.Quote,
			Mode:     cfg.NameMode,
		},
	}
}

// Render writes the line for entry.
func (r *Renderer) Render(prefix string, entry *fs.Entry) error {
	md, mdErr := entry.Metadata()

	var b strings.Builder
	b.WriteString(prefix)

	if r.cfg.Attrs.Any() {
		b.WriteByte('[')
		b.WriteString(r.attributes(md, mdErr))
		b.WriteString("] ")
	}

	name := entry.DisplayName(r.names)
	if seq := r.colorFor(entry, md, mdErr); seq != "" {
		b.WriteString(seq)
		b.WriteString(name)
		b.WriteString(resetSequence)
	} else {
		b.WriteString(name)
	}

	isLink := mdErr == nil && md.Mode&os.ModeSymlink != 0
	if r.cfg.Classify && !isLink {
		b.WriteString(classifier(entry, md, mdErr))
	}
	if isLink {
		if target, err := entry.LinkTarget(); err == nil {
			b.WriteString(" -> ")
			b.WriteString(textutil.CleanName(target, r.cfg.NameMode))
		}
	}

	b.WriteByte('\n')
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) colorFor(entry *fs.Entry, md fs.Metadata, mdErr error) string {
	if !r.cfg.Color {
		return ""
	}
	switch {
	case entry.IsDir():
		return escape(r.theme.DirectoryFg)
	case mdErr != nil:
		return ""
	case md.Mode&os.ModeSymlink != 0:
		return escape(r.theme.SymlinkFg)
	case md.IsExecutable():
		return escape(r.theme.ExecutableFg)
	}
	return ""
}

func classifier(entry *fs.Entry, md fs.Metadata, mdErr error) string {
	switch {
	case entry.IsDir():
		return "/"
	case mdErr != nil:
		return ""
	case md.Mode&os.ModeNamedPipe != 0:
		return "|"
	case md.Mode&os.ModeSocket != 0:
		return "="
	case md.IsExecutable():
		return "*"
	}
	return ""
}
