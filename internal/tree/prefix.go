package tree

import (
	"strings"

	"github.com/kk-code-lab/rtree/internal/config"
)

// Mode selects whether a Prefix draws anything at all.
type Mode int

const (
	// ModeNone draws no indentation; every operation is a no-op.
	ModeNone Mode = iota
	// ModeTree draws connector lines.
	ModeTree
)

// Glyphs are the four fixed connector segments, each four columns wide.
type Glyphs struct {
	Blank      string
	Vertical   string
	Branch     string
	LastBranch string
}

var (
	UTF8Glyphs = Glyphs{
		Blank:      "    ",
		Vertical:   "│   ",
		Branch:     "├── ",
		LastBranch: "└── ",
	}
	ASCIIGlyphs = Glyphs{
		Blank:      "    ",
		Vertical:   "|   ",
		Branch:     "|-- ",
		LastBranch: "`-- ",
	}
)

// GlyphsFor returns the connector set for a charset.
func GlyphsFor(charset config.Charset) Glyphs {
	if charset == config.CharsetASCII {
		return ASCIIGlyphs
	}
	return UTF8Glyphs
}

// Prefix is the connector state drawn before each entry. It holds one segment
// per ancestor level; while a directory is open it holds one extra provisional
// segment for that directory's next child.
type Prefix struct {
	mode     Mode
	glyphs   Glyphs
	segments []string
}

// NewPrefix returns an empty prefix.
func NewPrefix(mode Mode, glyphs Glyphs) *Prefix {
	return &Prefix{mode: mode, glyphs: glyphs}
}

// SetRoot pushes the segment used by the root's children.
func (p *Prefix) SetRoot(marker string) {
	switch p.mode {
	case ModeNone:
	case ModeTree:
		p.push(marker)
	}
}

// EnterSibling prepares the prefix for a child about to be drawn, or, with
// dir set, for descending into a directory that was just drawn.
func (p *Prefix) EnterSibling(first, last, dir bool) {
	switch p.mode {
	case ModeNone:
	case ModeTree:
		switch {
		case dir:
			p.pop()
			if last {
				p.push(p.glyphs.Blank, p.glyphs.LastBranch)
			} else {
				p.push(p.glyphs.Vertical, p.glyphs.Branch)
			}
		case last:
			p.replaceLast(p.glyphs.LastBranch)
		case first:
			p.replaceLast(p.glyphs.Branch)
		}
	}
}

// LeaveDirectory undoes the matching EnterSibling(..., true) once the
// directory's subtree is complete. nextIsLast tells whether the directory's
// following sibling is the last one.
func (p *Prefix) LeaveDirectory(nextIsLast bool) {
	switch p.mode {
	case ModeNone:
	case ModeTree:
		p.pop()
		p.pop()
		if nextIsLast {
			p.push(p.glyphs.LastBranch)
		} else {
			p.push(p.glyphs.Branch)
		}
	}
}

// Depth is the number of segments currently held.
func (p *Prefix) Depth() int {
	return len(p.segments)
}

func (p *Prefix) String() string {
	switch p.mode {
	case ModeTree:
		return strings.Join(p.segments, "")
	default:
		return ""
	}
}

func (p *Prefix) push(segments ...string) {
	p.segments = append(p.segments, segments...)
}

func (p *Prefix) pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

func (p *Prefix) replaceLast(segment string) {
	p.pop()
	p.push(segment)
}
