package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rtree/internal/config"
)

const resetSequence = "\x1b[0m"

// ColorTheme defines the colours used for entry names.
type ColorTheme struct {
	DirectoryFg  tcell.Color
	SymlinkFg    tcell.Color
	ExecutableFg tcell.Color
}

// NewColorTheme resolves palette names (e.g. "navy", "lime", "#ff8800").
// Unknown names resolve to tcell.ColorDefault and leave the name uncoloured.
func NewColorTheme(p config.Palette) ColorTheme {
	return ColorTheme{
		DirectoryFg:  tcell.GetColor(p.Dir),
		SymlinkFg:    tcell.GetColor(p.Link),
		ExecutableFg: tcell.GetColor(p.Exec),
	}
}

// escape returns the SGR sequence selecting c as a bold foreground colour,
// or "" for the default colour.
func escape(c tcell.Color) string {
	if !c.Valid() {
		return ""
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm", r, g, b)
	}

	index := int(c - tcell.ColorValid)
	switch {
	case index < 8:
		return fmt.Sprintf("\x1b[1;%dm", 30+index)
	case index < 16:
		return fmt.Sprintf("\x1b[1;%dm", 90+index-8)
	default:
		return fmt.Sprintf("\x1b[1;38;5;%dm", index)
	}
}
