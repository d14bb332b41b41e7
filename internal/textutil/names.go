package textutil

import (
	"strings"
	"unicode"
)

// NameMode selects how file names are made safe for terminal output.
type NameMode int

const (
	// NameSanitize replaces control characters and labels bidi/zero-width runes.
	NameSanitize NameMode = iota
	// NameQuestionMarks replaces every non-printable rune with '?'.
	NameQuestionMarks
	// NameVerbatim prints names exactly as stored on disk.
	NameVerbatim
)

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// CleanName prepares a file name for a single output line.
func CleanName(name string, mode NameMode) string {
	switch mode {
	case NameVerbatim:
		return name
	case NameQuestionMarks:
		return replaceNonPrintable(name)
	default:
		return sanitizeName(name)
	}
}

// sanitizeName replaces control characters so a crafted name cannot inject
// escape sequences or break the line structure of the listing.
func sanitizeName(name string) string {
	for _, r := range name {
		if requiresSanitization(r) {
			return rewrite(name, func(b *strings.Builder, r rune) {
				switch {
				case formattingRuneLabels[r] != "":
					b.WriteString(formattingRuneLabels[r])
				case r < 0x20 || r == 0x7f:
					b.WriteByte('?')
				default:
					b.WriteRune(r)
				}
			})
		}
	}
	return name
}

func replaceNonPrintable(name string) string {
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return rewrite(name, func(b *strings.Builder, r rune) {
				if unicode.IsPrint(r) {
					b.WriteRune(r)
					return
				}
				b.WriteByte('?')
			})
		}
	}
	return name
}

func rewrite(text string, emit func(*strings.Builder, rune)) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		emit(&b, r)
	}
	return b.String()
}

func requiresSanitization(r rune) bool {
	if _, ok := formattingRuneLabels[r]; ok {
		return true
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}
