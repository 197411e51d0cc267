// Package render turns generations into text and pixels.
package render

import "strings"

const (
	// OnGlyph is the default glyph for live cells.
	OnGlyph = '*'
	// OffGlyph is the default glyph for dead cells.
	OffGlyph = ' '
)

// Text renders a generation with spaces for '0' and asterisks for everything else.
func Text(gen string) string { return Glyphs(gen, OnGlyph, OffGlyph) }

// Glyphs renders a generation, substituting off for '0' and on for any other byte.
func Glyphs(gen string, on, off rune) string {
	var b strings.Builder
	b.Grow(len(gen))
	for i := 0; i < len(gen); i++ {
		if gen[i] == '0' {
			b.WriteRune(off)
			continue
		}
		b.WriteRune(on)
	}
	return b.String()
}
