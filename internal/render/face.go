package render

import (
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/frenchdeck/internal/card"
)

const (
	faceWidth  = 11
	faceHeight = 7
)

// Face draws c as a small boxed card, one string per line
func (p *Printer) Face(c card.Card) []string {
	inner := faceWidth - 2
	short := c.Short()
	pad := inner - utf8.RuneCountInString(short)

	lines := make([]string, 0, faceHeight)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	lines = append(lines, "│"+p.Paint(c.Suit, short)+strings.Repeat(" ", pad)+"│")

	middle := (faceHeight - 2) / 2
	for i := 2; i < faceHeight-2; i++ {
		if i == middle+1 {
			symbol := strings.TrimPrefix(short, c.Rank)
			left := (inner - 1) / 2
			lines = append(lines, "│"+strings.Repeat(" ", left)+p.Paint(c.Suit, symbol)+strings.Repeat(" ", inner-left-1)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", inner)+"│")
	}

	lines = append(lines, "│"+strings.Repeat(" ", pad)+p.Paint(c.Suit, short)+"│")
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return lines
}

// VisibleWidth returns the number of runes in s, ignoring ANSI escapes
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
