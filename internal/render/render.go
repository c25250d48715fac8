package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/config"
)

var namedAttributes = map[string]colorize.Attribute{
	"black":   colorize.FgBlack,
	"red":     colorize.FgRed,
	"green":   colorize.FgGreen,
	"yellow":  colorize.FgYellow,
	"blue":    colorize.FgBlue,
	"magenta": colorize.FgMagenta,
	"cyan":    colorize.FgCyan,
	"white":   colorize.FgWhite,
}

// Printer writes cards one per line
type Printer struct {
	w      io.Writer
	format string
	paint  map[string]func(string) string
	label  *colorize.Color
	warn   *colorize.Color
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewPrinter creates a printer for cfg. Colour is used when the mode is
// "always", or "auto" and w is a terminal.
func NewPrinter(w io.Writer, cfg *config.Config) (*Printer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Printer{
		w:      w,
		format: cfg.Format,
		paint:  make(map[string]func(string) string),
		label:  colorize.New(colorize.FgCyan),
		warn:   colorize.New(colorize.FgYellow),
	}

	useColor := cfg.Color == config.ColorAlways || (cfg.Color == config.ColorAuto && IsTerminal(w))
	if useColor {
		p.label.EnableColor()
		p.warn.EnableColor()
	} else {
		p.label.DisableColor()
		p.warn.DisableColor()
	}

	if !useColor || cfg.Format == config.FormatJSON {
		return p, nil
	}

	for suit, name := range cfg.SuitColors {
		paint, err := painter(name)
		if err != nil {
			return nil, err
		}
		if paint != nil {
			p.paint[suit] = paint
		}
	}

	return p, nil
}

// painter returns a function colouring text with a named or #rrggbb colour,
// or nil for an empty colour.
func painter(name string) (func(string) string, error) {
	if name == "" {
		return nil, nil
	}

	if attr, ok := namedAttributes[strings.ToLower(name)]; ok {
		c := colorize.New(attr)
		c.EnableColor()
		return func(s string) string { return c.Sprint(s) }, nil
	}

	hex, err := colorful.Hex(name)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", name)
	}
	r, g, b := hex.RGB255()
	return func(s string) string {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}, nil
}

// Paint colours s with the colour configured for suit
func (p *Printer) Paint(suit, s string) string {
	if paint, ok := p.paint[suit]; ok {
		return paint(s)
	}
	return s
}

// Label colours a field name, such as the labels printed by show
func (p *Printer) Label(s string) string {
	return p.label.Sprint(s)
}

// Warn colours a warning heading
func (p *Printer) Warn(s string) string {
	return p.warn.Sprint(s)
}

// Format returns the textual form of c in the printer's format
func (p *Printer) Format(c card.Card) (string, error) {
	switch p.format {
	case config.FormatShort:
		return p.Paint(c.Suit, c.Short()), nil
	case config.FormatJSON:
		data, err := json.Marshal(c)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return fmt.Sprintf("Card(rank='%s', suit='%s')", c.Rank, p.Paint(c.Suit, c.Suit)), nil
	}
}

// Print writes each card on its own line
func (p *Printer) Print(cards ...card.Card) error {
	for _, c := range cards {
		line, err := p.Format(c)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintKeyed writes each card prefixed with its key and a tab
func (p *Printer) PrintKeyed(cards []card.Card, key func(card.Card) int) error {
	for _, c := range cards {
		line, err := p.Format(c)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "%d\t%s\n", key(c), line); err != nil {
			return err
		}
	}
	return nil
}
