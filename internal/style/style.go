package style

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styler colours report text. A zero Styler writes plain text.
type Styler struct {
	enabled bool
}

func New(enabled bool) *Styler {
	return &Styler{enabled: enabled}
}

// ForWriter resolves a --color mode against w. In auto mode colour is only
// used when w is a terminal and NO_COLOR is unset.
func ForWriter(w io.Writer, mode string) (*Styler, error) {
	switch mode {
	case ColorAlways:
		return New(true), nil
	case ColorNever:
		return New(false), nil
	case ColorAuto, "":
		f, ok := w.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return New(false), nil
		}
		return New(term.IsTerminal(int(f.Fd()))), nil
	default:
		return nil, fmt.Errorf("unsupported color mode %q: must be auto, always or never", mode)
	}
}

func (s *Styler) paint(text string, attrs ...color.Attribute) string {
	if s == nil || !s.enabled {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

func (s *Styler) Heading(text string) string { return s.paint(text, color.Bold, color.FgCyan) }
func (s *Styler) Banner(text string) string  { return s.paint(text, color.Bold, color.FgMagenta) }
func (s *Styler) Bold(text string) string    { return s.paint(text, color.Bold) }
func (s *Styler) Good(text string) string    { return s.paint(text, color.FgGreen) }
func (s *Styler) Warn(text string) string    { return s.paint(text, color.FgYellow) }
func (s *Styler) Bad(text string) string     { return s.paint(text, color.FgRed) }

// Rank colours a leaderboard line by placing: gold, silver, bronze.
func (s *Styler) Rank(index int, text string) string {
	switch index {
	case 0:
		return s.paint(text, color.FgGreen)
	case 1:
		return s.paint(text, color.FgYellow)
	case 2:
		return s.paint(text, color.FgCyan)
	default:
		return text
	}
}

// Check renders a boolean as a coloured tick or cross.
func (s *Styler) Check(ok bool) string {
	if ok {
		return s.Good("✓")
	}
	return s.Bad("✗")
}

// Cell truncates text to width display columns and pads it on the right.
// Model names may contain wide characters, so byte-based %-*s is not enough.
func Cell(text string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
}

// Pad right-pads text to at least width display columns without truncating.
func Pad(text string, width int) string {
	return runewidth.FillRight(text, width)
}
