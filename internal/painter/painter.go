// Package painter provides functionality to render colored and styled
// text for the shell prompt. It supports colouring the line counter
// with optional bold formatting and can apply pre-defined themes.
package painter

import (
	"strings"

	"minsh/internal/config"
)

const (
	reset    = "\033[0m"
	makeBold = "\033[1m"
)

// Painter holds styling information for the shell prompt. A zero-value
// Painter renders plain, uncoloured text.
type Painter struct {
	CounterColour string // ANSI or Unicode escape code for the line counter
	CounterBold   bool   // Whether the counter should be bold
}

// NewPainter creates a new Painter based on the provided config.Prompt.
// If a theme is set in the config, it overrides the colour fields;
// otherwise colours are taken directly from the config.
func NewPainter(cfg config.Prompt) Painter {
	resolveTheme(&cfg)
	return Painter{
		CounterColour: resolveColor(cfg.CounterColour),
		CounterBold:   cfg.CounterColourBold,
	}
}

// resolveTheme applies a predefined theme to the provided Prompt config.
func resolveTheme(cfg *config.Prompt) {

	switch strings.ToLower(strings.TrimSpace(cfg.Theme)) {
	case "minsh":
		cfg.CounterColour = "green"
		cfg.CounterColourBold = false
	case "monokai":
		cfg.CounterColour = "\u001b[38;2;249;38;114m"
		cfg.CounterColourBold = true
	}

}

// resolveColor converts a colour name or escape sequence string into a
// valid ANSI/Unicode escape code. If the input is already an escape
// sequence, it is returned unchanged.
func resolveColor(colour string) string {

	colour = strings.TrimSpace(colour)
	if colour == "" {
		return ""
	}

	switch strings.ToLower(colour) {
	case "default":
		return "\u001b[39m"
	case "black":
		return "\033[30m"
	case "red":
		return "\033[31m"
	case "green":
		return "\033[32m"
	case "yellow":
		return "\033[33m"
	case "blue":
		return "\033[94m"
	case "magenta":
		return "\033[35m"
	case "cyan":
		return "\033[36m"
	case "white":
		return "\033[37m"
	default:
		return colour
	}

}

// Paint applies the provided bold and colour settings to the given text
// and returns the formatted string with ANSI escape sequences. Text
// stays untouched when no styling is requested.
func (p Painter) Paint(bold bool, colour string, text string) string {
	if !bold && colour == "" {
		return text
	}
	style := ""
	if bold {
		style = makeBold
	}
	return style + colour + text + reset
}
