// Package prompt renders the interactive shell prompt. The prompt is a
// line counter of the form "<N>: " where N counts read lines from zero;
// colour and bold styling are applied through a painter.Painter.
package prompt

import (
	"fmt"

	"minsh/internal/painter"
)

// Render returns the prompt string for line number n, styled by p. The
// caller owns the counter and advances it once per read line.
func Render(p painter.Painter, n int) string {
	return p.Paint(p.CounterBold, p.CounterColour, fmt.Sprintf("%d: ", n))
}
