package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/snakegrow/pkg/config"
	"github.com/trytobebee/snakegrow/pkg/sim"
)

const ansiReset = "\033[0m"

// TerminalRenderer handles terminal-based rendering of simulation steps
type TerminalRenderer struct {
	out    io.Writer
	buffer strings.Builder
	color  bool
}

// NewTerminalRenderer creates a renderer writing to out. When color is
// false the output carries no ANSI escape sequences.
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, color: color}
}

// colorName renders the color's name, wrapped in its ANSI code when enabled
func (r *TerminalRenderer) colorName(c sim.Color) string {
	if !r.color {
		return c.String()
	}
	return c.ANSI() + c.String() + ansiReset
}

// RenderInitial prints the snake's starting state, before any apples
func (r *TerminalRenderer) RenderInitial(s sim.Snake) {
	fmt.Fprintf(r.out, "  %s Initial: the snake is %d units long and %d units around, wearing %s.\n",
		config.CharHead, s.Length, s.Girth, r.colorName(s.Color))
}

// RenderStep prints one line for an eaten apple: the step number and the
// snake's new length, girth, and color
func (r *TerminalRenderer) RenderStep(rec sim.StepRecord) {
	c, ok := sim.ParseColor(rec.Snake.Color)
	name := rec.Snake.Color
	if ok {
		name = r.colorName(c)
	}
	fmt.Fprintf(r.out, "  🍎 Apple %d: the snake is now %d units long and %d units around, wearing %s.\n",
		rec.Step, rec.Snake.Length, rec.Snake.Girth, name)
}

// RenderArt draws the snake as girth rows of length body glyphs
func (r *TerminalRenderer) RenderArt(s sim.Snake) {
	r.buffer.Reset()

	body := strings.Repeat(config.CharBody, s.Length)
	for row := 0; row < s.Girth; row++ {
		r.buffer.WriteString("  ")
		if r.color {
			r.buffer.WriteString(s.Color.ANSI())
		}
		if row == 0 {
			r.buffer.WriteString(config.CharTail)
			r.buffer.WriteString(body)
			r.buffer.WriteString(config.CharHead)
		} else {
			r.buffer.WriteString(" ")
			r.buffer.WriteString(body)
		}
		if r.color {
			r.buffer.WriteString(ansiReset)
		}
		r.buffer.WriteString("\n")
	}
	r.buffer.WriteString("\n")

	fmt.Fprint(r.out, r.buffer.String())
}

// ShowCursor shows the cursor (call on exit from interactive mode)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on entering interactive mode)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}
