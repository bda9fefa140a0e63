// Package canvas composites rendered blocks (windows, icons, menus) onto a
// fixed-size grid of terminal cells. Later draws cover earlier ones; blocks
// hanging off an edge are clipped.
package canvas

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// reset closes any style left open by the piece before it.
const reset = "\x1b[0m"

type Canvas struct {
	width  int
	height int
	lines  []string
}

// New returns a blank canvas of width x height cells.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, lines: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw places block with its top-left corner at cell (x, y). Each line of the
// block replaces the cells it covers; the rest of the row is kept.
func (c *Canvas) Draw(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= c.height {
			break
		}
		c.drawLine(row, x, line)
	}
}

func (c *Canvas) drawLine(row, x int, line string) {
	w := ansi.StringWidth(line)
	if w == 0 {
		return
	}
	start := x
	if start < 0 {
		line = ansi.Cut(line, -start, w)
		w += start
		start = 0
	}
	if start >= c.width || w <= 0 {
		return
	}
	if start+w > c.width {
		line = ansi.Cut(line, 0, c.width-start)
		w = c.width - start
	}

	cur := c.lines[row]
	left := ansi.Cut(cur, 0, start)
	right := ansi.Cut(cur, start+w, c.width)
	c.lines[row] = left + reset + line + reset + right
}

// Line returns one row of the canvas.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	return c.lines[row]
}

// String joins the rows into a frame.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
