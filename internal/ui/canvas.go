package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// cell holds one terminal column. A wide rune occupies its cell and leaves
// the next one as a continuation with empty text.
type cell struct {
	text  string
	style *lipgloss.Style
	cont  bool
}

// canvas composes overlapping, individually styled segments into rows.
// Later writes win, which is how the panel and dropdowns float over the body.
type canvas struct {
	width int
	rows  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width}
	for i := 0; i < height; i++ {
		c.rows = append(c.rows, c.blankRow())
	}
	return c
}

func (c *canvas) blankRow() []cell {
	row := make([]cell, c.width)
	for i := range row {
		row[i] = cell{text: " "}
	}
	return row
}

func (c *canvas) height() int {
	return len(c.rows)
}

func (c *canvas) ensureRow(y int) bool {
	if y < 0 {
		return false
	}
	for len(c.rows) <= y {
		c.rows = append(c.rows, c.blankRow())
	}
	return true
}

// put writes plain text starting at (x, y), clipped to the canvas width.
func (c *canvas) put(x, y int, text string, style *lipgloss.Style) {
	if !c.ensureRow(y) {
		return
	}
	row := c.rows[y]
	for _, r := range text {
		if unicode.IsControl(r) {
			r = ' '
		}
		w := ansi.StringWidth(string(r))
		if w == 0 {
			if x > 0 && x-1 < c.width && !row[x-1].cont {
				row[x-1].text += string(r)
			}
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > c.width {
			for ; x < c.width; x++ {
				c.set(row, x, cell{text: " ", style: style})
			}
			return
		}
		c.set(row, x, cell{text: string(r), style: style})
		if w == 2 {
			c.set(row, x+1, cell{style: style, cont: true})
		}
		x += w
	}
}

// fill paints w blank cells with style.
func (c *canvas) fill(x, y, w int, style *lipgloss.Style) {
	if w <= 0 {
		return
	}
	c.put(x, y, strings.Repeat(" ", w), style)
}

func (c *canvas) set(row []cell, x int, next cell) {
	if x < 0 || x >= len(row) {
		return
	}
	// Overwriting half of a wide rune blanks the other half.
	if row[x].cont && x > 0 && !next.cont {
		row[x-1] = cell{text: " ", style: row[x-1].style}
	}
	if !row[x].cont && x+1 < len(row) && row[x+1].cont {
		row[x+1] = cell{text: " ", style: row[x+1].style}
	}
	row[x] = next
}

func (c *canvas) render() string {
	out := make([]string, len(c.rows))
	for y, row := range c.rows {
		end := len(row)
		for end > 0 && row[end-1].style == nil && row[end-1].text == " " {
			end--
		}
		var b strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				b.WriteString(runStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row[:end] {
			if cl.cont {
				continue
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}
