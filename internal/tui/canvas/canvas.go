// Package canvas implements imui.Surface on an in-memory cell grid that is
// turned into a styled string once per frame.
package canvas

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/dolist/internal/tui/imui"
)

type cell struct {
	r   rune
	e   imui.Emphasis
	set bool
}

// Canvas is a fixed-size grid. A zero width or height leaves that dimension
// unbounded. Writes falling outside the grid are dropped.
type Canvas struct {
	width     int
	height    int
	rows      [][]cell
	row, col  int
	regular   lipgloss.Style
	highlight lipgloss.Style
}

// New returns an empty canvas of the given size drawing with the given
// styles for regular and highlighted text.
func New(width, height int, regular, highlight lipgloss.Style) *Canvas {
	return &Canvas{
		width:     width,
		height:    height,
		regular:   regular,
		highlight: highlight,
	}
}

// Clear erases all cells and homes the write cursor.
func (c *Canvas) Clear() {
	c.rows = nil
	c.row, c.col = 0, 0
}

// Move places the write cursor.
func (c *Canvas) Move(row, col int) {
	c.row, c.col = row, col
}

// Write draws text at the write cursor and advances the cursor past it.
// Escape sequences are removed and other control characters become spaces
// so a task title can never drive the terminal.
func (c *Canvas) Write(text string, e imui.Emphasis) {
	text = ansi.Strip(text)

	for _, r := range text {
		if unicode.IsControl(r) {
			r = ' '
		}
		c.put(c.row, c.col, cell{r: r, e: e, set: true})
		c.col++
	}
}

func (c *Canvas) put(row, col int, v cell) {
	if row < 0 || col < 0 {
		return
	}
	if c.height > 0 && row >= c.height {
		return
	}
	if c.width > 0 && col >= c.width {
		return
	}

	for len(c.rows) <= row {
		c.rows = append(c.rows, nil)
	}
	line := c.rows[row]
	for len(line) <= col {
		line = append(line, cell{})
	}
	line[col] = v
	c.rows[row] = line
}

// Render returns the grid as newline-separated lines with runs of equal
// emphasis styled together. Trailing empty rows are omitted.
func (c *Canvas) Render() string {
	return c.render(true)
}

// String returns the grid contents without styling.
func (c *Canvas) String() string {
	return c.render(false)
}

func (c *Canvas) render(styled bool) string {
	lines := make([]string, len(c.rows))

	for i, row := range c.rows {
		var (
			b   strings.Builder
			run strings.Builder
			cur cell
		)

		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := run.String()
			run.Reset()
			if styled && cur.set {
				s = c.style(cur.e).Render(s)
			}
			b.WriteString(s)
		}

		for j, v := range row {
			if j == 0 || v.set != cur.set || v.e != cur.e {
				flush()
				cur = v
			}
			if v.set {
				run.WriteRune(v.r)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()

		lines[i] = b.String()
	}

	return strings.Join(lines, "\n")
}

func (c *Canvas) style(e imui.Emphasis) lipgloss.Style {
	if e == imui.Highlighted {
		return c.highlight
	}
	return c.regular
}
