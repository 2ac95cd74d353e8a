package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// Canvas is a fixed-size block of terminal cells that rendered blocks are drawn onto.
type Canvas struct {
	width, height int
	lines         []string
}

// NewCanvas returns a blank canvas. Negative sizes give an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return &Canvas{width: width, height: height, lines: lines}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Place draws block with its top-left corner at (x, y). Whatever falls outside the canvas is
// clipped, so x and y may be negative.
func (c *Canvas) Place(x, y int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}

		left := x
		w := ansi.PrintableRuneWidth(line)
		if left < 0 {
			line = skipCells(line, -left)
			w += left
			left = 0
		}
		if w <= 0 || left >= c.width {
			continue
		}
		if left+w > c.width {
			line = truncate.String(line, uint(c.width-left))
			w = ansi.PrintableRuneWidth(line)
		}
		c.lines[row] = splice(c.lines[row], left, w, line)
	}
}

// String returns the canvas as newline separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// splice replaces width cells of base starting at column at with s.
func splice(base string, at, width int, s string) string {
	head := padding.String(truncate.String(base, uint(at)), uint(at))
	return head + s + skipCells(base, at+width)
}

// skipCells drops the first n printable cells of s, keeping escape sequences so styling carries
// over. A wide rune cut in half becomes spaces.
func skipCells(s string, n int) string {
	if n <= 0 {
		return s
	}

	var (
		b       strings.Builder
		skipped int
		inSeq   bool
	)
	for i, r := range s {
		switch {
		case r == ansi.Marker:
			inSeq = true
			b.WriteRune(r)
		case inSeq:
			b.WriteRune(r)
			if ansi.IsTerminator(r) {
				inSeq = false
			}
		case skipped >= n:
			b.WriteString(s[i:])
			return b.String()
		default:
			skipped += runewidth.RuneWidth(r)
			if skipped > n {
				b.WriteString(strings.Repeat(" ", skipped-n))
			}
		}
	}
	return b.String()
}
