package ui

import (
	"strings"

	"actionmenu/config"
	"actionmenu/inspect"
	"actionmenu/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	ellipsis = "…"
	// tileChrome is the border plus one cell of padding on each side.
	tileChrome = 4
)

// Tile is one button of the menu. It is the layout item the grid engine places.
type Tile struct {
	button config.Button

	// Allocated cell rectangle, relative to the content box
	x, y          int
	width, height int
	baseline      int
	allocated     bool

	focused bool
	hovered bool
}

// NewTile creates a tile for b.
func NewTile(b config.Button) *Tile {
	return &Tile{button: b, baseline: layout.NoBaseline}
}

// Button returns the button the tile shows.
func (t *Tile) Button() config.Button {
	return t.button
}

// Participates reports whether the tile takes part in layout. Hidden buttons never do.
func (t *Tile) Participates() bool {
	return !t.button.Hidden
}

// Measure reports the cells the tile needs. The needs do not depend on the other axis, so
// forSize is ignored.
func (t *Tile) Measure(o layout.Orientation, forSize int) layout.Measurement {
	textWidth := runewidth.StringWidth(t.button.Text)
	iconWidth := runewidth.StringWidth(t.button.Icon)

	if o == layout.Horizontal {
		return layout.Measurement{
			Minimum:         min(textWidth, 1) + 2,
			Natural:         max(textWidth, iconWidth) + tileChrome,
			MinimumBaseline: layout.NoBaseline,
			NaturalBaseline: layout.NoBaseline,
		}
	}

	// border, padding row, [icon, gap,] label, padding row, border
	rows := 1
	if t.button.Icon != "" {
		rows += 2
	}
	return layout.Measurement{
		Minimum:         1,
		Natural:         rows + tileChrome,
		MinimumBaseline: 0,
		NaturalBaseline: rows + 1,
	}
}

// SizeAllocate stores the rectangle the engine chose. Coordinates are truncated to whole cells.
func (t *Tile) SizeAllocate(r layout.Rect, baseline int) {
	t.x, t.y = int(r.X), int(r.Y)
	t.width, t.height = int(r.Width), int(r.Height)
	t.baseline = baseline
	t.allocated = true
}

// Bounds returns the allocated rectangle in cells.
func (t *Tile) Bounds() (x, y, width, height int) {
	return t.x, t.y, t.width, t.height
}

// Allocated reports whether the tile was placed by the last pass.
func (t *Tile) Allocated() bool {
	return t.allocated
}

// Contains reports whether the cell (x, y) of the content box is on the tile.
func (t *Tile) Contains(x, y int) bool {
	return t.allocated && t.width > 0 && t.height > 0 &&
		x >= t.x && x < t.x+t.width && y >= t.y && y < t.y+t.height
}

func (t *Tile) SetFocused(focused bool) { t.focused = focused }
func (t *Tile) SetHovered(hovered bool) { t.hovered = hovered }
func (t *Tile) Focused() bool           { return t.focused }
func (t *Tile) Hovered() bool           { return t.hovered }

// View renders the tile as a block of exactly its allocated size.
func (t *Tile) View(s Styles, d layout.Degradation, showKeybind bool) string {
	w, h := t.width, t.height
	if !t.allocated || w <= 0 || h <= 0 {
		return ""
	}

	bordered := !d.HideBorders && w >= layout.BorderMinWidth && h >= layout.BorderMinHeight
	innerW, innerH := w, h
	if bordered {
		innerW, innerH = w-2, h-2
	}

	var header string
	if showKeybind && !d.HideKeybinds && t.button.Keybind != "" && innerH > 1 {
		key := truncate.String("["+t.button.Keybind+"]", uint(innerW))
		header = s.Keybind.Render(padding.String(key, uint(innerW)))
		innerH--
	}

	content := t.body(s, d, innerW, innerH)
	if header != "" {
		content = header + "\n" + content
	}
	if !bordered {
		return content
	}

	style := s.Tile
	switch {
	case t.focused:
		style = s.TileFocused
	case t.hovered:
		style = s.TileHovered
	}
	if t.button.Circular {
		style = style.Border(s.Circular)
	}
	return style.Render(content)
}

// body lays out the icon and text inside a w x h area.
func (t *Tile) body(s Styles, d layout.Degradation, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	justify := t.button.JustifyMode()
	var lines []string
	if justify == config.JustifyFill {
		lines = strings.Split(wordwrap.String(t.button.Text, w), "\n")
	} else {
		lines = []string{t.button.Text}
	}

	labelStyle := s.Label
	if t.focused {
		labelStyle = s.LabelFocused
	} else if t.hovered {
		labelStyle = labelStyle.Underline(true)
	}
	for i, line := range lines {
		lines[i] = labelStyle.Render(truncate.StringWithTail(line, uint(w), ellipsis))
	}

	if t.button.Icon != "" && !d.HideIcons {
		icon := s.Icon.Render(truncate.String(t.button.Icon, uint(w)))
		switch {
		case h >= len(lines)+2:
			lines = append([]string{icon, ""}, lines...)
		case h >= len(lines)+1:
			lines = append([]string{icon}, lines...)
		}
	}
	if len(lines) > h {
		lines = lines[:h]
	}

	hpos := lipgloss.Position(t.button.XAlign())
	switch justify {
	case config.JustifyLeft:
		hpos = lipgloss.Left
	case config.JustifyRight:
		hpos = lipgloss.Right
	}
	vpos := lipgloss.Position(t.button.YAlign())

	return lipgloss.Place(w, h, hpos, vpos, strings.Join(lines, "\n"))
}

// InspectNode implements inspect.Introspectable.
func (t *Tile) InspectNode() *inspect.Node {
	n := inspect.NewNode("Tile").
		WithID(t.button.Label).
		WithBounds(t.x, t.y, t.width, t.height).
		WithContent(t.button.Text).
		WithState("keybind", t.button.Keybind).
		WithState("action", t.button.Action).
		WithState("focused", t.focused).
		WithState("hovered", t.hovered)
	n.Visible = t.allocated && t.width > 0 && t.height > 0

	name := styleTile
	switch {
	case t.focused:
		name = styleTileFocused
	case t.hovered:
		name = styleTileHovered
	}
	if style, ok := inspect.GetRegisteredStyle(name); ok {
		n.WithStyles(inspect.ExtractStyleInfo(style, name))
	}
	if textWidth := runewidth.StringWidth(t.button.Text); textWidth > t.width-tileChrome {
		n.WithTruncation(textWidth, max(0, t.width-tileChrome), true)
	}
	return n
}
