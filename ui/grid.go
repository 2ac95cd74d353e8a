package ui

import (
	"actionmenu/config"
	"actionmenu/inspect"
	"actionmenu/log"
	"actionmenu/ui/layout"
)

// Direction is a focus movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirNext
	DirPrev
)

// TileGrid hosts the tiles of the menu and lays them out with the grid engine. It is both the
// engine's container and its property source.
type TileGrid struct {
	cfg    *config.Config
	tiles  []*Tile
	engine *layout.Engine

	// Extent of the last allocation
	width, height int
	result        layout.Result

	// focus and hover index into the participating tiles, -1 for none
	focus int
	hover int
}

// NewTileGrid creates a grid for the buttons of cfg.
func NewTileGrid(cfg *config.Config) *TileGrid {
	g := &TileGrid{focus: -1, hover: -1}
	g.engine = layout.NewEngine(g)
	g.SetConfig(cfg)
	return g
}

// SetConfig replaces the buttons and layout properties. Focus stays on the tile with the same
// label when there still is one. The new properties apply from the next Allocate.
func (g *TileGrid) SetConfig(cfg *config.Config) {
	var focused string
	if t, ok := g.Focused(); ok {
		focused = t.Button().Label
	}

	g.cfg = cfg
	g.tiles = make([]*Tile, 0, len(cfg.Buttons))
	for _, b := range cfg.Buttons {
		g.tiles = append(g.tiles, NewTile(b))
	}
	g.result = layout.Result{}
	g.focus, g.hover = -1, -1
	if focused != "" {
		g.FocusLabel(focused)
	}
}

// Config returns the config the grid was built from.
func (g *TileGrid) Config() *config.Config {
	return g.cfg
}

// Children implements layout.Container.
func (g *TileGrid) Children() []layout.Item {
	items := make([]layout.Item, len(g.tiles))
	for i, t := range g.tiles {
		items[i] = t
	}
	return items
}

// Width implements layout.Container.
func (g *TileGrid) Width() int { return g.width }

// Height implements layout.Container.
func (g *TileGrid) Height() int { return g.height }

// LayoutConfig implements layout.PropertySource.
func (g *TileGrid) LayoutConfig() layout.Config {
	return g.cfg.LayoutConfig(len(g.Visible()))
}

// RequestMode reports the measurement order of the grid.
func (g *TileGrid) RequestMode() layout.SizeRequestMode {
	return g.engine.RequestMode()
}

// Measure answers a size query for the whole grid.
func (g *TileGrid) Measure(o layout.Orientation, forSize int) layout.Measurement {
	return g.engine.Measure(g, o, forSize)
}

// Allocate lays the tiles out in a width x height content box.
func (g *TileGrid) Allocate(width, height int) layout.Result {
	g.width, g.height = max(0, width), max(0, height)
	for _, t := range g.tiles {
		t.allocated = false
	}
	g.result = g.engine.Allocate(g, g.width, g.height, layout.NoBaseline)
	return g.result
}

// Geometry returns the grid chosen by the last Allocate.
func (g *TileGrid) Geometry() layout.Geometry {
	return g.result.Geometry
}

// Result returns the outcome of the last Allocate.
func (g *TileGrid) Result() layout.Result {
	return g.result
}

// Visible returns the participating tiles in layout order.
func (g *TileGrid) Visible() []*Tile {
	visible := make([]*Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		if t.Participates() {
			visible = append(visible, t)
		}
	}
	return visible
}

// TileAt returns the tile under the cell (x, y) of the content box.
func (g *TileGrid) TileAt(x, y int) (*Tile, bool) {
	for _, t := range g.Visible() {
		if t.Contains(x, y) {
			return t, true
		}
	}
	return nil, false
}

// Focused returns the focused tile.
func (g *TileGrid) Focused() (*Tile, bool) {
	visible := g.Visible()
	if g.focus < 0 || g.focus >= len(visible) {
		return nil, false
	}
	return visible[g.focus], true
}

// FocusLabel focuses the first tile with label and reports whether there was one.
func (g *TileGrid) FocusLabel(label string) bool {
	for i, t := range g.Visible() {
		if t.Button().Label == label {
			g.setFocus(i)
			return true
		}
	}
	return false
}

// FocusTile focuses t.
func (g *TileGrid) FocusTile(t *Tile) {
	for i, v := range g.Visible() {
		if v == t {
			g.setFocus(i)
			return
		}
	}
}

// MoveFocus moves the focus one step in dir, following the rows and columns of the last layout.
// Without a focused tile any move focuses the first one.
func (g *TileGrid) MoveFocus(dir Direction) {
	n := len(g.Visible())
	if n == 0 {
		return
	}
	if g.focus < 0 || g.focus >= n {
		g.setFocus(0)
		return
	}

	cols := max(1, g.result.Geometry.Cols)
	i := g.focus
	switch dir {
	case DirUp:
		if i-cols >= 0 {
			i -= cols
		}
	case DirDown:
		if i+cols < n {
			i += cols
		}
	case DirLeft:
		if i%cols > 0 {
			i--
		}
	case DirRight:
		if i%cols < cols-1 && i+1 < n {
			i++
		}
	case DirNext:
		i = (i + 1) % n
	case DirPrev:
		i = (i - 1 + n) % n
	}
	log.InputTrace("focus %d -> %d (cols=%d)", g.focus, i, cols)
	g.setFocus(i)
}

func (g *TileGrid) setFocus(i int) {
	for j, t := range g.Visible() {
		t.SetFocused(j == i)
	}
	g.focus = i
}

// SetHover marks the tile under the pointer. A nil tile clears the hover.
func (g *TileGrid) SetHover(t *Tile) {
	g.hover = -1
	for i, v := range g.Visible() {
		v.SetHovered(v == t)
		if v == t {
			g.hover = i
		}
	}
}

// View renders the tiles onto a canvas the size of the last allocation.
func (g *TileGrid) View(s Styles, d layout.Degradation) string {
	done := log.GetProfiler().StartRender("grid")
	defer done()

	canvas := NewCanvas(g.width, g.height)
	placed := 0
	for _, t := range g.Visible() {
		if !t.Allocated() {
			continue
		}
		canvas.Place(t.x, t.y, t.View(s, d, g.cfg.ShowKeybinds))
		placed++
	}
	log.RenderTrace("grid", "%d tiles on %dx%d", placed, g.width, g.height)
	return canvas.String()
}

// InspectNode implements inspect.Introspectable.
func (g *TileGrid) InspectNode() *inspect.Node {
	geo := g.result.Geometry
	n := inspect.NewNode("TileGrid").
		WithBounds(0, 0, g.width, g.height).
		WithState("rows", geo.Rows).
		WithState("cols", geo.Cols).
		WithState("cell_width", geo.CellWidth).
		WithState("cell_height", geo.CellHeight).
		WithState("focus", g.focus)

	children := make([]*inspect.Node, 0, len(g.tiles))
	for _, t := range g.tiles {
		child := t.InspectNode()
		if !t.Participates() {
			child.Visible = false
		}
		children = append(children, child)
	}
	return n.WithChildren(children)
}
