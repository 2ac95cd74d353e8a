package ui

import (
	"testing"

	"actionmenu/config"
	"actionmenu/testing/snapshot"
	"actionmenu/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourButtons() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Buttons = []config.Button{
		button("lock", "Lock", "l"),
		button("logout", "Logout", "e"),
		button("suspend", "Suspend", "u"),
		button("shutdown", "Shutdown", "s"),
	}
	return cfg
}

func label(t *testing.T, g *TileGrid) string {
	t.Helper()
	tile, ok := g.Focused()
	require.True(t, ok)
	return tile.Button().Label
}

func TestTileGridAllocate(t *testing.T) {
	g := NewTileGrid(fourButtons())

	// 2x2 wins: cells of 19x5 use (40-2)/2 by (11-1)/2.
	res := g.Allocate(40, 11)
	assert.Equal(t, layout.Geometry{Rows: 2, Cols: 2, CellWidth: 19, CellHeight: 5}, res.Geometry)
	require.Len(t, res.Placements, 4)

	want := [][4]int{{0, 0, 19, 5}, {21, 0, 19, 5}, {0, 6, 19, 5}, {21, 6, 19, 5}}
	for i, tile := range g.Visible() {
		x, y, w, h := tile.Bounds()
		assert.Equal(t, want[i], [4]int{x, y, w, h}, "tile %d", i)
	}

	tile, ok := g.TileAt(22, 7)
	require.True(t, ok)
	assert.Equal(t, "shutdown", tile.Button().Label)

	_, ok = g.TileAt(19, 0)
	assert.False(t, ok, "column gap")
	_, ok = g.TileAt(0, 5)
	assert.False(t, ok, "row gap")
}

func TestTileGridHiddenButtons(t *testing.T) {
	cfg := fourButtons()
	cfg.Buttons[1].Hidden = true
	g := NewTileGrid(cfg)

	res := g.Allocate(40, 11)
	assert.Len(t, res.Placements, 3)
	assert.Len(t, g.Visible(), 3)
	assert.False(t, g.tiles[1].Allocated())

	node := g.InspectNode()
	require.Len(t, node.Children, 4)
	assert.False(t, node.Children[1].Visible)

	logout := node.Find("Tile", "logout")
	require.NotNil(t, logout)
	assert.False(t, logout.Visible)
	assert.Nil(t, node.Find("Tile", "reboot"))
}

func TestTileGridLayoutConfig(t *testing.T) {
	cfg := fourButtons()
	ratio := config.Ratio(1, 1)
	cfg.ButtonAspectRatio = &ratio
	cfg.ButtonsPerRow = config.RowRatio(1, 2)
	g := NewTileGrid(cfg)

	lc := g.LayoutConfig()
	aspect, ok := lc.Aspect()
	assert.True(t, ok)
	assert.Equal(t, 2.0, aspect, "cell aspect doubles the visual ratio")
	assert.Equal(t, 2, lc.Columns)
	assert.Equal(t, layout.HeightForWidth, g.RequestMode())
}

func TestTileGridMeasure(t *testing.T) {
	g := NewTileGrid(fourButtons())
	g.Allocate(40, 11)

	m := g.Measure(layout.Horizontal, layout.Unconstrained)
	assert.Equal(t, 3, m.Minimum)
	assert.Equal(t, len("Shutdown")+tileChrome, m.Natural)
}

func TestTileGridFocus(t *testing.T) {
	g := NewTileGrid(fourButtons())
	g.Allocate(40, 11)

	_, ok := g.Focused()
	assert.False(t, ok)

	steps := []struct {
		dir  Direction
		want string
	}{
		{DirRight, "lock"},
		{DirRight, "logout"},
		{DirRight, "logout"},
		{DirDown, "shutdown"},
		{DirDown, "shutdown"},
		{DirLeft, "suspend"},
		{DirLeft, "suspend"},
		{DirUp, "lock"},
		{DirUp, "lock"},
		{DirPrev, "shutdown"},
		{DirNext, "lock"},
	}
	for i, step := range steps {
		g.MoveFocus(step.dir)
		assert.Equal(t, step.want, label(t, g), "step %d", i)
	}

	focused := 0
	for _, tile := range g.Visible() {
		if tile.Focused() {
			focused++
		}
	}
	assert.Equal(t, 1, focused)
}

func TestTileGridFocusPartialRow(t *testing.T) {
	cfg := fourButtons()
	cfg.ButtonsPerRow = config.PerRow(3)
	g := NewTileGrid(cfg)
	g.Allocate(60, 11)

	require.True(t, g.FocusLabel("logout"))
	g.MoveFocus(DirDown)
	assert.Equal(t, "logout", label(t, g), "nothing below in the short last row")

	require.True(t, g.FocusLabel("shutdown"))
	g.MoveFocus(DirRight)
	assert.Equal(t, "shutdown", label(t, g))
}

func TestTileGridSetConfigKeepsFocus(t *testing.T) {
	g := NewTileGrid(fourButtons())
	require.True(t, g.FocusLabel("suspend"))

	cfg := fourButtons()
	cfg.Buttons = append([]config.Button{button("reboot", "Reboot", "r")}, cfg.Buttons...)
	g.SetConfig(cfg)

	assert.Equal(t, "suspend", label(t, g))
	assert.Len(t, g.Visible(), 5)
	assert.True(t, g.Geometry().Empty(), "layout waits for the next pass")

	cfg = fourButtons()
	cfg.Buttons = cfg.Buttons[:2]
	g.SetConfig(cfg)
	_, ok := g.Focused()
	assert.False(t, ok, "focused label is gone")
}

func TestTileGridHover(t *testing.T) {
	g := NewTileGrid(fourButtons())
	g.Allocate(40, 11)

	tile, ok := g.TileAt(1, 1)
	require.True(t, ok)
	g.SetHover(tile)
	assert.True(t, tile.Hovered())

	g.SetHover(nil)
	assert.False(t, tile.Hovered())
}

func TestTileGridView(t *testing.T) {
	cfg := fourButtons()
	cfg.ShowKeybinds = true
	g := NewTileGrid(cfg)
	g.Allocate(40, 11)

	out := g.View(NewStyles(nil), layout.Degradation{})
	assert.Equal(t, 11, snapshot.Lines(out))
	assert.Equal(t, 40, snapshot.Width(out))

	x, y, ok := snapshot.Find(out, "Shutdown")
	require.True(t, ok)
	tile, ok := g.TileAt(x, y)
	require.True(t, ok)
	assert.Equal(t, "shutdown", tile.Button().Label)
	assert.Contains(t, snapshot.StripANSI(out), "[s]")
}

func TestTileGridNoButtons(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewTileGrid(cfg)

	res := g.Allocate(40, 11)
	assert.True(t, res.Geometry.Empty())
	assert.Empty(t, res.Placements)

	g.MoveFocus(DirNext)
	_, ok := g.Focused()
	assert.False(t, ok)

	assert.Equal(t, 11, snapshot.Lines(g.View(NewStyles(nil), layout.Degradation{})))
}
