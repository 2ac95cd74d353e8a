package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	cfg := Config{ColumnSpacing: 10, RowSpacing: 10}
	items := asItems(fakeItems(4))
	g := Pack(len(items), 100, 50, cfg)

	placements := Allocate(items, g, cfg, 100, 50, NoBaseline)
	require.Len(t, placements, 4)

	want := []Rect{
		{X: 0, Y: 0, Width: 45, Height: 20},
		{X: 55, Y: 0, Width: 45, Height: 20},
		{X: 0, Y: 30, Width: 45, Height: 20},
		{X: 55, Y: 30, Width: 45, Height: 20},
	}
	for i, p := range placements {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, want[i], p.Rect, "item %d", i)
		assert.Equal(t, NoBaseline, p.Baseline)
	}
}

func TestAllocateCentersTheGrid(t *testing.T) {
	cfg := Config{}
	items := asItems(fakeItems(3))
	g := Geometry{Rows: 1, Cols: 3, CellWidth: 20, CellHeight: 10}

	placements := Allocate(items, g, cfg, 100, 30, 0)
	require.Len(t, placements, 3)

	assert.Equal(t, Rect{X: 20, Y: 10, Width: 20, Height: 10}, placements[0].Rect)
	assert.Equal(t, Rect{X: 40, Y: 10, Width: 20, Height: 10}, placements[1].Rect)
	assert.Equal(t, Rect{X: 60, Y: 10, Width: 20, Height: 10}, placements[2].Rect)
}

func TestAllocateFillsRowMajor(t *testing.T) {
	items := asItems(fakeItems(5))
	g := Geometry{Rows: 2, Cols: 3, CellWidth: 10, CellHeight: 10}

	placements := Allocate(items, g, Config{}, 30, 20, 0)
	require.Len(t, placements, 5)

	// The last row is partial and starts at the left edge of the grid.
	assert.Equal(t, 0.0, placements[3].Rect.X)
	assert.Equal(t, 10.0, placements[3].Rect.Y)
	assert.Equal(t, 10.0, placements[4].Rect.X)
	assert.Equal(t, 10.0, placements[4].Rect.Y)
}

func TestAllocateScalesColumnSpacingByAspect(t *testing.T) {
	cfg := Config{ColumnSpacing: 2, RowSpacing: 1, AspectRatio: 2, AspectRatioSet: true}
	g := Geometry{Rows: 1, Cols: 2, CellWidth: 10, CellHeight: 5}

	gridWidth, gridHeight := Footprint(g, cfg)
	assert.Equal(t, 24.0, gridWidth) // 2*10 + 2*2
	assert.Equal(t, 5.0, gridHeight)

	placements := Allocate(asItems(fakeItems(2)), g, cfg, 24, 5, 0)
	require.Len(t, placements, 2)
	assert.Equal(t, 14.0, placements[1].Rect.X)
}

func TestAllocateOverflowGoesNegative(t *testing.T) {
	g := Geometry{Rows: 1, Cols: 2, CellWidth: 60, CellHeight: 40}

	placements := Allocate(asItems(fakeItems(2)), g, Config{}, 100, 20, 0)
	require.Len(t, placements, 2)

	assert.Equal(t, -10.0, placements[0].Rect.X)
	assert.Equal(t, -10.0, placements[0].Rect.Y)
	assert.Equal(t, 50.0, placements[1].Rect.X)
}

func TestAllocateSkipsHiddenItems(t *testing.T) {
	fakes := fakeItems(4)
	items := asItems(fakes)
	g := Geometry{Rows: 2, Cols: 2, CellWidth: 10, CellHeight: 10}

	// Collected as participating, then hidden before allocation.
	fakes[2].hidden = true
	placements := Allocate(items, g, Config{}, 20, 20, 0)

	require.Len(t, placements, 3)
	assert.Equal(t, []int{0, 1, 3}, []int{placements[0].Index, placements[1].Index, placements[2].Index})
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 10, Height: 10}, placements[2].Rect, "keeps its slot")
}

func TestAllocatePassesBaselineThrough(t *testing.T) {
	g := Geometry{Rows: 1, Cols: 2, CellWidth: 10, CellHeight: 10}

	for _, p := range Allocate(asItems(fakeItems(2)), g, Config{}, 20, 10, 7) {
		assert.Equal(t, 7, p.Baseline)
	}
}

func TestAllocateIsIdempotent(t *testing.T) {
	cfg := Config{ColumnSpacing: 3, RowSpacing: 1, AspectRatio: 1.5, AspectRatioSet: true}
	items := asItems(fakeItems(7))
	g := Pack(len(items), 311, 97, cfg)

	first := Allocate(items, g, cfg, 311, 97, 0)
	second := Allocate(items, g, cfg, 311, 97, 0)
	assert.Equal(t, first, second)
}

func TestAllocateEmpty(t *testing.T) {
	assert.Nil(t, Allocate(nil, Geometry{Rows: 1, Cols: 1}, Config{}, 10, 10, 0))
	assert.Nil(t, Allocate(asItems(fakeItems(2)), Geometry{}, Config{}, 10, 10, 0))

	w, h := Footprint(Geometry{}, Config{ColumnSpacing: 5})
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestAllocateCentersEveryPackedGrid(t *testing.T) {
	for _, cfg := range packCases() {
		for _, box := range packBoxes {
			for n := 1; n <= 12; n++ {
				name := fmt.Sprintf("n=%d box=%vx%v cfg=%+v", n, box[0], box[1], cfg)
				g := Pack(n, box[0], box[1], cfg)
				placements := Allocate(asItems(fakeItems(n)), g, cfg, box[0], box[1], 0)
				require.Len(t, placements, n, name)

				// Both edges of every rect, since overfull boxes can produce negative cells.
				left, top := math.Inf(1), math.Inf(1)
				right, bottom := math.Inf(-1), math.Inf(-1)
				for _, p := range placements {
					r := p.Rect
					left = math.Min(left, math.Min(r.X, r.X+r.Width))
					right = math.Max(right, math.Max(r.X, r.X+r.Width))
					top = math.Min(top, math.Min(r.Y, r.Y+r.Height))
					bottom = math.Max(bottom, math.Max(r.Y, r.Y+r.Height))
				}

				assert.InDelta(t, box[0]/2, (left+right)/2, 0.5, "horizontal: %s", name)
				assert.InDelta(t, box[1]/2, (top+bottom)/2, 0.5, "vertical: %s", name)
			}
		}
	}
}
