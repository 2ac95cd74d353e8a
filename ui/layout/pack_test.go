package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aspect(a float64) Config {
	return Config{AspectRatio: a, AspectRatioSet: true}
}

func TestPackScenarios(t *testing.T) {
	t.Run("six items fill a 2:1 box as 2x3", func(t *testing.T) {
		g := Pack(6, 600, 300, Config{})

		assert.Equal(t, 2, g.Rows)
		assert.Equal(t, 3, g.Cols)
		assert.Equal(t, 200.0, g.CellWidth)
		assert.Equal(t, 150.0, g.CellHeight)
	})

	t.Run("five items in a square box pick a 1x5 strip", func(t *testing.T) {
		// Without an aspect ratio the cell area is W*H/(rows*cols), so 1x5 (area 50000) beats
		// 2x3 and 3x2 (area ~41667). Pinned: the area objective wins over grid balance.
		g := Pack(5, 500, 500, Config{})

		assert.Equal(t, 1, g.Rows)
		assert.Equal(t, 5, g.Cols)
		assert.Equal(t, 100.0, g.CellWidth)
		assert.Equal(t, 500.0, g.CellHeight)
	})

	t.Run("wide aspect keeps cells inside the box", func(t *testing.T) {
		g := Pack(4, 400, 400, aspect(2))

		assert.Equal(t, 4, g.Rows*g.Cols)
		assert.Equal(t, 2, g.Rows)
		assert.Equal(t, 2, g.Cols)
		assert.Equal(t, 2*g.CellHeight, g.CellWidth)
		assert.LessOrEqual(t, float64(g.Cols)*g.CellWidth, 400.0)
		assert.Equal(t, 200.0, g.CellWidth)
		assert.Equal(t, 100.0, g.CellHeight)
	})

	t.Run("no items yields the no-op geometry", func(t *testing.T) {
		g := Pack(0, 600, 300, Config{})

		assert.True(t, g.Empty())
		assert.Equal(t, Geometry{}, g)
	})

	t.Run("widening the box never shrinks the cells", func(t *testing.T) {
		cfg := Config{ColumnSpacing: 8, RowSpacing: 8, AspectRatio: 1.5, AspectRatioSet: true}
		narrow := Pack(5, 600, 400, cfg)
		wide := Pack(5, 1200, 400, cfg)

		assert.GreaterOrEqual(t, wide.Area(), narrow.Area())
	})
}

func TestPackEqualAreasKeepTheFirstCandidate(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		width      float64
		height     float64
		cfg        Config
		rows, cols int
	}{
		// 1x4, 2x2 and 4x1 all have cell area 40000
		{name: "square box", n: 4, width: 400, height: 400, rows: 1, cols: 4},
		// 1x5 and 5x1 both have cell area 50000
		{name: "five in a square", n: 5, width: 500, height: 500, rows: 1, cols: 5},
		// 2x2 and 4x1 both have cell area 20000, 1x4 only 5000
		{name: "wide aspect", n: 4, width: 400, height: 400, cfg: aspect(2), rows: 2, cols: 2},
		// every cell is empty, so nothing beats 1x3
		{name: "zero box", n: 3, rows: 1, cols: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Pack(tt.n, tt.width, tt.height, tt.cfg)

			assert.Equal(t, tt.rows, g.Rows)
			assert.Equal(t, tt.cols, g.Cols)
		})
	}
}

func TestPackSpacing(t *testing.T) {
	// (1,4): 17.5x50 = 875, (2,2): 45x20 = 900, (4,1): 100x5 = 500
	g := Pack(4, 100, 50, Config{ColumnSpacing: 10, RowSpacing: 10})

	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Cols)
	assert.Equal(t, 45.0, g.CellWidth)
	assert.Equal(t, 20.0, g.CellHeight)

	t.Run("negative spacing is treated as zero", func(t *testing.T) {
		assert.Equal(t,
			Pack(4, 100, 50, Config{}),
			Pack(4, 100, 50, Config{ColumnSpacing: -5, RowSpacing: -1}))
	})
}

func TestPackTallAspect(t *testing.T) {
	// (1,3): wq=100 hq=300 -> w=min(100,150)=100 h=200 area 20000
	// (2,2): wq=150 hq=150 -> w=75 h=150 area 11250
	// (3,1): wq=300 hq=100 -> w=50 h=100 area 5000
	g := Pack(3, 300, 300, aspect(0.5))

	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 100.0, g.CellWidth)
	assert.Equal(t, 200.0, g.CellHeight)
}

func TestTight(t *testing.T) {
	tests := []struct {
		rows, cols, n int
		want          bool
	}{
		{1, 5, 5, true},
		{2, 3, 5, true},
		{3, 2, 5, true},
		{2, 2, 5, false}, // too small
		{2, 4, 5, false}, // wastes a whole column
		{3, 3, 5, false},
		{1, 6, 5, false}, // one spare cell in a single row is a wasted row
		{2, 3, 6, true},
		{1, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d for %d", tt.rows, tt.cols, tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, Tight(tt.rows, tt.cols, tt.n))
		})
	}
}

// packCases is a spread of boxes, spacings and aspect ratios for property tests.
func packCases() []Config {
	var cases []Config
	for _, spacing := range []float64{0, 4, 12} {
		cases = append(cases, Config{ColumnSpacing: spacing, RowSpacing: spacing})
		for _, a := range []float64{0.5, 0.75, 1, 1.5, 2, 3} {
			cases = append(cases, Config{ColumnSpacing: spacing, RowSpacing: spacing / 2, AspectRatio: a, AspectRatioSet: true})
		}
	}
	return cases
}

var packBoxes = [][2]float64{{600, 300}, {500, 500}, {320, 900}, {1920, 1080}, {80, 24}}

func TestPackProperties(t *testing.T) {
	for _, cfg := range packCases() {
		for _, box := range packBoxes {
			for n := 1; n <= 12; n++ {
				name := fmt.Sprintf("n=%d box=%vx%v cfg=%+v", n, box[0], box[1], cfg)
				g := Pack(n, box[0], box[1], cfg)

				require.True(t, Tight(g.Rows, g.Cols, n), "tightness: %s -> %+v", name, g)

				// Area-maximality against every other tight pair.
				tolerance := 1e-6 * math.Max(1, math.Abs(g.Area()))
				for rows := 1; rows <= n; rows++ {
					for cols := 1; cols <= n; cols++ {
						if !Tight(rows, cols, n) {
							continue
						}
						w, h := cellSize(rows, cols, box[0], box[1], cfg)
						require.GreaterOrEqual(t, g.Area()+tolerance, w*h,
							"area-maximality: %s beaten by %dx%d", name, rows, cols)
					}
				}

				if a, ok := cfg.Aspect(); ok && g.CellHeight != 0 {
					assert.InDelta(t, a, g.CellWidth/g.CellHeight, 1e-9, "aspect fidelity: %s", name)
				}
			}
		}
	}
}

func TestPackMonotonicInWidth(t *testing.T) {
	for _, cfg := range packCases() {
		for n := 1; n <= 8; n++ {
			prev := -1.0
			for width := 200.0; width <= 2000; width += 50 {
				g := Pack(n, width, 400, cfg)
				assert.GreaterOrEqual(t, g.Area()+1e-6, prev,
					"n=%d width=%v cfg=%+v shrank the cell", n, width, cfg)
				prev = g.Area()
			}
		}
	}
}

func TestPackDegenerateBoxes(t *testing.T) {
	for _, box := range [][2]float64{{0, 0}, {0, 300}, {-50, 100}, {100, -50}} {
		t.Run(fmt.Sprintf("%vx%v", box[0], box[1]), func(t *testing.T) {
			g := Pack(5, box[0], box[1], Config{ColumnSpacing: 4, RowSpacing: 4})

			assert.False(t, g.Empty(), "always returns some geometry")
			assert.True(t, Tight(g.Rows, g.Cols, 5))
		})
	}

	t.Run("non-positive aspect counts as unset", func(t *testing.T) {
		assert.Equal(t, Pack(4, 400, 300, Config{}), Pack(4, 400, 300, aspect(0)))
		assert.Equal(t, Pack(4, 400, 300, Config{}), Pack(4, 400, 300, aspect(-2)))
	})
}

func TestPackColumns(t *testing.T) {
	t.Run("fixed column count", func(t *testing.T) {
		g := PackColumns(5, 3, 300, 200, Config{})

		assert.Equal(t, 2, g.Rows)
		assert.Equal(t, 3, g.Cols)
		assert.Equal(t, 100.0, g.CellWidth)
		assert.Equal(t, 100.0, g.CellHeight)
	})

	t.Run("columns are clamped to the item count", func(t *testing.T) {
		g := PackColumns(2, 5, 300, 100, Config{})

		assert.Equal(t, 1, g.Rows)
		assert.Equal(t, 2, g.Cols)
	})

	t.Run("aspect applies to fixed grids too", func(t *testing.T) {
		g := PackColumns(6, 3, 600, 600, aspect(2))

		assert.Equal(t, 2, g.Rows)
		assert.Equal(t, 200.0, g.CellWidth)
		assert.Equal(t, 100.0, g.CellHeight)
	})

	t.Run("no items", func(t *testing.T) {
		assert.True(t, PackColumns(0, 3, 300, 200, Config{}).Empty())
	})
}

func TestPlan(t *testing.T) {
	assert.Equal(t, Pack(6, 600, 300, Config{}), Plan(6, 600, 300, Config{}))

	fixed := Plan(6, 600, 300, Config{Columns: 6})
	assert.Equal(t, 1, fixed.Rows)
	assert.Equal(t, 6, fixed.Cols)
}
