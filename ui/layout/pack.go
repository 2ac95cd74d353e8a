package layout

import "math"

// Geometry is the grid chosen for one allocation pass.
type Geometry struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
}

// Empty reports whether the geometry is the no-op geometry returned for zero items.
func (g Geometry) Empty() bool {
	return g.Rows == 0 || g.Cols == 0
}

// Area returns the area of one cell.
func (g Geometry) Area() float64 {
	return g.CellWidth * g.CellHeight
}

// Tight reports whether a rows x cols grid holds n items without a wholly superfluous row or
// column.
func Tight(rows, cols, n int) bool {
	cells := rows * cols
	return cells >= n && cells-n < rows && cells-n < cols
}

// Pack searches every tight (rows, cols) partition for n items in a width x height box and
// returns the one with the largest cell area. The search is O(n²), which is fine for menu-sized
// n.
//
// Candidates are visited rows-major. A later candidate replaces the best one only when its area
// is strictly larger, so the first candidate wins ties.
func Pack(n int, width, height float64, cfg Config) Geometry {
	if n <= 0 {
		return Geometry{}
	}

	var best Geometry
	found := false
	for rows := 1; rows <= n; rows++ {
		for cols := 1; cols <= n; cols++ {
			if !Tight(rows, cols, n) {
				continue
			}

			w, h := cellSize(rows, cols, width, height, cfg)
			candidate := Geometry{Rows: rows, Cols: cols, CellWidth: w, CellHeight: h}
			if !found || candidate.Area() > best.Area() {
				best = candidate
				found = true
			}
		}
	}
	return best
}

// PackColumns lays n items out with a fixed column count. cols is clamped to [1, n] and rows is
// the smallest count that fits every item.
func PackColumns(n, cols int, width, height float64, cfg Config) Geometry {
	if n <= 0 {
		return Geometry{}
	}
	cols = max(1, min(cols, n))
	rows := (n + cols - 1) / cols

	w, h := cellSize(rows, cols, width, height, cfg)
	return Geometry{Rows: rows, Cols: cols, CellWidth: w, CellHeight: h}
}

// cellSize computes the cell of a rows x cols grid, reconciled with the aspect ratio when one
// is set. Wide tiles are sized height-first from the width quotient and tall tiles width-first
// from the height quotient, so the final cell matches the ratio exactly and fits both quotients.
func cellSize(rows, cols int, width, height float64, cfg Config) (float64, float64) {
	colGaps := float64(cols - 1)
	rowGaps := float64(rows - 1)

	wq := (width - colGaps*cfg.columnSpacing()) / float64(cols)
	hq := (height - rowGaps*cfg.rowSpacing()) / float64(rows)

	aspect, ok := cfg.Aspect()
	switch {
	case !ok:
		return wq, hq
	case aspect >= 1:
		h := math.Min(hq, wq/aspect)
		return h * aspect, h
	default:
		w := math.Min(wq, hq*aspect)
		return w, w / aspect
	}
}
