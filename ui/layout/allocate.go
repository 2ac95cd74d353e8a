package layout

// Placement is the rectangle assigned to the item at Index (row-major order).
type Placement struct {
	Index    int
	Rect     Rect
	Baseline int
}

// Footprint returns the size of the rendered grid.
func Footprint(g Geometry, cfg Config) (float64, float64) {
	if g.Empty() {
		return 0, 0
	}
	gridWidth := float64(g.Cols)*g.CellWidth + float64(g.Cols-1)*cfg.effectiveColumnSpacing()
	gridHeight := float64(g.Rows)*g.CellHeight + float64(g.Rows-1)*cfg.rowSpacing()
	return gridWidth, gridHeight
}

// Allocate computes each item's placement for geometry g, centering the grid inside a
// width x height box. The grid is not clamped to the box: when it is larger, the origin goes
// negative. Items that stopped participating since collection are skipped but keep their index.
// The baseline is passed through unchanged.
func Allocate(items []Item, g Geometry, cfg Config, width, height float64, baseline int) []Placement {
	if len(items) == 0 || g.Empty() {
		return nil
	}

	gridWidth, gridHeight := Footprint(g, cfg)
	baseX := (width - gridWidth) / 2
	baseY := (height - gridHeight) / 2

	colStep := g.CellWidth + cfg.effectiveColumnSpacing()
	rowStep := g.CellHeight + cfg.rowSpacing()

	placements := make([]Placement, 0, len(items))
	for i, item := range items {
		if item == nil || !item.Participates() {
			continue
		}
		col := i % g.Cols
		row := i / g.Cols

		placements = append(placements, Placement{
			Index: i,
			Rect: Rect{
				X:      baseX + float64(col)*colStep,
				Y:      baseY + float64(row)*rowStep,
				Width:  g.CellWidth,
				Height: g.CellHeight,
			},
			Baseline: baseline,
		})
	}
	return placements
}
