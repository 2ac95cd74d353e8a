package layout

import "math"

// Config holds the layout properties read at the start of every pass.
type Config struct {
	// ColumnSpacing is the horizontal gap between tiles. Negative values are treated as 0.
	ColumnSpacing float64
	// RowSpacing is the vertical gap between tiles. Negative values are treated as 0.
	RowSpacing float64
	// AspectRatio is the width ÷ height of one tile. Only used when AspectRatioSet is true.
	AspectRatio float64
	// AspectRatioSet reports whether tiles are locked to AspectRatio.
	AspectRatioSet bool
	// Columns fixes the column count when positive. Zero lets the packer choose the grid.
	Columns int
}

// PropertySource supplies the current layout properties. The engine reads it at the start of
// every pass and never caches what it returns.
type PropertySource interface {
	LayoutConfig() Config
}

// columnSpacing returns the column spacing clamped to >= 0.
func (c Config) columnSpacing() float64 {
	return math.Max(0, c.ColumnSpacing)
}

// rowSpacing returns the row spacing clamped to >= 0.
func (c Config) rowSpacing() float64 {
	return math.Max(0, c.RowSpacing)
}

// Aspect returns the tile aspect ratio and whether one applies. A set but non-positive (or NaN)
// ratio counts as unset.
func (c Config) Aspect() (float64, bool) {
	if !c.AspectRatioSet || !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return 0, false
	}
	return c.AspectRatio, true
}

// effectiveColumnSpacing is the column spacing used when placing tiles. With an aspect ratio it
// is scaled by that ratio.
func (c Config) effectiveColumnSpacing() float64 {
	if aspect, ok := c.Aspect(); ok {
		return c.columnSpacing() * aspect
	}
	return c.columnSpacing()
}
