package layout

// Degradation holds flags indicating which menu features should be hidden or simplified.
type Degradation struct {
	// Tile degradation, driven by the allocated cell size
	HideBorders  bool // Draw tiles without a border (cell < 4w or < 3h)
	HideIcons    bool // Drop the icon line above the label (cell height < 5)
	HideKeybinds bool // Drop the [key] label in the tile corner (cell < 8w or < 4h)

	// Screen degradation, driven by the terminal size
	HideHints       bool // Drop key hints from the footer (width < 50)
	HideVersionInfo bool // Drop the version label (height < 10)

	// Critical degradation
	ShowMinWarning bool // Terminal or content box too small for the tiles
}

// Threshold constants for screen degradation
const (
	HintHideWidth     = 50
	VersionHideHeight = 10
)

// ComputeDegradation calculates which menu features should be degraded for the constraints and
// the grid geometry chosen for them.
func ComputeDegradation(c Constraints, g Geometry) Degradation {
	cellWidth := int(g.CellWidth)
	cellHeight := int(g.CellHeight)

	return Degradation{
		HideBorders:  cellWidth < BorderMinWidth || cellHeight < BorderMinHeight,
		HideIcons:    cellHeight < IconMinHeight,
		HideKeybinds: cellWidth < KeybindMinWidth || cellHeight < KeybindMinHeight,

		HideHints:       c.TerminalWidth < HintHideWidth,
		HideVersionInfo: c.TerminalHeight < VersionHideHeight,

		ShowMinWarning: c.ShowMinWarning,
	}
}

// FitsMinimum reports whether the content box can hold tiles of the measured minimum size.
func (c Constraints) FitsMinimum(minWidth, minHeight int) bool {
	return c.ContentWidth >= minWidth && c.ContentHeight >= minHeight
}

// IsCompactMode returns true if tiles should render without decoration.
func (d Degradation) IsCompactMode() bool {
	return d.HideBorders || d.HideIcons
}
