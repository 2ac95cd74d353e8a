package layout

// Margins is the space kept free around the tile grid.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Constraints holds the computed screen regions for the menu.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Margins actually applied after mode scaling
	Margins Margins

	// Content box the tile grid is allocated into
	ContentX      int
	ContentY      int
	ContentWidth  int
	ContentHeight int

	// Footer line (hints and version info)
	ShowFooter   bool
	FooterY      int
	FooterHeight int

	// ShowMinWarning is set when the terminal is below the minimum size.
	ShowMinWarning bool
}

// ComputeConstraints calculates the screen regions for the given terminal dimensions.
func ComputeConstraints(width, height int, margins Margins, footer bool) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
	}

	// 1. Determine layout mode
	c.Mode = DetermineMode(width, height)

	// 2. Check for minimum size violation, still computing a layout for partial display
	if width < MinWidth || height < MinHeight {
		c.ShowMinWarning = true
	}

	// 3. Scale margins to the mode
	c.Margins = Margins{
		Top:    c.Mode.scaleMargin(margins.Top),
		Right:  c.Mode.scaleMargin(margins.Right),
		Bottom: c.Mode.scaleMargin(margins.Bottom),
		Left:   c.Mode.scaleMargin(margins.Left),
	}

	// 4. Reserve the footer (dropped in minimal mode)
	c.ShowFooter = footer && c.Mode != LayoutMinimal
	reserved := 0
	if c.ShowFooter {
		c.FooterHeight = FooterHeight
		reserved = FooterHeight + FooterGap
	}

	// 5. Content box
	c.ContentX = c.Margins.Left
	c.ContentY = c.Margins.Top
	c.ContentWidth = max(0, width-c.Margins.Left-c.Margins.Right)
	c.ContentHeight = max(0, height-c.Margins.Top-c.Margins.Bottom-reserved)

	if c.ShowFooter {
		c.FooterY = clamp(c.ContentY+c.ContentHeight+FooterGap, 0, max(0, height-FooterHeight))
	}

	return c
}

// Contains reports whether the cell (x, y) lies inside the content box.
func (c Constraints) Contains(x, y int) bool {
	return x >= c.ContentX && x < c.ContentX+c.ContentWidth &&
		y >= c.ContentY && y < c.ContentY+c.ContentHeight
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
