// Package layout arranges menu tiles in a grid and computes the screen regions around it.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals (>= 120w x 40h). Margins are used as configured.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals (>= 80w x 24h). Margins are used as configured.
	LayoutStandard

	// LayoutCompact is for small terminals (>= 30w x 8h). Margins are halved.
	LayoutCompact

	// LayoutMinimal is for terminals below the minimum size. Margins are dropped.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}

	// The more restrictive dimension wins (higher value = more restrictive).
	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) LayoutMode {
	switch {
	case width >= FullWidth:
		return LayoutFull
	case width >= StandardWidth:
		return LayoutStandard
	case width >= MinWidth:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= MinHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// scaleMargin applies the mode's margin policy to a configured margin.
func (m LayoutMode) scaleMargin(margin int) int {
	margin = max(0, margin)
	switch m {
	case LayoutFull, LayoutStandard:
		return margin
	case LayoutCompact:
		return margin / 2
	default:
		return 0
	}
}
