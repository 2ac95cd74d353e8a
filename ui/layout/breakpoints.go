package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the menu lays out normally.
	MinWidth = 30

	// StandardWidth is the threshold for the standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for the full layout with configured margins.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the menu lays out normally.
	MinHeight = 8

	// StandardHeight is the threshold for the standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for the full layout.
	FullHeight = 40
)

// Footer constraints
const (
	// FooterHeight is the height of the hint/version line.
	FooterHeight = 1

	// FooterGap is the blank space between the content box and the footer.
	FooterGap = 1
)

// Tile constraints
const (
	// BorderMinWidth is the narrowest cell that still gets a border.
	BorderMinWidth = 4

	// BorderMinHeight is the shortest cell that still gets a border.
	BorderMinHeight = 3

	// IconMinHeight is the shortest cell that still shows its icon above the label.
	IconMinHeight = 5

	// KeybindMinHeight is the shortest cell that still shows its keybind label.
	KeybindMinHeight = 4

	// KeybindMinWidth is the narrowest cell that still shows its keybind label.
	KeybindMinWidth = 8
)
