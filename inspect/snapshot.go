package inspect

import (
	"fmt"
	"strings"
	"time"

	"actionmenu/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains the screen regions and grid geometry.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// ConfigPath is where the layout was read from.
	ConfigPath string `json:"config_path"`

	// ThemePath is where the theme was read from, empty for the built-in one.
	ThemePath string `json:"theme_path,omitempty"`

	// ButtonCount is the number of configured buttons, hidden ones included.
	ButtonCount int `json:"button_count"`

	// Focused is the label of the focused tile.
	Focused string `json:"focused,omitempty"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains the computed layout.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// Content is the box the tiles are allocated into.
	Content Bounds `json:"content"`

	// Rows, Cols, CellWidth and CellHeight describe the chosen grid.
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`

	// Spacing and aspect ratio in effect.
	ColumnSpacing float64 `json:"column_spacing"`
	RowSpacing    float64 `json:"row_spacing"`
	AspectRatio   float64 `json:"aspect_ratio,omitempty"`

	// ShowFooter reports whether the footer line is drawn.
	ShowFooter bool `json:"show_footer"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideBorders     bool `json:"hide_borders"`
	HideIcons       bool `json:"hide_icons"`
	HideKeybinds    bool `json:"hide_keybinds"`
	HideHints       bool `json:"hide_hints"`
	HideVersionInfo bool `json:"hide_version_info"`
	ShowMinWarning  bool `json:"show_min_warning"`
	// Compact is set when tiles lose their borders or icons.
	Compact bool `json:"compact"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "2.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithLayout sets layout info from constraints, the grid result and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, cfg layout.Config, g layout.Geometry, d layout.Degradation) *Snapshot {
	aspect, _ := cfg.Aspect()
	s.Layout = LayoutInfo{
		Mode:          c.Mode.String(),
		Content:       Bounds{X: c.ContentX, Y: c.ContentY, Width: c.ContentWidth, Height: c.ContentHeight},
		Rows:          g.Rows,
		Cols:          g.Cols,
		CellWidth:     g.CellWidth,
		CellHeight:    g.CellHeight,
		ColumnSpacing: cfg.ColumnSpacing,
		RowSpacing:    cfg.RowSpacing,
		AspectRatio:   aspect,
		ShowFooter:    c.ShowFooter,
		Degradation: DegradationInfo{
			HideBorders:     d.HideBorders,
			HideIcons:       d.HideIcons,
			HideKeybinds:    d.HideKeybinds,
			HideHints:       d.HideHints,
			HideVersionInfo: d.HideVersionInfo,
			ShowMinWarning:  d.ShowMinWarning,
			Compact:         d.IsCompactMode(),
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_hints", Threshold: layout.HintHideWidth, Active: d.HideHints, Dimension: "width"},
		{Name: "hide_version", Threshold: layout.VersionHideHeight, Active: d.HideVersionInfo, Dimension: "height"},
		{Name: "hide_borders", Threshold: layout.BorderMinHeight, Active: d.HideBorders, Dimension: "cell height"},
		{Name: "hide_icons", Threshold: layout.IconMinHeight, Active: d.HideIcons, Dimension: "cell height"},
		{Name: "hide_keybinds", Threshold: layout.KeybindMinWidth, Active: d.HideKeybinds, Dimension: "cell width"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("Config: %s\n", s.AppState.ConfigPath))
	if s.AppState.Focused != "" {
		b.WriteString(fmt.Sprintf("Focused: %s\n", s.AppState.Focused))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	c := s.Layout.Content
	b.WriteString(fmt.Sprintf("Content: %dx%d at (%d,%d)\n", c.Width, c.Height, c.X, c.Y))
	b.WriteString(fmt.Sprintf("Grid: %d rows x %d cols, cell %.2fx%.2f\n",
		s.Layout.Rows, s.Layout.Cols, s.Layout.CellWidth, s.Layout.CellHeight))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d at %d,%d)", node.Bounds.Width, node.Bounds.Height, node.Bounds.X, node.Bounds.Y))
	if !node.Visible {
		b.WriteString(" hidden")
	}

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
