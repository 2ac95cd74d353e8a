package inspect

// Node is one component of the laid-out menu: the tile grid or a tile.
type Node struct {
	// Type is the component kind, "TileGrid" or "Tile".
	Type string `json:"type"`

	// ID is the button label for tiles.
	ID string `json:"id,omitempty"`

	// Bounds is the allocated cell rectangle, relative to the content box.
	Bounds Bounds `json:"bounds"`

	// Visible is false for hidden buttons and tiles that got no cell.
	Visible bool `json:"visible"`

	// State holds the grid geometry or the keybind, action, focus and hover of a tile.
	State map[string]any `json:"state,omitempty"`

	Styles   *StyleInfo `json:"styles,omitempty"`
	Children []*Node    `json:"children,omitempty"`

	// Content is the tile label.
	Content string `json:"content,omitempty"`

	// Truncated is set when the label does not fit the tile.
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds is a rectangle in terminal cells.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo is what a registered lipgloss style resolves to.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	// AppliedStyles names the registered styles, e.g. "tile.focused".
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo describes a label cut to fit its tile. Lengths are in cells.
type TruncationInfo struct {
	OriginalLength int    `json:"original_length"`
	DisplayLength  int    `json:"display_length"`
	Ellipsis       bool   `json:"ellipsis"`
	OriginalText   string `json:"original_text,omitempty"`
}

// NewNode creates a visible node of the given kind.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]any),
	}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

func (n *Node) WithState(key string, value any) *Node {
	if n.State == nil {
		n.State = make(map[string]any)
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// WithChildren replaces the children.
func (n *Node) WithChildren(children []*Node) *Node {
	n.Children = children
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records that the node's content, original cells wide, was shown in displayed
// cells. The full text is kept for the report.
func (n *Node) WithTruncation(original, displayed int, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		OriginalLength: original,
		DisplayLength:  displayed,
		Ellipsis:       hasEllipsis,
		OriginalText:   n.Content,
	}
	return n
}

// Walk calls fn for n and every descendant, depth first. Returning false skips the children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the first node of the given type and ID, or nil.
func (n *Node) Find(nodeType, id string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Type == nodeType && node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}
