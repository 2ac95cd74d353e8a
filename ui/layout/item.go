package layout

// Orientation selects the axis a measurement refers to.
type Orientation int

const (
	// Horizontal measures widths.
	Horizontal Orientation = iota
	// Vertical measures heights.
	Vertical
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// NoBaseline is reported by items (and by the engine) that have no baseline on an axis.
const NoBaseline = -1

// Unconstrained is passed as forSize when the cross-axis size is not yet known.
const Unconstrained = -1

// Measurement is the answer to a size query on one axis.
type Measurement struct {
	Minimum         int
	Natural         int
	MinimumBaseline int
	NaturalBaseline int
}

// Rect is a placement rectangle in the coordinate space of the content box.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Item is one tile as seen by the engine. The engine never owns items: it reads their
// measurements and writes placement rectangles back through SizeAllocate.
type Item interface {
	// Participates reports whether the item currently takes part in layout.
	Participates() bool
	// Measure returns the item's size needs on the given axis. forSize is the known size on the
	// other axis, or Unconstrained.
	Measure(o Orientation, forSize int) Measurement
	// SizeAllocate assigns the item its final rectangle.
	SizeAllocate(r Rect, baseline int)
}

// Container is the host side of the layout: an ordered child list plus the extent the container
// was last allocated.
type Container interface {
	Children() []Item
	Width() int
	Height() int
}

// Collect returns the children of c that currently participate in layout, in traversal order.
// It must be called on every pass; the participating set may change between passes.
func Collect(c Container) []Item {
	children := c.Children()
	items := make([]Item, 0, len(children))
	for _, child := range children {
		if child == nil || !child.Participates() {
			continue
		}
		items = append(items, child)
	}
	return items
}
