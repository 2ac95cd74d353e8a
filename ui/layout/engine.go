package layout

import "actionmenu/log"

// SizeRequestMode tells the host which axis to measure first.
type SizeRequestMode int

const (
	// HeightForWidth asks the host to measure width first, then height for that width.
	HeightForWidth SizeRequestMode = iota
	// WidthForHeight asks the host to measure height first.
	WidthForHeight
	// ConstantSize means measurements do not depend on the other axis.
	ConstantSize
)

// Result is the outcome of one allocation pass.
type Result struct {
	Geometry   Geometry
	Placements []Placement
}

// Engine adapts the packer and allocator to the host's measure/allocate protocol. Apart from the
// most recently applied Config it keeps no state between calls.
type Engine struct {
	props  PropertySource
	config Config
}

// NewEngine creates an engine reading its properties from props.
func NewEngine(props PropertySource) *Engine {
	return &Engine{props: props}
}

// RequestMode returns the measurement order the engine prefers.
func (e *Engine) RequestMode() SizeRequestMode {
	return HeightForWidth
}

// Config returns the config applied by the last Allocate call.
func (e *Engine) Config() Config {
	return e.config
}

// Measure answers a size query for container c. It reads the current properties but stores
// nothing, so the host may call it any number of times, with or without a later Allocate.
func (e *Engine) Measure(c Container, o Orientation, forSize int) Measurement {
	items := Collect(c)
	m := Measure(items, o, forSize, e.props.LayoutConfig(), c.Width(), c.Height())
	log.LayoutTrace("measure %s for=%d items=%d -> %+v", o, forSize, len(items), m)
	return m
}

// Allocate refreshes the config, packs the participating children of c into a width x height
// box and hands every child its rectangle.
func (e *Engine) Allocate(c Container, width, height, baseline int) Result {
	e.config = e.props.LayoutConfig()

	items := Collect(c)
	if len(items) == 0 {
		log.LayoutTrace("allocate %dx%d: no items", width, height)
		return Result{}
	}

	g := Plan(len(items), float64(width), float64(height), e.config)
	placements := Allocate(items, g, e.config, float64(width), float64(height), baseline)
	for _, p := range placements {
		items[p.Index].SizeAllocate(p.Rect, p.Baseline)
	}

	log.LayoutTrace("allocate %dx%d items=%d -> %dx%d cell=%.2fx%.2f",
		width, height, len(items), g.Rows, g.Cols, g.CellWidth, g.CellHeight)
	return Result{Geometry: g, Placements: placements}
}

// Plan chooses the grid for n items: a fixed column count when cfg.Columns is set, otherwise the
// area-maximizing search.
func Plan(n int, width, height float64, cfg Config) Geometry {
	if cfg.Columns > 0 {
		return PackColumns(n, cfg.Columns, width, height, cfg)
	}
	return Pack(n, width, height, cfg)
}
