package layout

import "math"

// Measure reports the layout's size needs on one axis.
//
// Minimum and natural are the envelope (maximum) over all items, not their sum: a single
// representative tile drives the request. With an aspect ratio set, natural is pulled toward the
// size implied by the other axis: forSize when known, otherwise the container's current extent
// on the other axis. Natural never drops below minimum. Items reporting NoBaseline do not take
// part in the baseline maximum.
//
// Measure has no side effects and may be called any number of times per frame.
func Measure(items []Item, o Orientation, forSize int, cfg Config, extentWidth, extentHeight int) Measurement {
	m := Measurement{
		MinimumBaseline: NoBaseline,
		NaturalBaseline: NoBaseline,
	}

	for _, item := range items {
		if item == nil || !item.Participates() {
			continue
		}
		c := item.Measure(o, forSize)

		m.Minimum = max(m.Minimum, c.Minimum)
		m.Natural = max(m.Natural, c.Natural)

		if c.MinimumBaseline != NoBaseline {
			m.MinimumBaseline = max(m.MinimumBaseline, c.MinimumBaseline)
		}
		if c.NaturalBaseline != NoBaseline {
			m.NaturalBaseline = max(m.NaturalBaseline, c.NaturalBaseline)
		}
	}

	aspect, ok := cfg.Aspect()
	if !ok {
		return m
	}

	var expected float64
	switch {
	case forSize < 0 && o == Horizontal:
		expected = float64(extentHeight) * aspect
	case forSize < 0:
		expected = float64(extentWidth) / aspect
	case o == Horizontal:
		expected = float64(forSize) * aspect
	default:
		expected = float64(forSize) / aspect
	}

	m.Natural = max(min(m.Natural, int(math.Round(expected))), m.Minimum)
	return m
}
