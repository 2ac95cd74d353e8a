package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeItem is a tile with fixed measurements that records what it was allocated.
type fakeItem struct {
	hidden     bool
	horizontal Measurement
	vertical   Measurement

	rect     Rect
	baseline int
	allocs   int
}

func newFakeItem(width, height int) *fakeItem {
	return &fakeItem{
		horizontal: Measurement{Minimum: width, Natural: width, MinimumBaseline: NoBaseline, NaturalBaseline: NoBaseline},
		vertical:   Measurement{Minimum: height, Natural: height, MinimumBaseline: NoBaseline, NaturalBaseline: NoBaseline},
	}
}

func (f *fakeItem) Participates() bool { return !f.hidden }

func (f *fakeItem) Measure(o Orientation, forSize int) Measurement {
	if o == Horizontal {
		return f.horizontal
	}
	return f.vertical
}

func (f *fakeItem) SizeAllocate(r Rect, baseline int) {
	f.rect = r
	f.baseline = baseline
	f.allocs++
}

type fakeContainer struct {
	children      []Item
	width, height int
}

func (c *fakeContainer) Children() []Item { return c.children }
func (c *fakeContainer) Width() int       { return c.width }
func (c *fakeContainer) Height() int      { return c.height }

func fakeItems(n int) []*fakeItem {
	items := make([]*fakeItem, n)
	for i := range items {
		items[i] = newFakeItem(10, 3)
	}
	return items
}

func asItems(fakes []*fakeItem) []Item {
	items := make([]Item, len(fakes))
	for i, f := range fakes {
		items[i] = f
	}
	return items
}

func TestCollect(t *testing.T) {
	fakes := fakeItems(5)
	fakes[1].hidden = true
	fakes[3].hidden = true
	c := &fakeContainer{children: asItems(fakes)}

	items := Collect(c)
	assert.Equal(t, []Item{fakes[0], fakes[2], fakes[4]}, items, "keeps participating children in order")

	t.Run("not cached across calls", func(t *testing.T) {
		fakes[1].hidden = false
		assert.Len(t, Collect(c), 4)
	})

	t.Run("nil children are ignored", func(t *testing.T) {
		c := &fakeContainer{children: []Item{nil, fakes[0]}}
		assert.Equal(t, []Item{fakes[0]}, Collect(c))
	})

	t.Run("empty container", func(t *testing.T) {
		assert.Empty(t, Collect(&fakeContainer{}))
	})
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "unknown", Orientation(7).String())
}
