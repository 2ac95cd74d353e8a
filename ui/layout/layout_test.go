package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  120,
			height: 40,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - medium terminal",
			width:  100,
			height: 30,
			want:   LayoutStandard,
		},
		{
			name:   "standard mode - exact thresholds",
			width:  80,
			height: 24,
			want:   LayoutStandard,
		},
		{
			name:   "compact mode - just below standard width",
			width:  79,
			height: 24,
			want:   LayoutCompact,
		},
		{
			name:   "wide but short",
			width:  150,
			height: 10,
			want:   LayoutCompact, // Uses most restrictive mode (height-based)
		},
		{
			name:   "minimal mode - below minimum width",
			width:  29,
			height: 40,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below minimum height",
			width:  100,
			height: 7,
			want:   LayoutMinimal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height)
			assert.Equal(t, tt.want, got, "DetermineMode(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(42).String())
}

func TestComputeConstraints(t *testing.T) {
	margins := Margins{Top: 2, Right: 2, Bottom: 2, Left: 2}

	t.Run("full terminal with footer", func(t *testing.T) {
		c := ComputeConstraints(120, 40, margins, true)

		assert.Equal(t, LayoutFull, c.Mode)
		assert.Equal(t, margins, c.Margins)
		assert.Equal(t, 2, c.ContentX)
		assert.Equal(t, 2, c.ContentY)
		assert.Equal(t, 116, c.ContentWidth)
		assert.Equal(t, 34, c.ContentHeight) // 40 - 2 - 2 - footer - gap
		assert.True(t, c.ShowFooter)
		assert.Equal(t, 37, c.FooterY)
		assert.Equal(t, FooterHeight, c.FooterHeight)
		assert.False(t, c.ShowMinWarning)
	})

	t.Run("no footer gives the whole height to content", func(t *testing.T) {
		c := ComputeConstraints(120, 40, margins, false)

		assert.False(t, c.ShowFooter)
		assert.Equal(t, 36, c.ContentHeight)
		assert.Zero(t, c.FooterHeight)
	})

	t.Run("compact terminal halves margins", func(t *testing.T) {
		c := ComputeConstraints(60, 20, Margins{Top: 4, Right: 4, Bottom: 4, Left: 4}, true)

		assert.Equal(t, LayoutCompact, c.Mode)
		assert.Equal(t, Margins{Top: 2, Right: 2, Bottom: 2, Left: 2}, c.Margins)
		assert.Equal(t, 56, c.ContentWidth)
		assert.Equal(t, 14, c.ContentHeight)
		assert.Equal(t, 17, c.FooterY)
	})

	t.Run("minimal terminal drops margins and footer", func(t *testing.T) {
		c := ComputeConstraints(20, 6, margins, true)

		assert.Equal(t, LayoutMinimal, c.Mode)
		assert.True(t, c.ShowMinWarning)
		assert.False(t, c.ShowFooter)
		assert.Equal(t, Margins{}, c.Margins)
		assert.Equal(t, 20, c.ContentWidth)
		assert.Equal(t, 6, c.ContentHeight)
	})

	t.Run("margins larger than the terminal never go negative", func(t *testing.T) {
		c := ComputeConstraints(40, 10, Margins{Top: 30, Right: 30, Bottom: 30, Left: 30}, true)

		assert.GreaterOrEqual(t, c.ContentWidth, 0)
		assert.GreaterOrEqual(t, c.ContentHeight, 0)
		assert.GreaterOrEqual(t, c.FooterY, 0)
		assert.Less(t, c.FooterY, 10)
	})
}

func TestConstraintsContains(t *testing.T) {
	c := ComputeConstraints(120, 40, Margins{Top: 2, Right: 2, Bottom: 2, Left: 2}, true)

	assert.True(t, c.Contains(2, 2))
	assert.True(t, c.Contains(117, 35))
	assert.False(t, c.Contains(1, 2))
	assert.False(t, c.Contains(118, 2))
	assert.False(t, c.Contains(50, 36))
}

func TestComputeDegradation(t *testing.T) {
	roomy := ComputeConstraints(120, 40, Margins{}, true)

	t.Run("large cells keep everything", func(t *testing.T) {
		d := ComputeDegradation(roomy, Geometry{Rows: 2, Cols: 3, CellWidth: 20, CellHeight: 8})

		assert.False(t, d.HideBorders)
		assert.False(t, d.HideIcons)
		assert.False(t, d.HideKeybinds)
		assert.False(t, d.HideHints)
		assert.False(t, d.HideVersionInfo)
		assert.False(t, d.IsCompactMode())
	})

	t.Run("tiny cells drop decoration", func(t *testing.T) {
		d := ComputeDegradation(roomy, Geometry{Rows: 1, Cols: 1, CellWidth: 3.9, CellHeight: 2.5})

		assert.True(t, d.HideBorders)
		assert.True(t, d.HideIcons)
		assert.True(t, d.HideKeybinds)
		assert.True(t, d.IsCompactMode())
	})

	t.Run("short cells drop icons but keep borders", func(t *testing.T) {
		d := ComputeDegradation(roomy, Geometry{Rows: 1, Cols: 1, CellWidth: 20, CellHeight: 4})

		assert.False(t, d.HideBorders)
		assert.True(t, d.HideIcons)
		assert.False(t, d.HideKeybinds)
	})

	t.Run("small terminal drops footer content", func(t *testing.T) {
		c := ComputeConstraints(40, 9, Margins{}, true)
		d := ComputeDegradation(c, Geometry{Rows: 1, Cols: 1, CellWidth: 40, CellHeight: 9})

		assert.True(t, d.HideHints)
		assert.True(t, d.HideVersionInfo)
		assert.False(t, d.ShowMinWarning)
	})
}

func TestFitsMinimum(t *testing.T) {
	c := ComputeConstraints(120, 40, Margins{}, false)

	assert.True(t, c.FitsMinimum(120, 40))
	assert.False(t, c.FitsMinimum(121, 10))
	assert.False(t, c.FitsMinimum(10, 41))
}
