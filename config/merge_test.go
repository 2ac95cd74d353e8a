package config

import (
	"bytes"
	"testing"

	"actionmenu/log"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMerge(t *testing.T) {
	var buf bytes.Buffer
	log.InitializeWriter(&buf, charmlog.InfoLevel)
	t.Cleanup(func() { log.InitializeWriter(&bytes.Buffer{}, charmlog.InfoLevel) })

	cfg := DefaultConfig()
	cfg.MarginTop = ptr(9)
	cfg.ShowKeybinds = true

	cfg.Merge(Overrides{
		Margin:            ptr(0),
		MarginLeft:        ptr(5),
		ColumnSpacing:     ptr(4),
		ButtonAspectRatio: ptr(Ratio(1, 1)),
		Protocol:          ptr(ProtocolNone),
		ButtonsPerRow:     ptr(PerRow(2)),
		CloseOnLostFocus:  ptr(true),
		DelayCommandMs:    ptr(0),
	})

	assert.Equal(t, 0, cfg.Margin)
	assert.Equal(t, 5, *cfg.MarginLeft)
	assert.Equal(t, 9, *cfg.MarginTop, "config value kept when the flag is unset")
	assert.Nil(t, cfg.MarginRight)
	assert.Equal(t, 4, cfg.ColumnSpacing)
	assert.Equal(t, DefaultRowSpacing, cfg.RowSpacing)
	assert.Equal(t, "1/1", cfg.ButtonAspectRatio.String())
	assert.Equal(t, ProtocolNone, cfg.Protocol)
	assert.Equal(t, PerRow(2), cfg.ButtonsPerRow)
	assert.True(t, cfg.CloseOnLostFocus)
	assert.True(t, cfg.ShowKeybinds)
	assert.Zero(t, cfg.DelayCommandMs)

	out := buf.String()
	assert.Contains(t, out, `"margin-left" specified from args: 5`)
	assert.Contains(t, out, `"margin-top" specified from config: 9`)
	assert.Contains(t, out, `"margin-right" specified from config: unset`)
	assert.Contains(t, out, `"show-keybinds" specified from config: true`)
	assert.Contains(t, out, `"buttons-per-row" specified from args: 2`)
	assert.Contains(t, out, `"button-aspect-ratio" specified from args: 1/1`)
}

func TestMergeCopiesOptionalValues(t *testing.T) {
	cfg := DefaultConfig()
	left := 3
	cfg.Merge(Overrides{MarginLeft: &left})

	left = 10
	assert.Equal(t, 3, *cfg.MarginLeft)
}
