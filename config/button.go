package config

import (
	"encoding/json"
	"fmt"
)

// Justify values for a button's text.
const (
	JustifyCenter = "center"
	JustifyFill   = "fill"
	JustifyLeft   = "left"
	JustifyRight  = "right"
)

const (
	defaultXAlign = 0.5
	defaultYAlign = 0.9
)

// Button is one menu entry.
type Button struct {
	// Label names the button; it is also its identity in the saved state.
	Label string `json:"label" toml:"label"`
	// Action is the shell command run when the button is chosen.
	Action string `json:"action" toml:"action"`
	// Text is what the tile shows.
	Text string `json:"text" toml:"text"`
	// Keybind is the key that triggers the button, e.g. "l" or "esc".
	Keybind string `json:"keybind" toml:"keybind"`

	Justify string `json:"justify,omitempty" toml:"justify"`
	// Width and Height are the horizontal and vertical alignment of the text inside the tile,
	// from 0 (left/top) to 1 (right/bottom).
	Width    *float64 `json:"width,omitempty" toml:"width"`
	Height   *float64 `json:"height,omitempty" toml:"height"`
	Circular bool     `json:"circular,omitempty" toml:"circular"`
	// Icon is a glyph shown above the text.
	Icon string `json:"icon,omitempty" toml:"icon"`
	// Hidden buttons keep their keybind but take no space in the grid.
	Hidden bool `json:"hidden,omitempty" toml:"hidden"`
}

// buttonFields mirrors Button with the required fields as pointers so a missing key can be told
// apart from an empty value.
type buttonFields struct {
	Label    *string  `json:"label"`
	Action   *string  `json:"action"`
	Text     *string  `json:"text"`
	Keybind  *string  `json:"keybind"`
	Justify  string   `json:"justify"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Circular bool     `json:"circular"`
	Icon     *string  `json:"icon"`
	Hidden   bool     `json:"hidden"`
}

func (b *Button) UnmarshalJSON(data []byte) error {
	var f buttonFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	for _, req := range []struct {
		name  string
		value *string
	}{
		{"label", f.Label},
		{"action", f.Action},
		{"text", f.Text},
		{"keybind", f.Keybind},
	} {
		if req.value == nil {
			return fmt.Errorf("missing field `%s`", req.name)
		}
	}

	*b = Button{
		Label:    *f.Label,
		Action:   *f.Action,
		Text:     *f.Text,
		Keybind:  *f.Keybind,
		Justify:  f.Justify,
		Width:    f.Width,
		Height:   f.Height,
		Circular: f.Circular,
		Hidden:   f.Hidden,
	}
	if f.Icon != nil {
		b.Icon = *f.Icon
	}
	if b.Justify == "" {
		b.Justify = JustifyCenter
	}
	return nil
}

// UnmarshalTOML decodes a TOML table with the same required-field rules as the JSON form.
func (b *Button) UnmarshalTOML(v any) error {
	table, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("button must be a table, got %T", v)
	}
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return b.UnmarshalJSON(data)
}

// XAlign returns the horizontal text alignment, clamped to [0, 1].
func (b Button) XAlign() float64 {
	return alignment(b.Width, defaultXAlign)
}

// YAlign returns the vertical text alignment, clamped to [0, 1].
func (b Button) YAlign() float64 {
	return alignment(b.Height, defaultYAlign)
}

// JustifyMode returns the justification, mapping unknown values to center.
func (b Button) JustifyMode() string {
	switch b.Justify {
	case JustifyFill, JustifyLeft, JustifyRight:
		return b.Justify
	default:
		return JustifyCenter
	}
}

func alignment(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return min(max(*v, 0), 1)
}
