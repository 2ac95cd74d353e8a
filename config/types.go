package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio is the visual width ÷ height of one tile, written either as a float ("1.5") or as a
// ratio of two positive integers ("3/2").
type AspectRatio struct {
	value float64
	num   int
	den   int
}

// Ratio returns the aspect ratio n/d.
func Ratio(n, d int) AspectRatio {
	return AspectRatio{num: n, den: d}
}

// Float returns the aspect ratio given as a float.
func Float(f float64) AspectRatio {
	return AspectRatio{value: f}
}

// ParseAspectRatio parses a float or an "n/d" ratio. Negative values are rejected.
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			return AspectRatio{}, errors.New("aspect ratio cannot be negative")
		}
		return Float(f), nil
	}
	if n, d, ok := parseRatio(s); ok {
		return Ratio(n, d), nil
	}
	return AspectRatio{}, fmt.Errorf("aspect ratio %q is neither a float nor a ratio (1/1, 2/3, ...)", s)
}

// Value returns the ratio as a float.
func (a AspectRatio) Value() float64 {
	if a.den > 0 {
		return float64(a.num) / float64(a.den)
	}
	return a.value
}

func (a AspectRatio) String() string {
	if a.den > 0 {
		return fmt.Sprintf("%d/%d", a.num, a.den)
	}
	return strconv.FormatFloat(a.value, 'g', -1, 64)
}

// Set implements pflag.Value.
func (a *AspectRatio) Set(s string) error {
	parsed, err := ParseAspectRatio(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *AspectRatio) Type() string { return "ratio" }

func (a AspectRatio) MarshalJSON() ([]byte, error) {
	if a.den > 0 {
		return json.Marshal(a.String())
	}
	return json.Marshal(a.value)
}

func (a *AspectRatio) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return a.UnmarshalTOML(v)
}

// UnmarshalTOML accepts a number or a string, the same way the JSON form does.
func (a *AspectRatio) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case float64:
		return a.Set(strconv.FormatFloat(v, 'g', -1, 64))
	case int64:
		return a.Set(strconv.FormatInt(v, 10))
	case string:
		return a.Set(v)
	default:
		return errors.New("aspect ratio is neither a positive float nor a ratio (1/1, 2/3, ...)")
	}
}

// LayoutKind selects how the column count is chosen.
type LayoutKind int

const (
	// LayoutAuto lets the packer choose the grid.
	LayoutAuto LayoutKind = iota
	// LayoutPerRow fixes the number of tiles per row.
	LayoutPerRow
	// LayoutRowRatio spreads the tiles over a fraction of rows, e.g. "1/5".
	LayoutRowRatio
)

// ButtonLayout is the buttons-per-row setting: "auto", a positive integer, or a ratio "n/d".
type ButtonLayout struct {
	Kind LayoutKind
	N    int
	D    int
}

// PerRow returns a layout with n tiles per row.
func PerRow(n int) ButtonLayout {
	return ButtonLayout{Kind: LayoutPerRow, N: n}
}

// RowRatio returns a layout spreading the tiles using the ratio n/d.
func RowRatio(n, d int) ButtonLayout {
	return ButtonLayout{Kind: LayoutRowRatio, N: n, D: d}
}

// ParseButtonLayout parses "auto", "n" or "n/d".
func ParseButtonLayout(s string) (ButtonLayout, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return ButtonLayout{}, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return PerRow(n), nil
	}
	if n, d, ok := parseRatio(s); ok {
		return RowRatio(n, d), nil
	}
	return ButtonLayout{}, fmt.Errorf("buttons per row %q is neither auto, a number (1, 2, 3) nor a ratio (1/1, 2/3, ...)", s)
}

// Columns resolves the layout for count visible tiles. Zero means the packer decides.
func (b ButtonLayout) Columns(count int) int {
	switch b.Kind {
	case LayoutPerRow:
		return b.N
	case LayoutRowRatio:
		total := count * b.N
		if total <= 0 {
			return 0
		}
		return total / min(b.D, total)
	default:
		return 0
	}
}

func (b ButtonLayout) String() string {
	switch b.Kind {
	case LayoutPerRow:
		return strconv.Itoa(b.N)
	case LayoutRowRatio:
		return fmt.Sprintf("%d/%d", b.N, b.D)
	default:
		return "auto"
	}
}

// Set implements pflag.Value.
func (b *ButtonLayout) Set(s string) error {
	parsed, err := ParseButtonLayout(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Type implements pflag.Value.
func (b *ButtonLayout) Type() string { return "layout" }

func (b ButtonLayout) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *ButtonLayout) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return b.UnmarshalTOML(v)
}

// UnmarshalTOML accepts a string or a bare integer.
func (b *ButtonLayout) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return b.Set(v)
	case float64:
		return b.Set(strconv.FormatFloat(v, 'f', -1, 64))
	case int64:
		return b.Set(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("buttons per row must be a string, got %T", v)
	}
}

// Protocol selects how the menu takes over the terminal.
type Protocol string

const (
	// ProtocolLayerShell draws over the whole screen on the alternate buffer.
	ProtocolLayerShell Protocol = "layer-shell"
	// ProtocolXdg is a fullscreen alternate-buffer window.
	ProtocolXdg Protocol = "xdg"
	// ProtocolNone renders inline below the prompt.
	ProtocolNone Protocol = "none"
)

// Protocols lists the accepted protocol names, for completion and help text.
var Protocols = []string{string(ProtocolLayerShell), string(ProtocolXdg), string(ProtocolNone)}

func (p Protocol) String() string { return string(p) }

// Set implements pflag.Value.
func (p *Protocol) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (p *Protocol) Type() string { return "protocol" }

func (p *Protocol) UnmarshalText(text []byte) error {
	switch v := Protocol(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ProtocolLayerShell, ProtocolXdg, ProtocolNone:
		*p = v
		return nil
	default:
		return fmt.Errorf("unknown protocol %q (expected one of %s)", text, strings.Join(Protocols, ", "))
	}
}

func parseRatio(s string) (int, int, bool) {
	n, d, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, false
	}
	num, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil || num <= 0 {
		return 0, 0, false
	}
	den, err := strconv.Atoi(strings.TrimSpace(d))
	if err != nil || den <= 0 {
		return 0, 0, false
	}
	return num, den, true
}
