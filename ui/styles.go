package ui

import (
	"actionmenu/config"
	"actionmenu/inspect"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from a theme.
type Styles struct {
	Theme *config.Theme

	// Tile borders
	Border       lipgloss.Border
	Circular     lipgloss.Border
	Tile         lipgloss.Style
	TileFocused  lipgloss.Style
	TileHovered  lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Icon         lipgloss.Style
	Keybind      lipgloss.Style

	// Footer and messages
	HintKey     lipgloss.Style
	HintDesc    lipgloss.Style
	HintDown    lipgloss.Style
	Separator   lipgloss.Style
	Version     lipgloss.Style
	Error       lipgloss.Style
	WarningBox  lipgloss.Style
	WarningText lipgloss.Style
}

// NewStyles builds the styles for theme. A nil theme means the built-in one.
func NewStyles(theme *config.Theme) Styles {
	if theme == nil {
		theme = config.DefaultTheme()
	}

	fg := color(theme.Foreground)
	accent := color(theme.Accent)
	muted := color(theme.Muted)

	base := lipgloss.NewStyle().Foreground(fg)
	if theme.Background != "" {
		base = base.Background(color(theme.Background))
	}

	border := BorderFor(theme.Border)
	tile := lipgloss.NewStyle().Border(border).BorderForeground(muted)

	s := Styles{
		Theme: theme,

		Border:       border,
		Circular:     lipgloss.RoundedBorder(),
		Tile:         tile,
		TileFocused:  tile.BorderForeground(accent),
		TileHovered:  tile.BorderForeground(fg),
		Label:        base,
		LabelFocused: base.Foreground(accent).Bold(true),
		Icon:         base,
		Keybind:      lipgloss.NewStyle().Foreground(muted),

		HintKey:     lipgloss.NewStyle().Foreground(muted),
		HintDesc:    lipgloss.NewStyle().Foreground(muted).Faint(true),
		HintDown:    lipgloss.NewStyle().Foreground(accent).Underline(true),
		Separator:   lipgloss.NewStyle().Foreground(muted).Faint(true),
		Version:     lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(color(theme.Error)),
		WarningBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(color(theme.Error)).Padding(0, 1),
		WarningText: lipgloss.NewStyle().Foreground(color(theme.Error)).Bold(true),
	}

	inspect.RegisterStyle(styleTile, s.Tile)
	inspect.RegisterStyle(styleTileFocused, s.TileFocused)
	inspect.RegisterStyle(styleTileHovered, s.TileHovered)
	inspect.RegisterStyle("footer.hint", s.HintKey)
	inspect.RegisterStyle("error", s.Error)
	return s
}

// Names the tile styles are registered under for inspection.
const (
	styleTile        = "tile"
	styleTileFocused = "tile.focused"
	styleTileHovered = "tile.hovered"
)

// BorderFor maps a theme border shape to a lipgloss border. Unknown shapes get the rounded one.
func BorderFor(shape string) lipgloss.Border {
	switch shape {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func color(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
