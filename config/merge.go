package config

import (
	"actionmenu/log"
	"fmt"
)

// Overrides holds the values given on the command line. A nil field was not given and leaves the
// config value alone.
type Overrides struct {
	Margin       *int
	MarginLeft   *int
	MarginRight  *int
	MarginTop    *int
	MarginBottom *int

	ColumnSpacing     *int
	RowSpacing        *int
	ButtonAspectRatio *AspectRatio
	CellAspect        *float64
	DelayCommandMs    *int
	Protocol          *Protocol
	ButtonsPerRow     *ButtonLayout
	CloseOnLostFocus  *bool
	ShowKeybinds      *bool
	NoVersionInfo     *bool
	Style             *string
}

// Merge applies the overrides to c, logging where every value came from.
func (c *Config) Merge(o Overrides) {
	mergeOptional("margin-top", &c.MarginTop, o.MarginTop)
	mergeOptional("margin-bottom", &c.MarginBottom, o.MarginBottom)
	mergeOptional("margin-left", &c.MarginLeft, o.MarginLeft)
	mergeOptional("margin-right", &c.MarginRight, o.MarginRight)
	mergeField("margin", &c.Margin, o.Margin)
	mergeField("protocol", &c.Protocol, o.Protocol)
	mergeField("column-spacing", &c.ColumnSpacing, o.ColumnSpacing)
	mergeField("row-spacing", &c.RowSpacing, o.RowSpacing)
	mergeOptional("button-aspect-ratio", &c.ButtonAspectRatio, o.ButtonAspectRatio)
	mergeField("cell-aspect", &c.CellAspect, o.CellAspect)
	mergeField("show-keybinds", &c.ShowKeybinds, o.ShowKeybinds)
	mergeField("close-on-lost-focus", &c.CloseOnLostFocus, o.CloseOnLostFocus)
	mergeField("buttons-per-row", &c.ButtonsPerRow, o.ButtonsPerRow)
	mergeField("no-version-info", &c.NoVersionInfo, o.NoVersionInfo)
	mergeField("delay-command-ms", &c.DelayCommandMs, o.DelayCommandMs)
	mergeField("style", &c.Style, o.Style)
}

func mergeField[T any](key string, dst *T, arg *T) {
	if arg != nil {
		log.InfoLog.Printf("%q specified from args: %v", key, *arg)
		*dst = *arg
		return
	}
	log.InfoLog.Printf("%q specified from config: %v", key, *dst)
}

// mergeOptional is mergeField for settings that may be unset in the config.
func mergeOptional[T any](key string, dst **T, arg *T) {
	if arg != nil {
		log.InfoLog.Printf("%q specified from args: %v", key, *arg)
		v := *arg
		*dst = &v
		return
	}
	log.InfoLog.Printf("%q specified from config: %s", key, optional(*dst))
}

func optional[T any](v *T) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprint(*v)
}
