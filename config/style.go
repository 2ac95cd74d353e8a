package config

import (
	"actionmenu/log"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// StyleFileName is the theme file looked up in the search directories.
const StyleFileName = "style.toml"

// Border shapes accepted by the theme.
var BorderShapes = []string{"rounded", "normal", "thick", "double", "hidden"}

// Theme holds the colors and border shape of the menu. Colors are anything lipgloss accepts: hex
// ("#7D56F4") or ANSI numbers ("12").
type Theme struct {
	Border     string `toml:"border" json:"border"`
	Foreground string `toml:"foreground" json:"foreground"`
	Background string `toml:"background" json:"background,omitempty"`
	// Accent colors the focused tile.
	Accent string `toml:"accent" json:"accent"`
	// Muted colors keybind labels, the footer and the version label.
	Muted string `toml:"muted" json:"muted"`
	Error string `toml:"error" json:"error"`

	// Path is where the theme was read from, or "" for the built-in theme.
	Path string `toml:"-" json:"-"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		Border:     "rounded",
		Foreground: "#dddddd",
		Accent:     "#7D56F4",
		Muted:      "#7a7a7a",
		Error:      "#ff5f5f",
	}
}

// LoadTheme reads the theme from given, or searches for style.toml when given is empty. A theme
// that is not found in the search path is not an error: the built-in theme is used.
func LoadTheme(given string) (*Theme, error) {
	var (
		path string
		err  error
	)
	if given != "" {
		path, err = givenFile(given)
	} else {
		path, err = FindInSearchPath(StyleFileName, SearchDirs())
		var notFound *NotInSearchPathError
		if errors.As(err, &notFound) {
			log.InfoLog.Printf("no theme found, using the built-in one")
			return DefaultTheme(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	theme, err := ParseTheme(string(data), path)
	if err != nil {
		return nil, err
	}
	return theme, nil
}

// ParseTheme decodes a theme. Keys left out keep their built-in values.
func ParseTheme(src, path string) (*Theme, error) {
	theme := DefaultTheme()
	meta, err := toml.Decode(src, theme)
	if err != nil {
		perr := &ParseError{Path: path, Source: src, Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Column = tomlErr.Position.Col
		}
		return nil, perr
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.WarningLog.Printf("ignoring unknown theme keys in %s: %v", path, undecoded)
	}
	if !slices.Contains(BorderShapes, theme.Border) {
		return nil, &ParseError{Path: path, Source: src,
			Err: fmt.Errorf("unknown border %q (expected one of %s)", theme.Border, strings.Join(BorderShapes, ", "))}
	}
	theme.Path = path
	return theme, nil
}
