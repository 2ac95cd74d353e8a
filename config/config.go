package config

import (
	"actionmenu/log"
	"actionmenu/ui/layout"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName names the config directories.
	AppName = "actionmenu"
	// StdinPath is the layout path that means "read standard input".
	StdinPath = "-"

	stdinName = "<stdin>"
)

// LayoutFileNames are tried in order in every search directory.
var LayoutFileNames = []string{"layout.json", "layout", "layout.toml"}

// Defaults, in terminal cells.
const (
	DefaultMargin        = 2
	DefaultColumnSpacing = 2
	DefaultRowSpacing    = 1
	DefaultCellAspect    = 2.0
	DefaultDelayMs       = 100
)

// Config is the menu configuration read from the layout file.
type Config struct {
	Margin       int  `json:"margin" toml:"margin"`
	MarginLeft   *int `json:"margin-left,omitempty" toml:"margin-left"`
	MarginRight  *int `json:"margin-right,omitempty" toml:"margin-right"`
	MarginTop    *int `json:"margin-top,omitempty" toml:"margin-top"`
	MarginBottom *int `json:"margin-bottom,omitempty" toml:"margin-bottom"`

	ColumnSpacing int `json:"column-spacing" toml:"column-spacing"`
	RowSpacing    int `json:"row-spacing" toml:"row-spacing"`
	// ButtonAspectRatio is the visual width ÷ height of a tile. Nil lets tiles fill their cell.
	ButtonAspectRatio *AspectRatio `json:"button-aspect-ratio,omitempty" toml:"button-aspect-ratio"`
	// CellAspect is the height ÷ width of one terminal cell.
	CellAspect float64 `json:"cell-aspect" toml:"cell-aspect"`

	DelayCommandMs   int          `json:"delay-command-ms" toml:"delay-command-ms"`
	Protocol         Protocol     `json:"protocol" toml:"protocol"`
	ButtonsPerRow    ButtonLayout `json:"buttons-per-row" toml:"buttons-per-row"`
	CloseOnLostFocus bool         `json:"close-on-lost-focus" toml:"close-on-lost-focus"`
	ShowKeybinds     bool         `json:"show-keybinds" toml:"show-keybinds"`
	NoVersionInfo    bool         `json:"no-version-info" toml:"no-version-info"`
	// Style is the path of the theme file.
	Style string `json:"style,omitempty" toml:"style"`

	Buttons []Button `json:"buttons" toml:"buttons"`

	// Path is where the config was read from, or "" for built-in defaults.
	Path string `json:"-" toml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Margin:         DefaultMargin,
		ColumnSpacing:  DefaultColumnSpacing,
		RowSpacing:     DefaultRowSpacing,
		CellAspect:     DefaultCellAspect,
		DelayCommandMs: DefaultDelayMs,
		Protocol:       ProtocolLayerShell,
	}
}

func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Buttons *[]Button `json:"buttons"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Buttons == nil {
		return errors.New("missing field `buttons`")
	}
	c.Buttons = *aux.Buttons
	return nil
}

// Validate rejects values the layout cannot use.
func (c *Config) Validate() error {
	if c.ColumnSpacing < 0 {
		return fmt.Errorf("column-spacing must not be negative, got %d", c.ColumnSpacing)
	}
	if c.RowSpacing < 0 {
		return fmt.Errorf("row-spacing must not be negative, got %d", c.RowSpacing)
	}
	if c.DelayCommandMs < 0 {
		return fmt.Errorf("delay-command-ms must not be negative, got %d", c.DelayCommandMs)
	}
	if !(c.CellAspect > 0) {
		return fmt.Errorf("cell-aspect must be positive, got %v", c.CellAspect)
	}
	if c.ButtonAspectRatio != nil && c.ButtonAspectRatio.Value() < 0 {
		return errors.New("button-aspect-ratio cannot be negative")
	}
	return nil
}

// Margins resolves the per-side margins, falling back to Margin for unset sides.
func (c *Config) Margins() layout.Margins {
	side := func(v *int) int {
		if v != nil {
			return max(*v, 0)
		}
		return max(c.Margin, 0)
	}
	return layout.Margins{
		Top:    side(c.MarginTop),
		Right:  side(c.MarginRight),
		Bottom: side(c.MarginBottom),
		Left:   side(c.MarginLeft),
	}
}

// VisibleButtons returns the buttons that take part in the grid, in order.
func (c *Config) VisibleButtons() []Button {
	visible := make([]Button, 0, len(c.Buttons))
	for _, b := range c.Buttons {
		if !b.Hidden {
			visible = append(visible, b)
		}
	}
	return visible
}

// LayoutConfig converts the config to layout properties for count visible tiles. The visual
// aspect ratio is scaled by CellAspect to get a ratio in cell units.
func (c *Config) LayoutConfig(count int) layout.Config {
	cfg := layout.Config{
		ColumnSpacing: float64(c.ColumnSpacing),
		RowSpacing:    float64(c.RowSpacing),
		Columns:       c.ButtonsPerRow.Columns(count),
	}
	if c.ButtonAspectRatio != nil {
		cfg.AspectRatio = c.ButtonAspectRatio.Value() * c.CellAspect
		cfg.AspectRatioSet = true
	}
	return cfg
}

// FindButton returns the first button bound to key.
func (c *Config) FindButton(key string) (Button, bool) {
	for _, b := range c.Buttons {
		if b.Keybind == key {
			return b, true
		}
	}
	return Button{}, false
}

// SearchDirs returns the directories searched for config files, in order.
func SearchDirs() []string {
	configHome, err := os.UserConfigDir()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			configHome = filepath.Join(home, ".config")
		} else {
			configHome = filepath.Join("~", ".config")
		}
	}
	return []string{
		filepath.Join(configHome, AppName),
		filepath.Join(configHome, "wleave"),
		filepath.Join("/etc", AppName),
		filepath.Join("/usr/local/etc", AppName),
	}
}

// FindInSearchPath returns the first existing file called name in dirs.
func FindInSearchPath(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		full := filepath.Join(dir, name)
		if isFile(full) {
			log.InfoLog.Printf("file found in: %s", full)
			return full, nil
		}
		log.Logger.Debugf("no file found in: %s", full)
	}
	return "", &NotInSearchPathError{Name: name, Dirs: dirs}
}

// ResolveLayoutPath returns the layout file to read: the given path if set, otherwise the first
// layout file found in dirs.
func ResolveLayoutPath(given string, dirs []string) (string, error) {
	if given != "" {
		return givenFile(given)
	}
	var err error
	for _, name := range LayoutFileNames {
		var path string
		if path, err = FindInSearchPath(name, dirs); err == nil {
			return path, nil
		}
	}
	return "", err
}

// LoadConfig reads the layout from given ("" to search, "-" for stdin).
func LoadConfig(given string, stdin io.Reader) (*Config, error) {
	if given == StdinPath {
		return ParseConfig(stdin, stdinName)
	}

	path, err := ResolveLayoutPath(given, SearchDirs())
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	return ParseConfig(f, path)
}

// ParseConfig decodes a layout. Files ending in .toml are TOML; everything else is JSON in either
// the current object format or the legacy stream of button objects.
func ParseConfig(r io.Reader, path string) (*Config, error) {
	log.InfoLog.Printf("reading options from: %s", path)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = parseTOML(string(data), path)
	} else {
		cfg, err = parseJSON(data, path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{Path: path, Source: string(data), Err: err}
	}
	cfg.Path = path
	return cfg, nil
}

func parseJSON(data []byte, path string) (*Config, error) {
	cfg := DefaultConfig()
	newErr := json.Unmarshal(data, cfg)
	if newErr == nil {
		log.InfoLog.Printf("using the JSON layout format")
		return cfg, nil
	}
	parseErr := jsonParseError(newErr, data, path, -1)

	buttons, legacyErr := parseLegacy(data)
	if legacyErr != nil {
		log.ErrorLog.Printf("%v", parseErr)
		return nil, parseErr
	}

	log.Logger.Debugf("the JSON format could not be parsed: %v", parseErr)
	log.InfoLog.Printf("using the backwards-compatible layout format")
	if !log.Verbose() {
		log.WarningLog.Printf("if this is not intended, run with %s=debug to show the JSON parse error", log.LevelEnv)
	}

	cfg = DefaultConfig()
	cfg.Buttons = buttons
	return cfg, nil
}

// parseLegacy decodes a stream of concatenated button objects.
func parseLegacy(data []byte) ([]Button, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var buttons []Button
	for {
		var b Button
		err := dec.Decode(&b)
		if errors.Is(err, io.EOF) {
			return buttons, nil
		}
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, b)
	}
}

// jsonParseError attaches a position to a decoding error. fallback is used when the error
// carries no offset; -1 means the end of the input.
func jsonParseError(err error, data []byte, path string, fallback int64) *ParseError {
	src := string(data)
	offset := fallback
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset < 0 {
		offset = int64(len(src))
	}
	line, column := lineColumn(src, offset)
	return &ParseError{Path: path, Line: line, Column: column, Source: src, Err: err}
}

func parseTOML(src, path string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.Decode(src, cfg)
	if err != nil {
		perr := &ParseError{Path: path, Source: src, Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Column = tomlErr.Position.Col
		}
		return nil, perr
	}
	if !meta.IsDefined("buttons") {
		return nil, &ParseError{Path: path, Source: src, Err: errors.New("missing field `buttons`")}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.WarningLog.Printf("ignoring unknown keys in %s: %v", path, undecoded)
	}
	log.InfoLog.Printf("using the TOML layout format")
	return cfg, nil
}

func givenFile(path string) (string, error) {
	if !isFile(path) {
		return "", &NotAFileError{Path: path}
	}
	return path, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
