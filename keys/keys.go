package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyNext
	KeyPrev

	KeyEnter
	KeyCopy
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"left":      KeyLeft,
	"h":         KeyLeft,
	"right":     KeyRight,
	"l":         KeyRight,
	"tab":       KeyNext,
	"shift+tab": KeyPrev,
	"enter":     KeyEnter,
	" ":         KeyEnter,
	"ctrl+y":    KeyCopy,
	"esc":       KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	KeyPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵", "run"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy action"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "close"),
	),
}

// Lookup returns the key bound to the key string s.
func Lookup(s string) (KeyName, bool) {
	name, ok := GlobalKeyStringsMap[s]
	return name, ok
}
