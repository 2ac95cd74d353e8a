package ui

import (
	"strings"
	"time"

	"actionmenu/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var separator = " • "
var verticalSeparator = " │ "

var menuOptions = []keys.KeyName{keys.KeyEnter, keys.KeyNext, keys.KeyCopy, keys.KeyQuit}

// Menu is the footer line: key hints, the last launched action and the version label.
type Menu struct {
	options []keys.KeyName
	width   int

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName

	version     string
	showHints   bool
	showVersion bool

	lastLabel string
	lastAt    time.Time
}

// NewMenu creates a footer showing version unless it is empty.
func NewMenu(version string) *Menu {
	return &Menu{
		options:     menuOptions,
		keyDown:     -1,
		version:     version,
		showHints:   true,
		showVersion: version != "",
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetSize sets the width of the footer. The text is centered within it.
func (m *Menu) SetSize(width int) {
	m.width = width
}

func (m *Menu) SetShowHints(show bool) {
	m.showHints = show
}

func (m *Menu) SetShowVersion(show bool) {
	m.showVersion = show && m.version != ""
}

// SetLastLaunch records the most recently launched action for display.
func (m *Menu) SetLastLaunch(label string, at time.Time) {
	m.lastLabel = label
	m.lastAt = at
}

// View renders the footer at the given time.
func (m *Menu) View(s Styles, now time.Time) string {
	var groups []string

	if m.showHints {
		var hints strings.Builder
		for i, k := range m.options {
			help := keys.GlobalkeyBindings[k].Help()
			keyStyle, descStyle := s.HintKey, s.HintDesc
			if m.keyDown == k {
				keyStyle, descStyle = s.HintDown, s.HintDown
			}
			hints.WriteString(keyStyle.Render(help.Key))
			hints.WriteString(" ")
			hints.WriteString(descStyle.Render(help.Desc))
			if i != len(m.options)-1 {
				hints.WriteString(s.Separator.Render(separator))
			}
		}
		groups = append(groups, hints.String())
	}
	if m.lastLabel != "" {
		groups = append(groups, s.HintDesc.Render("last: "+m.lastLabel+" "+FormatRelativeTime(m.lastAt, now)))
	}
	if m.showVersion {
		groups = append(groups, s.Version.Render(m.version))
	}
	if len(groups) == 0 || m.width <= 0 {
		return ""
	}

	text := strings.Join(groups, s.Separator.Render(verticalSeparator))
	if lipgloss.Width(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width), ellipsis)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, text)
}
