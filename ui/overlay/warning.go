package overlay

import (
	"github.com/charmbracelet/lipgloss"
)

// WarningOverlay is a small box telling the user the terminal cannot fit the menu.
type WarningOverlay struct {
	// Title displayed at the top
	title string
	// Detail line under the title
	status string
}

// NewWarningOverlay creates a warning box with the given title.
func NewWarningOverlay(title string) *WarningOverlay {
	return &WarningOverlay{title: title}
}

// SetStatus updates the detail line.
func (w *WarningOverlay) SetStatus(status string) {
	w.status = status
}

// Render renders the box with the given frame and text styles.
func (w *WarningOverlay) Render(box, text lipgloss.Style) string {
	content := text.Render(w.title)
	if w.status != "" {
		content += "\n" + w.status
	}
	return box.Render(content)
}

// Center places block in the middle of a width x height area.
func Center(width, height int, block string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
