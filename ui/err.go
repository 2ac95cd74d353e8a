package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ErrBox shows the most recent error on one line.
type ErrBox struct {
	width int
	err   error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width int) {
	e.width = width
}

// View renders the error centered in the box width, or "" when there is none.
func (e *ErrBox) View(s Styles) string {
	if e.err == nil || e.width <= 0 {
		return ""
	}
	// Multi-line errors are flattened so the box stays one line tall.
	msg := strings.Join(strings.Fields(e.err.Error()), " ")
	msg = truncate.StringWithTail(msg, uint(e.width), ellipsis)
	return lipgloss.PlaceHorizontal(e.width, lipgloss.Center, s.Error.Render(msg))
}
