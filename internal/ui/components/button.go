package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aula/internal/ui/theme"
)

// Button is a focusable button.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// Pressed reports whether msg activates the button.
func (b Button) Pressed(msg tea.Msg) bool {
	if !b.Focused || b.Disabled {
		return false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	return ok && (kmsg.String() == "enter" || kmsg.String() == "space")
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
	case b.Focused:
		return theme.ButtonActive.Render(label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}
