package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/ui/theme"
)

// ContentWidth returns the inner width used for centered cards such as the
// preferences form.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) and padding (4).
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Banner renders a single-line highlighted message, used for errors and
// confirmations.
func Banner(msg string, fg lipgloss.Style, cw int) string {
	return fg.
		Width(cw).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(fg.GetForeground()).
		PaddingLeft(1).
		Render(msg)
}
