package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/ui/theme"
)

// Choice is a labelled single-choice field cycled with left/right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a choice field with the first option selected.
func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options}
}

// Update cycles the selection on left/right (h/l) when focused.
func (c Choice) Update(msg tea.Msg) Choice {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !c.Focused || len(c.Options) == 0 {
		return c
	}
	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}
	return c
}

// View renders the label and the options, highlighting the selected one.
func (c Choice) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	if c.Focused {
		label = label.Foreground(theme.Primary)
	}

	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		switch {
		case i == c.Selected && c.Focused:
			parts[i] = theme.Selected.Render("‹ " + opt + " ›")
		case i == c.Selected:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(opt)
		default:
			parts[i] = theme.Neutral.Render(opt)
		}
	}
	return label.Render(c.Label) + "\n" + strings.Join(parts, theme.Neutral.Render(" · "))
}
