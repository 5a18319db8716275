// Package help shows every key binding of the screen it was opened from.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/screen"
	"github.com/abhisek/aula/internal/ui/components"
	"github.com/abhisek/aula/internal/ui/layout"
	"github.com/abhisek/aula/internal/ui/theme"
)

// HelpScreen lists key bindings. The app pushes it on top of the current
// screen and pops it on esc.
type HelpScreen struct {
	hints []layout.KeyHint
}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a help screen for the given bindings.
func New(hints []layout.KeyHint) *HelpScreen {
	return &HelpScreen{hints: hints}
}

// Hints returns the bindings shown.
func (h *HelpScreen) Hints() []layout.KeyHint { return h.hints }

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }

func (h *HelpScreen) Title() string { return i18n.T("HelpTitle") }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: i18n.T("HintBack")}}
}

func (h *HelpScreen) View(width, height int) string {
	keyWidth := 0
	for _, k := range h.hints {
		keyWidth = max(keyWidth, lipgloss.Width(k.Key))
	}
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(keyWidth + 3)

	rows := make([]string, 0, len(h.hints)+2)
	rows = append(rows, theme.Title.Render(i18n.T("HelpTitle")), "")
	for _, k := range h.hints {
		rows = append(rows, keyStyle.Render(k.Key)+theme.Body.Render(k.Description))
	}

	card := components.Card(strings.Join(rows, "\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
