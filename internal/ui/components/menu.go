package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/ui/theme"
)

// MenuItem is a single row in a Menu. Disabled rows are section headings:
// they render but the cursor skips them.
type MenuItem struct {
	Label    string
	Marker   string // drawn before the label, e.g. a completion check
	Active   bool   // highlighted as the current location
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical, scrollable navigation list.
type Menu struct {
	Items    []MenuItem
	Selected int
	Focused  bool
}

// NewMenu creates a new menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.firstEnabled()
	return m
}

func (m Menu) firstEnabled() int {
	for i, item := range m.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// Select moves the cursor to index i when it is an enabled item.
func (m *Menu) Select(i int) {
	if i >= 0 && i < len(m.Items) && !m.Items[i].Disabled {
		m.Selected = i
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "home", "g":
		m.Selected = m.firstEnabled()
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders at most height rows, scrolled so the cursor is visible.
func (m Menu) View(width, height int) string {
	if height <= 0 || len(m.Items) == 0 {
		return ""
	}

	start := 0
	if m.Selected >= height {
		start = m.Selected - height + 1
	}
	end := start + height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(i, width))
	}
	return strings.Join(lines, "\n")
}

func (m Menu) renderItem(i, width int) string {
	item := m.Items[i]
	if item.Disabled {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Width(width).
			MaxWidth(width).
			Render(item.Label)
	}

	cursor := "  "
	if i == m.Selected && m.Focused {
		cursor = "▸ "
	}
	marker := item.Marker
	if marker == "" {
		marker = " "
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == m.Selected && m.Focused:
		style = theme.Selected
	case item.Active:
		style = lipgloss.NewStyle().Foreground(theme.Primary)
	}
	return style.Width(width).MaxWidth(width).Render(cursor + marker + " " + item.Label)
}
