package theme

import (
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Mode selects the dark or light palette.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Palette is the set of colors a mode uses.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Violet and slate, after the web app's dark and light themes.
var palettes = map[Mode]Palette{
	Dark: {
		Primary:   lipgloss.Color("#8B5CF6"), // Violet 500
		Secondary: lipgloss.Color("#6366F1"), // Indigo 500
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F1F5F9"),
		TextDim:   lipgloss.Color("#94A3B8"),
		Bg:        lipgloss.Color("#020617"),
		BgCard:    lipgloss.Color("#0F172A"),
		Border:    lipgloss.Color("#334155"),
	},
	Light: {
		Primary:   lipgloss.Color("#7C3AED"), // Violet 600
		Secondary: lipgloss.Color("#4F46E5"),
		Accent:    lipgloss.Color("#D97706"),
		Success:   lipgloss.Color("#16A34A"),
		Error:     lipgloss.Color("#E11D48"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#64748B"),
		Bg:        lipgloss.Color("#F8FAFC"),
		BgCard:    lipgloss.Color("#FFFFFF"),
		Border:    lipgloss.Color("#CBD5E1"),
	},
}

// Active colors. Apply swaps them.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Heading  lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Missed     lipgloss.Style
	Neutral    lipgloss.Style
	ErrorText  lipgloss.Style
)

// Components
var (
	Card           lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

var current = Dark

func init() {
	Apply(Dark)
}

// ChangedMsg is broadcast after the theme changes so screens can
// re-render cached content.
type ChangedMsg struct {
	Mode Mode
}

// Current returns the active mode.
func Current() Mode {
	return current
}

// Apply switches the palette and rebuilds every style. Unknown modes fall
// back to Dark.
func Apply(m Mode) {
	p, ok := palettes[m]
	if !ok {
		m, p = Dark, palettes[Dark]
	}
	current = m

	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	Bg, BgCard, Border = p.Bg, p.BgCard, p.Border

	build()
}

// Toggle flips between dark and light and returns a command announcing
// the change.
func Toggle() tea.Cmd {
	next := Light
	if current == Light {
		next = Dark
	}
	Apply(next)
	return func() tea.Msg { return ChangedMsg{Mode: next} }
}

func build() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Missed = lipgloss.NewStyle().
		Foreground(Success).
		Underline(true)

	Neutral = lipgloss.NewStyle().
		Foreground(TextDim)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
