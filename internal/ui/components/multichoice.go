package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/quiz"
	"github.com/abhisek/aula/internal/ui/theme"
)

// MultiChoice renders one question of a quiz from its evaluator's state.
type MultiChoice struct {
	Eval     *quiz.Evaluator
	Index    int  // question index within the quiz
	Number   int  // 1-based number shown to the learner
	Focused  bool // receives option keys
	MaxWidth int
}

var optionMarks = map[quiz.OptionState]string{
	quiz.Unselected: "○",
	quiz.Selected:   "●",
	quiz.Correct:    "✓",
	quiz.Incorrect:  "✗",
	quiz.Missed:     "✓",
	quiz.Neutral:    "○",
}

func optionStyle(s quiz.OptionState) lipgloss.Style {
	switch s {
	case quiz.Selected:
		return theme.Selected
	case quiz.Correct:
		return theme.Correct
	case quiz.Incorrect:
		return theme.Incorrect
	case quiz.Missed:
		return theme.Missed
	case quiz.Neutral:
		return theme.Neutral
	default:
		return theme.Unselected
	}
}

// View renders the question text followed by its labelled options.
func (m MultiChoice) View() string {
	qs := m.Eval.Questions()
	if m.Index < 0 || m.Index >= len(qs) {
		return ""
	}
	q := qs[m.Index]

	cursor := "  "
	if m.Focused {
		cursor = "▸ "
	}
	width := m.MaxWidth
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(fmt.Sprintf("%s%d. %s", cursor, m.Number, q.Question)))
	b.WriteString("\n")

	for i, opt := range q.Options {
		state := m.Eval.OptionState(m.Index, i)
		line := fmt.Sprintf("    %s %s) %s", optionMarks[state], quiz.OptionLabel(i), opt)
		b.WriteString(optionStyle(state).Width(width).Render(line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
