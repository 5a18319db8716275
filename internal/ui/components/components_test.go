package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/quiz"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	default:
		r := []rune(s)
		return tea.KeyPressMsg{Code: r[0], Text: s}
	}
}

type pickedMsg int

func TestMenuSkipsHeadings(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Unit 1", Disabled: true},
		{Label: "Lesson 1", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg(1) } }},
		{Label: "Unit 2", Disabled: true},
		{Label: "Lesson 2", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg(3) } }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(keyPress("down"))
	if m.Selected != 3 {
		t.Fatalf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(keyPress("down"))
	if m.Selected != 3 {
		t.Fatalf("down at end should stay, got %d", m.Selected)
	}
	m, _ = m.Update(keyPress("up"))
	if m.Selected != 1 {
		t.Fatalf("after up = %d, want 1", m.Selected)
	}

	_, cmd := m.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("expected action command")
	}
	if got := cmd(); got != pickedMsg(1) {
		t.Fatalf("action msg = %v", got)
	}
}

func TestMenuSelectIgnoresHeadings(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "h", Disabled: true}, {Label: "a"}})
	m.Select(0)
	if m.Selected != 1 {
		t.Errorf("Select on a heading should be ignored, got %d", m.Selected)
	}
	m.Select(5)
	if m.Selected != 1 {
		t.Errorf("out of range Select should be ignored, got %d", m.Selected)
	}
}

func TestMenuViewScrollsToCursor(t *testing.T) {
	items := make([]MenuItem, 10)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	m := NewMenu(items)
	m.Focused = true
	m.Select(8)

	view := m.View(20, 3)
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "▸") {
		t.Errorf("cursor row should be visible at the bottom:\n%s", view)
	}
}

func TestChoiceCycles(t *testing.T) {
	c := NewChoice("Level", []string{"a", "b", "c"})
	c = c.Update(keyPress("right"))
	if c.Selected != 0 {
		t.Fatal("unfocused choice should ignore keys")
	}

	c.Focused = true
	c = c.Update(keyPress("left"))
	if c.Selected != 2 {
		t.Errorf("left from first should wrap to last, got %d", c.Selected)
	}
	c = c.Update(keyPress("right"))
	if c.Selected != 0 {
		t.Errorf("right from last should wrap to first, got %d", c.Selected)
	}
}

func TestButtonPressed(t *testing.T) {
	b := NewButton("Go")
	if b.Pressed(keyPress("enter")) {
		t.Error("unfocused button should not press")
	}
	b.Focused = true
	if !b.Pressed(keyPress("enter")) {
		t.Error("focused button should press on enter")
	}
	b.Disabled = true
	if b.Pressed(keyPress("enter")) {
		t.Error("disabled button should not press")
	}
}

func TestProgressBarClamps(t *testing.T) {
	full := NewProgressBar("", 150, true, 20).View()
	if !strings.Contains(full, "100%") {
		t.Errorf("expected clamp to 100%%, got %q", full)
	}
	if strings.Contains(full, "░") {
		t.Errorf("full bar should have no empty cells: %q", full)
	}
	empty := NewProgressBar("", -5, true, 20).View()
	if !strings.Contains(empty, "0%") || strings.Contains(empty, "█") {
		t.Errorf("expected empty bar, got %q", empty)
	}
}

func TestMultiChoiceView(t *testing.T) {
	ev := quiz.New([]course.QuizQuestion{
		{Question: "Pick B", Options: []string{"first", "second"}, CorrectAnswerIndex: 1},
	})
	mc := MultiChoice{Eval: ev, Index: 0, Number: 1, Focused: true, MaxWidth: 40}

	// Styles may wrap each rune in its own escape sequence.
	view := ansi.Strip(mc.View())
	for _, want := range []string{"1. Pick B", "A) first", "B) second", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	ev.Select(0, 0)
	ev.Reveal()
	view = ansi.Strip(mc.View())
	if !strings.Contains(view, "✗ A) first") || !strings.Contains(view, "✓ B) second") {
		t.Errorf("revealed view should mark incorrect and missed options:\n%s", view)
	}

	if (MultiChoice{Eval: ev, Index: 3}).View() != "" {
		t.Error("out of range question should render nothing")
	}
}
