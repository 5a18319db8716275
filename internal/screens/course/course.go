// Package course implements the course viewer: a curriculum sidebar, the
// scrollable lesson content with quizzes, the final assessment and the
// final project page.
package course

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	model "github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/navigator"
	"github.com/abhisek/aula/internal/quiz"
	"github.com/abhisek/aula/internal/router"
	"github.com/abhisek/aula/internal/screen"
	"github.com/abhisek/aula/internal/ui/components"
	"github.com/abhisek/aula/internal/ui/layout"
	"github.com/abhisek/aula/internal/ui/markdown"
	"github.com/abhisek/aula/internal/ui/theme"
)

// target is what a sidebar row opens.
type target struct {
	mode   navigator.ViewMode
	unit   int
	lesson int
}

type jumpMsg struct{ to target }

// quizEntry is one focusable question on the current page.
type quizEntry struct {
	key      navigator.QuizKey
	question int
}

// CourseScreen shows one course session. It owns the Navigator; starting
// a new course discards both.
type CourseScreen struct {
	nav     *navigator.Navigator
	newForm func() screen.Screen
	md      *markdown.Renderer

	vp             viewport.Model
	menu           components.Menu
	sidebarFocused bool

	entries   []quizEntry
	offsets   []int // first content line of each entry
	quizFocus int

	confirmReset bool
	width        int
	height       int
}

var _ screen.Screen = (*CourseScreen)(nil)

// New creates a viewer for c. newForm builds the screen shown after the
// learner confirms starting a new course; nil disables reset.
func New(c *model.Course, newForm func() screen.Screen) *CourseScreen {
	s := &CourseScreen{
		nav:     navigator.New(c),
		newForm: newForm,
		md:      markdown.New(),
		vp:      viewport.New(viewport.WithWidth(60), viewport.WithHeight(20)),
		width:   layout.MinWidth,
		height:  layout.ContentHeight(layout.MinHeight),
	}
	s.refresh()
	return s
}

// Navigator exposes the session state.
func (s *CourseScreen) Navigator() *navigator.Navigator { return s.nav }

func (s *CourseScreen) Init() tea.Cmd { return nil }

func (s *CourseScreen) Title() string { return s.nav.Course().Title }

// HeaderStatus shows lesson progress in the header.
func (s *CourseScreen) HeaderStatus() string {
	return fmt.Sprintf("%s · %d%%",
		i18n.Td("LessonsProgress", map[string]any{
			"Done":  s.nav.CompletedCount(),
			"Total": s.nav.TotalLessons(),
		}),
		s.nav.Progress())
}

func (s *CourseScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "y", Description: i18n.T("HintYes")},
			{Key: "n", Description: i18n.T("HintNo")},
		}
	}
	if s.sidebarFocused {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: i18n.T("HintMove")},
			{Key: "enter", Description: i18n.T("HintOpen")},
			{Key: "tab", Description: i18n.T("HintContent")},
			{Key: "ctrl+t", Description: i18n.T("HintTheme")},
		}
	}
	hints := []layout.KeyHint{
		{Key: "n/→", Description: i18n.T("HintNext")},
		{Key: "p/←", Description: i18n.T("HintPrevious")},
		{Key: "c", Description: i18n.T("HintContinue")},
		{Key: "tab", Description: i18n.T("HintSidebar")},
	}
	if len(s.entries) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "[/]", Description: i18n.T("HintQuestion")},
			layout.KeyHint{Key: "1-9", Description: i18n.T("HintChoose")},
			layout.KeyHint{Key: "enter", Description: i18n.T("HintCheck")},
			layout.KeyHint{Key: "r", Description: i18n.T("HintRetry")},
		)
	}
	if s.newForm != nil {
		hints = append(hints, layout.KeyHint{Key: "x", Description: i18n.T("HintNewCourse")})
	}
	return append(hints, layout.KeyHint{Key: "ctrl+t", Description: i18n.T("HintTheme")})
}

func (s *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ContentSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.render()
		return s, nil

	case theme.ChangedMsg:
		s.render()
		return s, nil

	case jumpMsg:
		s.open(msg.to)
		s.sidebarFocused = false
		s.moved()
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *CourseScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmReset {
		switch key {
		case "y", "s":
			next := s.newForm()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "n", "esc":
			s.confirmReset = false
			s.render()
		}
		return s, nil
	}

	if key == "tab" {
		s.sidebarFocused = !s.sidebarFocused
		s.menu.Focused = s.sidebarFocused
		return s, nil
	}
	if s.sidebarFocused {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	switch key {
	case "n", "right":
		s.nav.Advance()
		s.moved()
		return s, nil
	case "p", "left":
		if s.nav.CanRetreat() {
			s.nav.Retreat()
			s.moved()
		}
		return s, nil
	case "c":
		s.nav.JumpToNextIncomplete()
		s.moved()
		return s, nil
	case "x", "esc":
		if s.newForm != nil {
			s.confirmReset = true
			s.render()
		}
		return s, nil
	case "[":
		s.focusQuestion(s.quizFocus - 1)
		return s, nil
	case "]":
		s.focusQuestion(s.quizFocus + 1)
		return s, nil
	case "enter":
		if ev, _, ok := s.focused(); ok && ev.CanCheck() {
			ev.Reveal()
			s.render()
		}
		return s, nil
	case "r":
		if ev, _, ok := s.focused(); ok {
			ev.Reset()
			s.render()
		}
		return s, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if ev, q, ok := s.focused(); ok && ev.Select(q, int(key[0]-'1')) {
			s.render()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *CourseScreen) open(t target) {
	switch t.mode {
	case navigator.ModeLesson:
		s.nav.JumpTo(t.unit, t.lesson)
	default:
		s.nav.SetViewMode(t.mode)
	}
}

// moved re-renders after a navigation step and scrolls back to the top.
func (s *CourseScreen) moved() {
	s.quizFocus = 0
	s.refresh()
	s.vp.GotoTop()
}

func (s *CourseScreen) refresh() {
	s.buildMenu()
	s.render()
}

// focused returns the evaluator and question index under the quiz cursor.
func (s *CourseScreen) focused() (*quiz.Evaluator, int, bool) {
	if s.quizFocus < 0 || s.quizFocus >= len(s.entries) {
		return nil, 0, false
	}
	e := s.entries[s.quizFocus]
	ev, ok := s.nav.Quiz(e.key)
	return ev, e.question, ok
}

func (s *CourseScreen) focusQuestion(i int) {
	if len(s.entries) == 0 {
		return
	}
	s.quizFocus = min(max(i, 0), len(s.entries)-1)
	s.render()
	if s.quizFocus < len(s.offsets) {
		s.vp.SetYOffset(s.offsets[s.quizFocus])
	}
}

func (s *CourseScreen) buildMenu() {
	c := s.nav.Course()
	var items []components.MenuItem
	active := -1

	add := func(item components.MenuItem, t target) {
		if item.Active {
			active = len(items)
		}
		if !item.Disabled {
			item.Action = func() tea.Cmd {
				return func() tea.Msg { return jumpMsg{to: t} }
			}
		}
		items = append(items, item)
	}

	for u, unit := range c.Units {
		add(components.MenuItem{
			Label:    i18n.Td("UnitN", map[string]any{"N": u + 1}) + " · " + unit.Title,
			Disabled: true,
		}, target{})
		for l, lesson := range unit.Lessons {
			marker := "○"
			if s.nav.IsCompleted(u, l) {
				marker = "✓"
			}
			add(components.MenuItem{
				Label:  lesson.Title,
				Marker: marker,
				Active: s.nav.IsActive(u, l),
			}, target{mode: navigator.ModeLesson, unit: u, lesson: l})
		}
	}
	add(components.MenuItem{
		Label:  i18n.T("FinalAssessment"),
		Marker: "★",
		Active: s.nav.Mode() == navigator.ModeFinalAssessment,
	}, target{mode: navigator.ModeFinalAssessment})
	add(components.MenuItem{
		Label:  i18n.T("FinalProject"),
		Marker: "★",
		Active: s.nav.Mode() == navigator.ModeFinalProject,
	}, target{mode: navigator.ModeFinalProject})

	selected := s.menu.Selected
	s.menu = components.NewMenu(items)
	s.menu.Focused = s.sidebarFocused
	if s.sidebarFocused {
		s.menu.Select(selected)
	} else if active >= 0 {
		s.menu.Select(active)
	}
}
