// Package app is the root Bubble Tea model: it owns the screen router,
// the frame (header, footer, size guard) and app-wide keys.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/coursegen"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/logger"
	"github.com/abhisek/aula/internal/router"
	"github.com/abhisek/aula/internal/screen"
	coursescreen "github.com/abhisek/aula/internal/screens/course"
	"github.com/abhisek/aula/internal/screens/form"
	"github.com/abhisek/aula/internal/screens/help"
	"github.com/abhisek/aula/internal/screens/welcome"
	"github.com/abhisek/aula/internal/ui/layout"
	"github.com/abhisek/aula/internal/ui/theme"
)

// Options configures a TUI session.
type Options struct {
	// Generator produces courses from the form. Required unless Course is
	// set.
	Generator coursegen.Generator

	// Course, when set, opens the viewer directly. Resetting still leads
	// to the form when a Generator is available.
	Course *course.Course

	// Preferences prefill the form.
	Preferences *course.Preferences

	// SkipWelcome opens the form without the splash screen.
	SkipWelcome bool

	Theme theme.Mode
	Log   *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *logger.Logger
	width  int
	height int
}

// newAppModel builds the screen graph: welcome, form and course viewer.
// The factories close over each other so resetting a course returns to a
// fresh form.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	if opts.Theme != "" {
		theme.Apply(opts.Theme)
	}

	var newForm func() screen.Screen
	newCourse := func(c *course.Course) screen.Screen {
		log.Info("course opened", "title", c.Title, "lessons", c.TotalLessons())
		return coursescreen.New(c, newForm)
	}
	if opts.Generator != nil {
		newForm = func() screen.Screen {
			f := form.New(opts.Generator, newCourse)
			if opts.Preferences != nil {
				f.SetPreferences(*opts.Preferences)
			}
			return f
		}
	}

	var initial screen.Screen
	switch {
	case opts.Course != nil:
		initial = newCourse(opts.Course)
	case opts.SkipWelcome:
		initial = newForm()
	default:
		initial = welcome.New(newForm)
	}

	return AppModel{
		router: router.New(initial),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) contentSize() screen.ContentSizeMsg {
	return screen.ContentSizeMsg{
		Width:  m.width,
		Height: layout.ContentHeight(m.height),
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Broadcast(m.contentSize())

	case theme.ChangedMsg:
		m.log.Debug("theme changed", "mode", string(msg.Mode))
		return m, m.router.Broadcast(msg)

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		m.log.Debug("screen shown", "title", m.router.Active().Title(), "depth", m.router.Depth())
		return m, tea.Batch(cmd, m.sizeActive())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, theme.Toggle()
		case "f1":
			if _, open := m.router.Active().(*help.HelpScreen); !open {
				h := help.New(m.bindings())
				return m, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
			}
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// sizeActive tells a newly shown screen the current content size.
func (m AppModel) sizeActive() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	size := m.contentSize()
	active := m.router.Active()
	return func() tea.Msg {
		if m.router.Active() != active {
			return nil
		}
		return size
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.WindowTitle = i18n.T("AppTitle")

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.frame())
	return v
}

// globalHints are the keys the app handles on every screen.
func globalHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+t", Description: i18n.T("HintTheme")},
		{Key: "ctrl+c", Description: i18n.T("HintQuit")},
	}
}

// bindings lists the active screen's keys followed by the global ones,
// without duplicates, for the help screen.
func (m AppModel) bindings() []layout.KeyHint {
	var out []layout.KeyHint
	seen := map[string]bool{}
	add := func(hints []layout.KeyHint) {
		for _, h := range hints {
			if !seen[h.Key] {
				seen[h.Key] = true
				out = append(out, h)
			}
		}
	}
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		add(kp.KeyHints())
	}
	add(globalHints())
	return out
}

func (m AppModel) frame() string {
	active := m.router.Active()
	title, status := "", ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}
	if hints == nil {
		hints = globalHints()
	}
	if m.router.Depth() > 1 {
		if _, isHelp := active.(*help.HelpScreen); !isHelp {
			hints = append([]layout.KeyHint{{Key: "esc", Description: i18n.T("HintBack")}}, hints...)
		}
	} else {
		hints = append([]layout.KeyHint{{Key: "f1", Description: i18n.T("HintHelp")}}, hints...)
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the learner quits.
func Run(opts Options) error {
	if opts.Generator == nil && opts.Course == nil {
		return fmt.Errorf("app: a generator or a course is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
