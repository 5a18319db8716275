// Package form implements the course preferences screen: six fields, a
// submit button and the generation wait state.
package form

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/coursegen"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/router"
	"github.com/abhisek/aula/internal/screen"
	"github.com/abhisek/aula/internal/ui/components"
	"github.com/abhisek/aula/internal/ui/layout"
	"github.com/abhisek/aula/internal/ui/theme"
)

// Focus order. Matches the order fields are shown in.
const (
	fieldTopic = iota
	fieldLevel
	fieldProfile
	fieldObjective
	fieldTime
	fieldFormat
	fieldSubmit
	fieldCount
)

const charLimit = 200

type courseReadyMsg struct {
	seq    int
	course *course.Course
}

type courseFailedMsg struct {
	seq int
	err error
}

// FormScreen collects Preferences and runs one generation at a time.
type FormScreen struct {
	gen  coursegen.Generator
	next func(*course.Course) screen.Screen

	topic     components.TextInput
	profile   components.TextInput
	objective components.TextInput
	time      components.TextInput
	level     components.Choice
	format    components.Choice
	submit    components.Button

	focus      int
	spinner    spinner.Model
	generating bool
	seq        int
	errMsg     string
}

var _ screen.Screen = (*FormScreen)(nil)

// New creates the form. next builds the screen that replaces the form
// once a course has been generated.
func New(gen coursegen.Generator, next func(*course.Course) screen.Screen) *FormScreen {
	f := &FormScreen{
		gen:       gen,
		next:      next,
		topic:     components.NewTextInput(i18n.T("FieldTopic"), i18n.T("PlaceholderTopic"), charLimit),
		profile:   components.NewTextInput(i18n.T("FieldProfile"), i18n.T("PlaceholderProfile"), charLimit),
		objective: components.NewTextInput(i18n.T("FieldObjective"), i18n.T("PlaceholderObjective"), charLimit),
		time:      components.NewTextInput(i18n.T("FieldTimeAvailable"), i18n.T("PlaceholderTimeAvailable"), charLimit),
		level:     components.NewChoice(i18n.T("FieldLevel"), levelLabels()),
		format:    components.NewChoice(i18n.T("FieldFormat"), formatLabels()),
		submit:    components.NewButton(i18n.T("SubmitCourse")),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	f.format.Selected = indexOf(course.Formats, course.DefaultPreferences().Format)
	return f
}

func levelLabels() []string {
	keys := map[course.Level]string{
		course.LevelBeginner:     "LevelBeginner",
		course.LevelIntermediate: "LevelIntermediate",
		course.LevelAdvanced:     "LevelAdvanced",
	}
	out := make([]string, len(course.Levels))
	for i, l := range course.Levels {
		out[i] = i18n.T(keys[l])
	}
	return out
}

func formatLabels() []string {
	keys := map[course.Format]string{
		course.FormatBriefReadings:     "FormatBriefReadings",
		course.FormatReadingsExercises: "FormatReadingsExercises",
		course.FormatOutlinesProblems:  "FormatOutlinesProblems",
		course.FormatMixed:             "FormatMixed",
	}
	out := make([]string, len(course.Formats))
	for i, f := range course.Formats {
		out[i] = i18n.T(keys[f])
	}
	return out
}

func indexOf[T comparable](xs []T, x T) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return 0
}

func (f *FormScreen) Title() string {
	return i18n.T("FormTitle")
}

func (f *FormScreen) Init() tea.Cmd {
	return f.setFocus(fieldTopic)
}

// Preferences returns the values currently entered.
func (f *FormScreen) Preferences() course.Preferences {
	return course.Preferences{
		Topic:         strings.TrimSpace(f.topic.Value()),
		Level:         course.Levels[f.level.Selected],
		Profile:       strings.TrimSpace(f.profile.Value()),
		Objective:     strings.TrimSpace(f.objective.Value()),
		TimeAvailable: strings.TrimSpace(f.time.Value()),
		Format:        course.Formats[f.format.Selected],
	}
}

// SetPreferences fills the form, e.g. from command-line flags.
func (f *FormScreen) SetPreferences(p course.Preferences) {
	f.topic.SetValue(p.Topic)
	f.profile.SetValue(p.Profile)
	f.objective.SetValue(p.Objective)
	f.time.SetValue(p.TimeAvailable)
	f.level.Selected = indexOf(course.Levels, p.Level)
	f.format.Selected = indexOf(course.Formats, p.Format)
}

// Generating reports whether a request is outstanding.
func (f *FormScreen) Generating() bool { return f.generating }

// Error returns the message shown for the last failure.
func (f *FormScreen) Error() string { return f.errMsg }

func (f *FormScreen) input(i int) *components.TextInput {
	switch i {
	case fieldTopic:
		return &f.topic
	case fieldProfile:
		return &f.profile
	case fieldObjective:
		return &f.objective
	case fieldTime:
		return &f.time
	}
	return nil
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount

	for _, in := range []*components.TextInput{&f.topic, &f.profile, &f.objective, &f.time} {
		in.Blur()
	}
	f.level.Focused = f.focus == fieldLevel
	f.format.Focused = f.focus == fieldFormat
	f.submit.Focused = f.focus == fieldSubmit

	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ContentSizeMsg:
		w := components.ContentWidth(msg.Width) - 6
		for _, in := range []*components.TextInput{&f.topic, &f.profile, &f.objective, &f.time} {
			in.SetWidth(w)
		}
		return f, nil

	case spinner.TickMsg:
		if !f.generating {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case courseReadyMsg:
		if msg.seq != f.seq || !f.generating {
			return f, nil
		}
		f.generating = false
		next := f.next(msg.course)
		return f, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case courseFailedMsg:
		if msg.seq != f.seq || !f.generating {
			return f, nil
		}
		f.generating = false
		f.errMsg = failureMessage(msg.err)
		return f, f.setFocus(fieldSubmit)

	case tea.KeyPressMsg:
		if f.generating {
			return f, nil
		}
		return f, f.handleKey(msg)
	}

	if in := f.input(f.focus); in != nil && !f.generating {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f.setFocus(f.focus - 1)
	case "ctrl+s":
		return f.startGeneration()
	case "enter":
		if f.focus == fieldFormat || f.focus == fieldSubmit {
			return f.startGeneration()
		}
		return f.setFocus(f.focus + 1)
	}

	switch f.focus {
	case fieldLevel:
		f.level = f.level.Update(msg)
		return nil
	case fieldFormat:
		f.format = f.format.Update(msg)
		return nil
	case fieldSubmit:
		if f.submit.Pressed(msg) {
			return f.startGeneration()
		}
		return nil
	}

	in := f.input(f.focus)
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

// startGeneration validates the form and fires one generation request.
func (f *FormScreen) startGeneration() tea.Cmd {
	if f.generating {
		return nil
	}
	prefs := f.Preferences()
	if err := prefs.Validate(); err != nil {
		f.errMsg = failureMessage(err)
		var fe *course.FieldError
		if errors.As(err, &fe) {
			i := fieldFor(fe.Field)
			if in := f.input(i); in != nil {
				in.MarkInvalid()
			}
			return f.setFocus(i)
		}
		return nil
	}

	f.errMsg = ""
	f.generating = true
	f.seq++
	seq, gen := f.seq, f.gen

	generate := func() tea.Msg {
		c, err := gen.Generate(context.Background(), prefs)
		if err != nil {
			return courseFailedMsg{seq: seq, err: err}
		}
		return courseReadyMsg{seq: seq, course: c}
	}
	return tea.Batch(generate, f.spinner.Tick)
}

func fieldFor(name string) int {
	switch name {
	case "topic":
		return fieldTopic
	case "level":
		return fieldLevel
	case "profile":
		return fieldProfile
	case "objective":
		return fieldObjective
	case "timeAvailable":
		return fieldTime
	case "format":
		return fieldFormat
	}
	return fieldTopic
}

func failureMessage(err error) string {
	var ge *coursegen.GenerationError
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	var fe *course.FieldError
	if errors.As(err, &fe) {
		key := "FieldInvalid"
		if errors.Is(err, course.ErrMissingField) {
			key = "FieldRequired"
		}
		return i18n.Td(key, map[string]any{"Field": coursegen.FieldLabel(fe.Field)})
	}
	return i18n.T("GenerationFailed")
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.generating {
		return []layout.KeyHint{
			{Key: "ctrl+t", Description: i18n.T("HintTheme")},
			{Key: "ctrl+c", Description: i18n.T("HintQuit")},
		}
	}
	return []layout.KeyHint{
		{Key: "tab", Description: i18n.T("HintMove")},
		{Key: "←/→", Description: i18n.T("HintChange")},
		{Key: "ctrl+s", Description: i18n.T("HintSubmit")},
		{Key: "ctrl+t", Description: i18n.T("HintTheme")},
		{Key: "ctrl+c", Description: i18n.T("HintQuit")},
	}
}

func (f *FormScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	gap := "\n"
	if compact {
		gap = ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.T("FormTitle")))
	b.WriteString("\n")
	if !compact {
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(i18n.T("FormSubtitle")))
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Render(theme.ErrorText.Render("✗ " + f.errMsg)))
	}
	b.WriteString("\n")

	fields := []string{
		f.topic.View(),
		f.level.View(),
		f.profile.View(),
		f.objective.View(),
		f.time.View(),
		f.format.View(),
	}
	for _, field := range fields {
		b.WriteString(field)
		b.WriteString("\n" + gap)
	}

	if f.generating {
		b.WriteString(f.spinner.View() + " " + theme.Body.Render(i18n.T("Generating")))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(i18n.T("GeneratingHint")))
	} else {
		b.WriteString(f.submit.View())
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
