package course

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	model "github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/navigator"
	"github.com/abhisek/aula/internal/quiz"
	"github.com/abhisek/aula/internal/ui/components"
	"github.com/abhisek/aula/internal/ui/layout"
	"github.com/abhisek/aula/internal/ui/theme"
)

const maxReadingWidth = 100

// page accumulates rendered sections and tracks line offsets so quiz
// questions can be scrolled into view.
type page struct {
	parts []string
	lines int
}

func (p *page) add(s string) int {
	at := p.lines
	p.parts = append(p.parts, s)
	p.lines += lipgloss.Height(s)
	return at
}

func (p *page) String() string { return strings.Join(p.parts, "\n") }

func (s *CourseScreen) sidebarWidth() int {
	if layout.IsCompactWidth(s.width) {
		return 26
	}
	return 32
}

func (s *CourseScreen) contentWidth() int {
	w := s.width - s.sidebarWidth() - 3
	if w > maxReadingWidth {
		w = maxReadingWidth
	}
	return max(w, 20)
}

// render rebuilds the viewport content for the current mode.
func (s *CourseScreen) render() {
	cw := s.contentWidth()
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(s.height, 1))

	s.entries = s.entries[:0]
	s.offsets = s.offsets[:0]

	p := &page{}
	switch s.nav.Mode() {
	case navigator.ModeLesson:
		s.renderLesson(p, cw)
	case navigator.ModeFinalAssessment:
		s.renderFinalAssessment(p, cw)
	case navigator.ModeFinalProject:
		s.renderFinalProject(p, cw)
	}
	p.add("")
	p.add(s.renderNav(cw))

	if s.quizFocus >= len(s.entries) {
		s.quizFocus = max(len(s.entries)-1, 0)
	}
	s.vp.SetContent(p.String())
}

func (s *CourseScreen) renderLesson(p *page, cw int) {
	c := s.nav.Course()
	lesson, ok := s.nav.CurrentLesson()
	if !ok {
		p.add(theme.Hint.Render(i18n.T("EmptyCourse")))
		return
	}
	pos := s.nav.Position()

	if first, ok := firstLesson(c); ok && first == pos {
		if ov := s.md.Render(overviewMarkdown(c), cw); ov != "" {
			p.add(ov)
			p.add("")
		}
	}

	if unit, ok := s.nav.CurrentUnit(); ok {
		p.add(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(strings.ToUpper(i18n.Td("UnitN", map[string]any{"N": pos.Unit + 1}) + " · " + unit.Title)))
		if pos.Lesson == 0 && unit.Summary != "" {
			p.add(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(unit.Summary))
		}
	}
	title := theme.Title.Render(lesson.Title)
	if lesson.Duration != "" {
		title += "  " + theme.Hint.Render("⏱ "+lesson.Duration)
	}
	p.add(title)
	p.add("")

	for b, block := range lesson.Blocks {
		p.add(blockHeading(block))
		if body := s.md.Render(block.Body(), cw); body != "" {
			p.add(body)
		}
		if q, ok := block.(model.Quiz); ok && len(q.Questions) > 0 {
			s.renderQuiz(p, navigator.BlockKey(pos.Unit, pos.Lesson, b), cw)
		}
		p.add("")
	}
}

func (s *CourseScreen) renderFinalAssessment(p *page, cw int) {
	p.add(theme.Title.Render(i18n.T("FinalAssessment")))
	p.add(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(i18n.T("FinalAssessmentIntro")))
	p.add("")

	if len(s.nav.Course().FinalAssessment) == 0 {
		p.add(theme.Hint.Render(i18n.T("NoFinalAssessment")))
		return
	}
	s.renderQuiz(p, navigator.FinalAssessmentKey, cw)
}

func (s *CourseScreen) renderFinalProject(p *page, cw int) {
	c := s.nav.Course()
	if total := s.nav.TotalLessons(); total > 0 && s.nav.CompletedCount() == total {
		p.add(components.Banner("🎓 "+i18n.T("CourseComplete"), theme.Correct, cw))
		p.add("")
	}
	p.add(theme.Title.Render(i18n.T("FinalProject")))
	p.add(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(i18n.T("FinalProjectIntro")))
	p.add("")

	if len(c.FinalProjects) == 0 {
		p.add(theme.Hint.Render(i18n.T("NoFinalProjects")))
	}
	for i, proj := range c.FinalProjects {
		p.add(theme.Heading.Render(i18n.Td("ProjectN", map[string]any{"N": i + 1}) + ": " + proj.Title))
		if body := s.md.Render(proj.Description, cw); body != "" {
			p.add(body)
		}
		p.add("")
	}

	if len(c.Sources) > 0 {
		var md strings.Builder
		md.WriteString("## " + i18n.T("Sources") + "\n\n")
		for _, src := range c.Sources {
			md.WriteString("- " + src + "\n")
		}
		p.add(s.md.Render(md.String(), cw))
	}
}

// renderQuiz adds every question of one quiz followed by its status line,
// registering each question as a focus entry.
func (s *CourseScreen) renderQuiz(p *page, key navigator.QuizKey, cw int) {
	ev, ok := s.nav.Quiz(key)
	if !ok {
		return
	}
	for q := range ev.Questions() {
		i := len(s.entries)
		s.entries = append(s.entries, quizEntry{key: key, question: q})
		mc := components.MultiChoice{
			Eval:     ev,
			Index:    q,
			Number:   q + 1,
			Focused:  i == s.quizFocus && !s.sidebarFocused,
			MaxWidth: cw,
		}
		s.offsets = append(s.offsets, p.add(mc.View()))
		p.add("")
	}
	p.add(quizStatus(ev))
}

func quizStatus(ev *quiz.Evaluator) string {
	switch {
	case ev.Revealed():
		msg := i18n.Td("QuizScore", map[string]any{"Score": ev.Score(), "Total": ev.Total()})
		if ev.Score() == ev.Total() {
			return theme.Correct.Render(msg + "  " + i18n.T("QuizPerfect"))
		}
		return theme.Heading.Render(msg)
	case ev.CanCheck():
		return theme.Selected.Render(i18n.T("QuizReady"))
	default:
		return theme.Hint.Render(i18n.T("QuizAnswerAll") + " " +
			fmt.Sprintf("(%d/%d)", ev.Answered(), ev.Total()))
	}
}

var blockLabels = map[model.BlockKind]string{
	model.KindKeyIdea:  "BlockKeyIdea",
	model.KindTheory:   "BlockTheory",
	model.KindExample:  "BlockExample",
	model.KindActivity: "BlockActivity",
	model.KindQuiz:     "BlockQuiz",
}

var blockIcons = map[model.BlockKind]string{
	model.KindKeyIdea:  "💡",
	model.KindTheory:   "📖",
	model.KindExample:  "🔍",
	model.KindActivity: "✍",
	model.KindQuiz:     "❓",
}

func blockHeading(b model.Block) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(blockIcons[b.Kind()] + " " + strings.ToUpper(i18n.T(blockLabels[b.Kind()])))
	if b.Heading() == "" {
		return label
	}
	return label + "\n" + theme.Heading.Render(b.Heading())
}

func overviewMarkdown(c *model.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	if c.Subtitle != "" {
		fmt.Fprintf(&b, "*%s*\n\n", c.Subtitle)
	}
	var facts []string
	for _, f := range []struct{ key, value string }{
		{"OverviewLevel", c.Level},
		{"OverviewDuration", c.Duration},
		{"OverviewProfile", c.TargetProfile},
	} {
		if f.value != "" {
			facts = append(facts, fmt.Sprintf("**%s:** %s", i18n.T(f.key), f.value))
		}
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " · ") + "\n\n")
	}
	if len(c.Objectives) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", i18n.T("Objectives"))
		for _, o := range c.Objectives {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		b.WriteString("\n")
	}
	b.WriteString("---\n")
	return b.String()
}

func firstLesson(c *model.Course) (navigator.Position, bool) {
	for u, unit := range c.Units {
		if len(unit.Lessons) > 0 {
			return navigator.Position{Unit: u}, true
		}
	}
	return navigator.Position{}, false
}

func (s *CourseScreen) renderNav(cw int) string {
	prev := theme.Neutral.Render("← " + i18n.T("Previous"))
	if s.nav.CanRetreat() {
		prev = theme.Body.Render("← " + i18n.T("Previous"))
	}
	if s.nav.Mode() == navigator.ModeFinalProject {
		return prev
	}
	next := theme.Selected.Render(i18n.T("Next") + " →")
	gap := cw - lipgloss.Width(prev) - lipgloss.Width(next)
	return prev + strings.Repeat(" ", max(gap, 1)) + next
}

func (s *CourseScreen) renderSidebar(height int) string {
	sw := s.sidebarWidth()
	title := theme.Heading.Render(i18n.T("Curriculum"))
	counter := theme.Hint.Render(i18n.Td("LessonsProgress", map[string]any{
		"Done":  s.nav.CompletedCount(),
		"Total": s.nav.TotalLessons(),
	}))
	bar := components.NewProgressBar("", s.nav.Progress(), true, sw).View()

	head := lipgloss.JoinVertical(lipgloss.Left, title, counter, bar, "")
	menuHeight := max(height-lipgloss.Height(head), 1)

	return lipgloss.NewStyle().
		Width(sw).
		Height(height).
		MaxHeight(height).
		Render(head + "\n" + s.menu.View(sw, menuHeight))
}

func (s *CourseScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.render()
	}

	sidebar := s.renderSidebar(height)
	separator := lipgloss.NewStyle().
		Foreground(theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(strings.Repeat("│\n", max(height, 1)), "\n"))

	content := s.vp.View()
	if s.confirmReset {
		dialog := components.Card(
			theme.Heading.Render(i18n.T("ResetConfirm"))+"\n\n"+
				theme.Hint.Render("y "+i18n.T("HintYes")+" • n "+i18n.T("HintNo")),
			min(s.contentWidth()-6, 50))
		content = lipgloss.Place(s.contentWidth(), height, lipgloss.Center, lipgloss.Center, dialog)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, separator, content)
}
