// Package navigator holds the learner's position in a course: the current
// lesson or final section, which lessons are completed and the state of
// every quiz visited in this session.
package navigator

import (
	"fmt"
	"math"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/quiz"
)

// ViewMode selects what the course screen shows.
type ViewMode int

const (
	ModeLesson ViewMode = iota
	ModeFinalAssessment
	ModeFinalProject
)

func (m ViewMode) String() string {
	switch m {
	case ModeLesson:
		return "lesson"
	case ModeFinalAssessment:
		return "finalAssessment"
	case ModeFinalProject:
		return "finalProject"
	default:
		return "unknown"
	}
}

// Position addresses a lesson by unit and lesson index.
type Position struct {
	Unit   int
	Lesson int
}

// LessonID identifies a lesson within a course.
type LessonID string

// LessonIDOf returns the ID of lesson l in unit u.
func LessonIDOf(u, l int) LessonID {
	return LessonID(fmt.Sprintf("%d-%d", u, l))
}

// QuizKey identifies a quiz instance: a quiz block within a lesson, or the
// final assessment.
type QuizKey struct {
	Final  bool
	Unit   int
	Lesson int
	Block  int
}

// FinalAssessmentKey is the key of the final assessment quiz.
var FinalAssessmentKey = QuizKey{Final: true}

// BlockKey returns the key of a lesson quiz block.
func BlockKey(unit, lesson, block int) QuizKey {
	return QuizKey{Unit: unit, Lesson: lesson, Block: block}
}

// Navigator is the session state machine. It never panics on bad indices
// and tolerates courses with empty units or no lessons at all.
type Navigator struct {
	course    *course.Course
	mode      ViewMode
	pos       Position
	completed map[LessonID]struct{}
	quizzes   map[QuizKey]*quiz.Evaluator
}

// New starts a session at the first lesson, or at the final assessment
// when the course has no lessons.
func New(c *course.Course) *Navigator {
	if c == nil {
		c = &course.Course{}
	}
	n := &Navigator{course: c}
	n.Reset()
	return n
}

// Course returns the course being navigated.
func (n *Navigator) Course() *course.Course { return n.course }

// Mode returns the current view mode.
func (n *Navigator) Mode() ViewMode { return n.mode }

// Position returns the current lesson position. In the final modes it is
// the last lesson position visited.
func (n *Navigator) Position() Position { return n.pos }

// CurrentUnit returns the unit at the current position.
func (n *Navigator) CurrentUnit() (*course.Unit, bool) {
	if n.pos.Unit < 0 || n.pos.Unit >= len(n.course.Units) {
		return nil, false
	}
	return &n.course.Units[n.pos.Unit], true
}

// CurrentLesson returns the lesson at the current position.
func (n *Navigator) CurrentLesson() (*course.Lesson, bool) {
	return n.course.Lesson(n.pos.Unit, n.pos.Lesson)
}

// IsCompleted reports whether lesson (u, l) has been completed.
func (n *Navigator) IsCompleted(u, l int) bool {
	_, ok := n.completed[LessonIDOf(u, l)]
	return ok
}

// IsActive reports whether lesson (u, l) is the one being shown.
func (n *Navigator) IsActive(u, l int) bool {
	return n.mode == ModeLesson && n.pos == Position{Unit: u, Lesson: l}
}

// CompletedCount returns the number of completed lessons.
func (n *Navigator) CompletedCount() int { return len(n.completed) }

// TotalLessons returns the number of lessons in the course.
func (n *Navigator) TotalLessons() int { return n.course.TotalLessons() }

// Progress returns the completed percentage rounded to the nearest
// integer, or 0 for a course without lessons.
func (n *Navigator) Progress() int {
	total := n.TotalLessons()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(n.completed)) / float64(total)))
}

// Advance completes the current lesson and moves to the next one, then to
// the final assessment, then to the final project.
func (n *Navigator) Advance() {
	switch n.mode {
	case ModeLesson:
		if _, ok := n.CurrentLesson(); !ok {
			n.mode = ModeFinalAssessment
			return
		}
		n.completed[LessonIDOf(n.pos.Unit, n.pos.Lesson)] = struct{}{}
		if next, ok := n.next(n.pos); ok {
			n.pos = next
			return
		}
		n.mode = ModeFinalAssessment
	case ModeFinalAssessment:
		n.mode = ModeFinalProject
	case ModeFinalProject:
	}
}

// CanRetreat reports whether Retreat would move.
func (n *Navigator) CanRetreat() bool {
	switch n.mode {
	case ModeFinalProject:
		return true
	case ModeFinalAssessment:
		_, ok := n.last()
		return ok
	default:
		_, ok := n.prev(n.pos)
		return ok
	}
}

// Retreat moves to the previous lesson or section without changing the
// completed set.
func (n *Navigator) Retreat() {
	switch n.mode {
	case ModeFinalProject:
		n.mode = ModeFinalAssessment
	case ModeFinalAssessment:
		if last, ok := n.last(); ok {
			n.pos = last
			n.mode = ModeLesson
		}
	case ModeLesson:
		if prev, ok := n.prev(n.pos); ok {
			n.pos = prev
		}
	}
}

// JumpTo shows lesson (u, l). Out-of-range indices are ignored.
func (n *Navigator) JumpTo(u, l int) {
	if _, ok := n.course.Lesson(u, l); !ok {
		return
	}
	n.pos = Position{Unit: u, Lesson: l}
	n.mode = ModeLesson
}

// JumpToNextIncomplete shows the first lesson not yet completed, or the
// final assessment when every lesson is done.
func (n *Navigator) JumpToNextIncomplete() {
	for u, unit := range n.course.Units {
		for l := range unit.Lessons {
			if !n.IsCompleted(u, l) {
				n.JumpTo(u, l)
				return
			}
		}
	}
	n.mode = ModeFinalAssessment
}

// SetViewMode switches view mode. Switching to ModeLesson returns to the
// current position, or is ignored when the course has no lessons.
func (n *Navigator) SetViewMode(m ViewMode) {
	switch m {
	case ModeLesson:
		if _, ok := n.CurrentLesson(); ok {
			n.mode = ModeLesson
		}
	case ModeFinalAssessment, ModeFinalProject:
		n.mode = m
	}
}

// Reset clears progress and quiz state and returns to the start.
func (n *Navigator) Reset() {
	n.completed = make(map[LessonID]struct{})
	n.quizzes = make(map[QuizKey]*quiz.Evaluator)
	if first, ok := n.first(); ok {
		n.pos = first
		n.mode = ModeLesson
		return
	}
	n.pos = Position{}
	n.mode = ModeFinalAssessment
}

// Quiz returns the evaluator for a quiz instance, creating it on first use.
// Evaluators live until Reset, so answers survive navigating away and back.
// It returns false when the key does not address a quiz.
func (n *Navigator) Quiz(key QuizKey) (*quiz.Evaluator, bool) {
	if ev, ok := n.quizzes[key]; ok {
		return ev, true
	}
	questions, ok := n.questionsFor(key)
	if !ok {
		return nil, false
	}
	ev := quiz.New(questions)
	n.quizzes[key] = ev
	return ev, true
}

func (n *Navigator) questionsFor(key QuizKey) ([]course.QuizQuestion, bool) {
	if key.Final {
		return n.course.FinalAssessment, true
	}
	lesson, ok := n.course.Lesson(key.Unit, key.Lesson)
	if !ok || key.Block < 0 || key.Block >= len(lesson.Blocks) {
		return nil, false
	}
	q, ok := lesson.Blocks[key.Block].(course.Quiz)
	if !ok {
		return nil, false
	}
	return q.Questions, true
}

func (n *Navigator) first() (Position, bool) {
	for u, unit := range n.course.Units {
		if len(unit.Lessons) > 0 {
			return Position{Unit: u}, true
		}
	}
	return Position{}, false
}

func (n *Navigator) last() (Position, bool) {
	for u := len(n.course.Units) - 1; u >= 0; u-- {
		if k := len(n.course.Units[u].Lessons); k > 0 {
			return Position{Unit: u, Lesson: k - 1}, true
		}
	}
	return Position{}, false
}

func (n *Navigator) next(p Position) (Position, bool) {
	units := n.course.Units
	if p.Lesson+1 < len(units[p.Unit].Lessons) {
		return Position{Unit: p.Unit, Lesson: p.Lesson + 1}, true
	}
	for u := p.Unit + 1; u < len(units); u++ {
		if len(units[u].Lessons) > 0 {
			return Position{Unit: u}, true
		}
	}
	return Position{}, false
}

func (n *Navigator) prev(p Position) (Position, bool) {
	if _, ok := n.course.Lesson(p.Unit, p.Lesson); !ok {
		return Position{}, false
	}
	if p.Lesson > 0 {
		return Position{Unit: p.Unit, Lesson: p.Lesson - 1}, true
	}
	for u := p.Unit - 1; u >= 0; u-- {
		if k := len(n.course.Units[u].Lessons); k > 0 {
			return Position{Unit: u, Lesson: k - 1}, true
		}
	}
	return Position{}, false
}
