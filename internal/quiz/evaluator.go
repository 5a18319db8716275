// Package quiz evaluates multiple-choice quizzes: it records one selection
// per question, reveals results on demand and scores them.
package quiz

import "github.com/abhisek/aula/internal/course"

// OptionState is the display state of one option.
type OptionState int

const (
	Unselected OptionState = iota
	Selected
	Correct   // chosen and correct
	Incorrect // chosen and wrong
	Missed    // correct but not chosen
	Neutral   // neither chosen nor correct
)

func (s OptionState) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Selected:
		return "selected"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Missed:
		return "missed"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Evaluator holds the selections and reveal flag of one quiz instance.
// It is not safe for concurrent use.
type Evaluator struct {
	questions  []course.QuizQuestion
	selections map[int]int
	revealed   bool
}

// New creates an evaluator over the given questions.
func New(questions []course.QuizQuestion) *Evaluator {
	return &Evaluator{
		questions:  questions,
		selections: make(map[int]int),
	}
}

// Questions returns the questions being evaluated.
func (e *Evaluator) Questions() []course.QuizQuestion { return e.questions }

// Total returns the number of questions.
func (e *Evaluator) Total() int { return len(e.questions) }

// Select records option o for question q, replacing any earlier choice.
// It returns false and does nothing once revealed or when an index is out
// of range.
func (e *Evaluator) Select(q, o int) bool {
	if e.revealed || q < 0 || q >= len(e.questions) {
		return false
	}
	if o < 0 || o >= len(e.questions[q].Options) {
		return false
	}
	e.selections[q] = o
	return true
}

// Selection returns the option chosen for question q.
func (e *Evaluator) Selection(q int) (int, bool) {
	o, ok := e.selections[q]
	return o, ok
}

// Answered returns how many questions have a selection.
func (e *Evaluator) Answered() int { return len(e.selections) }

// CanCheck reports whether every question has a selection. A quiz with no
// questions can always be checked.
func (e *Evaluator) CanCheck() bool {
	for q := range e.questions {
		if _, ok := e.selections[q]; !ok {
			return false
		}
	}
	return true
}

// Reveal shows results. It is not gated on CanCheck; the caller decides.
func (e *Evaluator) Reveal() { e.revealed = true }

// Revealed reports whether results are shown.
func (e *Evaluator) Revealed() bool { return e.revealed }

// Score counts questions whose selection matches the correct answer.
func (e *Evaluator) Score() int {
	score := 0
	for q, question := range e.questions {
		o, ok := e.selections[q]
		if ok && o == question.CorrectAnswerIndex {
			score++
		}
	}
	return score
}

// Reset clears all selections and hides results.
func (e *Evaluator) Reset() {
	e.selections = make(map[int]int)
	e.revealed = false
}

// OptionState derives the display state of option o of question q.
func (e *Evaluator) OptionState(q, o int) OptionState {
	chosen := false
	if sel, ok := e.selections[q]; ok && sel == o {
		chosen = true
	}
	if !e.revealed {
		if chosen {
			return Selected
		}
		return Unselected
	}
	correct := q >= 0 && q < len(e.questions) && e.questions[q].CorrectAnswerIndex == o
	switch {
	case chosen && correct:
		return Correct
	case chosen:
		return Incorrect
	case correct:
		return Missed
	default:
		return Neutral
	}
}

// OptionLabel returns the letter for option i: A, B, C... Past Z it
// continues with AA, AB...
func OptionLabel(i int) string {
	if i < 0 {
		return "?"
	}
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}
