package course

import "fmt"

// Issue is a structural problem that consumers tolerate but that is worth
// reporting.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Check reports non-fatal structural issues: missing units or lessons and
// correct-answer indices that point outside the options.
func Check(c *Course) []Issue {
	if c == nil {
		return []Issue{{Path: "course", Message: "missing"}}
	}
	var issues []Issue
	if len(c.Units) == 0 {
		issues = append(issues, Issue{Path: "units", Message: "course has no units"})
	}
	for u, unit := range c.Units {
		if len(unit.Lessons) == 0 {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("units[%d]", u),
				Message: "unit has no lessons",
			})
		}
		for l, lesson := range unit.Lessons {
			for b, blk := range lesson.Blocks {
				q, ok := blk.(Quiz)
				if !ok {
					continue
				}
				path := fmt.Sprintf("units[%d].lessons[%d].blocks[%d]", u, l, b)
				issues = append(issues, checkQuestions(path, q.Questions)...)
			}
		}
	}
	issues = append(issues, checkQuestions("finalAssessment", c.FinalAssessment)...)
	return issues
}

func checkQuestions(path string, qs []QuizQuestion) []Issue {
	var issues []Issue
	for i, q := range qs {
		if len(q.Options) == 0 {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("%s.questions[%d]", path, i),
				Message: "question has no options",
			})
			continue
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("%s.questions[%d]", path, i),
				Message: fmt.Sprintf("correct answer index %d out of range [0,%d)", q.CorrectAnswerIndex, len(q.Options)),
			})
		}
	}
	return issues
}
