package course

// Course is a generated course. It is read-only once produced by the
// generator; units and lessons are addressed by their index.
type Course struct {
	Title           string         `json:"title"`
	Subtitle        string         `json:"subtitle"`
	Level           string         `json:"level"`
	Duration        string         `json:"duration"`
	TargetProfile   string         `json:"targetProfile"`
	Objectives      []string       `json:"objectives"`
	Units           []Unit         `json:"units"`
	FinalAssessment []QuizQuestion `json:"finalAssessment"`
	FinalProjects   []FinalProject `json:"finalProjects"`
	Sources         []string       `json:"sources"`
}

// Unit groups an ordered list of lessons.
type Unit struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is a single page of course content.
type Lesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Blocks   Blocks `json:"blocks"`
}

// QuizQuestion is a multiple-choice question. Options are identified by
// position and labelled A, B, C...
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// FinalProject is a capstone assignment. Description is markdown.
type FinalProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TotalLessons returns the number of lessons across all units.
func (c *Course) TotalLessons() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, u := range c.Units {
		n += len(u.Lessons)
	}
	return n
}

// Lesson returns the lesson at (unit, lesson), or false when either index
// is out of range.
func (c *Course) Lesson(unit, lesson int) (*Lesson, bool) {
	if c == nil || unit < 0 || unit >= len(c.Units) {
		return nil, false
	}
	u := &c.Units[unit]
	if lesson < 0 || lesson >= len(u.Lessons) {
		return nil, false
	}
	return &u.Lessons[lesson], true
}
