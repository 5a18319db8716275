package course

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the learner's self-assessed level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels lists the levels in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Format is the preferred content format.
type Format string

const (
	FormatBriefReadings     Format = "brief-readings"
	FormatReadingsExercises Format = "readings-exercises"
	FormatOutlinesProblems  Format = "outlines-problems"
	FormatMixed             Format = "mixed"
)

// Formats lists the formats in display order.
var Formats = []Format{FormatBriefReadings, FormatReadingsExercises, FormatOutlinesProblems, FormatMixed}

// Preferences is what the learner asks for. All free-text fields are
// required.
type Preferences struct {
	Topic         string `json:"topic"`
	Level         Level  `json:"level"`
	Profile       string `json:"profile"`
	Objective     string `json:"objective"`
	TimeAvailable string `json:"timeAvailable"`
	Format        Format `json:"format"`
}

// DefaultPreferences returns the form's initial values.
func DefaultPreferences() Preferences {
	return Preferences{
		Level:  LevelBeginner,
		Format: FormatMixed,
	}
}

// ErrMissingField is wrapped by Validate for each empty required field.
var ErrMissingField = errors.New("required field is empty")

// FieldError names the preference field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Validate checks required fields and enum values. It returns the first
// problem found, in form order.
func (p Preferences) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"topic", p.Topic},
		{"profile", p.Profile},
		{"objective", p.Objective},
		{"timeAvailable", p.TimeAvailable},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name, Err: ErrMissingField}
		}
	}
	if !validLevel(p.Level) {
		return &FieldError{Field: "level", Err: fmt.Errorf("unknown level %q", p.Level)}
	}
	if !validFormat(p.Format) {
		return &FieldError{Field: "format", Err: fmt.Errorf("unknown format %q", p.Format)}
	}
	return nil
}

func validLevel(l Level) bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

func validFormat(f Format) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}
