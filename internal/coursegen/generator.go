package coursegen

import (
	"context"

	"github.com/abhisek/aula/internal/course"
)

// Generator turns learner preferences into a course.
type Generator interface {
	// Generate returns a decoded, schema-valid course or a
	// *GenerationError. It never returns a partial course.
	Generate(ctx context.Context, prefs course.Preferences) (*course.Course, error)
}
