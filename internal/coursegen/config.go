package coursegen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. A full course
	// with Markdown content is large.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Language is the English name of the language the course is
	// written in, e.g. "Spanish". Empty means the active UI language.
	Language string

	// Purpose tags LLM events recorded for this generator.
	Purpose string
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   32000,
		Temperature: 0.7,
		Purpose:     PurposeCourseGen,
	}
}

// PurposeCourseGen is the LLM purpose for interactive generation.
const PurposeCourseGen = "course-gen"
