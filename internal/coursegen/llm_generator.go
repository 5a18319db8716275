package coursegen

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/llm"
	"github.com/abhisek/aula/internal/logger"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// New creates a new LLMGenerator. A nil logger discards log lines.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *LLMGenerator {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Purpose == "" {
		cfg.Purpose = PurposeCourseGen
	}
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// Generate produces a course for the given preferences.
func (g *LLMGenerator) Generate(ctx context.Context, prefs course.Preferences) (*course.Course, error) {
	if err := prefs.Validate(); err != nil {
		return nil, newGenerationError(err)
	}

	requestID := uuid.NewString()
	ctx = llm.WithPurpose(ctx, g.config.Purpose)
	ctx = llm.WithRequestID(ctx, requestID)

	language := g.config.Language
	if language == "" {
		language = i18n.LanguageName()
	}

	log := g.log.With("request_id", requestID)
	log.Info("generating course", "topic", prefs.Topic, "level", prefs.Level, "language", language)

	req := llm.Request{
		System: systemPrompt(language),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(prefs, language)},
		},
		Schema:      CourseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		gerr := newGenerationError(err)
		log.Warn("course generation failed", "reason", gerr.Reason, "error", err)
		return nil, gerr
	}

	c, err := course.Parse(resp.Content)
	if err != nil {
		gerr := newGenerationError(err)
		log.Warn("course generation failed", "reason", gerr.Reason, "error", err)
		return nil, gerr
	}

	for _, issue := range course.Check(c) {
		log.Warn("course issue", "path", issue.Path, "issue", issue.Message)
	}

	log.Info("course generated",
		"title", c.Title,
		"units", len(c.Units),
		"lessons", c.TotalLessons(),
		"output_tokens", resp.Usage.OutputTokens,
	)
	return c, nil
}
