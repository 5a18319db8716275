package coursegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/llm"
)

// Reason classifies a generation failure.
type Reason string

const (
	ReasonPreferences Reason = "preferences"
	ReasonRateLimited Reason = "rate_limited"
	ReasonTimeout     Reason = "timeout"
	ReasonTruncated   Reason = "truncated"
	ReasonInvalid     Reason = "invalid_response"
	ReasonProvider    Reason = "provider"
)

// GenerationError is the single failure type returned by a Generator.
// Message is localized and meant for the learner; Err is the cause.
type GenerationError struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate course (%s): %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// newGenerationError classifies err and attaches the matching message in
// the active UI language.
func newGenerationError(err error) *GenerationError {
	var (
		fieldErr *course.FieldError
		rateErr  *llm.ErrRateLimit
		maxErr   *llm.ErrMaxTokensExceeded
		invErr   *llm.ErrInvalidResponse
		decErr   *course.DecodeError
	)
	switch {
	case errors.As(err, &fieldErr):
		key := "FieldInvalid"
		if errors.Is(err, course.ErrMissingField) {
			key = "FieldRequired"
		}
		return &GenerationError{
			Reason:  ReasonPreferences,
			Message: i18n.Td(key, map[string]any{"Field": FieldLabel(fieldErr.Field)}),
			Err:     err,
		}
	case errors.As(err, &rateErr):
		return &GenerationError{Reason: ReasonRateLimited, Message: i18n.T("GenerationRateLimited"), Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &GenerationError{Reason: ReasonTimeout, Message: i18n.T("GenerationTimeout"), Err: err}
	case errors.As(err, &maxErr):
		return &GenerationError{Reason: ReasonTruncated, Message: i18n.T("GenerationTooLong"), Err: err}
	case errors.As(err, &invErr), errors.As(err, &decErr):
		return &GenerationError{Reason: ReasonInvalid, Message: i18n.T("GenerationInvalid"), Err: err}
	default:
		return &GenerationError{Reason: ReasonProvider, Message: i18n.T("GenerationFailed"), Err: err}
	}
}

// FieldLabel returns the localized form label for a preference field name
// as reported by course.FieldError.
func FieldLabel(field string) string {
	switch field {
	case "topic":
		return i18n.T("FieldTopic")
	case "level":
		return i18n.T("FieldLevel")
	case "profile":
		return i18n.T("FieldProfile")
	case "objective":
		return i18n.T("FieldObjective")
	case "timeAvailable":
		return i18n.T("FieldTimeAvailable")
	case "format":
		return i18n.T("FieldFormat")
	default:
		return field
	}
}
