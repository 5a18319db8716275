package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// courseSchema is a cut-down course outline: a title and units of lessons.
func courseSchema() *Schema {
	return &Schema{
		Name:        "test-course-outline",
		Description: "A course outline",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"level": map[string]any{"type": "string", "enum": []any{"Beginner", "Intermediate", "Advanced"}},
				"units": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":   map[string]any{"type": "string"},
							"lessons": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"title", "lessons"},
					},
				},
			},
			"required": []any{"title", "units"},
		},
	}
}

const outlineJSON = `{"title":"Astrophysics","level":"Beginner","units":[{"title":"Stars","lessons":["Birth of a star"]}]}`

func TestValidateResponse_ValidJSON(t *testing.T) {
	if err := validateResponse(courseSchema(), json.RawMessage(outlineJSON)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"title":"Go","units":[]}`)
	if err := validateResponse(courseSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"title":"Go"}`},
		{"wrong type", `{"title":"Go","units":"none"}`},
		{"invalid enum", `{"title":"Go","level":"Expert","units":[]}`},
		{"nested missing lessons", `{"title":"Go","units":[{"title":"Basics"}]}`},
		{"nested wrong item type", `{"title":"Go","units":[{"title":"Basics","lessons":[1,2]}]}`},
		{"malformed", `{not json}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(courseSchema(), json.RawMessage(tt.raw))
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestNormalizeResponse_StripsFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare", outlineJSON},
		{"json fence", "```json\n" + outlineJSON + "\n```"},
		{"plain fence", "```\n" + outlineJSON + "\n```"},
		{"prose around fence", "Here is your course:\n```json\n" + outlineJSON + "\n```\nEnjoy!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeResponse(courseSchema(), json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != outlineJSON {
				t.Fatalf("content = %s, want %s", got, outlineJSON)
			}
		})
	}
}

func TestNormalizeResponse_NilSchemaKeepsContent(t *testing.T) {
	raw := json.RawMessage("```json\n{}\n```")
	got, err := normalizeResponse(nil, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("content = %q, want it unchanged", got)
	}
}

func TestCheckResponse_TruncatedCourse(t *testing.T) {
	truncated := json.RawMessage("```json\n" + `{"title":"Astrophysics","units":[{"title":"Sta`)

	_, err := checkResponse(courseSchema(), truncated, StopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}

	_, err = checkResponse(courseSchema(), truncated, StopEnd)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse when not cut by the token limit, got: %T", err)
	}

	// A complete document is accepted even when the limit was reached.
	got, err := checkResponse(courseSchema(), json.RawMessage(outlineJSON), StopMaxTokens)
	if err != nil || string(got) != outlineJSON {
		t.Fatalf("complete course rejected: %v", err)
	}
}
