package coursegen

import (
	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/llm"
)

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func strList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

func object(props map[string]any, order ...string) map[string]any {
	required := make([]any, len(order))
	for i, k := range order {
		required[i] = k
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func blockKinds() []any {
	out := make([]any, len(course.BlockKinds))
	for i, k := range course.BlockKinds {
		out[i] = string(k)
	}
	return out
}

var quizQuestionSchema = object(map[string]any{
	"question": str("The question text"),
	"options":  strList("Answer options, usually 4, labelled A, B, C... in the UI"),
	"correctAnswerIndex": map[string]any{
		"type":        "integer",
		"description": "Zero-based index of the correct option",
	},
}, "question", "options", "correctAnswerIndex")

var blockSchema = object(map[string]any{
	"type": map[string]any{
		"type":        "string",
		"enum":        blockKinds(),
		"description": "Block kind",
	},
	"title":   str("Block title"),
	"content": str("Markdown content"),
	"quizData": map[string]any{
		"type":        "array",
		"items":       quizQuestionSchema,
		"description": "Questions for quiz blocks; an empty array for every other kind",
	},
}, "type", "title", "content", "quizData")

var lessonSchema = object(map[string]any{
	"title":    str("Lesson title, numbered like 1.1"),
	"duration": str("Estimated duration, e.g. 20 min"),
	"blocks": map[string]any{
		"type":        "array",
		"items":       blockSchema,
		"description": "Ordered lesson blocks",
	},
}, "title", "duration", "blocks")

var unitSchema = object(map[string]any{
	"title":   str("Unit title"),
	"summary": str("Short introduction to the unit"),
	"lessons": map[string]any{
		"type":  "array",
		"items": lessonSchema,
	},
}, "title", "summary", "lessons")

var projectSchema = object(map[string]any{
	"title":       str("Project title"),
	"description": str("Markdown description of the project"),
}, "title", "description")

// CourseSchema defines the JSON schema for course generation responses.
// Property order in the required lists is the order the model is asked
// to emit.
var CourseSchema = &llm.Schema{
	Name:        "course",
	Description: "A complete online course with units, lessons, quizzes, a final assessment and final projects",
	Definition: object(map[string]any{
		"title":         str("Academic, engaging course title"),
		"subtitle":      str("Descriptive subtitle"),
		"level":         str("Learner level"),
		"duration":      str("Realistic total duration estimate"),
		"targetProfile": str("Who the course is for"),
		"objectives":    strList("Learning objectives"),
		"units": map[string]any{
			"type":  "array",
			"items": unitSchema,
		},
		"finalAssessment": map[string]any{
			"type":        "array",
			"items":       quizQuestionSchema,
			"description": "Questions covering the whole course",
		},
		"finalProjects": map[string]any{
			"type":  "array",
			"items": projectSchema,
		},
		"sources": strList("Bibliography and references"),
	}, "title", "subtitle", "level", "duration", "targetProfile", "objectives",
		"units", "finalAssessment", "finalProjects", "sources"),
}
