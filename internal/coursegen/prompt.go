package coursegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/aula/internal/course"
)

const systemPromptTemplate = `You are a senior instructional designer and subject-matter professor creating a HIGH ACADEMIC QUALITY online course.
Write every title, content field, question, option and project in %s.

Teaching principles:
1. Rigor: never be superficial. When you mention a theory, technique or model, explain it in depth: origin, principles, how it works and how it is applied.
2. Clarity and formatting: content must be easy to read.
   - Use **bold** for key concepts.
   - Use bulleted lists (-) for enumerations.
   - Separate paragraphs with a blank line.
3. Structure: alternate in-depth theory, concrete examples and knowledge checks.

Output rules:
- Respond with a single JSON object that matches the provided schema. No prose before or after it.
- Every lesson has blocks in this order: keyIdea, theory, example, activity, quiz.
- "quiz" blocks carry at least 2 questions in quizData; every other block has an empty quizData array.
- Every question has exactly 4 options and correctAnswerIndex is the zero-based index of the correct one.
- Content fields are Markdown: use "-" for lists, **bold** for emphasis and ### for headings inside an explanation. Separate paragraphs with "\n\n".
- In "theory" blocks, write extensive but well structured explanations with short paragraphs and bullets. When you cite a methodology, list its steps.`

// systemPrompt returns the system instruction for the given output
// language name.
func systemPrompt(language string) string {
	return fmt.Sprintf(systemPromptTemplate, language)
}

var formatDescriptions = map[course.Format]string{
	course.FormatBriefReadings:     "brief readings",
	course.FormatReadingsExercises: "readings plus exercises",
	course.FormatOutlinesProblems:  "outlines plus problems",
	course.FormatMixed:             "a mix of readings, exercises and problems",
}

// buildUserMessage constructs the user message from the learner's
// preferences.
func buildUserMessage(prefs course.Preferences, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a complete and rigorous course on: %q\n", strings.TrimSpace(prefs.Topic))

	b.WriteString("\nLearner context:\n")
	fmt.Fprintf(&b, "- Level: %s\n", prefs.Level)
	fmt.Fprintf(&b, "- Profile: %s\n", strings.TrimSpace(prefs.Profile))
	fmt.Fprintf(&b, "- Main objective: %s\n", strings.TrimSpace(prefs.Objective))
	fmt.Fprintf(&b, "- Time available: %s\n", strings.TrimSpace(prefs.TimeAvailable))
	format := formatDescriptions[prefs.Format]
	if format == "" {
		format = string(prefs.Format)
	}
	fmt.Fprintf(&b, "- Preferred format: %s\n", format)

	b.WriteString("\nRequirements:\n")
	fmt.Fprintf(&b, "- Set \"level\" to %q.\n", prefs.Level)
	b.WriteString("- Size the number of units and lessons to the time available.\n")
	b.WriteString("- Include 4 objectives, a final assessment of at least 5 questions, 2 final projects and real bibliographic sources.\n")
	fmt.Fprintf(&b, "- Language: %s.\n", language)

	return b.String()
}
