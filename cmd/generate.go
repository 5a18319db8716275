package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/coursegen"
	"github.com/abhisek/aula/internal/llm"
)

// PurposeCourseGenCLI tags events recorded by `aula generate`.
const PurposeCourseGenCLI = "course-gen-cli"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a course without the TUI and write it as JSON",
	Long: `Generate a course from preferences given as flags and write the course
JSON to a file or stdout. The output can be opened later with "aula view".`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("topic", "", "What to learn (required)")
	f.String("level", string(course.LevelBeginner), "Beginner, Intermediate or Advanced")
	f.String("profile", "", "Who the course is for (required)")
	f.String("objective", "", "Main objective (required)")
	f.String("time", "", "Time available, e.g. \"2 weeks, 1h a day\" (required)")
	f.String("format", string(course.FormatMixed), "brief-readings, readings-exercises, outlines-problems or mixed")
	f.StringP("output", "o", "", "Write the course to this file instead of stdout")
	f.Int("max-tokens", coursegen.DefaultConfig().MaxTokens, "Token budget for the response")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)
	log, err := setup(v)
	if err != nil {
		return err
	}
	defer log.Sync()

	prefs := course.Preferences{
		Topic:         v.GetString("topic"),
		Level:         course.Level(v.GetString("level")),
		Profile:       v.GetString("profile"),
		Objective:     v.GetString("objective"),
		TimeAvailable: v.GetString("time"),
		Format:        course.Format(v.GetString("format")),
	}
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := llmConfig(v)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	genCfg := coursegen.DefaultConfig()
	genCfg.Purpose = PurposeCourseGenCLI
	genCfg.MaxTokens = v.GetInt("max-tokens")
	gen := coursegen.New(provider, genCfg, log)

	fmt.Fprintf(os.Stderr, "Generating course on %q with %s...\n", prefs.Topic, provider.ModelID())
	c, err := gen.Generate(cmd.Context(), prefs)
	if err != nil {
		var ge *coursegen.GenerationError
		if errors.As(err, &ge) && ge.Message != "" {
			fmt.Fprintln(os.Stderr, ge.Message)
		}
		return err
	}
	printIssues(c)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode course: %w", err)
	}
	data = append(data, '\n')

	out := v.GetString("output")
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write course: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s: %d units, %d lessons\n", out, len(c.Units), c.TotalLessons())
	return nil
}

// printIssues reports structural problems that do not stop the course
// from being shown.
func printIssues(c *course.Course) {
	for _, issue := range course.Check(c) {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", issue.Path, issue.Message)
	}
}
