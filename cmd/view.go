package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aula/internal/app"
	"github.com/abhisek/aula/internal/course"
	"github.com/abhisek/aula/internal/coursegen"
	"github.com/abhisek/aula/internal/llm"
	"github.com/abhisek/aula/internal/ui/theme"
)

var viewCmd = &cobra.Command{
	Use:   "view <course.json>",
	Short: "Open a saved course in the viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().String("theme", "dark", "Color theme: dark or light")
}

func runView(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)
	log, err := setup(v)
	if err != nil {
		return err
	}
	defer log.Sync()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read course: %w", err)
	}
	c, err := course.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	printIssues(c)

	opts := app.Options{
		Course: c,
		Theme:  theme.Mode(v.GetString("theme")),
		Log:    log,
	}

	// Starting a new course from the viewer needs a provider; without one
	// the viewer is read-only.
	if cfg, err := llmConfig(v); err == nil {
		st, err := openStore(v)
		if err != nil {
			return err
		}
		defer st.Close()
		if provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo(), log); err == nil {
			opts.Generator = coursegen.New(provider, coursegen.DefaultConfig(), log)
		} else {
			log.Warn("LLM provider unavailable", "error", err)
		}
	}

	return app.Run(opts)
}
