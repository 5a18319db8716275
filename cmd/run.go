package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aula/internal/app"
	"github.com/abhisek/aula/internal/coursegen"
	"github.com/abhisek/aula/internal/llm"
	"github.com/abhisek/aula/internal/ui/theme"
)

// runApp opens the store, builds the generator and launches the TUI.
func runApp(cmd *cobra.Command) error {
	v := viperForCmd(cmd)
	log, err := setup(v)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := llmConfig(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or another provider key) to generate courses.")
		return err
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	log.Info("starting", "provider", cfg.Provider, "model", provider.ModelID())

	return app.Run(app.Options{
		Generator:   coursegen.New(provider, coursegen.DefaultConfig(), log),
		SkipWelcome: v.GetBool("no-splash"),
		Theme:       theme.Mode(v.GetString("theme")),
		Log:         log,
	})
}
