package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/aula/internal/i18n"
	"github.com/abhisek/aula/internal/llm"
	"github.com/abhisek/aula/internal/logger"
	"github.com/abhisek/aula/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aula",
	Short: "AI course designer for the terminal",
	Long: "Aula: describe what you want to learn and get a structured course " +
		"with lessons, quizzes and a final project, right in your terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: aula.yaml in . or $HOME/.config/aula)")
	pf.String("db", "", "SQLite file for LLM request events (default: in memory)")
	pf.String("lang", i18n.DefaultLanguage, "Interface and course language (en, es)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("provider", "", "LLM provider: gemini, anthropic, openai, openrouter, mock")

	rootCmd.Flags().String("theme", "dark", "Color theme: dark or light")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// viperForCmd binds a command's flags, AULA_* environment variables and
// the optional config file to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())
	if f := cmd.Flags().Lookup("provider"); f != nil {
		_ = v.BindPFlag(llm.KeyProvider, f)
	}

	v.SetEnvPrefix("AULA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("aula")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/aula")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "error reading config file:", err)
		}
	}

	return v
}

// setup applies the language and builds the logger shared by every
// command.
func setup(v *viper.Viper) (*logger.Logger, error) {
	if lang := v.GetString("lang"); lang != "" {
		if err := i18n.SetLanguage(lang); err != nil {
			return nil, err
		}
	}
	log, err := logger.New(v.GetString("log-file"), v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Info("loaded config file", "path", used)
	}
	return log, nil
}

// openStore opens the event store at --db, or an in-memory one.
func openStore(v *viper.Viper) (*store.Store, error) {
	dsn, err := store.ResolveDSN(v.GetString("db"))
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// llmConfig reads provider settings from viper. When the selected
// provider has no key, the standard vendor variables are tried.
func llmConfig(v *viper.Viper) (llm.Config, error) {
	cfg, err := llm.ConfigFromLookup(v.GetString)
	if err != nil {
		return llm.Config{}, err
	}
	if cfg.Validate() == nil {
		return cfg, nil
	}
	if v.GetString(llm.KeyProvider) == "" {
		if found, ok := llm.DiscoverConfig(cfg); ok {
			return found, nil
		}
	}
	return cfg, cfg.Validate()
}
