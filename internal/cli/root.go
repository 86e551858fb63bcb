// Package cli implements the themestore command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/themestore/themestore/internal/config"
	"github.com/themestore/themestore/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	themeName      string
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themestore",
	Short: "Browse and purchase premium themes from your terminal",
	Long: `Theme Store is a terminal storefront for themes and templates.

Run without a subcommand to browse the catalog interactively, or use
"themestore serve" to host the storefront over SSH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themestore/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.StringVar(&themeName, "theme", "", "TUI palette: default or high-contrast")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

func initConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Fix the config file or the THEMESTORE_* environment variables",
				NextStep: "themestore --config <path> list",
			}
		}
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if themeName != "" {
		cfg.TUI.Theme = themeName
	}
	if err := cfg.Validate(); err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Check the --log-level, --log-format and --theme flags",
			NextStep: "themestore --help",
		}
	}

	if err := logging.Init(logging.Options{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.Name()).
		Str("config", cfgFile).
		Msg("configuration loaded")
	return nil
}

// PreflightError is a failure detected before any work starts, with advice
// on how to fix it.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(w io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintf(w, "Error: %s\n", preflight.Message)
		if preflight.Hint != "" {
			fmt.Fprintf(w, "Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(w, "Next: %s\n", preflight.NextStep)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
