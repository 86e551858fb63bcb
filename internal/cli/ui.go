package cli

import (
	"context"
	"errors"
	"io"
	"os/user"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/themestore/themestore/internal/config"
	"github.com/themestore/themestore/internal/events"
	"github.com/themestore/themestore/internal/logging"
	"github.com/themestore/themestore/internal/models"
	"github.com/themestore/themestore/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"ui"},
	Short:   "Browse the storefront in this terminal",
	Long:    "Open the interactive storefront: filter the catalog, search and fill a cart.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context())
	},
}

func runBrowse(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the storefront requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use \"themestore list\"",
			NextStep: "themestore list",
		}
	}

	cfg := GetConfig()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	out, closeLog, err := browseLogOutput(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Init(logging.Options{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
		Output: out,
	}); err != nil {
		return err
	}

	logger := logging.Component("tui")
	rec := events.NewLogRecorder(logger)
	sessionID := uuid.NewString()

	if err := events.LogSessionStarted(ctx, rec, sessionID, models.SessionStartedPayload{User: localUser()}); err != nil {
		logger.Warn().Err(err).Msg("failed to record session start")
	}
	started := time.Now()

	state, err := tui.Run(ctx, tui.Config{
		Theme:     cfg.TUI.Theme,
		AltScreen: cfg.TUI.AltScreen,
		Observer:  events.Observer(ctx, rec, sessionID, logger),
	})

	if logErr := events.LogSessionEnded(ctx, rec, sessionID, time.Since(started), state); logErr != nil {
		logger.Warn().Err(logErr).Msg("failed to record session end")
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func browseLogOutput(cfg config.LoggingConfig) (io.Writer, func(), error) {
	if cfg.File == "" {
		return io.Discard, func() {}, nil
	}
	file, err := logging.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func localUser() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
