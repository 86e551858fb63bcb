package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/themestore/themestore/internal/logging"
	"github.com/themestore/themestore/internal/server"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides server.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides server.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the storefront over SSH",
	Long: `Host the storefront over SSH. Every connection gets its own session
and cart; nothing is kept when the connection closes.

Connect with: ssh -p 2323 localhost`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg := *GetConfig()
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return servePreflight(err)
	}

	step := startProgress(os.Stderr, "Preparing SSH host")
	srv, err := server.New(&cfg, logging.Component("server"))
	if err != nil {
		step.Fail(err)
		return err
	}
	step.Done()

	return srv.Run(ctx)
}

func servePreflight(err error) *PreflightError {
	msg := err.Error()
	preflight := &PreflightError{
		Message:  msg,
		Hint:     "Check the server section of the config file or the THEMESTORE_SERVER_* variables",
		NextStep: "themestore serve --help",
	}
	switch {
	case strings.Contains(msg, "server.port"):
		preflight.Hint = "Pick a port between 1 and 65535"
		preflight.NextStep = "themestore serve --port 2323"
	case strings.Contains(msg, "server.host must"):
		preflight.Hint = "Set a listen host, e.g. 0.0.0.0 or 127.0.0.1"
		preflight.NextStep = "themestore serve --host 127.0.0.1"
	}
	return preflight
}
