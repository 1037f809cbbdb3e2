// Package cmd provides the CLI commands for the ShadowGraph client.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	shadowgraph "github.com/shadowgraph/shadowgraph-go"
	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
	"github.com/shadowgraph/shadowgraph-go/pkg/logger"
	"github.com/shadowgraph/shadowgraph-go/pkg/toast"
)

var (
	verbose  bool
	jsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "shadowgraph",
	Short: "ShadowGraph - consent-based digital footprint intelligence",
	Long: `ShadowGraph is the command-line client for the ShadowGraph backend.

It discovers what the internet knows about you, with your consent: face
matching, username discovery across platforms, breach exposure, research
paper lookup, risk scoring, and an identity graph built from your scans.

Quick start:
  1. shadowgraph signup --email you@example.com
  2. shadowgraph scan username yourhandle
  3. shadowgraph risk

Configuration:
  SHADOWGRAPH_API_BASE_URL   backend address (default http://127.0.0.1:8000)
  SHADOWGRAPH_API_TIMEOUT    per-request timeout (default 8s)
  SHADOWGRAPH_SESSION_FILE   session record location override`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apierrors.Display(err, "Something went wrong."))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	format := logger.FormatText
	if jsonLogs {
		format = logger.FormatJSON
	}
	return logger.New(logger.WithLevel(level), logger.WithFormat(format))
}

// toasts surfaces transient notifications on stderr so they never mix with
// command output on stdout.
var toasts = toast.NewStore(toast.WithOnChange(func(n *toast.Notification) {
	if n == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Severity, n.Message)
}))

// cliNavigator is the terminal's auth entry point: it cannot switch views, so
// it tells the user how to get a fresh session instead.
type cliNavigator struct{}

func (cliNavigator) CurrentPath() string { return "" }

func (cliNavigator) Navigate(target, from string) {
	fmt.Fprintf(os.Stderr, "Session expired while calling %s. Run 'shadowgraph login' to continue.\n", from)
}

// newClient builds the SDK client and wires the session bridge for the
// lifetime of the command.
func newClient(cmd *cobra.Command) (*shadowgraph.Client, error) {
	client, err := shadowgraph.New(shadowgraph.WithLogger(newLogger()))
	if err != nil {
		return nil, err
	}
	client.StartBridge(cmd.Context(), cliNavigator{})
	return client, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
