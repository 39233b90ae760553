// Package cmd implements the CLI commands for mdstrip using Cobra.
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/mdstrip/config"
	"github.com/gaurav-prasanna/mdstrip/core"
	"github.com/gaurav-prasanna/mdstrip/core/clipboard"
)

type ctxKey string

const appKey ctxKey = "app"

// app is what every subcommand needs once configuration is loaded.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// deps are the collaborators that tests swap out.
type deps struct {
	stdin     io.Reader
	clipboard core.Clipboard
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree wired to the real stdin and clipboard.
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{stdin: os.Stdin, clipboard: clipboard.New()})
}

func newRootCmd(d deps) *cobra.Command {
	var (
		cfgPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "mdstrip",
		Short: "mdstrip — turn chat-assistant markdown into clean plain text",
		Long: `mdstrip removes markdown syntax (headers, emphasis, links, rules, quotes)
while keeping indentation, line breaks and list structure. Every list marker
becomes a single bullet glyph and code is kept verbatim.

Usage:
  mdstrip strip [file|-] [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
			ctx := context.WithValue(cmd.Context(), appKey, &app{cfg: cfg, log: logger})
			cmd.SetContext(ctx)
			return nil
		},
	}
	cmd.SetIn(d.stdin)

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline steps to stderr")
	cmd.PersistentFlags().String("log_level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(newStripCmd(d))
	cmd.AddCommand(newStatsCmd())

	return cmd
}

var errNoApp = errors.New("internal error: app not initialized")

func getApp(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey).(*app)
	if !ok {
		return nil, errNoApp
	}
	return a, nil
}
