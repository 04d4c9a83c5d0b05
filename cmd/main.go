package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kievzenit/ylox/internal/config"
	"github.com/kievzenit/ylox/internal/runner"
)

// Exit codes follow sysexits.h.
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
	exitConfig  = 78
)

type options struct {
	cfgFile     string
	printTokens bool
	printAst    bool
	dumpAst     bool
	noColor     bool
}

type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ylox [script]",
		Short:         "Scan and parse ylox expressions",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return &configError{err: err}
			}
			applyFlags(cmd, opts, cfg)

			r := runner.NewRunner(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if len(args) == 1 {
				return r.RunFile(args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return r.RunPrompt(ctx, cmd.InOrStdin())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "path to a TOML config file")
	cmd.Flags().BoolVar(&opts.printTokens, "tokens", true, "print the scanned tokens")
	cmd.Flags().BoolVar(&opts.printAst, "ast", true, "print the parsed expression")
	cmd.Flags().BoolVar(&opts.dumpAst, "dump", false, "dump the expression tree")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	return cmd
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tokens") {
		cfg.PrintTokens = opts.printTokens
	}
	if flags.Changed("ast") {
		cfg.PrintAst = opts.printAst
	}
	if flags.Changed("dump") {
		cfg.DumpAst = opts.dumpAst
	}
	if opts.noColor {
		cfg.Color = false
	}
}

func exitCode(err error) int {
	var cfgErr *configError

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return exitOK
	case errors.Is(err, runner.ErrHadDiagnostics):
		return exitDataErr
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission):
		return exitNoInput
	default:
		return exitUsage
	}
}

func main() {
	err := newRootCmd(&options{}).ExecuteContext(context.Background())

	code := exitCode(err)
	if code != exitOK && code != exitDataErr {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}
