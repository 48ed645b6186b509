/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/file"
	"github.com/NVIDIA/cookbook/pkg/logging"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

const (
	name           = "cookbook"
	versionDefault = "dev"

	envPrefix = "COOKBOOK_"

	exitError           = 1
	exitCanceled        = 2
	exitInvalidArgument = 3
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// outputFlag, formatFlag, recipesFlag and maxSizeFlag return new flag
// instances on every call. A flag keeps the value it parsed, so commands must not share one.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars(envPrefix + "OUTPUT"),
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		Sources: cli.EnvVars(envPrefix + "FORMAT"),
	}
}

func maxSizeFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:    "max-size",
		Value:   file.DefaultMaxSize,
		Usage:   "Largest input file accepted, in bytes",
		Sources: cli.EnvVars(envPrefix + "MAX_SIZE"),
	}
}

func recipesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "recipes",
		Aliases: []string{"r"},
		Value:   "recipes.txt",
		Usage:   "Path to the recipe document",
		Sources: cli.EnvVars(envPrefix + "RECIPES"),
	}
}

// Execute runs the root command with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "code", cberrors.CodeOf(err), "error", err)
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Recipe parsing, shopping lists and file merging",
		Description: fmt.Sprintf(`cookbook - recipe and shopping list tooling

Version: %s
Commit:  %s
Built:   %s

shop    - builds a shopping list for selected dishes from a recipe document.
recipes - lists the recipes parsed from a recipe document.
merge   - merges text files into one, shortest first.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			shopCmd(),
			recipesCmd(),
			mergeCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

// parseOutputFormat validates the --format flag of cmd.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", cberrors.NewWithContext(cberrors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats()),
			map[string]any{"format": string(f)})
	}
	return f, nil
}

// readOptions returns the file read options selected by the flags of cmd.
func readOptions(cmd *cli.Command) []file.Option {
	return []file.Option{file.WithMaxSize(cmd.Int64("max-size"))}
}

// writeOutput serializes doc to the --output destination of cmd.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, doc any) error {
	ser, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return exitCanceled
	case cberrors.IsCode(err, cberrors.ErrCodeInvalidArgument):
		return exitInvalidArgument
	default:
		return exitError
	}
}
