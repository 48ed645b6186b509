/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/file"
	"github.com/NVIDIA/cookbook/pkg/merge"
)

func mergeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "merge",
		EnableShellCompletion: true,
		Usage:                 "Merge text files into one, shortest first",
		ArgsUsage:             "FILE...",
		Description: `Merge text files into a single result file.

Inputs are ordered by their number of lines, shortest first; files of equal
length keep their command line order. Each input is written as its name, its
line count and then its lines.

A report describing the merge is printed in the selected format.

# Examples

  cookbook merge 1.txt 2.txt 3.txt
  cookbook merge --result merged.txt --format json 1.txt 2.txt
  cookbook merge --skip-comments notes/*.txt`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "result",
				Aliases: []string{"R"},
				Value:   merge.DefaultOutput,
				Usage:   "Path of the merged file",
				Sources: cli.EnvVars(envPrefix + "MERGE_RESULT"),
			},
			&cli.BoolFlag{
				Name:    "skip-comments",
				Usage:   "Drop lines starting with \"#\" from the inputs",
				Sources: cli.EnvVars(envPrefix + "MERGE_SKIP_COMMENTS"),
			},
			maxSizeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return errors.New(errors.ErrCodeInvalidArgument, "at least one input file is required")
			}

			opts := append(readOptions(cmd), file.WithSkipComments(cmd.Bool("skip-comments")))
			contents, err := merge.Load(ctx, paths, opts...)
			if err != nil {
				return fmt.Errorf("failed to load merge inputs: %w", err)
			}
			merge.SortByLength(contents)

			result := cmd.String("result")
			if err := merge.WriteFile(result, contents); err != nil {
				return err
			}

			slog.Info("files merged",
				"inputs", len(contents),
				"result", result)

			return writeOutput(ctx, cmd, outFormat, merge.NewReport(result, contents, version))
		},
	}
}
