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

	"github.com/NVIDIA/cookbook/pkg/cookbook"
)

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "List recipes parsed from a recipe document",
		Description: `Parse a recipe document and print its recipes with their ingredients.

Recipe blocks are separated by blank lines. The first line of a block is the
recipe name, ingredient lines use the form "name | quantity | unit", and any
other line inside a block is ignored.

# Examples

  cookbook recipes --recipes recipes.txt
  cookbook recipes -r recipes.txt --dish Omelette --format json`,
		Flags: []cli.Flag{
			recipesFlag(),
			maxSizeFlag(),
			&cli.StringSliceFlag{
				Name:    "dish",
				Aliases: []string{"d"},
				Usage:   "Only list the named recipe (repeatable)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			recipesPath := cmd.String("recipes")
			cb, err := cookbook.ParseFile(recipesPath, readOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("failed to load cookbook from %q: %w", recipesPath, err)
			}

			doc := cookbook.NewDocument(cb, version, cmd.StringSlice("dish")...)

			slog.Info("cookbook loaded",
				"path", recipesPath,
				"recipes", cb.Len(),
				"listed", len(doc.Recipes))

			return writeOutput(ctx, cmd, outFormat, doc)
		},
	}
}
