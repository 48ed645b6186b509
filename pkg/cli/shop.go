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
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/shopping"
)

func shopCmd() *cli.Command {
	return &cli.Command{
		Name:                  "shop",
		EnableShellCompletion: true,
		Usage:                 "Build a shopping list for selected dishes",
		ArgsUsage:             "[DISH...]",
		Description: `Build a shopping list from a recipe document.

Every ingredient of every requested dish is multiplied by the number of
servings and summed per ingredient name. Dishes missing from the recipe
document are ignored and reported under "missing".

Dishes can be given with --dish, as positional arguments, or in a menu file:

  dishes:
    - Omelette
    - Toast
  servings: 2

Flags given on the command line take precedence over the menu.

# Examples

  cookbook shop --recipes recipes.txt --dish Omelette --servings 3
  cookbook shop -r recipes.txt --menu menu.yaml --format table`,
		Flags: []cli.Flag{
			recipesFlag(),
			maxSizeFlag(),
			&cli.StringSliceFlag{
				Name:    "dish",
				Aliases: []string{"d"},
				Usage:   "Dish to shop for (repeatable)",
				Sources: cli.EnvVars(envPrefix + "DISHES"),
			},
			&cli.IntFlag{
				Name:    "servings",
				Aliases: []string{"s"},
				Value:   1,
				Usage:   "Number of servings each dish is prepared for",
				Sources: cli.EnvVars(envPrefix + "SERVINGS"),
			},
			&cli.StringFlag{
				Name:    "menu",
				Aliases: []string{"m"},
				Usage:   "Path to a YAML or JSON menu file with dishes and servings",
				Sources: cli.EnvVars(envPrefix + "MENU"),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			menu, err := menuFromCmd(cmd)
			if err != nil {
				return err
			}

			recipesPath := cmd.String("recipes")
			cb, err := cookbook.ParseFile(recipesPath, readOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("failed to load cookbook from %q: %w", recipesPath, err)
			}

			if len(menu.Dishes) == 0 {
				slog.Warn("no dishes requested, shopping list will be empty")
			}

			list, err := shopping.Build(menu.Dishes, menu.Servings, cb)
			if err != nil {
				return fmt.Errorf("failed to build shopping list: %w", err)
			}

			doc := shopping.NewDocument(list, menu.Dishes, menu.Servings, cb, version)
			if len(doc.Missing) > 0 {
				slog.Warn("dishes not found in cookbook",
					"dishes", doc.Missing,
					"available", cb.Names())
			}

			slog.Info("shopping list built",
				"dishes", len(menu.Dishes),
				"servings", menu.Servings,
				"items", len(doc.Items))

			return writeOutput(ctx, cmd, outFormat, doc)
		},
	}
}

// menuFromCmd resolves the requested dishes and servings from the menu file,
// flags and positional arguments of cmd.
func menuFromCmd(cmd *cli.Command) (*shopping.Menu, error) {
	menu := &shopping.Menu{}

	if path := cmd.String("menu"); path != "" {
		m, err := serializer.FromFile[shopping.Menu](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
		menu = m
	}

	dishes := append(cmd.StringSlice("dish"), cmd.Args().Slice()...)
	if len(dishes) > 0 {
		menu.Dishes = dishes
	}

	if cmd.IsSet("servings") || menu.Servings == 0 {
		menu.Servings = int(cmd.Int("servings"))
	}

	return menu, nil
}
