// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shopping

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/errors"
)

// Entry is the accumulated amount of one ingredient.
type Entry struct {
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
}

// List maps ingredient names to accumulated amounts.
type List map[string]Entry

// Item is a List entry together with its ingredient name.
type Item struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
}

// Build computes the shopping list for dishes, each prepared for servings
// persons. servings must be positive.
func Build(dishes []string, servings int, cb *cookbook.Cookbook) (List, error) {
	if servings <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("servings must be positive, got %d", servings),
			map[string]any{"servings": servings})
	}
	if cb == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "cookbook is required")
	}

	list := make(List)
	for _, dish := range dishes {
		recipe, ok := cb.Get(dish)
		if !ok {
			slog.Debug("dish not in cookbook", "dish", dish)
			dishesMissing.Inc()
			continue
		}

		for _, ing := range recipe.Ingredients {
			if err := list.add(ing.Name, ing.Quantity, servings, ing.Unit); err != nil {
				return nil, err
			}
		}
	}

	listsBuilt.Inc()
	return list, nil
}

// add increments name by qty*servings; unit only applies when name is new.
// Quantities are non-negative, so any overflow shows up as exceeding MaxInt.
func (l List) add(name string, qty, servings int, unit string) error {
	if qty > math.MaxInt/servings {
		return overflowError(name, qty, servings)
	}
	scaled := qty * servings

	e, ok := l[name]
	if !ok {
		l[name] = Entry{Quantity: scaled, Unit: unit}
		return nil
	}
	if e.Quantity > math.MaxInt-scaled {
		return overflowError(name, qty, servings)
	}
	e.Quantity += scaled
	l[name] = e
	return nil
}

func overflowError(name string, qty, servings int) error {
	return errors.NewWithContext(errors.ErrCodeInvalidArgument,
		fmt.Sprintf("quantity of %q overflows", name),
		map[string]any{"ingredient": name, "quantity": qty, "servings": servings})
}

// Items returns the list entries ordered by ingredient name using
// language-neutral collation.
func (l List) Items() []Item {
	items := make([]Item, 0, len(l))
	for name, e := range l {
		items = append(items, Item{Name: name, Quantity: e.Quantity, Unit: e.Unit})
	}

	col := collate.New(language.Und)
	sort.Slice(items, func(i, j int) bool {
		if c := col.CompareString(items[i].Name, items[j].Name); c != 0 {
			return c < 0
		}
		return items[i].Name < items[j].Name
	})

	return items
}
