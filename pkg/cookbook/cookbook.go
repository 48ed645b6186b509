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

package cookbook

import "slices"

// Ingredient is a single ingredient record of a recipe.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
}

// Recipe is a named, ordered list of ingredients.
type Recipe struct {
	Name        string       `json:"name" yaml:"name"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Cookbook maps recipe names to recipes. Adding a recipe under an existing
// name replaces it (last write wins) but keeps the original listing position.
// The zero value is not usable; create one with New.
type Cookbook struct {
	recipes map[string]Recipe
	order   []string
}

// New returns an empty Cookbook.
func New() *Cookbook {
	return &Cookbook{
		recipes: make(map[string]Recipe),
	}
}

// Put stores r, replacing any recipe with the same name.
func (c *Cookbook) Put(r Recipe) {
	if _, ok := c.recipes[r.Name]; !ok {
		c.order = append(c.order, r.Name)
	}
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	} else {
		r.Ingredients = slices.Clone(r.Ingredients)
	}
	c.recipes[r.Name] = r
}

// Get returns the recipe with the given name. The returned ingredient slice
// is a copy.
func (c *Cookbook) Get(name string) (Recipe, bool) {
	r, ok := c.recipes[name]
	if !ok {
		return Recipe{}, false
	}
	r.Ingredients = slices.Clone(r.Ingredients)
	return r, true
}

// Has reports whether a recipe with the given name exists.
func (c *Cookbook) Has(name string) bool {
	_, ok := c.recipes[name]
	return ok
}

// Len returns the number of recipes.
func (c *Cookbook) Len() int {
	return len(c.order)
}

// Names returns recipe names in the order they were first added.
func (c *Cookbook) Names() []string {
	return slices.Clone(c.order)
}

// Recipes returns all recipes in the order they were first added.
func (c *Cookbook) Recipes() []Recipe {
	out := make([]Recipe, 0, len(c.order))
	for _, name := range c.order {
		r, _ := c.Get(name)
		out = append(out, r)
	}
	return out
}

// appendIngredient adds ing to an existing recipe in place.
func (c *Cookbook) appendIngredient(name string, ing Ingredient) {
	r := c.recipes[name]
	r.Ingredients = append(r.Ingredients, ing)
	c.recipes[name] = r
}
