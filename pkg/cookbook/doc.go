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

// Package cookbook parses flat-text recipe documents into a Cookbook.
//
// # Document Format
//
// A document is a sequence of recipe blocks separated by blank lines. The
// first non-blank line of a block is the recipe name; the following lines are
// ingredient records of the form:
//
//	<name> | <quantity> | <unit>
//
// Lines inside a block that contain no "|" are treated as free text and
// skipped. For example:
//
//	Omelette
//	eggs | 2 | pcs
//	milk | 50 | ml
//
//	Toast
//	A quick breakfast.
//	bread | 2 | slices
//
// # Semantics
//
//   - A blank line always ends the current recipe; the next non-blank line is
//     a recipe name whatever its content.
//   - A recipe name seen again replaces the earlier recipe entirely
//     (last write wins), keeping the position of the first occurrence.
//   - A record with other than three " | " separated fields, or with a
//     quantity that is not a non-negative integer, fails the whole parse with
//     a PARSE_ERROR carrying the 1-based line number and the line content.
//
// # Usage
//
//	cb, err := cookbook.ParseFile("recipes.txt")
//	if err != nil {
//	    return err
//	}
//	for _, r := range cb.Recipes() {
//	    fmt.Println(r.Name, len(r.Ingredients))
//	}
//
// Parsing is a pure function of its input; re-parsing the same lines yields
// an identical Cookbook.
package cookbook
