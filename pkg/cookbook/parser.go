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

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/file"
)

const (
	// FieldDelimiter marks a line inside a recipe block as an ingredient record.
	FieldDelimiter = "|"

	// FieldSeparator splits an ingredient record into its fields.
	FieldSeparator = " | "

	recordFields = 3
)

// cursor tracks which recipe block, if any, the parser is in.
type cursor struct {
	active bool
	name   string
}

func (c *cursor) open(name string) {
	c.active = true
	c.name = name
}

func (c *cursor) reset() {
	c.active = false
	c.name = ""
}

// ParseFile reads the document at path with the given read options and
// parses it.
func ParseFile(path string, opts ...file.Option) (*Cookbook, error) {
	lines, err := file.ReadLines(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	cb, err := Parse(lines)
	if err != nil {
		return nil, err
	}

	slog.Debug("cookbook loaded",
		"path", path,
		"recipes", cb.Len())

	return cb, nil
}

// Parse converts document lines into a Cookbook.
func Parse(lines []string) (*Cookbook, error) {
	start := time.Now()
	defer func() {
		parseDuration.Observe(time.Since(start).Seconds())
	}()

	cb := New()
	var cur cursor

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			cur.reset()

		case !cur.active:
			cur.open(line)
			cb.Put(Recipe{Name: line})
			recipesParsed.Inc()

		case !strings.Contains(line, FieldDelimiter):
			slog.Debug("skipping line without delimiter",
				"recipe", cur.name,
				"line", i+1)
			linesSkipped.Inc()

		default:
			ing, err := parseIngredient(i+1, line)
			if err != nil {
				parseErrors.Inc()
				return nil, err
			}
			cb.appendIngredient(cur.name, ing)
		}
	}

	return cb, nil
}

// parseIngredient decodes a "name | quantity | unit" record. lineNo is 1-based.
func parseIngredient(lineNo int, line string) (Ingredient, error) {
	ctx := map[string]any{
		"line":    lineNo,
		"content": line,
	}

	fields := strings.Split(line, FieldSeparator)
	if len(fields) != recordFields {
		return Ingredient{}, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("line %d: malformed ingredient record %q: expected %d fields, got %d",
				lineNo, line, recordFields, len(fields)),
			ctx)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Ingredient{}, errors.WrapWithContext(errors.ErrCodeParse,
			fmt.Sprintf("line %d: invalid quantity %q", lineNo, fields[1]),
			err, ctx)
	}
	if qty < 0 {
		return Ingredient{}, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("line %d: quantity cannot be negative: %d", lineNo, qty),
			ctx)
	}

	return Ingredient{
		Name:     fields[0],
		Quantity: qty,
		Unit:     fields[2],
	}, nil
}
