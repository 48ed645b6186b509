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

package merge

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/file"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = "result.txt"

// maxParallelReads bounds concurrent file reads in Load.
const maxParallelReads = 8

// Content is one loaded input file.
type Content struct {
	Name   string   `json:"name" yaml:"name"`
	Length int      `json:"length" yaml:"length"`
	Lines  []string `json:"-" yaml:"-"`
}

// Load reads every path with the given read options and returns the contents
// in the same order. The first read error cancels the remaining reads.
func Load(ctx context.Context, paths []string, opts ...file.Option) ([]Content, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "at least one input file is required")
	}

	contents := make([]Content, len(paths))
	parser := file.NewParser(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lines, err := parser.GetLines(path)
			if err != nil {
				return fmt.Errorf("failed to load %q: %w", path, err)
			}

			slog.Debug("loaded merge input", "path", path, "lines", len(lines))
			contents[i] = Content{
				Name:   path,
				Length: len(lines),
				Lines:  lines,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return contents, nil
}

// SortByLength orders contents by ascending line count. Inputs of equal
// length keep their relative order.
func SortByLength(contents []Content) {
	sort.SliceStable(contents, func(i, j int) bool {
		return contents[i].Length < contents[j].Length
	})
}

// Write renders contents to w in their current order.
func Write(w io.Writer, contents []Content) error {
	bw := bufio.NewWriter(w)
	for _, c := range contents {
		if _, err := bw.WriteString(c.Name + "\n" + strconv.Itoa(c.Length) + "\n"); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to write merge header", err)
		}
		for _, line := range c.Lines {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, "failed to write merge content", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to flush merge output", err)
	}
	return nil
}

// WriteFile renders contents into the file at path, replacing it.
// An empty path writes DefaultOutput.
func WriteFile(path string, contents []Content) error {
	if path == "" {
		path = DefaultOutput
	}

	var buf bytes.Buffer
	if err := Write(&buf, contents); err != nil {
		return err
	}

	if err := serializer.WriteToFile(path, buf.Bytes()); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write merge result", err,
			map[string]any{"path": path})
	}
	return nil
}
