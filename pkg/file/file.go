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

package file

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/cookbook/pkg/errors"
)

// DefaultMaxSize is the largest file, in bytes, a Parser reads by default.
const DefaultMaxSize = 1 << 20

// Options for configuring the Parser.
type Option func(*Parser)

// Parser reads files and splits them into lines.
type Parser struct {
	maxSize      int64
	skipComments bool
}

// WithMaxSize sets the maximum size (in bytes) of the file to be read.
// Non-positive sizes keep the default of 1MB.
func WithMaxSize(size int64) Option {
	return func(p *Parser) {
		if size > 0 {
			p.maxSize = size
		}
	}
}

// WithSkipComments sets whether lines starting with "#" are dropped.
// Default is false.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// NewParser creates a new file parser with the provided options.
// Default settings: 1MB max file size, all lines kept.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize: DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadLines reads the file at path configured by opts.
func ReadLines(path string, opts ...Option) ([]string, error) {
	return NewParser(opts...).GetLines(path)
}

// GetLines reads the file at the given path and splits its content into lines.
// Both "\n" and "\r\n" line endings are accepted. Line order matches the file.
// An error is returned if the file cannot be read, exceeds the maximum size,
// or contains invalid UTF-8 content.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "file path cannot be empty")
	}

	b, err := p.read(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(b) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("content of file %q is not valid UTF-8", path),
			map[string]any{"path": path})
	}

	return p.split(string(b)), nil
}

// read returns the content of path, reading at most one byte past maxSize.
func (p *Parser) read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("file %q not found", path), err, map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to open file %q", path), err, map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close file", "path", path, "error", cerr)
		}
	}()

	b, err := io.ReadAll(io.LimitReader(f, p.maxSize+1))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to read file %q", path), err, map[string]any{"path": path})
	}

	if int64(len(b)) > p.maxSize {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("file %q exceeds maximum size of %d bytes", path, p.maxSize),
			map[string]any{"path": path, "maxSize": p.maxSize})
	}

	return b, nil
}

func (p *Parser) split(content string) []string {
	if content == "" {
		return []string{}
	}

	parts := strings.Split(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSuffix(part, "\r")

		if p.skipComments && strings.HasPrefix(strings.TrimSpace(line), "#") {
			slog.Debug("skipping comment line", "line", line)
			continue
		}

		result = append(result, line)
	}

	return result
}
