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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cookbook/pkg/errors"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Writer writes documents in a single format to stdout or a file.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewFileWriterOrStdout returns a Writer for path, or for stdout when path is
// blank. The file is created or truncated right away; Close releases it.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if format.IsUnknown() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown output format: %q", format),
			map[string]any{"format": string(format)})
	}

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return &Writer{format: format, output: os.Stdout}, nil
	}

	f, err := os.Create(trimmed)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to create output file", err, map[string]any{"path": trimmed})
	}

	return &Writer{format: format, output: f, closer: f}, nil
}

// Close releases the output file, if any. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize writes doc in the configured format. FormatTable requires doc to
// implement Tabler.
func (w *Writer) Serialize(ctx context.Context, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to serialize to JSON", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to serialize to YAML", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to serialize to YAML", err)
		}
		return nil
	case FormatTable:
		t, ok := doc.(Tabler)
		if !ok {
			return errors.New(errors.ErrCodeInvalidArgument,
				fmt.Sprintf("%T cannot be written as a table", doc))
		}
		return w.writeTable(t.Table())
	default:
		return errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unsupported format: %s", w.format))
	}
}

func (w *Writer) writeTable(t Table) error {
	if len(t.Rows) == 0 {
		slog.Debug("table has no rows", "columns", t.Columns)
	}

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write table", err)
	}
	return nil
}

// WriteToFile writes data to a file at the specified path, replacing any
// existing content. The file is created with 0644 permissions.
func WriteToFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
