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
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cookbook/pkg/errors"
)

// inputFormat picks the decoder for path from its extension.
func inputFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("cannot read %q: expected a .json, .yaml or .yml file", path),
			map[string]any{"path": path})
	}
}

// FromFile decodes the JSON or YAML document at path into a new T.
// Fields unknown to T are rejected. An empty file yields the zero T.
func FromFile[T any](path string) (*T, error) {
	format, err := inputFormat(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				fmt.Sprintf("file %q not found", path), err, map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to read file %q", path), err, map[string]any{"path": path})
	}

	var v T
	if err := decode(format, b, &v); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapWithContext(errors.ErrCodeParse,
			fmt.Sprintf("failed to decode %s file %q", format, path), err,
			map[string]any{"path": path})
	}

	slog.Debug("loaded document", "path", path, "format", format)
	return &v, nil
}

func decode(format Format, b []byte, v any) error {
	if format == FormatJSON {
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(v)
}
