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

package header

import (
	"time"

	"github.com/google/uuid"
)

// APIVersion is the schema version of all documents emitted by the tool.
const APIVersion = "cookbook.nvidia.com/v1alpha1"

// Metadata keys populated by Init.
const (
	MetadataID        = "id"
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// Kind represents the type of a cookbook document.
type Kind string

// Valid Kind constants for all document types.
const (
	KindCookbook     Kind = "Cookbook"
	KindShoppingList Kind = "ShoppingList"
	KindMergeReport  Kind = "MergeReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Option adds document specific details to a Header during Init.
type Option func(*Header)

// WithMetadata sets a metadata entry. Entries set by Init take precedence.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		h.Metadata[key] = value
	}
}

// Header contains type, schema version and metadata of a document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the Header to the given kind and the current APIVersion and
// populates Metadata with a fresh id, the current timestamp and version.
func (h *Header) Init(kind Kind, version string, opts ...Option) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = make(map[string]string)

	for _, opt := range opts {
		opt(h)
	}

	h.Metadata[MetadataID] = uuid.New().String()
	h.Metadata[MetadataTimestamp] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}
