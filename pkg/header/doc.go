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

// Package header provides the common document header for cookbook output.
//
// Every document the CLI emits (a cookbook listing, a shopping list, a merge
// report) embeds a Header so that consumers can identify what they are
// reading:
//
//	type ShoppingList struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Items []shopping.Item `json:"items" yaml:"items"`
//	}
//
// # Serialization
//
//	kind: ShoppingList
//	apiVersion: cookbook.nvidia.com/v1alpha1
//	metadata:
//	  id: 7f1c1f0e-4c1d-4b53-9a55-2f7b0c7d1c11
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Init populates the metadata with a random document id, an RFC3339 UTC
// timestamp and, when known, the tool version.
package header
