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
	"strconv"

	"github.com/NVIDIA/cookbook/pkg/cookbook"
	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// MetadataServings is the header metadata key holding the serving multiplier.
const MetadataServings = "servings"

// Menu is a set of dishes to shop for, as read from a menu file.
type Menu struct {
	Dishes   []string `json:"dishes" yaml:"dishes"`
	Servings int      `json:"servings,omitempty" yaml:"servings,omitempty"`
}

// Document is the serializable form of a shopping list.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Servings int      `json:"servings" yaml:"servings"`
	Dishes   []string `json:"dishes" yaml:"dishes"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Items    []Item   `json:"items" yaml:"items"`
}

// NewDocument describes list as built from dishes and servings against cb.
// Requested dishes absent from cb are reported under Missing, once each.
func NewDocument(list List, dishes []string, servings int, cb *cookbook.Cookbook, version string) *Document {
	doc := &Document{
		Servings: servings,
		Dishes:   dishes,
		Items:    list.Items(),
	}
	doc.Init(header.KindShoppingList, version,
		header.WithMetadata(MetadataServings, strconv.Itoa(servings)))

	if doc.Dishes == nil {
		doc.Dishes = []string{}
	}

	seen := make(map[string]struct{})
	for _, dish := range dishes {
		if cb.Has(dish) {
			continue
		}
		if _, dup := seen[dish]; dup {
			continue
		}
		seen[dish] = struct{}{}
		doc.Missing = append(doc.Missing, dish)
	}

	return doc
}

// Table lists one row per item in collation order.
func (d *Document) Table() serializer.Table {
	t := serializer.Table{Columns: []string{"ITEM", "QUANTITY", "UNIT"}}
	for _, it := range d.Items {
		t.Rows = append(t.Rows, []string{it.Name, strconv.Itoa(it.Quantity), it.Unit})
	}
	return t
}
