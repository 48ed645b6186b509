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
	"strconv"

	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// Document is the serializable listing of a Cookbook.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

// NewDocument lists the recipes of cb. When names is non-empty only those
// recipes are included, in the order given; unknown names are skipped.
func NewDocument(cb *Cookbook, version string, names ...string) *Document {
	doc := &Document{}
	doc.Init(header.KindCookbook, version)

	if len(names) == 0 {
		doc.Recipes = cb.Recipes()
		return doc
	}

	doc.Recipes = make([]Recipe, 0, len(names))
	for _, name := range names {
		if r, ok := cb.Get(name); ok {
			doc.Recipes = append(doc.Recipes, r)
		}
	}
	return doc
}

// Table lists one row per ingredient. A recipe without ingredients still gets
// a row with empty ingredient cells.
func (d *Document) Table() serializer.Table {
	t := serializer.Table{Columns: []string{"RECIPE", "INGREDIENT", "QUANTITY", "UNIT"}}
	for _, r := range d.Recipes {
		if len(r.Ingredients) == 0 {
			t.Rows = append(t.Rows, []string{r.Name, "", "", ""})
			continue
		}
		for _, ing := range r.Ingredients {
			t.Rows = append(t.Rows, []string{r.Name, ing.Name, strconv.Itoa(ing.Quantity), ing.Unit})
		}
	}
	return t
}
