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
	"strconv"

	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// Report describes a completed merge.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Output string    `json:"output" yaml:"output"`
	Files  []Content `json:"files" yaml:"files"`
}

// NewReport describes contents, in their written order, merged into output.
func NewReport(output string, contents []Content, version string) *Report {
	r := &Report{
		Output: output,
		Files:  contents,
	}
	r.Init(header.KindMergeReport, version)
	return r
}

// Table lists the merged files in their written order.
func (r *Report) Table() serializer.Table {
	t := serializer.Table{Columns: []string{"FILE", "LINES"}}
	for _, c := range r.Files {
		t.Rows = append(t.Rows, []string{c.Name, strconv.Itoa(c.Length)})
	}
	return t
}
