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

// Package serializer writes cookbook documents and reads menu files.
//
// Documents are written as YAML (the CLI default), JSON or a table:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatTable, outputPath)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, doc)
//
// A blank output path writes to stdout. The table format only accepts
// documents implementing Tabler; each document decides its own columns, e.g.
// a shopping list renders as
//
//	ITEM   QUANTITY  UNIT
//	eggs   6         pcs
//	milk   150       ml
//
// FromFile reads .json, .yaml and .yml files and rejects fields the target
// type does not declare, so a misspelled key in a menu file is reported.
package serializer
