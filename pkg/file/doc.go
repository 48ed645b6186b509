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

// Package file reads text documents from the filesystem as ordered lines.
//
// Both the recipe parser and the merge utility read their inputs through a
// Parser. By default every line is kept verbatim, including blank lines,
// because blank lines carry meaning in recipe documents:
//
//	lines, err := file.NewParser().GetLines("recipes.txt")
//	if err != nil {
//	    return err
//	}
//
// Line endings are normalized: a trailing "\r" is dropped from each line, and
// a final newline does not produce an extra empty line, so "a\nb\n" yields
// two lines just like "a\nb".
//
// Files larger than the configured maximum (DefaultMaxSize unless WithMaxSize
// is given) are rejected without being read past the limit. WithSkipComments
// drops lines whose first non-blank character is "#"; the merge utility
// offers it, the recipe parser does not.
//
// # Error Handling
//
// A missing file is reported as a structured NOT_FOUND error; all other read
// failures (permissions, oversize content, invalid UTF-8) are INTERNAL or
// INVALID_ARGUMENT errors carrying the path in their context:
//
//	_, err := file.ReadLines("/nonexistent")
//	// [NOT_FOUND] file "/nonexistent" not found: open /nonexistent: no such file or directory
//
// # Thread Safety
//
// A Parser holds only immutable settings and can be used concurrently.
package file
