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

// Package merge combines several text files into one, shortest first.
//
// Each input is loaded with its line count, the inputs are stably sorted by
// that count, and the result is written as a sequence of sections:
//
//	<file name>
//	<line count>
//	<line 1>
//	...
//	<line n>
//
// Every line in the output ends with a newline, including the last line of an
// input that had none, so sections never run together.
//
// # Usage
//
//	contents, err := merge.Load(ctx, []string{"1.txt", "2.txt", "3.txt"})
//	if err != nil {
//	    return err
//	}
//	merge.SortByLength(contents)
//	if err := merge.WriteFile("result.txt", contents); err != nil {
//	    return err
//	}
//
// Load reads the inputs concurrently but always returns them in input order.
package merge
