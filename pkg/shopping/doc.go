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

// Package shopping aggregates the ingredients of selected dishes into a
// shopping list.
//
// Build walks the requested dishes in order and, for every ingredient of every
// dish found in the cookbook, adds quantity*servings to the entry for that
// ingredient name:
//
//	list, err := shopping.Build([]string{"Omelette", "Toast"}, 3, cb)
//	if err != nil {
//	    return err
//	}
//	for _, item := range list.Items() {
//	    fmt.Println(item.Name, item.Quantity, item.Unit)
//	}
//
// Dishes missing from the cookbook contribute nothing and are not an error.
// Requesting a dish twice counts it twice. Units are not reconciled: the unit
// of the first occurrence of an ingredient name is kept.
package shopping
