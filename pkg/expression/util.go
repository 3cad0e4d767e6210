// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package expression

// ReplaceSlots substitutes slot references by ID. Unmapped slots stay as
// they are. The input expression is untouched; subtrees without any mapped
// slot are shared by reference in the result.
func ReplaceSlots(expr Expression, replace map[int64]Expression) Expression {
	if expr == nil {
		return nil
	}
	if slot, ok := expr.(*SlotReference); ok {
		if to, ok := replace[slot.ID]; ok {
			return to
		}
		return expr
	}
	children := expr.Children()
	if len(children) == 0 {
		return expr
	}
	changed := false
	newChildren := make([]Expression, len(children))
	for i, child := range children {
		newChildren[i] = ReplaceSlots(child, replace)
		changed = changed || newChildren[i] != child
	}
	if !changed {
		return expr
	}
	return expr.RebuildWith(newChildren)
}
