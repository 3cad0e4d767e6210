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

// Package trees defines the contract every planner tree obeys: nodes are
// immutable, have a fixed arity per concrete kind, and any rewrite rebuilds
// fresh nodes bottom-up while untouched subtrees are shared by reference.
// Expression trees and logical plan trees are separate interface families,
// but both route their rebuild precondition through this package.
package trees

import (
	"fmt"
	"strings"

	"github.com/wangyf0555/incubator-doris/pkg/planner/planerrors"
)

// CheckRebuildArity validates the children count handed to a rebuild. A
// mismatch is a caller bug, not a data condition, so it panics with a fatal
// planner error instead of returning it.
func CheckRebuildArity(what string, want, got int) {
	if want != got {
		panic(planerrors.ErrInternal.GenWithStackByArgs(
			fmt.Sprintf("rebuild %s with %d children, arity is %d", what, got, want)))
	}
}

// ExplainBinary renders a binary node structurally, as `(left OP right)`.
func ExplainBinary(left fmt.Stringer, op string, right fmt.Stringer) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(left.String())
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	sb.WriteString(right.String())
	sb.WriteByte(')')
	return sb.String()
}
