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

// Package planerrors defines the error classes shared by the planner core.
package planerrors

import (
	"github.com/pingcap/errors"
)

// error definitions.
var (
	// ErrUnboundSlot reports a nullability (or other bound-only) query against
	// a slot reference that analysis never bound to an input schema. It must
	// not be folded into a plain "not nullable" answer.
	ErrUnboundSlot = errors.Normalize("slot reference %s is not bound", errors.RFCCodeText("planner:8101"))

	// ErrUnsupportedType reports a scalar type that has no representation in
	// the external function-evaluation contract.
	ErrUnsupportedType = errors.Normalize("unsupported type %s in function %s", errors.RFCCodeText("planner:8102"))

	// ErrInternal reports planner-internal invariant violations.
	ErrInternal = errors.Normalize("internal error: %s", errors.RFCCodeText("planner:8103"))
)
