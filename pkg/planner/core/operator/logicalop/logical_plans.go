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

// Package logicalop defines the relational operators of the logical plan
// tree. Plans are immutable: every rewrite rebuilds fresh nodes bottom-up and
// shares untouched subtrees by reference, so the pre-rewrite tree stays valid
// for cost comparison and fallback.
package logicalop

import (
	"strings"

	"github.com/wangyf0555/incubator-doris/pkg/expression"
)

var (
	_ LogicalPlan = &LogicalJoin{}
	_ LogicalPlan = &LogicalProjection{}
	_ LogicalPlan = &LogicalScan{}
)

// Operator type labels, also used as pattern operand names.
const (
	TypeJoin       = "Join"
	TypeProjection = "Projection"
	TypeScan       = "Scan"
)

// LogicalPlan is a relational operator inside a logical plan tree.
type LogicalPlan interface {
	// TP returns the operator type label.
	TP() string

	// Children returns the ordered child list. Its length equals the arity
	// declared by the concrete operator.
	Children() []LogicalPlan

	// RebuildWith builds a new operator of the same kind over the given
	// children. A children count differing from the declared arity is a
	// caller bug and panics.
	RebuildWith(children []LogicalPlan) LogicalPlan

	// Schema returns the ordered output slots this operator produces. It is
	// derived from the current structure on every call, because join type
	// changes alter null propagation. Unbound input surfaces as an error.
	Schema() ([]*expression.SlotReference, error)

	// ExplainInfo returns the operator-local detail used by ToString.
	ExplainInfo() string
}

// ToString renders a whole plan tree on one line, operators as
// TP(detail){children}. Tests rely on it for structural comparison.
func ToString(p LogicalPlan) string {
	var sb strings.Builder
	toString(p, &sb)
	return sb.String()
}

func toString(p LogicalPlan, sb *strings.Builder) {
	sb.WriteString(p.TP())
	if info := p.ExplainInfo(); info != "" {
		sb.WriteByte('(')
		sb.WriteString(info)
		sb.WriteByte(')')
	}
	children := p.Children()
	if len(children) == 0 {
		return
	}
	sb.WriteByte('{')
	for i, child := range children {
		if i > 0 {
			sb.WriteByte(',')
		}
		toString(child, sb)
	}
	sb.WriteByte('}')
}
