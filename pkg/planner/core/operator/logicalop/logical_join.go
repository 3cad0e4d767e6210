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

package logicalop

import (
	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/trees"
)

// LogicalJoin joins two child plans under a join type. The on-condition is a
// single expression; multi-conjunct conditions are an AND chain split by
// rules via expression.SplitConjuncts. A CrossJoin carries no condition.
type LogicalJoin struct {
	JoinType    JoinType
	OnCondition expression.Expression

	left  LogicalPlan
	right LogicalPlan
}

// NewLogicalJoin creates a join node. onCondition may be nil.
func NewLogicalJoin(joinType JoinType, onCondition expression.Expression, left, right LogicalPlan) *LogicalJoin {
	return &LogicalJoin{JoinType: joinType, OnCondition: onCondition, left: left, right: right}
}

// Left returns the left child.
func (j *LogicalJoin) Left() LogicalPlan { return j.left }

// Right returns the right child.
func (j *LogicalJoin) Right() LogicalPlan { return j.right }

// TP implements the LogicalPlan interface.
func (*LogicalJoin) TP() string { return TypeJoin }

// Children implements the LogicalPlan interface.
func (j *LogicalJoin) Children() []LogicalPlan {
	return []LogicalPlan{j.left, j.right}
}

// RebuildWith implements the LogicalPlan interface.
func (j *LogicalJoin) RebuildWith(children []LogicalPlan) LogicalPlan {
	trees.CheckRebuildArity("LogicalJoin", 2, len(children))
	return &LogicalJoin{
		JoinType:    j.JoinType,
		OnCondition: j.OnCondition,
		left:        children[0],
		right:       children[1],
	}
}

// Schema implements the LogicalPlan interface. The output is the left schema
// followed by the right schema; the null-supplying side of an outer join is
// forced nullable, so nullability is always recomputed from the current join
// type instead of copied from a child built under another one.
func (j *LogicalJoin) Schema() ([]*expression.SlotReference, error) {
	leftSchema, err := j.left.Schema()
	if err != nil {
		return nil, err
	}
	rightSchema, err := j.right.Schema()
	if err != nil {
		return nil, err
	}
	output := make([]*expression.SlotReference, 0, len(leftSchema)+len(rightSchema))
	for _, slot := range leftSchema {
		if j.JoinType.LeftNullSupplying() {
			slot = slot.WithNullable(true)
		}
		output = append(output, slot)
	}
	for _, slot := range rightSchema {
		if j.JoinType.RightNullSupplying() {
			slot = slot.WithNullable(true)
		}
		output = append(output, slot)
	}
	return output, nil
}

// ExplainInfo implements the LogicalPlan interface.
func (j *LogicalJoin) ExplainInfo() string {
	if j.OnCondition == nil {
		return j.JoinType.String()
	}
	return j.JoinType.String() + " ON " + j.OnCondition.String()
}
