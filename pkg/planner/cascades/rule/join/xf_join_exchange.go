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

// Package join holds the join-reorder exploration rules. Each rule encodes
// one relational identity together with the slot-partitioning and join-type
// preconditions under which it preserves query semantics.
package join

import (
	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
)

var _ rule.Rule = &XFJoinExchange{}

// XFJoinExchange swaps the two children of a join: Join(A, B) ≡ Join(B, A).
// Comparisons in the on-condition get their operands swapped to match. Symmetric join types keep their type; an asymmetric outer join must
// flip its side (LEFT_OUTER↔RIGHT_OUTER) as part of the rewrite. Applying
// the rule twice yields the original plan.
type XFJoinExchange struct {
	*rule.BaseRule
}

// NewXFJoinExchange creates a new JoinExchange rule.
func NewXFJoinExchange() *XFJoinExchange {
	pa := pattern.NewPattern(pattern.OperandJoin)
	pa.SetChildren(pattern.NewPattern(pattern.OperandAny), pattern.NewPattern(pattern.OperandAny))
	return &XFJoinExchange{
		BaseRule: rule.NewBaseRule(rule.XFJoinExchange, pa),
	}
}

// XForm implements the Rule interface. Every join type is exchangeable, so
// there is no PreCheck beyond the shape.
func (*XFJoinExchange) XForm(_ *planctx.Context, p logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	joinOp := p.(*logicalop.LogicalJoin)
	newJoin := logicalop.NewLogicalJoin(
		joinOp.JoinType.Flip(),
		commuteCondition(joinOp.OnCondition),
		joinOp.Right(),
		joinOp.Left(),
	)
	return []logicalop.LogicalPlan{newJoin}, nil
}

// commuteCondition swaps the operands of every comparison in the condition
// tree, mirroring each operator so the predicate keeps its meaning. Compound
// nodes are rebuilt in place so the tree keeps its shape and commuting twice
// restores the original condition exactly. Other expressions already read
// the same either way around and stay untouched.
func commuteCondition(onExpr expression.Expression) expression.Expression {
	if onExpr == nil {
		return nil
	}
	switch e := onExpr.(type) {
	case *expression.Comparison:
		return e.Commute()
	case *expression.Compound:
		return e.RebuildWith([]expression.Expression{
			commuteCondition(e.Left()),
			commuteCondition(e.Right()),
		})
	}
	return onExpr
}
