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

package join

import (
	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
	"github.com/wangyf0555/incubator-doris/pkg/planner/util"
)

var _ rule.Rule = &XFJoinAssociate{}

// XFJoinAssociate regroups a left-deep join pair:
//
//	Join(Join(A, B, c1), C, c2)  ≡  Join(A, Join(B, C, c2), c1)
//
// The identity holds when every atomic conjunct of c2 can be re-satisfied
// from B and C alone; a conjunct reaching into A cannot move below the new
// grouping, and the rule reports no match instead of rewriting.
type XFJoinAssociate struct {
	*rule.BaseRule
}

// NewXFJoinAssociate creates a new JoinAssociate rule.
func NewXFJoinAssociate() *XFJoinAssociate {
	bottom := pattern.NewPattern(pattern.OperandJoin)
	bottom.SetChildren(pattern.NewPattern(pattern.OperandAny), pattern.NewPattern(pattern.OperandAny))
	top := pattern.NewPattern(pattern.OperandJoin)
	top.SetChildren(bottom, pattern.NewPattern(pattern.OperandAny))
	return &XFJoinAssociate{
		BaseRule: rule.NewBaseRule(rule.XFJoinAssociate, top),
	}
}

// PreCheck implements the Rule interface: the join-type compatibility gate.
// Inner and cross pairs associate freely. A left outer join associates only
// as the top join, over a non-outer bottom join. Right and full outer joins
// do not associate in this direction.
func (*XFJoinAssociate) PreCheck(p logicalop.LogicalPlan) bool {
	topJoin := p.(*logicalop.LogicalJoin)
	bottomJoin := topJoin.Left().(*logicalop.LogicalJoin)
	if bottomJoin.JoinType.IsOuter() {
		return false
	}
	switch topJoin.JoinType {
	case logicalop.InnerJoin, logicalop.CrossJoin, logicalop.LeftOuterJoin:
		return true
	default:
		return false
	}
}

// XForm implements the Rule interface.
func (*XFJoinAssociate) XForm(_ *planctx.Context, p logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	topJoin := p.(*logicalop.LogicalJoin)
	bottomJoin := topJoin.Left().(*logicalop.LogicalJoin)
	a, b, c := bottomJoin.Left(), bottomJoin.Right(), topJoin.Right()

	aSchema, err := a.Schema()
	if err != nil {
		return nil, err
	}
	aSet := util.NewSlotSetFromSchema(aSchema)
	for _, conjunct := range expression.SplitConjuncts(topJoin.OnCondition) {
		if util.NewSlotSetFromExpr(conjunct).Intersects(aSet) {
			// c2 crosses A and the new grouping.
			return nil, nil
		}
	}

	newBottomJoin := logicalop.NewLogicalJoin(topJoin.JoinType, topJoin.OnCondition, b, c)
	newTopJoin := logicalop.NewLogicalJoin(bottomJoin.JoinType, bottomJoin.OnCondition, a, newBottomJoin)
	return []logicalop.LogicalPlan{newTopJoin}, nil
}
