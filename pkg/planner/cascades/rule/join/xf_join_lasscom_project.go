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

var _ rule.Rule = &XFJoinLAsscomProject{}

// XFJoinLAsscomProject moves a relation across a left-rooted join chain
// through an intervening projection:
//
//	        topJoin                       newTopJoin
//	       /      \                       /        \
//	  project      C      ──►     newLeftProject  newRightProject
//	    /                              /                  \
//	bottomJoin                  newBottomJoin(A,C)         B
//	  /   \                         /   \
//	 A     B                       A     C
//
// The original project list is split by source side into the two new project
// lists, preserving left-to-right order and exact alias names; every entry
// lands in exactly one list. The top condition moves onto newBottomJoin, the
// bottom condition becomes the new top condition. Any conjunct or project
// entry needing slots from both sides of the split makes the rule
// inapplicable; so does a condition that the split projections can no longer
// satisfy. Under an outer top join every top conjunct must sink onto
// newBottomJoin: a B-only conjunct kept on the new top join would move the
// null extension from C to B, so it makes the rule inapplicable too.
type XFJoinLAsscomProject struct {
	*rule.BaseRule
}

// NewXFJoinLAsscomProject creates a new JoinLAsscomProject rule.
func NewXFJoinLAsscomProject() *XFJoinLAsscomProject {
	bottom := pattern.NewPattern(pattern.OperandJoin)
	bottom.SetChildren(pattern.NewPattern(pattern.OperandAny), pattern.NewPattern(pattern.OperandAny))
	proj := pattern.NewPattern(pattern.OperandProjection)
	proj.SetChildren(bottom)
	top := pattern.NewPattern(pattern.OperandJoin)
	top.SetChildren(proj, pattern.NewPattern(pattern.OperandAny))
	return &XFJoinLAsscomProject{
		BaseRule: rule.NewBaseRule(rule.XFJoinLAsscomProject, top),
	}
}

// PreCheck implements the Rule interface: the join-type compatibility gate.
// Inner and cross chains reorder freely. A left outer top join is only legal
// over a left-associative chain whose bottom join is inner, cross or left
// outer. Right and full outer joins never l-asscom.
func (*XFJoinLAsscomProject) PreCheck(p logicalop.LogicalPlan) bool {
	topJoin := p.(*logicalop.LogicalJoin)
	projOp := topJoin.Left().(*logicalop.LogicalProjection)
	bottomJoin := projOp.Child().(*logicalop.LogicalJoin)
	switch topJoin.JoinType {
	case logicalop.InnerJoin, logicalop.CrossJoin:
		return bottomJoin.JoinType == logicalop.InnerJoin || bottomJoin.JoinType == logicalop.CrossJoin
	case logicalop.LeftOuterJoin:
		switch bottomJoin.JoinType {
		case logicalop.InnerJoin, logicalop.CrossJoin, logicalop.LeftOuterJoin:
			return true
		}
	}
	return false
}

// XForm implements the Rule interface.
func (*XFJoinLAsscomProject) XForm(_ *planctx.Context, p logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	topJoin := p.(*logicalop.LogicalJoin)
	projOp := topJoin.Left().(*logicalop.LogicalProjection)
	bottomJoin := projOp.Child().(*logicalop.LogicalJoin)
	a, b, c := bottomJoin.Left(), bottomJoin.Right(), topJoin.Right()

	aSchema, err := a.Schema()
	if err != nil {
		return nil, err
	}
	bSchema, err := b.Schema()
	if err != nil {
		return nil, err
	}
	aSet := util.NewSlotSetFromSchema(aSchema)
	bSet := util.NewSlotSetFromSchema(bSchema)

	// Split the project list by source side, keeping order and alias names.
	// aVisible/bVisible collect the output slots each new projection will
	// expose; replace maps a projected output back to the expression that
	// computes it, for conjuncts moving below the projection.
	var leftExprs, rightExprs []expression.NamedExpression
	aVisible, bVisible := util.NewSlotSet(), util.NewSlotSet()
	replace := make(map[int64]expression.Expression, len(projOp.Exprs))
	srcToOut := make(map[int64]expression.Expression, len(projOp.Exprs))
	for _, entry := range projOp.Exprs {
		outSlot, err := entry.ToSlot()
		if err != nil {
			return nil, err
		}
		replace[outSlot.ID] = sourceExpr(entry)
		if src, ok := sourceExpr(entry).(*expression.SlotReference); ok {
			srcToOut[src.ID] = outSlot
		}
		srcSet := util.NewSlotSetFromExpr(entry)
		switch {
		case srcSet.SubsetOf(aSet):
			// Source-free entries (constant aliases) stay on the A side too.
			leftExprs = append(leftExprs, entry)
			aVisible.Insert(outSlot)
		case srcSet.SubsetOf(bSet):
			rightExprs = append(rightExprs, entry)
			bVisible.Insert(outSlot)
		default:
			// The entry draws from both sides of the split.
			return nil, nil
		}
	}
	if len(leftExprs) == 0 || len(rightExprs) == 0 {
		// Nothing to move across; a one-sided projection is not this rule's
		// shape.
		return nil, nil
	}

	// Partition the top condition. A conjunct touching both A and B cannot
	// be placed anywhere in the new shape; a conjunct free of B moves down
	// onto newBottomJoin, a B-only conjunct stays on the new top join.
	var bottomConjuncts, topConjuncts []expression.Expression
	for _, conjunct := range expression.SplitConjuncts(topJoin.OnCondition) {
		condSet := util.NewSlotSetFromExpr(conjunct)
		touchesA := condSet.Intersects(aVisible)
		touchesB := condSet.Intersects(bVisible)
		switch {
		case touchesA && touchesB:
			return nil, nil
		case touchesB:
			if topJoin.JoinType.IsOuter() {
				// An outer top join null-extends around the whole sunk
				// condition; a conjunct staying behind on the new top join
				// would null-extend B instead of C.
				return nil, nil
			}
			if !condSet.SubsetOf(bVisible) {
				// References C, which the split projections hide from the
				// new top join.
				return nil, nil
			}
			topConjuncts = append(topConjuncts, conjunct)
		default:
			// Rewrite projected outputs to their source expressions before
			// the conjunct sinks below the projection.
			bottomConjuncts = append(bottomConjuncts, expression.ReplaceSlots(conjunct, replace))
		}
	}

	// The old bottom condition becomes the new top condition. Its slots were
	// bound below the projection, so aliased sources are rewritten to their
	// projected outputs first; the split projections must then expose every
	// slot it needs.
	newTopConjuncts := topConjuncts
	for _, conjunct := range expression.SplitConjuncts(bottomJoin.OnCondition) {
		newTopConjuncts = append(newTopConjuncts, expression.ReplaceSlots(conjunct, srcToOut))
	}
	visible := aVisible.Union(bVisible)
	for _, conjunct := range newTopConjuncts {
		if !util.NewSlotSetFromExpr(conjunct).SubsetOf(visible) {
			return nil, nil
		}
	}

	newBottomJoin := logicalop.NewLogicalJoin(
		topJoin.JoinType, expression.ComposeConjuncts(bottomConjuncts), a, c)
	newLeftProject := logicalop.NewLogicalProjection(leftExprs, newBottomJoin)
	newRightProject := logicalop.NewLogicalProjection(rightExprs, b)
	newTopJoin := logicalop.NewLogicalJoin(
		bottomJoin.JoinType, expression.ComposeConjuncts(newTopConjuncts),
		newLeftProject, newRightProject)
	return []logicalop.LogicalPlan{newTopJoin}, nil
}

// sourceExpr unwraps the computed expression behind a project entry.
func sourceExpr(entry expression.NamedExpression) expression.Expression {
	if alias, ok := entry.(*expression.Alias); ok {
		return alias.Child
	}
	return entry
}
