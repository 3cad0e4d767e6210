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

package rule

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"

	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
)

// renameScan is a test-only rule marking every matched scan, so the tests
// can observe where the driver fired and how it rebuilt the ancestors.
type renameScan struct {
	*BaseRule
}

func newRenameScan() *renameScan {
	return &renameScan{BaseRule: NewBaseRule(XFJoinExchange, pattern.NewPattern(pattern.OperandScan))}
}

func (*renameScan) XForm(_ *planctx.Context, p logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	scanOp := p.(*logicalop.LogicalScan)
	schema, err := scanOp.Schema()
	if err != nil {
		return nil, err
	}
	return []logicalop.LogicalPlan{logicalop.NewLogicalScan(scanOp.Relation+"'", schema)}, nil
}

type failingRule struct {
	*BaseRule
}

func newFailingRule() *failingRule {
	return &failingRule{BaseRule: NewBaseRule(XFJoinAssociate, pattern.NewPattern(pattern.OperandScan))}
}

func (*failingRule) XForm(*planctx.Context, logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	return nil, errors.New("boom")
}

func twoScanJoin() (*logicalop.LogicalJoin, *logicalop.LogicalScan, *logicalop.LogicalScan) {
	t1 := logicalop.NewLogicalScan("t1", nil)
	t2 := logicalop.NewLogicalScan("t2", nil)
	return logicalop.NewLogicalJoin(logicalop.CrossJoin, nil, t1, t2), t1, t2
}

func TestTransformSplicesEachSite(t *testing.T) {
	joinOp, t1, t2 := twoScanJoin()
	results, err := Transform(planctx.NewContext(), joinOp, newRenameScan())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// one alternative per matched scan, each with the join rebuilt around it
	// and the other child shared by reference.
	first := results[0].(*logicalop.LogicalJoin)
	require.Equal(t, "t1'", first.Left().(*logicalop.LogicalScan).Relation)
	require.Same(t, t2, first.Right())

	second := results[1].(*logicalop.LogicalJoin)
	require.Same(t, t1, second.Left())
	require.Equal(t, "t2'", second.Right().(*logicalop.LogicalScan).Relation)

	// the input tree is untouched.
	require.Same(t, t1, joinOp.Left())
	require.Same(t, t2, joinOp.Right())
}

func TestTransformDisabledRule(t *testing.T) {
	joinOp, _, _ := twoScanJoin()
	r := newRenameScan()
	ctx := planctx.NewContext()
	ctx.DisableRule(r.ID())
	results, err := Transform(ctx, joinOp, r)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestTransformNoMatch(t *testing.T) {
	scanOp := logicalop.NewLogicalScan("t1", nil)
	joinRule := NewBaseRule(XFJoinExchange, pattern.NewPattern(pattern.OperandJoin))
	results, err := Transform(planctx.NewContext(), scanOp, &stubRule{BaseRule: joinRule})
	require.NoError(t, err)
	require.Empty(t, results)
}

// stubRule gives a BaseRule the missing XForm, never reached in the no-match
// test.
type stubRule struct {
	*BaseRule
}

func (*stubRule) XForm(*planctx.Context, logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	return nil, nil
}

func TestTransformPropagatesError(t *testing.T) {
	joinOp, _, _ := twoScanJoin()
	_, err := Transform(planctx.NewContext(), joinOp, newFailingRule())
	require.ErrorContains(t, err, "boom")
}

func TestRuleNames(t *testing.T) {
	require.Equal(t, "join_exchange", XFJoinExchange.String())
	require.Equal(t, "join_associate", XFJoinAssociate.String())
	require.Equal(t, "join_lasscom_project", XFJoinLAsscomProject.String())
	require.EqualValues(t, 3, NumRules)
}
