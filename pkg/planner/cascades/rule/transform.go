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
	"github.com/pingcap/failpoint"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
	"github.com/wangyf0555/incubator-doris/pkg/util/intest"
)

// Transform applies one rule everywhere it matches under root and returns
// the full alternative trees, one per rewrite. The search is shape directed:
// the pattern root operand prunes subtrees before PreCheck or XForm run.
// Each alternative is the input tree with exactly one matched subtree
// replaced; the ancestor path is rebuilt copy-on-write and every untouched
// subtree is shared by reference. The input tree is never modified.
//
// Bounding repeated application (an output can re-match the same rule) is
// the caller's job; Transform performs a single pass.
func Transform(ctx *planctx.Context, root logicalop.LogicalPlan, r Rule) (results []logicalop.LogicalPlan, err error) {
	intest.AssertNotNil(r.Pattern(), "rule %s has no compiled pattern", ID(r.ID()))
	if ctx.RuleDisabled(r.ID()) {
		return nil, nil
	}
	failpoint.Inject("mockTransformDisabled", func() {
		results = nil
		err = nil
	})
	results, err = transform(ctx, root, r)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 && log.GetLevel() == zap.DebugLevel {
		ctx.Logger().Debug("exploration rule produced alternatives",
			zap.Stringer("rule", ID(r.ID())),
			zap.Int("count", len(results)))
	}
	return results, nil
}

func transform(ctx *planctx.Context, p logicalop.LogicalPlan, r Rule) ([]logicalop.LogicalPlan, error) {
	var results []logicalop.LogicalPlan
	if pattern.Match(r.Pattern(), p) && r.PreCheck(p) {
		alternatives, err := r.XForm(ctx, p)
		if err != nil {
			return nil, err
		}
		results = append(results, alternatives...)
	}
	// Descend even through a matched root: a deeper match yields a separate
	// alternative with the ancestor path rebuilt around it.
	for i, child := range p.Children() {
		childAlternatives, err := transform(ctx, child, r)
		if err != nil {
			return nil, err
		}
		for _, alternative := range childAlternatives {
			newChildren := make([]logicalop.LogicalPlan, len(p.Children()))
			copy(newChildren, p.Children())
			newChildren[i] = alternative
			results = append(results, p.RebuildWith(newChildren))
		}
	}
	return results, nil
}
