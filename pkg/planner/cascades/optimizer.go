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

// Package cascades exposes the exploration entry point: given an analyzed
// logical plan, produce the logically equivalent alternatives the enabled
// rules can reach in one step. Scoring the alternatives, and bounding
// repeated exploration with a budget and a visited-shape set, belong to the
// external cost-based search driver.
package cascades

import (
	"github.com/wangyf0555/incubator-doris/pkg/config"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule/ruleset"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
	"github.com/wangyf0555/incubator-doris/pkg/util/logutil"
)

// Explore runs every enabled exploration rule over the tree once and
// returns the alternatives, each structurally distinct from but logically
// equivalent to the input. The input tree is never modified and remains
// valid afterwards.
func Explore(ctx *planctx.Context, root logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error) {
	var alternatives []logicalop.LogicalPlan
	for _, rules := range ruleset.DefaultRuleSets {
		for _, one := range rules.Filter(ctx.DisabledMask()) {
			results, err := rule.Transform(ctx, root, one)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, results...)
		}
	}
	return alternatives, nil
}

// ContextFromConfig builds a planner context honoring the configured
// disabled-rule list. Unknown rule names are ignored with a warning rather
// than failing the whole configuration.
func ContextFromConfig(cfg *config.Config) *planctx.Context {
	ctx := planctx.NewContext()
	for _, name := range cfg.Planner.DisabledRules {
		one, ok := ruleset.RuleByName(name)
		if !ok {
			logutil.BgLogger().Warn("ignore unknown rule in disabled-rules: " + name)
			continue
		}
		ctx.DisableRule(one.ID())
	}
	return ctx
}
