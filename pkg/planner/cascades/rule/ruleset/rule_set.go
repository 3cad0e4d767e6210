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

// Package ruleset registers the exploration rules by the operand their
// pattern is rooted at.
package ruleset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule"
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/rule/join"
)

// ListRules is a list of rules.
type ListRules []rule.Rule

// Filter masks out rules whose ID is set in mask.
func (l ListRules) Filter(mask *bitset.BitSet) ListRules {
	res := make(ListRules, 0, len(l))
	for _, one := range l {
		if !mask.Test(one.ID()) {
			res = append(res, one)
		}
	}
	return res
}

// OperandJoinRules is the exploration rules rooted at a join operand.
var OperandJoinRules = ListRules{
	join.NewXFJoinExchange(),
	join.NewXFJoinAssociate(),
	join.NewXFJoinLAsscomProject(),
}

// DefaultRuleSets maps every operand to the rules rooted at it.
var DefaultRuleSets = map[pattern.Operand]ListRules{
	pattern.OperandJoin: OperandJoinRules,
}

// RuleByName finds a registered rule by its name, for configuration lookup.
func RuleByName(name string) (rule.Rule, bool) {
	for _, rules := range DefaultRuleSets {
		for _, one := range rules {
			if rule.ID(one.ID()).String() == name {
				return one, true
			}
		}
	}
	return nil, false
}
