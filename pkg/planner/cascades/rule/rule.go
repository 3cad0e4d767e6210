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

// Package rule defines the exploration rule contract and the driver applying
// one rule over a plan tree.
package rule

import (
	"github.com/wangyf0555/incubator-doris/pkg/planner/cascades/pattern"
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planctx"
)

// ID identifies a rule. IDs index the disabled-rule mask, so they are dense.
type ID uint

// Rule IDs.
const (
	XFJoinExchange ID = iota
	XFJoinAssociate
	XFJoinLAsscomProject

	// NumRules is the number of registered rule IDs.
	NumRules
)

var ruleNames = [...]string{
	XFJoinExchange:       "join_exchange",
	XFJoinAssociate:      "join_associate",
	XFJoinLAsscomProject: "join_lasscom_project",
}

// String implements fmt.Stringer.
func (id ID) String() string { return ruleNames[id] }

// Rule is one algebraic equivalence. A rule never mutates its input; it
// either reports "inapplicable" (empty result, nil error) or returns fresh,
// logically equivalent replacement subtrees that share untouched
// substructure with the input by reference.
type Rule interface {
	// ID returns the rule ID.
	ID() uint

	// Pattern returns the shape this rule matches. The driver only calls
	// PreCheck and XForm on subtrees matching it.
	Pattern() *pattern.Pattern

	// PreCheck is the cheap semantic gate consulted before any match work,
	// join-type compatibility mostly. False means rule inapplicable, never an
	// error.
	PreCheck(p logicalop.LogicalPlan) bool

	// XForm produces zero, one or many equivalent replacements for the
	// matched subtree root. Exploration rules may legitimately emit several
	// shapes per match. A failed semantic precondition yields an empty
	// result, not an error.
	XForm(ctx *planctx.Context, p logicalop.LogicalPlan) ([]logicalop.LogicalPlan, error)
}

// BaseRule carries the compiled (id, pattern) pair every rule embeds. Rules
// are plain values: constructing one is the whole "build" step.
type BaseRule struct {
	id      ID
	pattern *pattern.Pattern
}

// NewBaseRule creates the embedded base of a rule.
func NewBaseRule(id ID, p *pattern.Pattern) *BaseRule {
	return &BaseRule{id: id, pattern: p}
}

// ID implements the Rule interface.
func (r *BaseRule) ID() uint { return uint(r.id) }

// Pattern implements the Rule interface.
func (r *BaseRule) Pattern() *pattern.Pattern { return r.pattern }

// PreCheck implements the Rule interface, applicable by default.
func (*BaseRule) PreCheck(logicalop.LogicalPlan) bool { return true }
