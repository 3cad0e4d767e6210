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

// Package pattern describes the plan shapes a rule can match.
package pattern

import (
	"github.com/wangyf0555/incubator-doris/pkg/planner/core/operator/logicalop"
)

// Operand is the node of a pattern tree, the logical operator type a pattern
// node can match.
type Operand int

// Operands.
const (
	// OperandAny is a wildcard matching any operator.
	OperandAny Operand = iota
	// OperandJoin matches a LogicalJoin.
	OperandJoin
	// OperandProjection matches a LogicalProjection.
	OperandProjection
	// OperandScan matches a LogicalScan.
	OperandScan
	// OperandUnsupported is the operand for operators without a pattern kind.
	OperandUnsupported
)

// GetOperand maps a logical operator to its operand.
func GetOperand(p logicalop.LogicalPlan) Operand {
	switch p.(type) {
	case *logicalop.LogicalJoin:
		return OperandJoin
	case *logicalop.LogicalProjection:
		return OperandProjection
	case *logicalop.LogicalScan:
		return OperandScan
	default:
		return OperandUnsupported
	}
}

// Match checks whether the current operand matches the specified one.
func (o Operand) Match(t Operand) bool {
	if o == OperandAny || t == OperandAny {
		return true
	}
	return o == t
}

// Pattern defines the match pattern for a rule. Nil children means the node
// matches any shape below it, no matter how many children the matched
// operator actually has.
type Pattern struct {
	Operand  Operand
	Children []*Pattern
}

// NewPattern creates a pattern node.
func NewPattern(operand Operand) *Pattern {
	return &Pattern{Operand: operand}
}

// SetChildren sets the children patterns.
func (p *Pattern) SetChildren(children ...*Pattern) {
	p.Children = children
}

// BuildPattern builds a pattern tree in one call.
func BuildPattern(operand Operand, children ...*Pattern) *Pattern {
	p := &Pattern{Operand: operand}
	p.Children = children
	return p
}

// Match checks whether the plan tree rooted at p matches the pattern shape.
// Only the shape is checked here; semantic preconditions belong to the rule.
func Match(pat *Pattern, p logicalop.LogicalPlan) bool {
	if !pat.Operand.Match(GetOperand(p)) {
		return false
	}
	if pat.Children == nil {
		return true
	}
	children := p.Children()
	if len(children) != len(pat.Children) {
		return false
	}
	for i, childPattern := range pat.Children {
		if !Match(childPattern, children[i]) {
			return false
		}
	}
	return true
}
