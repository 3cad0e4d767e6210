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

package expression

import (
	"github.com/wangyf0555/incubator-doris/pkg/planner/trees"
	"github.com/wangyf0555/incubator-doris/pkg/types"
)

// CompoundKind enumerates the binary logical connectives.
type CompoundKind int

// Compound kinds.
const (
	And CompoundKind = iota
	Or
)

var compoundSymbols = [...]string{
	And: "AND",
	Or:  "OR",
}

// Compound is a binary logical connective. Join on-conditions are stored as
// one expression; rules work on its conjuncts via SplitConjuncts.
type Compound struct {
	Kind  CompoundKind
	left  Expression
	right Expression
}

// NewAnd conjoins two predicates.
func NewAnd(left, right Expression) *Compound {
	return &Compound{Kind: And, left: left, right: right}
}

// NewOr disjoins two predicates.
func NewOr(left, right Expression) *Compound {
	return &Compound{Kind: Or, left: left, right: right}
}

// Left returns the left operand.
func (c *Compound) Left() Expression { return c.left }

// Right returns the right operand.
func (c *Compound) Right() Expression { return c.right }

// Children implements the Expression interface.
func (c *Compound) Children() []Expression {
	return []Expression{c.left, c.right}
}

// RebuildWith implements the Expression interface.
func (c *Compound) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("Compound", 2, len(children))
	return &Compound{Kind: c.Kind, left: children[0], right: children[1]}
}

// Nullable implements the Expression interface.
func (c *Compound) Nullable() (bool, error) {
	return anyChildNullable(c.Children())
}

// GetType implements the Expression interface.
func (*Compound) GetType() types.DataType { return types.TypeBoolean }

// String implements fmt.Stringer.
func (c *Compound) String() string {
	return trees.ExplainBinary(c.left, compoundSymbols[c.Kind], c.right)
}

// SplitConjuncts flattens nested AND nodes into the list of atomic conjuncts,
// in left-to-right order. A nil condition yields nil.
func SplitConjuncts(onExpr Expression) []Expression {
	if onExpr == nil {
		return nil
	}
	if and, ok := onExpr.(*Compound); ok && and.Kind == And {
		return append(SplitConjuncts(and.left), SplitConjuncts(and.right)...)
	}
	return []Expression{onExpr}
}

// ComposeConjuncts rebuilds a left-deep AND chain from conjuncts. Empty input
// yields nil, a single conjunct is returned as is.
func ComposeConjuncts(conjuncts []Expression) Expression {
	if len(conjuncts) == 0 {
		return nil
	}
	result := conjuncts[0]
	for _, item := range conjuncts[1:] {
		result = NewAnd(result, item)
	}
	return result
}

// ExtractSlots collects every slot reference appearing in expr, in
// depth-first order.
func ExtractSlots(expr Expression) []*SlotReference {
	if expr == nil {
		return nil
	}
	if slot, ok := expr.(*SlotReference); ok {
		return []*SlotReference{slot}
	}
	var slots []*SlotReference
	for _, child := range expr.Children() {
		slots = append(slots, ExtractSlots(child)...)
	}
	return slots
}
