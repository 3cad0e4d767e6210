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

// CmpKind enumerates the binary comparison operators. The set is closed:
// nullability and display dispatch on the tag, and Mirror must stay
// exhaustive when a kind is added.
type CmpKind int

// Comparison kinds.
const (
	NullSafeEQ CmpKind = iota
	EQ
	NE
	LT
	LE
	GT
	GE
)

var cmpSymbols = [...]string{
	NullSafeEQ: "<=>",
	EQ:         "=",
	NE:         "!=",
	LT:         "<",
	LE:         "<=",
	GT:         ">",
	GE:         ">=",
}

// String implements fmt.Stringer.
func (k CmpKind) String() string { return cmpSymbols[k] }

// Mirror returns the kind denoting the same relation with swapped operands:
// a < b iff b > a. EQ, NE and NullSafeEQ are their own mirrors.
func (k CmpKind) Mirror() CmpKind {
	switch k {
	case LT:
		return GT
	case GT:
		return LT
	case LE:
		return GE
	case GE:
		return LE
	default:
		return k
	}
}

// Comparison is a binary comparison predicate over exactly two children.
type Comparison struct {
	Kind  CmpKind
	left  Expression
	right Expression
}

// NewComparison creates a comparison of the given kind.
func NewComparison(kind CmpKind, left, right Expression) *Comparison {
	return &Comparison{Kind: kind, left: left, right: right}
}

// NewEqualTo creates an equality comparison, the common case in join
// conditions.
func NewEqualTo(left, right Expression) *Comparison {
	return NewComparison(EQ, left, right)
}

// Left returns the left operand.
func (c *Comparison) Left() Expression { return c.left }

// Right returns the right operand.
func (c *Comparison) Right() Expression { return c.right }

// Commute returns the comparison with swapped operands and mirrored kind,
// denoting the same relation.
func (c *Comparison) Commute() *Comparison {
	return &Comparison{Kind: c.Kind.Mirror(), left: c.right, right: c.left}
}

// Children implements the Expression interface.
func (c *Comparison) Children() []Expression {
	return []Expression{c.left, c.right}
}

// RebuildWith implements the Expression interface.
func (c *Comparison) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("Comparison", 2, len(children))
	return &Comparison{Kind: c.Kind, left: children[0], right: children[1]}
}

// Nullable implements the Expression interface. A comparison is nullable iff
// either operand is, except the null-safe equality which never evaluates to
// NULL. Unbound operands still surface their error.
func (c *Comparison) Nullable() (bool, error) {
	nullable, err := anyChildNullable(c.Children())
	if err != nil {
		return false, err
	}
	if c.Kind == NullSafeEQ {
		return false, nil
	}
	return nullable, nil
}

// GetType implements the Expression interface.
func (*Comparison) GetType() types.DataType { return types.TypeBoolean }

// String implements fmt.Stringer.
func (c *Comparison) String() string {
	return trees.ExplainBinary(c.left, cmpSymbols[c.Kind], c.right)
}
