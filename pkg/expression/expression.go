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
	"fmt"

	"go.uber.org/atomic"

	"github.com/wangyf0555/incubator-doris/pkg/planner/planerrors"
	"github.com/wangyf0555/incubator-doris/pkg/planner/trees"
	"github.com/wangyf0555/incubator-doris/pkg/types"
)

// Expression represents all scalar expressions carried by a logical plan.
// Expressions are immutable once constructed; RebuildWith returns a fresh
// node of the same kind and never touches the receiver.
type Expression interface {
	fmt.Stringer

	// Children returns the ordered child list. Its length equals the arity
	// declared by the concrete kind.
	Children() []Expression

	// RebuildWith builds a new node of the same kind over the given children.
	// A children count differing from the declared arity is a caller bug and
	// panics.
	RebuildWith(children []Expression) Expression

	// Nullable reports whether the expression may evaluate to NULL. It is
	// recomputed from the current structure on every call; querying it on an
	// unbound slot returns ErrUnboundSlot.
	Nullable() (bool, error)

	// GetType returns the resolved scalar type.
	GetType() types.DataType
}

// NamedExpression is an expression carrying an output name, the unit of a
// projection's output list.
type NamedExpression interface {
	Expression

	// Name returns the output name.
	Name() string

	// ToSlot turns the output of this expression into a slot reference usable
	// by parent operators.
	ToSlot() (*SlotReference, error)
}

// slot IDs are allocated once per process; analysis binds them, rewriting
// only copies them around.
var slotIDAlloc atomic.Int64

// NewSlotID allocates a fresh unique slot ID.
func NewSlotID() int64 {
	return slotIDAlloc.Inc()
}

// SlotReference identifies one column of a relation by (relation, name). It
// is the unit of dependency analysis during plan rewriting: two references
// denote the same column iff their IDs are equal.
type SlotReference struct {
	ID       int64
	Relation string
	ColName  string
	RetType  types.DataType

	nullable bool
	bound    bool
}

// NewSlotReference creates a bound slot reference with a fresh ID.
func NewSlotReference(relation, colName string, retType types.DataType, nullable bool) *SlotReference {
	return &SlotReference{
		ID:       NewSlotID(),
		Relation: relation,
		ColName:  colName,
		RetType:  retType,
		nullable: nullable,
		bound:    true,
	}
}

// NewUnboundSlot creates a reference that analysis has not resolved yet.
// Rules never produce these; they only show up in half-built test input.
func NewUnboundSlot(relation, colName string) *SlotReference {
	return &SlotReference{
		ID:       NewSlotID(),
		Relation: relation,
		ColName:  colName,
	}
}

// Bound reports whether analysis resolved this reference.
func (s *SlotReference) Bound() bool { return s.bound }

// WithNullable returns a copy whose nullability is forced to the given value.
// Join schema derivation uses it for the null-supplying side of outer joins.
func (s *SlotReference) WithNullable(nullable bool) *SlotReference {
	ns := *s
	ns.nullable = nullable
	return &ns
}

// Name implements the NamedExpression interface.
func (s *SlotReference) Name() string { return s.ColName }

// ToSlot implements the NamedExpression interface.
func (s *SlotReference) ToSlot() (*SlotReference, error) { return s, nil }

// Children implements the Expression interface.
func (*SlotReference) Children() []Expression { return nil }

// RebuildWith implements the Expression interface.
func (s *SlotReference) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("SlotReference", 0, len(children))
	return s
}

// Nullable implements the Expression interface. The answer comes from the
// bound schema; an unbound reference fails distinctly rather than defaulting
// to "not nullable".
func (s *SlotReference) Nullable() (bool, error) {
	if !s.bound {
		return false, planerrors.ErrUnboundSlot.GenWithStackByArgs(s.String())
	}
	return s.nullable, nil
}

// GetType implements the Expression interface.
func (s *SlotReference) GetType() types.DataType { return s.RetType }

// String implements fmt.Stringer.
func (s *SlotReference) String() string {
	if s.Relation == "" {
		return s.ColName
	}
	return s.Relation + "." + s.ColName
}

// Constant is a literal value. The NULL literal is nullable, every other
// literal is not.
type Constant struct {
	Value   any
	RetType types.DataType
}

// NewConstant creates a literal of the given type.
func NewConstant(value any, retType types.DataType) *Constant {
	return &Constant{Value: value, RetType: retType}
}

// NewNull creates the NULL literal.
func NewNull() *Constant {
	return &Constant{Value: nil, RetType: types.TypeNull}
}

// IsNull reports whether c is the NULL literal.
func (c *Constant) IsNull() bool {
	return c.Value == nil || c.RetType == types.TypeNull
}

// Children implements the Expression interface.
func (*Constant) Children() []Expression { return nil }

// RebuildWith implements the Expression interface.
func (c *Constant) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("Constant", 0, len(children))
	return c
}

// Nullable implements the Expression interface.
func (c *Constant) Nullable() (bool, error) { return c.IsNull(), nil }

// GetType implements the Expression interface.
func (c *Constant) GetType() types.DataType { return c.RetType }

// String implements fmt.Stringer.
func (c *Constant) String() string {
	if c.IsNull() {
		return "NULL"
	}
	return fmt.Sprintf("%v", c.Value)
}

// ScalarFunction carries a (possibly user defined) function call inside a
// plan tree. The planner core never invokes it; execution happens behind the
// external evaluation contract built by the udf package.
type ScalarFunction struct {
	FuncName string
	Args     []Expression
	RetType  types.DataType

	// AlwaysNullable marks functions declared nullable regardless of their
	// arguments, e.g. ones that return NULL on domain errors.
	AlwaysNullable bool
}

// NewScalarFunction creates a function call node.
func NewScalarFunction(name string, retType types.DataType, args ...Expression) *ScalarFunction {
	return &ScalarFunction{FuncName: name, Args: args, RetType: retType}
}

// Children implements the Expression interface.
func (sf *ScalarFunction) Children() []Expression { return sf.Args }

// RebuildWith implements the Expression interface.
func (sf *ScalarFunction) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("ScalarFunction", len(sf.Args), len(children))
	return &ScalarFunction{
		FuncName:       sf.FuncName,
		Args:           children,
		RetType:        sf.RetType,
		AlwaysNullable: sf.AlwaysNullable,
	}
}

// Nullable implements the Expression interface. Unless declared always
// nullable, a call is nullable iff any argument is.
func (sf *ScalarFunction) Nullable() (bool, error) {
	if sf.AlwaysNullable {
		return true, nil
	}
	return anyChildNullable(sf.Args)
}

// GetType implements the Expression interface.
func (sf *ScalarFunction) GetType() types.DataType { return sf.RetType }

// String implements fmt.Stringer.
func (sf *ScalarFunction) String() string {
	result := sf.FuncName + "("
	for i, arg := range sf.Args {
		if i > 0 {
			result += ", "
		}
		result += arg.String()
	}
	return result + ")"
}

func anyChildNullable(children []Expression) (bool, error) {
	result := false
	for _, child := range children {
		nullable, err := child.Nullable()
		if err != nil {
			return false, err
		}
		result = result || nullable
	}
	return result, nil
}
