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

// Alias renames the output of an expression. Rules that split a projection
// must carry alias names through unchanged; the name is part of the output
// schema, not a rendering nicety.
type Alias struct {
	Child     Expression
	AliasName string

	id int64
}

// NewAlias creates an alias over child with the given output name.
func NewAlias(child Expression, name string) *Alias {
	return &Alias{Child: child, AliasName: name, id: NewSlotID()}
}

// Name implements the NamedExpression interface.
func (a *Alias) Name() string { return a.AliasName }

// ToSlot implements the NamedExpression interface. The produced slot keeps
// the alias identity, so parents referencing the alias output stay stable
// across rewrites of the aliased child.
func (a *Alias) ToSlot() (*SlotReference, error) {
	nullable, err := a.Child.Nullable()
	if err != nil {
		return nil, err
	}
	return &SlotReference{
		ID:       a.id,
		ColName:  a.AliasName,
		RetType:  a.Child.GetType(),
		nullable: nullable,
		bound:    true,
	}, nil
}

// Children implements the Expression interface.
func (a *Alias) Children() []Expression { return []Expression{a.Child} }

// RebuildWith implements the Expression interface. The rebuilt alias keeps
// its identity: only the child changes.
func (a *Alias) RebuildWith(children []Expression) Expression {
	trees.CheckRebuildArity("Alias", 1, len(children))
	return &Alias{Child: children[0], AliasName: a.AliasName, id: a.id}
}

// Nullable implements the Expression interface.
func (a *Alias) Nullable() (bool, error) { return a.Child.Nullable() }

// GetType implements the Expression interface.
func (a *Alias) GetType() types.DataType { return a.Child.GetType() }

// String implements fmt.Stringer.
func (a *Alias) String() string {
	return a.Child.String() + " AS " + a.AliasName
}
