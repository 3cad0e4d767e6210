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

// Package util holds small helpers shared by the planner rules.
package util

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/util/intest"
)

// SlotSet is a set of slot IDs. Rules use it to partition the slots a
// predicate references among the children of a restructured join.
type SlotSet struct {
	bits *bitset.BitSet
}

// NewSlotSet creates an empty set.
func NewSlotSet() SlotSet {
	return SlotSet{bits: bitset.New(64)}
}

// NewSlotSetFromSchema collects the IDs of every slot in schema.
func NewSlotSetFromSchema(schema []*expression.SlotReference) SlotSet {
	s := NewSlotSet()
	for _, slot := range schema {
		s.Insert(slot)
	}
	return s
}

// NewSlotSetFromExpr collects the IDs of every slot referenced by expr.
func NewSlotSetFromExpr(expr expression.Expression) SlotSet {
	s := NewSlotSet()
	for _, slot := range expression.ExtractSlots(expr) {
		s.Insert(slot)
	}
	return s
}

// Insert adds one slot.
func (s SlotSet) Insert(slot *expression.SlotReference) {
	intest.Assert(slot.ID > 0, "slot %s has no allocated ID", slot)
	s.bits.Set(uint(slot.ID))
}

// Has reports whether the slot is in the set.
func (s SlotSet) Has(slot *expression.SlotReference) bool {
	return s.bits.Test(uint(slot.ID))
}

// Len returns the set cardinality.
func (s SlotSet) Len() int {
	return int(s.bits.Count())
}

// Intersects reports whether the two sets share any slot.
func (s SlotSet) Intersects(other SlotSet) bool {
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// SubsetOf reports whether every slot of s is in other.
func (s SlotSet) SubsetOf(other SlotSet) bool {
	return other.bits.IsSuperSet(s.bits)
}

// Union returns a new set holding the slots of both.
func (s SlotSet) Union(other SlotSet) SlotSet {
	return SlotSet{bits: s.bits.Union(other.bits)}
}
