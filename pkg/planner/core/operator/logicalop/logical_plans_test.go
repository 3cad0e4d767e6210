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

package logicalop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planerrors"
	"github.com/wangyf0555/incubator-doris/pkg/types"
)

func scanWith(relation string, cols ...string) (*LogicalScan, []*expression.SlotReference) {
	slots := make([]*expression.SlotReference, 0, len(cols))
	for _, col := range cols {
		slots = append(slots, expression.NewSlotReference(relation, col, types.TypeInt, false))
	}
	return NewLogicalScan(relation, slots), slots
}

func nullableOf(t *testing.T, slot *expression.SlotReference) bool {
	nullable, err := slot.Nullable()
	require.NoError(t, err)
	return nullable
}

func TestJoinSchemaOrder(t *testing.T) {
	t1, t1Slots := scanWith("t1", "id", "name")
	t2, t2Slots := scanWith("t2", "id")
	join := NewLogicalJoin(InnerJoin, expression.NewEqualTo(t1Slots[0], t2Slots[0]), t1, t2)

	schema, err := join.Schema()
	require.NoError(t, err)
	require.Len(t, schema, 3)
	require.Same(t, t1Slots[0], schema[0])
	require.Same(t, t1Slots[1], schema[1])
	require.Same(t, t2Slots[0], schema[2])
}

func TestOuterJoinSchemaNullability(t *testing.T) {
	for _, tc := range []struct {
		joinType      JoinType
		leftNullable  bool
		rightNullable bool
	}{
		{InnerJoin, false, false},
		{CrossJoin, false, false},
		{LeftOuterJoin, false, true},
		{RightOuterJoin, true, false},
		{FullOuterJoin, true, true},
	} {
		t1, _ := scanWith("t1", "a")
		t2, _ := scanWith("t2", "b")
		join := NewLogicalJoin(tc.joinType, nil, t1, t2)
		schema, err := join.Schema()
		require.NoError(t, err)
		require.Equal(t, tc.leftNullable, nullableOf(t, schema[0]), tc.joinType.String())
		require.Equal(t, tc.rightNullable, nullableOf(t, schema[1]), tc.joinType.String())
	}
}

func TestJoinSchemaRecomputed(t *testing.T) {
	// the same children under a different join type yield different
	// nullability; the children's own slots are never mutated.
	t1, t1Slots := scanWith("t1", "a")
	t2, _ := scanWith("t2", "b")
	inner := NewLogicalJoin(InnerJoin, nil, t1, t2)
	outer := NewLogicalJoin(RightOuterJoin, nil, t1, t2)

	innerSchema, err := inner.Schema()
	require.NoError(t, err)
	outerSchema, err := outer.Schema()
	require.NoError(t, err)

	require.False(t, nullableOf(t, innerSchema[0]))
	require.True(t, nullableOf(t, outerSchema[0]))
	require.False(t, nullableOf(t, t1Slots[0]))
	require.Equal(t, t1Slots[0].ID, outerSchema[0].ID)
}

func TestProjectionSchema(t *testing.T) {
	t1, t1Slots := scanWith("t1", "id", "name")
	proj := NewLogicalProjection([]expression.NamedExpression{
		expression.NewAlias(t1Slots[0], "t1.id"),
		t1Slots[1],
	}, t1)

	schema, err := proj.Schema()
	require.NoError(t, err)
	require.Len(t, schema, 2)
	require.Equal(t, "t1.id", schema[0].ColName)
	require.NotEqual(t, t1Slots[0].ID, schema[0].ID)
	require.Same(t, t1Slots[1], schema[1])
}

func TestSchemaUnboundSlot(t *testing.T) {
	scan := NewLogicalScan("t1", []*expression.SlotReference{expression.NewUnboundSlot("t1", "a")})
	proj := NewLogicalProjection([]expression.NamedExpression{
		expression.NewAlias(expression.NewUnboundSlot("t1", "a"), "a"),
	}, scan)
	_, err := proj.Schema()
	require.Error(t, err)
	require.True(t, planerrors.ErrUnboundSlot.Equal(err))
}

func TestRebuildArity(t *testing.T) {
	t1, _ := scanWith("t1", "a")
	t2, _ := scanWith("t2", "b")
	join := NewLogicalJoin(InnerJoin, nil, t1, t2)
	require.Panics(t, func() { join.RebuildWith([]LogicalPlan{t1}) })
	require.Panics(t, func() { t1.RebuildWith([]LogicalPlan{t2}) })

	proj := NewLogicalProjection(nil, t1)
	require.Panics(t, func() { proj.RebuildWith([]LogicalPlan{t1, t2}) })
}

func TestRebuildSharesUntouched(t *testing.T) {
	t1, _ := scanWith("t1", "a")
	t2, _ := scanWith("t2", "b")
	t3, _ := scanWith("t3", "c")
	join := NewLogicalJoin(LeftOuterJoin, nil, t1, t2)

	rebuilt := join.RebuildWith([]LogicalPlan{t1, t3}).(*LogicalJoin)
	require.Equal(t, LeftOuterJoin, rebuilt.JoinType)
	require.Same(t, t1, rebuilt.Left())
	require.Same(t, t3, rebuilt.Right())
	// the original still points at its old children.
	require.Same(t, t2, join.Right())
}

func TestJoinTypeFlip(t *testing.T) {
	require.Equal(t, RightOuterJoin, LeftOuterJoin.Flip())
	require.Equal(t, LeftOuterJoin, RightOuterJoin.Flip())
	require.Equal(t, InnerJoin, InnerJoin.Flip())
	require.Equal(t, FullOuterJoin, FullOuterJoin.Flip())
	require.Equal(t, CrossJoin, CrossJoin.Flip())
}

func TestToString(t *testing.T) {
	t1, t1Slots := scanWith("t1", "id")
	t2, t2Slots := scanWith("t2", "id")
	join := NewLogicalJoin(InnerJoin, expression.NewEqualTo(t1Slots[0], t2Slots[0]), t1, t2)
	proj := NewLogicalProjection([]expression.NamedExpression{t1Slots[0]}, join)

	require.Equal(t,
		"Projection(t1.id){Join(INNER JOIN ON (t1.id = t2.id)){Scan(t1),Scan(t2)}}",
		ToString(proj))
}
