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

// JoinType contains CrossJoin, InnerJoin, LeftOuterJoin, RightOuterJoin,
// FullOuterJoin.
type JoinType int

// Join types.
const (
	// InnerJoin means inner join.
	InnerJoin JoinType = iota
	// LeftOuterJoin means left outer join, the left side is the row-preserving side.
	LeftOuterJoin
	// RightOuterJoin means right outer join, the right side is the row-preserving side.
	RightOuterJoin
	// FullOuterJoin means full outer join.
	FullOuterJoin
	// CrossJoin means cross join, no on-condition.
	CrossJoin
)

var joinTypeNames = [...]string{
	InnerJoin:      "INNER JOIN",
	LeftOuterJoin:  "LEFT OUTER JOIN",
	RightOuterJoin: "RIGHT OUTER JOIN",
	FullOuterJoin:  "FULL OUTER JOIN",
	CrossJoin:      "CROSS JOIN",
}

// String implements fmt.Stringer.
func (tp JoinType) String() string { return joinTypeNames[tp] }

// IsOuter reports whether tp preserves unmatched rows on some side.
func (tp JoinType) IsOuter() bool {
	return tp == LeftOuterJoin || tp == RightOuterJoin || tp == FullOuterJoin
}

// IsSymmetric reports whether Join(A, B) and Join(B, A) produce the same
// rows under tp without changing the join type itself.
func (tp JoinType) IsSymmetric() bool {
	return tp == InnerJoin || tp == FullOuterJoin || tp == CrossJoin
}

// Flip returns the join type after swapping the two children. Asymmetric
// outer joins flip their side; symmetric types are unchanged.
func (tp JoinType) Flip() JoinType {
	switch tp {
	case LeftOuterJoin:
		return RightOuterJoin
	case RightOuterJoin:
		return LeftOuterJoin
	default:
		return tp
	}
}

// LeftNullSupplying reports whether tp may fill the left side with NULLs.
func (tp JoinType) LeftNullSupplying() bool {
	return tp == RightOuterJoin || tp == FullOuterJoin
}

// RightNullSupplying reports whether tp may fill the right side with NULLs.
func (tp JoinType) RightNullSupplying() bool {
	return tp == LeftOuterJoin || tp == FullOuterJoin
}
