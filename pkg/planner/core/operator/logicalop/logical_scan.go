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
	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/trees"
)

// LogicalScan is a leaf reading one relation. The analysis phase binds its
// output slots before the tree ever reaches a rule.
type LogicalScan struct {
	Relation string

	output []*expression.SlotReference
}

// NewLogicalScan creates a scan over the named relation with bound output
// slots.
func NewLogicalScan(relation string, output []*expression.SlotReference) *LogicalScan {
	return &LogicalScan{Relation: relation, output: output}
}

// TP implements the LogicalPlan interface.
func (*LogicalScan) TP() string { return TypeScan }

// Children implements the LogicalPlan interface.
func (*LogicalScan) Children() []LogicalPlan { return nil }

// RebuildWith implements the LogicalPlan interface.
func (s *LogicalScan) RebuildWith(children []LogicalPlan) LogicalPlan {
	trees.CheckRebuildArity("LogicalScan", 0, len(children))
	return s
}

// Schema implements the LogicalPlan interface.
func (s *LogicalScan) Schema() ([]*expression.SlotReference, error) {
	return s.output, nil
}

// ExplainInfo implements the LogicalPlan interface.
func (s *LogicalScan) ExplainInfo() string { return s.Relation }
