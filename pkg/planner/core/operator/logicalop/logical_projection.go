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
	"strings"

	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/trees"
)

// LogicalProjection narrows and renames the output of its child. The project
// list order and the exact alias names are part of the output schema.
type LogicalProjection struct {
	Exprs []expression.NamedExpression

	child LogicalPlan
}

// NewLogicalProjection creates a projection over child.
func NewLogicalProjection(exprs []expression.NamedExpression, child LogicalPlan) *LogicalProjection {
	return &LogicalProjection{Exprs: exprs, child: child}
}

// Child returns the single input.
func (p *LogicalProjection) Child() LogicalPlan { return p.child }

// TP implements the LogicalPlan interface.
func (*LogicalProjection) TP() string { return TypeProjection }

// Children implements the LogicalPlan interface.
func (p *LogicalProjection) Children() []LogicalPlan {
	return []LogicalPlan{p.child}
}

// RebuildWith implements the LogicalPlan interface.
func (p *LogicalProjection) RebuildWith(children []LogicalPlan) LogicalPlan {
	trees.CheckRebuildArity("LogicalProjection", 1, len(children))
	return &LogicalProjection{Exprs: p.Exprs, child: children[0]}
}

// Schema implements the LogicalPlan interface.
func (p *LogicalProjection) Schema() ([]*expression.SlotReference, error) {
	output := make([]*expression.SlotReference, 0, len(p.Exprs))
	for _, expr := range p.Exprs {
		slot, err := expr.ToSlot()
		if err != nil {
			return nil, err
		}
		output = append(output, slot)
	}
	return output, nil
}

// ExplainInfo implements the LogicalPlan interface.
func (p *LogicalProjection) ExplainInfo() string {
	items := make([]string, 0, len(p.Exprs))
	for _, expr := range p.Exprs {
		items = append(items, expr.String())
	}
	return strings.Join(items, ", ")
}
