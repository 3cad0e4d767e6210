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

// Package planctx holds the per-exploration planner context. It is plain
// data: rules read the configuration they need, nothing more, so tests build
// one directly instead of mocking.
package planctx

import (
	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/wangyf0555/incubator-doris/pkg/util/logutil"
)

// Context is the configuration one exploration context owns. One context
// serves one query; nothing in it is shared mutable state, so rule
// application stays a pure function of (subtree, context).
type Context struct {
	disabledRules *bitset.BitSet
	logger        *zap.Logger
}

// NewContext creates a context with every rule enabled.
func NewContext() *Context {
	return &Context{
		disabledRules: bitset.New(8),
		logger:        logutil.BgLogger(),
	}
}

// WithLogger replaces the context logger.
func (c *Context) WithLogger(logger *zap.Logger) *Context {
	c.logger = logger
	return c
}

// Logger returns the context logger.
func (c *Context) Logger() *zap.Logger { return c.logger }

// DisableRule masks out one rule ID for this context.
func (c *Context) DisableRule(id uint) {
	c.disabledRules.Set(id)
}

// RuleDisabled reports whether the rule ID is masked out.
func (c *Context) RuleDisabled(id uint) bool {
	return c.disabledRules.Test(id)
}

// DisabledMask exposes the raw mask for registry filtering.
func (c *Context) DisabledMask() *bitset.BitSet {
	return c.disabledRules
}
