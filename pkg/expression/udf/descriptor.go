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

// Package udf builds the evaluation contract handed to the external
// execution engine for user defined functions. The planner core only
// describes the call: name, declared argument types, declared nullability.
// Invocation, argument marshaling and the wire format live on the other side
// of the boundary.
package udf

import (
	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planerrors"
	"github.com/wangyf0555/incubator-doris/pkg/types"
)

// Descriptor is everything the external engine needs to dispatch one
// function call.
type Descriptor struct {
	Name     string
	ArgTypes []types.DataType
	RetType  types.DataType
	Nullable bool
}

// BuildDescriptor derives the evaluation contract of a function call. A type
// with no external representation yields ErrUnsupportedType; the contract is
// never built on a guessed default.
func BuildDescriptor(fn *expression.ScalarFunction) (*Descriptor, error) {
	if err := checkType(fn.RetType, fn.FuncName); err != nil {
		return nil, err
	}
	argTypes := make([]types.DataType, 0, len(fn.Args))
	for _, arg := range fn.Args {
		tp := arg.GetType()
		if err := checkType(tp, fn.FuncName); err != nil {
			return nil, err
		}
		argTypes = append(argTypes, tp)
	}
	nullable, err := fn.Nullable()
	if err != nil {
		return nil, err
	}
	return &Descriptor{
		Name:     fn.FuncName,
		ArgTypes: argTypes,
		RetType:  fn.RetType,
		Nullable: nullable,
	}, nil
}

func checkType(tp types.DataType, funcName string) error {
	if tp == types.TypeUnsupported {
		return planerrors.ErrUnsupportedType.GenWithStackByArgs(tp.String(), funcName)
	}
	return nil
}
