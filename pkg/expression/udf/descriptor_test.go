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

package udf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangyf0555/incubator-doris/pkg/expression"
	"github.com/wangyf0555/incubator-doris/pkg/planner/planerrors"
	"github.com/wangyf0555/incubator-doris/pkg/types"
)

func TestBuildDescriptor(t *testing.T) {
	arg1 := expression.NewSlotReference("t", "a", types.TypeInt, true)
	arg2 := expression.NewConstant("km", types.TypeString)
	fn := expression.NewScalarFunction("convert_dist", types.TypeDouble, arg1, arg2)

	desc, err := BuildDescriptor(fn)
	require.NoError(t, err)
	require.Equal(t, "convert_dist", desc.Name)
	require.Equal(t, []types.DataType{types.TypeInt, types.TypeString}, desc.ArgTypes)
	require.Equal(t, types.TypeDouble, desc.RetType)
	require.True(t, desc.Nullable)
}

func TestBuildDescriptorUnsupportedType(t *testing.T) {
	arg := expression.NewSlotReference("t", "blob", types.TypeUnsupported, false)
	fn := expression.NewScalarFunction("digest", types.TypeString, arg)
	_, err := BuildDescriptor(fn)
	require.Error(t, err)
	require.True(t, planerrors.ErrUnsupportedType.Equal(err))

	fn = expression.NewScalarFunction("parse_blob", types.TypeUnsupported,
		expression.NewSlotReference("t", "raw", types.TypeString, false))
	_, err = BuildDescriptor(fn)
	require.True(t, planerrors.ErrUnsupportedType.Equal(err))
}

func TestBuildDescriptorUnboundArg(t *testing.T) {
	fn := expression.NewScalarFunction("abs", types.TypeInt,
		expression.NewUnboundSlot("t", "a"))
	_, err := BuildDescriptor(fn)
	require.True(t, planerrors.ErrUnboundSlot.Equal(err))
}
