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

// Package types holds the closed scalar type set understood by the planner
// core. Type resolution happens in the analysis phase; plan rewriting only
// carries these tags around.
package types

// DataType is the scalar type tag of a bound expression.
type DataType int

// Scalar type tags. TypeUnsupported marks values the external evaluation
// contract cannot represent, e.g. intermediate aggregate states.
const (
	TypeNull DataType = iota
	TypeBoolean
	TypeTinyInt
	TypeSmallInt
	TypeInt
	TypeBigInt
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeDate
	TypeDatetime
	TypeVarchar
	TypeString
	TypeUnsupported
)

var typeNames = map[DataType]string{
	TypeNull:        "NULL",
	TypeBoolean:     "BOOLEAN",
	TypeTinyInt:     "TINYINT",
	TypeSmallInt:    "SMALLINT",
	TypeInt:         "INT",
	TypeBigInt:      "BIGINT",
	TypeFloat:       "FLOAT",
	TypeDouble:      "DOUBLE",
	TypeDecimal:     "DECIMAL",
	TypeDate:        "DATE",
	TypeDatetime:    "DATETIME",
	TypeVarchar:     "VARCHAR",
	TypeString:      "STRING",
	TypeUnsupported: "UNSUPPORTED",
}

// String implements fmt.Stringer.
func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsNumeric reports whether t is one of the numeric types.
func (t DataType) IsNumeric() bool {
	return t >= TypeTinyInt && t <= TypeDecimal
}
