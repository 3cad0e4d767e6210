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

//go:build intest

package intest

import "fmt"

// InTest checks if the code is running in test.
const InTest = true

// Assert panics when the condition is false.
func Assert(cond bool, msgAndArgs ...any) {
	if !cond {
		doPanic(msgAndArgs...)
	}
}

// AssertNotNil panics when the object is nil.
func AssertNotNil(obj any, msgAndArgs ...any) {
	Assert(obj != nil, msgAndArgs...)
}

func doPanic(msgAndArgs ...any) {
	if len(msgAndArgs) == 0 {
		panic("assert failed")
	}
	if format, ok := msgAndArgs[0].(string); ok {
		panic(fmt.Sprintf("assert failed: "+format, msgAndArgs[1:]...))
	}
	panic(fmt.Sprintf("assert failed: %v", msgAndArgs...))
}
