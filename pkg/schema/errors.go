// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package schema

import "fmt"

// SchemaError reports a build-time violation of one of the IR invariants
// (spec §3), carrying the path to the offending construct (e.g. "Item 020
// Part 1") so the operator can locate the problem in the source schema.
type SchemaError struct {
	Path   string
	Detail string
}

// Error implements error.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Detail)
}

// NewSchemaError constructs a SchemaError with a formatted detail message.
func NewSchemaError(path, detail string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Detail: fmt.Sprintf(detail, args...)}
}
