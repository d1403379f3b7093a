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

// Package wire implements the bit-exact ASTERIX wire codec runtime: a
// streaming bit reader/writer and the FSPEC presence bitmap. Generated
// decoders/encoders (see pkg/codegen) depend on this package and nothing
// else at runtime.
package wire

import (
	"errors"
	"fmt"
)

// ErrIo indicates the underlying byte source/sink reported a failure,
// including premature end-of-stream. It is always wrapped with additional
// context via fmt.Errorf("%w: ...", ErrIo); callers should use errors.Is to
// test for it.
var ErrIo = errors.New("io error")

// ErrInvalidData indicates the wire bytes do not conform to the expected
// structure: an FSPEC chain exceeded its cap, an Extended FX chain ran past
// its declared Parts, or an Explicit length byte under-specified its
// required payload.
var ErrInvalidData = errors.New("invalid data")

// ioError wraps an underlying error as an ErrIo failure.
func ioError(context string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrIo, context, cause)
}

// invalidDataError constructs an ErrInvalidData failure with a detail message.
func invalidDataError(detail string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(detail, args...))
}
