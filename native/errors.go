// Copyright 2024 The rlpvm Authors
// This file is part of the rlpvm library.
//
// The rlpvm library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The rlpvm library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the rlpvm library. If not, see <http://www.gnu.org/licenses/>.

package native

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfGas is returned when a call's gas cost exceeds the budget
	// left in its context.
	ErrOutOfGas = errors.New("native: out of gas")
	// ErrInvariantViolation is returned when a native is invoked with an
	// argument list the host should have made impossible, such as a wrong
	// argument count. It indicates a bug in the caller, not bad input.
	ErrInvariantViolation = errors.New("native: invariant violation")
)

// SerializationFailure is the reserved abort code raised for any
// malformed or non-canonical input on the decode path, and for a decoded
// value whose shape does not match the requested type. Every failure
// class maps to this one code; callers cannot distinguish which rule was
// violated.
const SerializationFailure uint64 = 0x1C5

// AbortError signals a VM abort with a status code. The code is the only
// information carried across the host boundary.
type AbortError struct {
	Code uint64
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("native: aborted with code %#x", e.Code)
}
