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

// Package native bridges the rlp codec into a VM's native-function layer.
// It exposes the two codec operations as named natives, checks call
// arity and result shape, charges gas in proportion to bytes processed,
// and collapses every decode failure to one reserved abort code.
package native

import (
	"fmt"

	"github.com/vmkit/rlpvm/rlp"
)

// Type describes the shape the caller expects of a decoded value. RLP
// carries no type information on the wire, so the expected shape must be
// supplied from the call's type argument and is checked only after
// decoding succeeds.
type Type int8

const (
	TypeBytes Type = iota
	TypeList
)

// Matches reports whether v has the shape t describes.
func (t Type) Matches(v rlp.Value) bool {
	if t == TypeList {
		return v.IsList()
	}
	return !v.IsList()
}

func (t Type) String() string {
	switch t {
	case TypeBytes:
		return "bytes"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// NativeFunction is a codec operation exposed to the host VM. Gas
// calculation is split from execution so the host can charge before
// running, as with precompiled contracts.
type NativeFunction interface {
	// RequiredGas returns the gas cost of the call.
	RequiredGas(tyArgs []Type, args []rlp.Value) uint64

	// Run executes the native and returns its result values. It must not
	// be called without charging RequiredGas first.
	Run(tyArgs []Type, args []rlp.Value) ([]rlp.Value, error)
}

// Call charges the gas cost of fn against ctx and runs it. It returns
// ErrOutOfGas without running the native when the budget does not cover
// the cost.
func Call(fn NativeFunction, ctx *Context, tyArgs []Type, args []rlp.Value) ([]rlp.Value, error) {
	if !ctx.UseGas(fn.RequiredGas(tyArgs, args)) {
		return nil, ErrOutOfGas
	}
	return fn.Run(tyArgs, args)
}

// MakeAll returns the codec natives keyed by the names they are
// registered under in the host module.
func MakeAll() map[string]NativeFunction {
	return map[string]NativeFunction{
		"encode": &encodeNative{},
		"decode": &decodeNative{},
	}
}

func checkArity(tyArgs []Type, args []rlp.Value) error {
	if len(tyArgs) != 1 {
		return fmt.Errorf("%w: want 1 type argument, have %d", ErrInvariantViolation, len(tyArgs))
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: want 1 argument, have %d", ErrInvariantViolation, len(args))
	}
	return nil
}

// encodeNative encodes its single argument and returns the encoding as a
// byte string value. It cannot abort: every value has an encoding.
type encodeNative struct{}

func (*encodeNative) RequiredGas(tyArgs []Type, args []rlp.Value) uint64 {
	var size uint64
	if len(args) == 1 {
		size = rlp.EncodedSize(args[0])
	}
	return EncodeBaseGas + EncodePerByteGas*size
}

func (*encodeNative) Run(tyArgs []Type, args []rlp.Value) ([]rlp.Value, error) {
	if err := checkArity(tyArgs, args); err != nil {
		return nil, err
	}
	return []rlp.Value{rlp.BytesValue(rlp.Encode(args[0]))}, nil
}

// decodeNative decodes its single byte-string argument and checks the
// result against the requested shape. Malformed input and shape
// mismatches abort with SerializationFailure; the distinction between
// the individual canonicality rules stops here.
type decodeNative struct{}

func (*decodeNative) RequiredGas(tyArgs []Type, args []rlp.Value) uint64 {
	var size uint64
	if len(args) == 1 && !args[0].IsList() {
		size = uint64(args[0].Len())
	}
	return DecodeBaseGas + DecodePerByteGas*size
}

func (*decodeNative) Run(tyArgs []Type, args []rlp.Value) ([]rlp.Value, error) {
	if err := checkArity(tyArgs, args); err != nil {
		return nil, err
	}
	if args[0].IsList() {
		return nil, fmt.Errorf("%w: decode input must be a byte string", ErrInvariantViolation)
	}
	v, err := rlp.Decode(args[0].Bytes())
	if err != nil {
		return nil, &AbortError{Code: SerializationFailure}
	}
	if !tyArgs[0].Matches(v) {
		return nil, &AbortError{Code: SerializationFailure}
	}
	return []rlp.Value{v}, nil
}
