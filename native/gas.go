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

// Gas schedule for the codec natives. Each call costs a flat base amount
// plus an amount proportional to the bytes processed: the input length on
// the decode path, the encoded output size on the encode path. The codec
// reports both without re-walking the value tree.
const (
	EncodeBaseGas    uint64 = 30
	EncodePerByteGas uint64 = 3
	DecodeBaseGas    uint64 = 30
	DecodePerByteGas uint64 = 3
)

// Context carries the gas budget of one host call into the natives.
type Context struct {
	gas uint64
}

// NewContext creates a call context with the given gas budget.
func NewContext(gas uint64) *Context {
	return &Context{gas: gas}
}

// UseGas attempts to consume gas from the remaining budget and reports
// whether it was available. On failure the budget is left untouched.
func (ctx *Context) UseGas(gas uint64) bool {
	if ctx.gas < gas {
		return false
	}
	ctx.gas -= gas
	return true
}

// GasLeft returns the remaining budget.
func (ctx *Context) GasLeft() uint64 {
	return ctx.gas
}
