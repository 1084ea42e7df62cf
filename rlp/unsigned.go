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

package rlp

import "github.com/holiman/uint256"

// RLP has no integer type of its own. Integers travel as byte strings
// holding the minimal big-endian representation of the value, with zero
// as the empty string. The helpers here convert between that convention
// and Go integers, enforcing canonical form on the way in.

// Uint64Value creates a byte string value holding the canonical
// representation of i.
func Uint64Value(i uint64) Value {
	if i == 0 {
		return Value{kind: Bytes}
	}
	var buf [8]byte
	size := putint(buf[:], i)
	return Value{kind: Bytes, str: buf[:size:size]}
}

// Uint64 interprets a byte string value as an unsigned integer. It
// returns ErrCanonInt for content with a leading zero byte and
// an overflow error for content longer than 8 bytes.
func (v Value) Uint64() (uint64, error) {
	if v.kind != Bytes {
		return 0, errNotBytesValue
	}
	switch n := len(v.str); n {
	case 0:
		return 0, nil
	case 1:
		if v.str[0] == 0 {
			return 0, ErrCanonInt
		}
		return uint64(v.str[0]), nil
	default:
		if n > 8 {
			return 0, errUintOverflow
		}
		if v.str[0] == 0 {
			return 0, ErrCanonInt
		}
		var x uint64
		for _, b := range v.str {
			x = x<<8 | uint64(b)
		}
		return x, nil
	}
}

// Uint256Value creates a byte string value holding the canonical
// representation of z. A nil z encodes as zero.
func Uint256Value(z *uint256.Int) Value {
	if z == nil || z.IsZero() {
		return Value{kind: Bytes}
	}
	return Value{kind: Bytes, str: z.Bytes()}
}

// Uint256 interprets a byte string value as an unsigned 256-bit integer.
func (v Value) Uint256() (*uint256.Int, error) {
	if v.kind != Bytes {
		return nil, errNotBytesValue
	}
	if len(v.str) > 32 {
		return nil, errUint256Large
	}
	if len(v.str) > 0 && v.str[0] == 0 {
		return nil, ErrCanonInt
	}
	return new(uint256.Int).SetBytes(v.str), nil
}
