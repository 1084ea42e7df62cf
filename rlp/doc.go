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

/*
Package rlp implements the RLP serialization format over an explicit
value model.

RLP (Recursive Length Prefix) knows two kinds of item: byte strings and
lists of items. The format carries no type information; what a byte
string means is up to the caller. This package represents an item as a
Value, a two-variant tagged union, and provides the two operations of
the format:

	Encode(v Value) []byte
	Decode(b []byte) (Value, error)

Encode is total and deterministic: every Value has exactly one encoding,
and distinct Values encode to distinct byte strings. Decode is its exact
inverse and enforces canonical form. Inputs that a lenient reader would
accept but that are not the output of Encode for any Value are rejected:
length fields with leading zero bytes, long-form headers for payloads
that fit the short form, a prefixed single byte below 0x80, truncated
content and trailing bytes all fail decoding.

Both operations are pure functions without internal state, safe for
unlimited concurrent use. Neither imposes size or depth limits; decoding
depth is bounded by the input length, since every nesting level consumes
at least one input byte, and callers that need to bound total work can
meter on the input length and on EncodedSize.
*/
package rlp
