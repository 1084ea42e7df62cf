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

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Kind represents the kind of value contained in a Value.
type Kind int8

const (
	// Bytes is a string of raw octets.
	Bytes Kind = iota
	// List is an ordered sequence of values.
	List
)

func (k Kind) String() string {
	switch k {
	case Bytes:
		return "Bytes"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is an RLP item: either a byte string or a list of values.
// Values are immutable once constructed. The zero Value is the empty
// byte string.
type Value struct {
	kind Kind
	str  []byte
	list []Value
}

// BytesValue creates a byte string value. The content is copied, so the
// caller may reuse b afterwards.
func BytesValue(b []byte) Value {
	return Value{kind: Bytes, str: bytes.Clone(b)}
}

// StringValue creates a byte string value from the bytes of s.
func StringValue(s string) Value {
	return Value{kind: Bytes, str: []byte(s)}
}

// ListValue creates a list value holding the given elements.
func ListValue(elems ...Value) Value {
	list := make([]Value, len(elems))
	copy(list, elems)
	return Value{kind: List, list: list}
}

// Kind returns which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsList reports whether v is a list.
func (v Value) IsList() bool {
	return v.kind == List
}

// Bytes returns a copy of the content of a byte string value. It returns
// nil for lists.
func (v Value) Bytes() []byte {
	if v.kind != Bytes {
		return nil
	}
	return bytes.Clone(v.str)
}

// Elems returns the elements of a list value. It returns nil for byte
// strings. The returned slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != List {
		return nil
	}
	return v.list
}

// Len returns the content length of a byte string, or the number of
// elements of a list.
func (v Value) Len() int {
	if v.kind == List {
		return len(v.list)
	}
	return len(v.str)
}

// Equal reports whether v and other are structurally equal. An empty byte
// string and an empty list are not equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == Bytes {
		return bytes.Equal(v.str, other.str)
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if !v.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}

// String returns a readable representation of v, hex for byte strings and
// bracketed element lists for lists.
func (v Value) String() string {
	var b strings.Builder
	v.format(&b)
	return b.String()
}

func (v Value) format(b *strings.Builder) {
	if v.kind == Bytes {
		b.WriteString("0x")
		b.WriteString(hex.EncodeToString(v.str))
		return
	}
	b.WriteByte('[')
	for i, elem := range v.list {
		if i > 0 {
			b.WriteString(", ")
		}
		elem.format(b)
	}
	b.WriteByte(']')
}
