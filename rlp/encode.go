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

var (
	// Common encoded values.

	// EmptyBytes is the encoding of an empty byte string.
	EmptyBytes = []byte{0x80}
	// EmptyList is the encoding of an empty list.
	EmptyList = []byte{0xC0}
)

// Encode returns the canonical RLP encoding of v. Encoding cannot fail:
// every value has exactly one encoding, and distinct values have distinct
// encodings.
func Encode(v Value) []byte {
	return AppendValue(make([]byte, 0, EncodedSize(v)), v)
}

// AppendValue appends the RLP encoding of v to b, and returns the
// resulting slice.
func AppendValue(b []byte, v Value) []byte {
	if v.kind == List {
		return appendList(b, v.list)
	}
	return appendString(b, v.str)
}

func appendString(b, str []byte) []byte {
	if len(str) == 1 && str[0] <= 0x7f {
		// fits single byte, no string header
		return append(b, str[0])
	}
	b = appendHead(b, 0x80, 0xB7, uint64(len(str)))
	return append(b, str...)
}

func appendList(b []byte, elems []Value) []byte {
	var contentSize uint64
	for _, elem := range elems {
		contentSize += EncodedSize(elem)
	}
	b = appendHead(b, 0xC0, 0xF7, contentSize)
	for _, elem := range elems {
		b = AppendValue(b, elem)
	}
	return b
}

// EncodedSize returns the number of bytes Encode will produce for v,
// without encoding it. This is what resource metering should charge
// against on the encoding path.
func EncodedSize(v Value) uint64 {
	if v.kind == List {
		var contentSize uint64
		for _, elem := range v.list {
			contentSize += EncodedSize(elem)
		}
		return uint64(headsize(contentSize)) + contentSize
	}
	switch n := len(v.str); n {
	case 0:
		return 1
	case 1:
		if v.str[0] <= 0x7f {
			return 1
		}
		return 2
	default:
		return uint64(headsize(uint64(n)) + n)
	}
}

// headsize returns the size of a list or string header
// for a value of the given size.
func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + intsize(size)
}

// appendHead appends a list or string header to b.
func appendHead(b []byte, smalltag, largetag byte, size uint64) []byte {
	if size < 56 {
		return append(b, smalltag+byte(size))
	}
	var sizebuf [9]byte
	sizesize := putint(sizebuf[1:], size)
	sizebuf[0] = largetag + byte(sizesize)
	return append(b, sizebuf[:sizesize+1]...)
}

// putint writes i to the beginning of b in big endian byte
// order, using the least number of bytes needed to represent i.
func putint(b []byte, i uint64) (size int) {
	switch {
	case i < (1 << 8):
		b[0] = byte(i)
		return 1
	case i < (1 << 16):
		b[0] = byte(i >> 8)
		b[1] = byte(i)
		return 2
	case i < (1 << 24):
		b[0] = byte(i >> 16)
		b[1] = byte(i >> 8)
		b[2] = byte(i)
		return 3
	case i < (1 << 32):
		b[0] = byte(i >> 24)
		b[1] = byte(i >> 16)
		b[2] = byte(i >> 8)
		b[3] = byte(i)
		return 4
	case i < (1 << 40):
		b[0] = byte(i >> 32)
		b[1] = byte(i >> 24)
		b[2] = byte(i >> 16)
		b[3] = byte(i >> 8)
		b[4] = byte(i)
		return 5
	case i < (1 << 48):
		b[0] = byte(i >> 40)
		b[1] = byte(i >> 32)
		b[2] = byte(i >> 24)
		b[3] = byte(i >> 16)
		b[4] = byte(i >> 8)
		b[5] = byte(i)
		return 6
	case i < (1 << 56):
		b[0] = byte(i >> 48)
		b[1] = byte(i >> 40)
		b[2] = byte(i >> 32)
		b[3] = byte(i >> 24)
		b[4] = byte(i >> 16)
		b[5] = byte(i >> 8)
		b[6] = byte(i)
		return 7
	default:
		b[0] = byte(i >> 56)
		b[1] = byte(i >> 48)
		b[2] = byte(i >> 40)
		b[3] = byte(i >> 32)
		b[4] = byte(i >> 24)
		b[5] = byte(i >> 16)
		b[6] = byte(i >> 8)
		b[7] = byte(i)
		return 8
	}
}

// intsize computes the minimum number of bytes required to store i.
func intsize(i uint64) (size int) {
	for size = 1; ; size++ {
		if i >>= 8; i == 0 {
			return size
		}
	}
}
