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
	"errors"
	"io"
)

var (
	// ErrExpectedBytes is returned when the input contains a list where a
	// byte string is required.
	ErrExpectedBytes = errors.New("rlp: expected bytes or a single byte")
	// ErrExpectedList is returned when the input contains a byte string
	// where a list is required.
	ErrExpectedList = errors.New("rlp: expected list")
	// ErrCanonInt is returned when an integer's content bytes carry a
	// leading zero byte.
	ErrCanonInt = errors.New("rlp: non-canonical integer format")
	// ErrCanonSize is returned when a size prefix is not in canonical
	// form: a long form used for a length that fits the short form, a
	// length field with a leading zero byte, or a prefixed single byte
	// that should have been encoded bare.
	ErrCanonSize = errors.New("rlp: non-canonical size information")
	// ErrElemTooLarge is returned when a list element extends past the
	// end of its containing list's payload.
	ErrElemTooLarge = errors.New("rlp: element is larger than containing list")
	// ErrValueTooLarge is returned when a declared content size exceeds
	// the remaining input.
	ErrValueTooLarge = errors.New("rlp: value size exceeds available input length")
	// ErrMoreThanOneValue is returned by Decode when input bytes remain
	// after the first value.
	ErrMoreThanOneValue = errors.New("rlp: input contains more than one value")

	errUintOverflow  = errors.New("rlp: uint overflow")
	errUint256Large  = errors.New("rlp: value too large for uint256")
	errNotBytesValue = errors.New("rlp: value is not a byte string")
)

// Decode parses b as a single RLP value. The input must contain exactly
// one value with no trailing bytes, and must be in canonical form; any
// other input is rejected with a non-nil error and no partial result.
func Decode(b []byte) (Value, error) {
	v, rest, err := DecodeFirst(b)
	if err != nil {
		return Value{}, err
	}
	if len(rest) > 0 {
		return Value{}, ErrMoreThanOneValue
	}
	return v, nil
}

// DecodeFirst parses the first RLP value in b and returns it along with
// the bytes following the value. The number of bytes consumed is
// len(b) - len(rest).
func DecodeFirst(b []byte) (v Value, rest []byte, err error) {
	k, tagsize, contentsize, err := readKind(b)
	if err != nil {
		return Value{}, b, err
	}
	content := b[tagsize : tagsize+contentsize]
	rest = b[tagsize+contentsize:]
	if k == List {
		elems, err := decodeListContent(content)
		if err != nil {
			return Value{}, b, err
		}
		return Value{kind: List, list: elems}, rest, nil
	}
	return BytesValue(content), rest, nil
}

// decodeListContent parses a list payload into its elements. The payload
// must consist of whole values; an element that overruns the payload is a
// malformed list, not a truncated input.
func decodeListContent(content []byte) ([]Value, error) {
	var elems []Value
	for len(content) > 0 {
		elem, rest, err := DecodeFirst(content)
		if err != nil {
			if err == ErrValueTooLarge {
				err = ErrElemTooLarge
			}
			return nil, err
		}
		elems = append(elems, elem)
		content = rest
	}
	return elems, nil
}

// readKind reads the header of the value at the start of buf and returns
// its kind, the header size and the content size. It enforces the
// canonical form of the header before any content is looked at.
func readKind(buf []byte) (k Kind, tagsize, contentsize uint64, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	b := buf[0]
	switch {
	case b < 0x80:
		k = Bytes
		tagsize = 0
		contentsize = 1
	case b < 0xB8:
		k = Bytes
		tagsize = 1
		contentsize = uint64(b - 0x80)
		// Reject strings that should've been single bytes.
		if contentsize == 1 && len(buf) > 1 && buf[1] < 128 {
			return 0, 0, 0, ErrCanonSize
		}
	case b < 0xC0:
		k = Bytes
		tagsize = uint64(b-0xB7) + 1
		contentsize, err = readSize(buf[1:], b-0xB7)
	case b < 0xF8:
		k = List
		tagsize = 1
		contentsize = uint64(b - 0xC0)
	default:
		k = List
		tagsize = uint64(b-0xF7) + 1
		contentsize, err = readSize(buf[1:], b-0xF7)
	}
	if err != nil {
		return 0, 0, 0, err
	}
	// Reject values larger than the input slice.
	if contentsize > uint64(len(buf))-tagsize {
		return 0, 0, 0, ErrValueTooLarge
	}
	return k, tagsize, contentsize, err
}

// readSize reads the explicit size field of a long string or long list.
func readSize(b []byte, slen byte) (uint64, error) {
	if int(slen) > len(b) {
		return 0, io.ErrUnexpectedEOF
	}
	var s uint64
	switch slen {
	case 1:
		s = uint64(b[0])
	case 2:
		s = uint64(b[0])<<8 | uint64(b[1])
	case 3:
		s = uint64(b[0])<<16 | uint64(b[1])<<8 | uint64(b[2])
	case 4:
		s = uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
	case 5:
		s = uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
	case 6:
		s = uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 | uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	case 7:
		s = uint64(b[0])<<48 | uint64(b[1])<<40 | uint64(b[2])<<32 | uint64(b[3])<<24 | uint64(b[4])<<16 | uint64(b[5])<<8 | uint64(b[6])
	case 8:
		s = uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 | uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	}
	// Reject sizes < 56 (shouldn't have separate size) and sizes with
	// leading zero bytes.
	if s < 56 || b[0] == 0 {
		return 0, ErrCanonSize
	}
	return s, nil
}
