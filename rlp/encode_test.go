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
	"fmt"
	"strings"
	"testing"
)

func unhex(str string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(str, " ", ""))
	if err != nil {
		panic(fmt.Sprintf("invalid hex string: %q", str))
	}
	return b
}

var encTests = []struct {
	val    Value
	output string
}{
	// empty values
	{val: BytesValue(nil), output: "80"},
	{val: BytesValue([]byte{}), output: "80"},
	{val: ListValue(), output: "C0"},

	// single bytes below 0x80 encode as themselves
	{val: BytesValue([]byte{0x00}), output: "00"},
	{val: BytesValue([]byte{0x01}), output: "01"},
	{val: BytesValue([]byte{0x7F}), output: "7F"},

	// single bytes from 0x80 on need a header
	{val: BytesValue([]byte{0x80}), output: "8180"},
	{val: BytesValue([]byte{0xFF}), output: "81FF"},

	// short strings
	{val: StringValue("dog"), output: "83646F67"},
	{val: BytesValue(unhex("0102030405")), output: "850102030405"},

	// lists
	{val: ListValue(StringValue("cat"), StringValue("dog")), output: "C88363617483646F67"},
	{val: ListValue(BytesValue([]byte{0x01}), BytesValue([]byte{0x02}), BytesValue([]byte{0x03})), output: "C3010203"},

	// the set theoretical representation of three
	{
		val: ListValue(
			ListValue(),
			ListValue(ListValue()),
			ListValue(ListValue(), ListValue(ListValue())),
		),
		output: "C7C0C1C0C3C0C1C0",
	},

	// nested bytes inside lists
	{val: ListValue(ListValue(BytesValue([]byte{0x80}))), output: "C3C28180"},
}

func TestEncode(t *testing.T) {
	for i, test := range encTests {
		output := Encode(test.val)
		if !bytes.Equal(output, unhex(test.output)) {
			t.Errorf("test %d: output mismatch:\ngot  %X\nwant %s\nvalue %v", i, output, test.output, test.val)
		}
		if size := EncodedSize(test.val); size != uint64(len(output)) {
			t.Errorf("test %d: EncodedSize returned %d, encoding is %d bytes", i, size, len(output))
		}
	}
}

// Strings and lists switch from the length-in-tag form to the explicit
// length form between content size 55 and 56.
func TestEncodeSizeBoundary(t *testing.T) {
	str55 := bytes.Repeat([]byte{0xAA}, 55)
	want := append([]byte{0xB7}, str55...)
	if enc := Encode(BytesValue(str55)); !bytes.Equal(enc, want) {
		t.Errorf("55-byte string: got %X, want %X", enc, want)
	}

	str56 := bytes.Repeat([]byte{0xAA}, 56)
	want = append([]byte{0xB8, 0x38}, str56...)
	if enc := Encode(BytesValue(str56)); !bytes.Equal(enc, want) {
		t.Errorf("56-byte string: got %X, want %X", enc, want)
	}

	// A 54-byte string element encodes to a 55-byte list payload.
	elem54 := Encode(BytesValue(bytes.Repeat([]byte{0xAA}, 54)))
	want = append([]byte{0xF7}, elem54...)
	if enc := Encode(ListValue(BytesValue(bytes.Repeat([]byte{0xAA}, 54)))); !bytes.Equal(enc, want) {
		t.Errorf("55-byte list payload: got %X, want %X", enc, want)
	}

	// One more content byte pushes the payload to 56 and the list to the
	// long form.
	elem55 := Encode(BytesValue(str55))
	want = append([]byte{0xF8, 0x38}, elem55...)
	if enc := Encode(ListValue(BytesValue(str55))); !bytes.Equal(enc, want) {
		t.Errorf("56-byte list payload: got %X, want %X", enc, want)
	}
}

func TestEncodeLongString(t *testing.T) {
	for _, size := range []int{56, 0x100, 0x101, 0xFFFF, 0x10000} {
		content := bytes.Repeat([]byte{0x33}, size)
		enc := Encode(BytesValue(content))

		wantHead := appendHead(nil, 0x80, 0xB7, uint64(size))
		if !bytes.Equal(enc[:len(wantHead)], wantHead) {
			t.Errorf("size %d: header %X, want %X", size, enc[:len(wantHead)], wantHead)
		}
		if !bytes.Equal(enc[len(wantHead):], content) {
			t.Errorf("size %d: content mismatch", size)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	v := ListValue(
		StringValue("cat"),
		ListValue(BytesValue(bytes.Repeat([]byte{0x01}, 60))),
		BytesValue(nil),
	)
	first := Encode(v)
	for i := 0; i < 3; i++ {
		if again := Encode(v); !bytes.Equal(first, again) {
			t.Fatalf("re-encoding produced different output: %X vs %X", first, again)
		}
	}
}

func TestAppendValue(t *testing.T) {
	b := []byte{0xDE, 0xAD}
	b = AppendValue(b, StringValue("dog"))
	b = AppendValue(b, ListValue())
	want := unhex("DEAD83646F67C0")
	if !bytes.Equal(b, want) {
		t.Errorf("got %X, want %X", b, want)
	}
}

func TestIntsize(t *testing.T) {
	tests := map[uint64]int{
		0: 1, 1: 1, 0xFF: 1,
		0x100: 2, 0xFFFF: 2,
		0x10000: 3, 0xFFFFFF: 3,
		0x1000000: 4,
		1 << 56: 8,
	}
	for i, want := range tests {
		if got := intsize(i); got != want {
			t.Errorf("intsize(%#x) = %d, want %d", i, got, want)
		}
	}
}
