// Copyright 2024 The rlpvm Authors
// This file is part of rlpvm.
//
// rlpvm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rlpvm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rlpvm. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"testing"

	"github.com/vmkit/rlpvm/rlp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input   string
		noASCII bool
		want    string
	}{
		{input: "80", want: "0x"},
		{input: "00", want: "0x00"},
		{input: "83646F67", want: `"dog"`},
		{input: "83646F67", noASCII: true, want: "0x646f67"},
		{input: "C0", want: "[]"},
		{
			input: "C88363617483646F67",
			want:  "[\n  \"cat\",\n  \"dog\",\n]",
		},
		{
			input: "C3C28180",
			want:  "[\n  [\n    0x80,\n  ],\n]",
		},
	}
	for i, test := range tests {
		data, err := hexData(test.input)
		if err != nil {
			t.Fatalf("test %d: bad fixture: %v", i, err)
		}
		v, err := rlp.Decode(data)
		if err != nil {
			t.Fatalf("test %d: decode: %v", i, err)
		}
		if got := format(v, 0, test.noASCII); got != test.want {
			t.Errorf("test %d: format mismatch:\ngot  %q\nwant %q", i, got, test.want)
		}
	}
}

func TestHexData(t *testing.T) {
	for _, input := range []string{"c0", "0xc0", " 0xc0\n"} {
		data, err := hexData(input)
		if err != nil || len(data) != 1 || data[0] != 0xC0 {
			t.Errorf("hexData(%q) = %X, %v", input, data, err)
		}
	}
	if _, err := hexData("0xzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
