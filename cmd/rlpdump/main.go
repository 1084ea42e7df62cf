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

// rlpdump pretty-prints RLP data.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vmkit/rlpvm/rlp"
)

var (
	singleFlag = &cli.BoolFlag{
		Name:  "single",
		Usage: "print only the first value in the input, ignoring trailing data",
	}
	noASCIIFlag = &cli.BoolFlag{
		Name:  "noascii",
		Usage: "don't print ASCII strings, print hex instead",
	}
)

var app = &cli.App{
	Name:      "rlpdump",
	Usage:     "print the structure of an RLP-encoded value",
	ArgsUsage: "[hexdata]",
	Flags:     []cli.Flag{singleFlag, noASCIIFlag},
	Action:    dump,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(ctx *cli.Context) error {
	var input string
	if ctx.Args().Len() > 0 {
		input = ctx.Args().First()
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = string(data)
	}
	data, err := hexData(input)
	if err != nil {
		return err
	}

	var v rlp.Value
	if ctx.Bool(singleFlag.Name) {
		v, _, err = rlp.DecodeFirst(data)
	} else {
		v, err = rlp.Decode(data)
	}
	if err != nil {
		return err
	}
	fmt.Println(format(v, 0, ctx.Bool(noASCIIFlag.Name)))
	return nil
}

func hexData(input string) ([]byte, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "0x")
	return hex.DecodeString(input)
}

func format(v rlp.Value, depth int, noASCII bool) string {
	if !v.IsList() {
		content := v.Bytes()
		if !noASCII && isASCII(content) {
			return strconv.Quote(string(content))
		}
		return "0x" + hex.EncodeToString(content)
	}
	elems := v.Elems()
	if len(elems) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, elem := range elems {
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(format(elem, depth+1, noASCII))
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("]")
	return b.String()
}

func isASCII(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}
