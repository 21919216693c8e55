// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// rlpdump decodes and pretty-prints RLP-encoded data, or encodes a small
// textual description of a value tree back into RLP.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lishuailibertine/web3go/internal/ethlog"
	"github.com/lishuailibertine/web3go/rlp"
)

var log = ethlog.New(os.Stderr, ethlog.LevelInfo)

func main() {
	app := &cli.App{
		Name:  "rlpdump",
		Usage: "decode or encode RLP data",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "encode", Usage: "encode a hex string, or a JSON array-of-arrays/strings tree, instead of decoding"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: rlpdump [--encode] <hex>")
	}
	input := c.Args().Get(0)

	if c.Bool("encode") {
		val, err := parseEncodeInput(input)
		if err != nil {
			log.Error("invalid --encode input", "err", err)
			return err
		}
		enc, err := rlp.EncodeToHex(val)
		if err != nil {
			log.Error("encode failed", "err", err)
			return err
		}
		fmt.Println(enc)
		return nil
	}

	v, err := rlp.DecodeHex(input)
	if err != nil {
		log.Error("decode failed", "err", err)
		return err
	}
	printTree(v, 0)
	return nil
}

// parseEncodeInput turns the --encode argument into an *rlp.Value tree. A
// bare hex string (with or without "0x") is a single byte string; input
// starting with '[' is parsed as JSON, a tree of nested arrays whose
// leaves are hex strings, per §2.4.
func parseEncodeInput(input string) (*rlp.Value, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tree any
		if err := json.Unmarshal([]byte(trimmed), &tree); err != nil {
			return nil, fmt.Errorf("invalid JSON tree: %w", err)
		}
		return jsonToValue(tree)
	}
	b, err := hex.DecodeString(strings.TrimPrefix(trimmed, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return rlp.Bytes(b), nil
}

func jsonToValue(node any) (*rlp.Value, error) {
	switch n := node.(type) {
	case string:
		b, err := hex.DecodeString(strings.TrimPrefix(n, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex leaf %q: %w", n, err)
		}
		return rlp.Bytes(b), nil
	case []any:
		items := make([]*rlp.Value, len(n))
		for i, child := range n {
			v, err := jsonToValue(child)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return rlp.List(items...), nil
	default:
		return nil, fmt.Errorf("unsupported JSON node %T, expected string or array", node)
	}
}

func printTree(v *rlp.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case v.IsEmpty():
		fmt.Printf("%s<empty>\n", indent)
	case v.IsBytes():
		fmt.Printf("%s%#x (%d bytes)\n", indent, v.Str, len(v.Str))
	case v.IsList():
		fmt.Printf("%s[ (%d items, raw=%#x)\n", indent, v.Len(), v.Raw)
		for i := 0; i < v.Len(); i++ {
			printTree(v.At(i), depth+1)
		}
		fmt.Printf("%s]\n", indent)
	}
}
