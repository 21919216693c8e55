// Copyright 2018 The go-ethereum Authors
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

// eip712sum reads an EIP-712 typed-data JSON document and prints its
// domain separator, message struct hash, canonical type string, and
// final signing digest. It never touches a private key: no signature is
// produced, recovered, or verified.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lishuailibertine/web3go/eip712"
	"github.com/lishuailibertine/web3go/internal/ethlog"
)

var log = ethlog.New(os.Stderr, ethlog.LevelInfo)

func main() {
	app := &cli.App{
		Name:  "eip712sum",
		Usage: "print the EIP-712 digest of a typed-data JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "path to a typed-data JSON document, or '-' for stdin"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// wireTypedData mirrors the on-the-wire JSON shape of an EIP-712 typed
// data document (types/domain/primaryType/message), decoded once with
// encoding/json and then lowered into eip712.TypedData.
type wireTypedData struct {
	Types       map[string][]struct{ Name, Type string } `json:"types"`
	PrimaryType string                                    `json:"primaryType"`
	Domain      struct {
		Name              string `json:"name"`
		Version           string `json:"version"`
		ChainId           string `json:"chainId"`
		VerifyingContract string `json:"verifyingContract"`
		Salt              string `json:"salt"`
	} `json:"domain"`
	Message json.RawMessage `json:"message"`
}

func run(c *cli.Context) error {
	src := c.String("file")
	var r io.Reader = os.Stdin
	if src != "" && src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var wire wireTypedData
	if err := json.Unmarshal(raw, &wire); err != nil {
		log.Error("invalid typed-data document", "err", err)
		return err
	}

	td := &eip712.TypedData{
		Types:       make(eip712.Types, len(wire.Types)),
		PrimaryType: wire.PrimaryType,
		Domain: eip712.TypedDataDomain{
			Name:              wire.Domain.Name,
			Version:           wire.Domain.Version,
			VerifyingContract: wire.Domain.VerifyingContract,
			Salt:              wire.Domain.Salt,
		},
	}
	if wire.Domain.ChainId != "" {
		v := new(big.Int)
		if _, ok := v.SetString(wire.Domain.ChainId, 0); ok {
			td.Domain.ChainId = v
		}
	}
	for name, fields := range wire.Types {
		decls := make([]eip712.FieldDecl, len(fields))
		for i, f := range fields {
			decls[i] = eip712.FieldDecl{Name: f.Name, Type: f.Type}
		}
		td.Types[name] = decls
	}
	msg, err := eip712.ParseJSON(wire.Message)
	if err != nil {
		return err
	}
	td.Message = msg

	if err := td.Validate(); err != nil {
		log.Error("typed data failed validation", "err", err)
		return err
	}

	fmt.Println("canonical type:", td.EncodeType(td.PrimaryType))

	domainSeparator, err := td.DomainSeparator()
	if err != nil {
		return err
	}
	fmt.Println("domain separator:", "0x"+hex.EncodeToString(domainSeparator))

	structHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return err
	}
	fmt.Println("struct hash:", "0x"+hex.EncodeToString(structHash))

	digest, err := td.Digest()
	if err != nil {
		return err
	}
	fmt.Println("digest:", "0x"+hex.EncodeToString(digest))
	return nil
}
