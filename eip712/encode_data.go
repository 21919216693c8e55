// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package eip712

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/lishuailibertine/web3go/crypto"
	"github.com/lishuailibertine/web3go/internal/abi"
	"github.com/lishuailibertine/web3go/internal/hexutil"
)

// EncodeData generates `typeHash ‖ enc(value₁) ‖ … ‖ enc(valueₙ)`, with
// each present field contributing one 32-byte word (structs and arrays,
// fixed- or dynamic-size, contribute the keccak256 hash of their own encoding instead of
// the encoding itself, per EIP-712).
func (t *TypedData) EncodeData(primaryType string, data Json) ([]byte, error) {
	types := t.typesWithDomain()
	decls, ok := types[primaryType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrimaryType, primaryType)
	}
	if data.Kind() != JsonObject {
		return nil, &ProcessingError{Type: primaryType, Err: ErrTypeMismatch}
	}
	if len(decls) < data.Len() {
		return nil, fmt.Errorf("%w (%d declared, %d provided)", ErrExtraData, len(decls), data.Len())
	}

	var buf bytes.Buffer
	buf.Write(t.TypeHash(primaryType))

	for _, field := range decls {
		val := data.Field(field.Name)
		if val.Kind() == JsonNull {
			// A field declared in the type but absent (or explicitly
			// null) in the value contributes nothing to encodeData,
			// matching the reference wallet tooling's behavior.
			continue
		}
		switch {
		case field.isArray():
			enc, err := t.encodeArrayValue(val, field.Type)
			if err != nil {
				return nil, &ProcessingError{Type: primaryType, Field: field.Name, Err: err}
			}
			buf.Write(enc)

		case types[field.Type] != nil:
			if val.Kind() != JsonObject {
				return nil, &ProcessingError{Type: primaryType, Field: field.Name, Err: ErrTypeMismatch}
			}
			encoded, err := t.EncodeData(field.Type, val)
			if err != nil {
				return nil, err
			}
			buf.Write(crypto.Keccak256(encoded))

		default:
			word, err := t.encodePrimitiveValue(field.Type, val)
			if err != nil {
				return nil, &ProcessingError{Type: primaryType, Field: field.Name, Err: err}
			}
			buf.Write(word)
		}
	}
	return buf.Bytes(), nil
}

// encodeArrayValue handles both fixed- and dynamic-size array fields,
// recursing for arrays-of-arrays. The result is always the keccak256 hash
// of the concatenated per-item encodings, per EIP-712's array rule.
func (t *TypedData) encodeArrayValue(val Json, declaredType string) ([]byte, error) {
	if val.Kind() != JsonArray {
		return nil, ErrNotAnArray
	}
	base := strings.Split(declaredType, "[")[0]
	types := t.typesWithDomain()

	var buf bytes.Buffer
	for _, item := range val.Array() {
		switch {
		case item.Kind() == JsonArray:
			enc, err := t.encodeArrayValue(item, base)
			if err != nil {
				return nil, err
			}
			buf.Write(enc)

		case types[base] != nil:
			if item.Kind() != JsonObject {
				return nil, ErrTypeMismatch
			}
			encoded, err := t.EncodeData(base, item)
			if err != nil {
				return nil, err
			}
			buf.Write(crypto.Keccak256(encoded))

		default:
			word, err := t.encodePrimitiveValue(base, item)
			if err != nil {
				return nil, err
			}
			buf.Write(word)
		}
	}
	return crypto.Keccak256(buf.Bytes()), nil
}

// encodePrimitiveValue dispatches a single scalar field to its 32-byte
// ABI-style word, via internal/abi for the fixed-width types and direct
// keccak256 for the two dynamic-size primitives (string, bytes).
func (t *TypedData) encodePrimitiveValue(encType string, val Json) ([]byte, error) {
	switch encType {
	case "address":
		if val.Kind() != JsonString {
			return nil, ErrTypeMismatch
		}
		addr, err := abi.ParseAddress(val.String())
		if err != nil {
			return nil, err
		}
		w := abi.EncodeAddress(addr)
		return w[:], nil

	case "bool":
		if val.Kind() != JsonBool {
			return nil, ErrTypeMismatch
		}
		w := abi.EncodeBool(val.Bool())
		return w[:], nil

	case "string":
		if val.Kind() != JsonString {
			return nil, ErrTypeMismatch
		}
		return crypto.Keccak256([]byte(val.String())), nil

	case "bytes":
		b, err := jsonToBytes(val)
		if err != nil {
			return nil, err
		}
		return crypto.Keccak256(b), nil
	}

	if strings.HasPrefix(encType, "bytes") {
		n, err := strconv.Atoi(strings.TrimPrefix(encType, "bytes"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnrecognizedPrimitiveType, encType)
		}
		b, err := jsonToBytes(val)
		if err != nil {
			return nil, err
		}
		w, err := abi.EncodeBytesFixed(n, b)
		if err != nil {
			return nil, err
		}
		return w[:], nil
	}

	if strings.HasPrefix(encType, "int") || strings.HasPrefix(encType, "uint") {
		signed := strings.HasPrefix(encType, "int")
		bits := 256
		rest := strings.TrimPrefix(strings.TrimPrefix(encType, "u"), "int")
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnrecognizedPrimitiveType, encType)
			}
			bits = n
		}
		v, err := jsonToBigInt(val)
		if err != nil {
			return nil, err
		}
		var w abi.Word
		if signed {
			w, err = abi.EncodeInt(bits, v)
		} else {
			w, err = abi.EncodeUint(bits, v)
		}
		if err != nil {
			return nil, err
		}
		return w[:], nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedPrimitiveType, encType)
}

func jsonToBytes(val Json) ([]byte, error) {
	if val.Kind() != JsonString {
		return nil, ErrTypeMismatch
	}
	return hexutil.DecodeFlexible(val.String())
}

func jsonToBigInt(val Json) (*big.Int, error) {
	switch val.Kind() {
	case JsonNumber:
		b := new(big.Int)
		if _, ok := b.SetString(val.NumberLiteral(), 10); !ok {
			return nil, ErrTypeMismatch
		}
		return b, nil
	case JsonString:
		s := val.String()
		b := new(big.Int)
		var ok bool
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			_, ok = b.SetString(s[2:], 16)
		} else {
			_, ok = b.SetString(s, 10)
		}
		if !ok {
			return nil, ErrTypeMismatch
		}
		return b, nil
	default:
		return nil, ErrTypeMismatch
	}
}
