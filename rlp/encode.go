// Copyright 2014 The go-ethereum Authors
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

package rlp

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/lishuailibertine/web3go/internal/hexutil"
)

// Encode renders a dynamically-typed Go value as canonical RLP. It always
// recomputes the encoding from structure rather than trusting any Raw
// bytes attached to a *Value, so the result is canonical even when fed a
// Value tree produced by Decode from a non-canonical input.
//
// Accepted inputs: []byte, string (see the hex/UTF-8 disambiguation note
// below), the built-in integer kinds, *big.Int, *uint256.Int, *Value,
// and []any / []*Value for lists.
func Encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return encodeBytesPayload(nil)

	case []byte:
		return encodeBytesPayload(v)

	case string:
		return encodeBytesPayload(stringPayload(v))

	case *Value:
		return encodeValueTree(v)

	case int:
		return encodeUintPayload(big.NewInt(int64(v)))
	case int8:
		return encodeUintPayload(big.NewInt(int64(v)))
	case int16:
		return encodeUintPayload(big.NewInt(int64(v)))
	case int32:
		return encodeUintPayload(big.NewInt(int64(v)))
	case int64:
		return encodeUintPayload(big.NewInt(v))
	case uint:
		return encodeUintPayload(new(big.Int).SetUint64(uint64(v)))
	case uint8:
		return encodeUintPayload(new(big.Int).SetUint64(uint64(v)))
	case uint16:
		return encodeUintPayload(new(big.Int).SetUint64(uint64(v)))
	case uint32:
		return encodeUintPayload(new(big.Int).SetUint64(uint64(v)))
	case uint64:
		return encodeUintPayload(new(big.Int).SetUint64(v))
	case *big.Int:
		return encodeUintPayload(v)
	case *uint256.Int:
		return encodeUintPayload(v.ToBig())

	case []any:
		items := make([]*Value, len(v))
		for i, e := range v {
			item, err := asValue(e)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return encodeValueTree(List(items...))

	case []*Value:
		return encodeValueTree(List(v...))

	default:
		return nil, &EncodingError{Value: value, Err: ErrUnsupportedKind}
	}
}

// asValue lazily wraps a raw element passed inside []any so nested lists
// and scalars can be mixed without the caller pre-building a Value tree.
// An element that cannot be encoded makes it return Encode's error.
func asValue(e any) (*Value, error) {
	if vv, ok := e.(*Value); ok {
		return vv, nil
	}
	b, err := Encode(e)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

// stringPayload applies the hex/UTF-8 disambiguation rule: a string is
// interpreted as hex first (optionally 0x-prefixed, even length, valid hex
// digits); if it doesn't parse that way, its raw UTF-8 bytes are used.
func stringPayload(s string) []byte {
	if b, err := hexutil.DecodeFlexible(s); err == nil {
		return b
	}
	return []byte(s)
}

func encodeBytesPayload(b []byte) ([]byte, error) {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}, nil
	}
	return wrap(0x80, b)
}

func encodeUintPayload(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, &EncodingError{Value: v, Err: ErrNegativeInt}
	}
	if v.Sign() == 0 {
		return encodeBytesPayload(nil)
	}
	return encodeBytesPayload(v.Bytes())
}

func encodeValueTree(v *Value) ([]byte, error) {
	if v == nil || v.Kind == KindEmpty {
		return encodeBytesPayload(nil)
	}
	if v.Kind == KindBytes {
		return encodeBytesPayload(v.Str)
	}
	var payload []byte
	for _, child := range v.List {
		cb, err := encodeValueTree(child)
		if err != nil {
			return nil, err
		}
		payload = append(payload, cb...)
	}
	return wrap(0xC0, payload)
}

// wrap prepends the length header for base 0x80 (strings) or 0xC0 (lists)
// to payload.
func wrap(base byte, payload []byte) ([]byte, error) {
	n := len(payload)
	if n < shortLimit {
		out := make([]byte, 1+n)
		out[0] = base + byte(n)
		copy(out[1:], payload)
		return out, nil
	}
	l := new(uint256.Int).SetUint64(uint64(n))
	header, err := encodeLength(base, l)
	if err != nil {
		return nil, err
	}
	return append(header, payload...), nil
}
