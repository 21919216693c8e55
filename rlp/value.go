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

import "math/big"

// Kind discriminates the three shapes an RLP value can take.
type Kind uint8

const (
	// KindEmpty is the sentinel produced by decoding a zero-length buffer.
	// It is distinct from KindBytes holding a zero-length string: the
	// latter comes from an explicit 0x80 byte, the former from no bytes
	// at all.
	KindEmpty Kind = iota
	KindBytes
	KindList
)

// Value is the recursive value tree every RLP encode and decode in this
// package operates over, replacing go-ethereum's reflection-over-struct-tags
// model with an explicit tagged union (grounded on the Item{d []byte; l
// []Item} shape used for tree-shaped RLP elsewhere in the ecosystem; see
// DESIGN.md).
type Value struct {
	Kind Kind

	// Str holds the payload when Kind == KindBytes.
	Str []byte

	// List holds the children when Kind == KindList.
	List []*Value

	// Depth is the nesting level at which this node was produced by
	// Decode: 0 for items found directly in the buffer passed to the
	// outermost Decode call, incrementing once per list boundary crossed.
	Depth int

	// Raw holds the exact encoded bytes (header and payload) that
	// produced this node when it came from Decode. It is nil for
	// values built directly via the constructors below.
	Raw []byte
}

// Empty returns the KindEmpty sentinel value.
func Empty() *Value { return &Value{Kind: KindEmpty} }

// Bytes wraps a byte string as a Value.
func Bytes(b []byte) *Value { return &Value{Kind: KindBytes, Str: b} }

// String wraps the UTF-8 bytes of s as a Value.
func String(s string) *Value { return Bytes([]byte(s)) }

// List builds a KindList Value from the given children.
func List(items ...*Value) *Value { return &Value{Kind: KindList, List: items} }

// Uint64 encodes v as the minimal big-endian byte string RLP requires for
// non-negative integers (no leading zero byte, zero itself becomes the
// empty string).
func Uint64(v uint64) *Value { return Bytes(trimLeadingZeros(bigEndian(v))) }

// BigInt encodes a non-negative big.Int the same way. It panics if v is
// negative, since RLP has no representation for signed integers; callers
// that need to surface this as an error should check v.Sign() themselves.
func BigInt(v *big.Int) *Value {
	if v.Sign() < 0 {
		panic("rlp: BigInt of negative value")
	}
	if v.Sign() == 0 {
		return Bytes(nil)
	}
	return Bytes(v.Bytes())
}

// IsList reports whether v is a KindList node.
func (v *Value) IsList() bool { return v != nil && v.Kind == KindList }

// IsBytes reports whether v is a KindBytes node.
func (v *Value) IsBytes() bool { return v != nil && v.Kind == KindBytes }

// IsEmpty reports whether v is the KindEmpty sentinel.
func (v *Value) IsEmpty() bool { return v == nil || v.Kind == KindEmpty }

// Len returns the number of children for a list, or the byte length for a
// byte string. It returns 0 for the empty sentinel.
func (v *Value) Len() int {
	switch {
	case v == nil:
		return 0
	case v.Kind == KindList:
		return len(v.List)
	case v.Kind == KindBytes:
		return len(v.Str)
	default:
		return 0
	}
}

// At returns the i'th child of a list value, or nil if v is not a list or
// i is out of range.
func (v *Value) At(i int) *Value {
	if v == nil || v.Kind != KindList || i < 0 || i >= len(v.List) {
		return nil
	}
	return v.List[i]
}

// AsBigInt interprets a byte-string value as a non-negative big-endian
// integer. An empty string decodes to zero.
func (v *Value) AsBigInt() *big.Int {
	if v == nil || v.Kind != KindBytes {
		return new(big.Int)
	}
	return new(big.Int).SetBytes(v.Str)
}

// AsUint64 interprets a byte-string value as a big-endian integer,
// truncating to 64 bits if it is larger (callers that care should check
// len(v.Str) <= 8 themselves).
func (v *Value) AsUint64() uint64 {
	return v.AsBigInt().Uint64()
}

func bigEndian(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
