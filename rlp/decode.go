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

// Decode parses buf as RLP and returns the value tree it represents.
//
// A zero-length buf decodes to the KindEmpty sentinel. A buffer holding
// exactly one RLP item decodes to that item directly. A buffer holding
// several concatenated items (as a list's payload does, once its header
// is stripped) decodes to a synthetic KindList node whose children are
// those items and whose Raw field is the full input buffer.
//
// Decode does not enforce canonical size encoding: a long-form header
// used where the short form would have fit is accepted, matching the
// leniency called for in DESIGN.md rather than go-ethereum's own
// ErrCanonSize-enforcing decoder.
func Decode(buf []byte) (*Value, error) {
	if len(buf) == 0 {
		return Empty(), nil
	}
	items, err := decodeItems(buf, 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &Value{Kind: KindList, List: items, Depth: 0, Raw: buf}, nil
}

// decodeItems parses buf as a sequence of zero or more concatenated RLP
// items and returns each one. It is used both for the outermost Decode
// call and, recursively, to turn a list's payload into that list's
// children.
func decodeItems(buf []byte, depth int) ([]*Value, error) {
	items := make([]*Value, 0, 4)
	offset := 0
	for offset < len(buf) {
		item, consumed, err := decodeOne(buf[offset:], depth)
		if err != nil {
			if de, ok := err.(*DecodingError); ok {
				de.Offset += offset
				return nil, de
			}
			return nil, &DecodingError{Offset: offset, Err: err}
		}
		items = append(items, item)
		offset += consumed
	}
	return items, nil
}

// decodeOne parses a single RLP item from the start of buf and reports
// how many bytes it consumed.
func decodeOne(buf []byte, depth int) (item *Value, consumed int, err error) {
	kind, off, length, err := decodeHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	total := off + length

	switch kind {
	case hByte:
		return &Value{Kind: KindBytes, Str: buf[0:1], Raw: buf[0:1], Depth: depth}, 1, nil

	case hShortString, hLongString:
		return &Value{
			Kind:  KindBytes,
			Str:   buf[off:total],
			Raw:   buf[0:total],
			Depth: depth,
		}, total, nil

	case hShortList, hLongList:
		children, err := decodeItems(buf[off:total], depth+1)
		if err != nil {
			if de, ok := err.(*DecodingError); ok {
				de.Offset += off
			}
			return nil, 0, err
		}
		return &Value{
			Kind:  KindList,
			List:  children,
			Raw:   buf[0:total],
			Depth: depth,
		}, total, nil

	default:
		return nil, 0, ErrUnsupportedKind
	}
}
