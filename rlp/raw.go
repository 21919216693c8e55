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

import "github.com/holiman/uint256"

// headerKind classifies a decoded header before its payload is sliced out.
type headerKind uint8

const (
	hByte headerKind = iota
	hShortString
	hLongString
	hShortList
	hLongList
)

const shortLimit = 56 // SHORT_LIMIT: the boundary between single-byte and length-of-length headers.

// toUint256 interprets b as a big-endian non-negative integer. It is used
// for decoding the length field that follows a long-form header. An empty
// slice is rejected: go-ethereum's readSize
// treats a zero-byte length field as malformed, and so do we.
func toUint256(b []byte) (*uint256.Int, error) {
	if len(b) == 0 {
		return nil, ErrUnexpectedEOF
	}
	if len(b) > 32 {
		return nil, ErrLengthOverflow
	}
	var u uint256.Int
	u.SetBytes(b)
	return &u, nil
}

// encodeLength renders L as the length-of-length suffix used by the long
// forms of both byte-string and list headers, returning the header byte
// (base+0x37+k) followed by L's minimal big-endian bytes.
func encodeLength(base byte, l *uint256.Int) ([]byte, error) {
	if l.BitLen() > 256 {
		return nil, ErrLengthOverflow
	}
	lb := l.Bytes() // minimal big-endian form, no leading zeros
	k := len(lb)
	if k == 0 {
		k = 1
		lb = []byte{0}
	}
	if k > 32 {
		return nil, ErrLengthOverflow
	}
	out := make([]byte, 1+k)
	out[0] = base + 0x37 + byte(k)
	copy(out[1:], lb)
	return out, nil
}

// decodeHeader inspects the first byte(s) of buf and returns the header
// kind, the offset at which the payload begins, and the payload's length.
// It never rejects non-canonical forms (a long-form header that could
// have been written in short form): see DESIGN.md.
func decodeHeader(buf []byte) (kind headerKind, offset, length int, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, ErrUnexpectedEOF
	}
	p := buf[0]
	switch {
	case p < 0x80:
		return hByte, 0, 1, nil

	case p <= 0xB7:
		l := int(p - 0x80)
		if len(buf) < 1+l {
			return 0, 0, 0, ErrElemTooLarge
		}
		return hShortString, 1, l, nil

	case p <= 0xBF:
		k := int(p - 0xB7)
		if len(buf) < 1+k {
			return 0, 0, 0, ErrUnexpectedEOF
		}
		lu, err := toUint256(buf[1 : 1+k])
		if err != nil {
			return 0, 0, 0, err
		}
		if !lu.IsUint64() || lu.Uint64() > uint64(^uint(0)>>1) {
			return 0, 0, 0, ErrLengthOverflow
		}
		l := int(lu.Uint64())
		if len(buf) < 1+k+l {
			return 0, 0, 0, ErrElemTooLarge
		}
		return hLongString, 1 + k, l, nil

	case p <= 0xF7:
		l := int(p - 0xC0)
		if len(buf) < 1+l {
			return 0, 0, 0, ErrElemTooLarge
		}
		return hShortList, 1, l, nil

	default: // p <= 0xFF
		k := int(p - 0xF7)
		if len(buf) < 1+k {
			return 0, 0, 0, ErrUnexpectedEOF
		}
		lu, err := toUint256(buf[1 : 1+k])
		if err != nil {
			return 0, 0, 0, err
		}
		if !lu.IsUint64() || lu.Uint64() > uint64(^uint(0)>>1) {
			return 0, 0, 0, ErrLengthOverflow
		}
		l := int(lu.Uint64())
		if len(buf) < 1+k+l {
			return 0, 0, 0, ErrElemTooLarge
		}
		return hLongList, 1 + k, l, nil
	}
}
