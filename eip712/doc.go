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

// Package eip712 implements EIP-712 typed structured data hashing:
// canonical type-string construction from a JSON type declaration,
// struct hashing, and the final signing digest.
//
//	digest = keccak256(0x19 ‖ 0x01 ‖ hashStruct(domain) ‖ hashStruct(primaryType, message))
//	hashStruct(t, v) = keccak256(typeHash(t) ‖ encodeData(t, v))
//	typeHash(t) = keccak256(encodeType(t))
//
// This package only computes digests; it never touches a private key.
// Signature generation, recovery, and verification are out of scope.
//
// Unlike go-ethereum's apitypes package, which carries message data as
// map[string]interface{} straight out of encoding/json, this package
// works over an explicit Json tagged union (see json.go) so that large
// integers and byte strings survive the JSON boundary without the
// float64-precision and type-assertion hazards map[string]interface{}
// invites.
package eip712
