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

import "github.com/lishuailibertine/web3go/crypto"

// HashStruct is keccak256(typeHash(primaryType) ‖ encodeData(primaryType, data)).
func (t *TypedData) HashStruct(primaryType string, data Json) ([]byte, error) {
	encoded, err := t.EncodeData(primaryType, data)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(encoded), nil
}

// DomainSeparator is HashStruct("EIP712Domain", domain-as-Json).
func (t *TypedData) DomainSeparator() ([]byte, error) {
	return t.HashStruct("EIP712Domain", t.Domain.Map())
}

// Digest computes the final EIP-712 signing hash:
//
//	keccak256(0x19 ‖ 0x01 ‖ domainSeparator ‖ hashStruct(primaryType, message))
func (t *TypedData) Digest() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	domainHash, err := t.DomainSeparator()
	if err != nil {
		return nil, err
	}
	msgHash, err := t.HashStruct(t.PrimaryType, t.Message)
	if err != nil {
		return nil, err
	}
	preimage := make([]byte, 0, 2+len(domainHash)+len(msgHash))
	preimage = append(preimage, 0x19, 0x01)
	preimage = append(preimage, domainHash...)
	preimage = append(preimage, msgHash...)
	return crypto.Keccak256(preimage), nil
}
