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
	"sort"
	"strings"

	"github.com/lishuailibertine/web3go/crypto"
)

// Dependencies returns primaryType followed by every struct type it
// transitively references, each name appearing once, in discovery order.
// Array suffixes are stripped before the membership check, and types with
// no declaration (primitive types) are skipped.
func (t *TypedData) Dependencies(primaryType string) []string {
	return t.typesWithDomain().dependencies(primaryType, nil)
}

func (types Types) dependencies(primaryType string, found []string) []string {
	primaryType = strings.Split(primaryType, "[")[0]
	if contains(found, primaryType) {
		return found
	}
	if types[primaryType] == nil {
		return found
	}
	found = append(found, primaryType)
	for _, field := range types[primaryType] {
		for _, dep := range types.dependencies(field.Type, found) {
			if !contains(found, dep) {
				found = append(found, dep)
			}
		}
	}
	return found
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// EncodeType renders the canonical type string for primaryType:
//
//	name ‖ "(" ‖ type₁ " " name₁ ‖ "," ‖ … ‖ ")"
//
// with primaryType's own declaration first, followed by its dependencies
// in lexicographic order, each cascaded the same way.
func (t *TypedData) EncodeType(primaryType string) string {
	types := t.typesWithDomain()
	deps := types.dependencies(primaryType, nil)
	if len(deps) > 0 {
		rest := append([]string{}, deps[1:]...)
		sort.Strings(rest)
		deps = append([]string{primaryType}, rest...)
	}

	var b strings.Builder
	for _, dep := range deps {
		b.WriteString(dep)
		b.WriteByte('(')
		fields := types[dep]
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Type)
			b.WriteByte(' ')
			b.WriteString(f.Name)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// TypeHash is keccak256 of EncodeType(primaryType).
func (t *TypedData) TypeHash(primaryType string) []byte {
	return crypto.Keccak256([]byte(t.EncodeType(primaryType)))
}
