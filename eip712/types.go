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
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var referenceTypeRegexp = regexp.MustCompile(`^[A-Za-z](\w*)(\[\d*\])*$`)

// FieldDecl is one member of a struct type declaration: `type name`.
type FieldDecl struct {
	Name string
	Type string
}

// isArray reports whether the field's type ends in an array suffix,
// fixed- or dynamic-size.
func (f FieldDecl) isArray() bool {
	return strings.IndexByte(f.Type, '[') > 0
}

// baseType strips any trailing array suffixes, so "Person[2][]" becomes
// "Person".
func (f FieldDecl) baseType() string {
	return strings.Split(f.Type, "[")[0]
}

// Types is the full set of struct type declarations referenced by a
// TypedData document, keyed by type name.
type Types map[string][]FieldDecl

// TypedDataDomain is the EIP-712 domain separator's source data. All
// fields are optional on the wire; at least one must be set.
type TypedDataDomain struct {
	Name              string
	Version           string
	ChainId           *big.Int
	VerifyingContract string
	Salt              string
}

// Map renders the domain as a Json object containing only the fields
// that were actually set, mirroring go-ethereum's TypedDataDomain.Map.
func (d TypedDataDomain) Map() Json {
	fields := map[string]Json{}
	if d.ChainId != nil {
		fields["chainId"] = JNum(d.ChainId.String())
	}
	if d.Name != "" {
		fields["name"] = JStr(d.Name)
	}
	if d.Version != "" {
		fields["version"] = JStr(d.Version)
	}
	if d.VerifyingContract != "" {
		fields["verifyingContract"] = JStr(d.VerifyingContract)
	}
	if d.Salt != "" {
		fields["salt"] = JStr(d.Salt)
	}
	return JObj(fields)
}

func (d TypedDataDomain) validate() error {
	if d.ChainId == nil && d.Name == "" && d.Version == "" && d.VerifyingContract == "" && d.Salt == "" {
		return ErrEmptyDomain
	}
	return nil
}

// domainTypes returns the EIP712Domain type declaration implied by which
// domain fields are set, since the domain's own type isn't listed by
// callers under Types["EIP712Domain"] the way message types are.
func (d TypedDataDomain) domainTypes() []FieldDecl {
	var fields []FieldDecl
	if d.Name != "" {
		fields = append(fields, FieldDecl{Name: "name", Type: "string"})
	}
	if d.Version != "" {
		fields = append(fields, FieldDecl{Name: "version", Type: "string"})
	}
	if d.ChainId != nil {
		fields = append(fields, FieldDecl{Name: "chainId", Type: "uint256"})
	}
	if d.VerifyingContract != "" {
		fields = append(fields, FieldDecl{Name: "verifyingContract", Type: "address"})
	}
	if d.Salt != "" {
		fields = append(fields, FieldDecl{Name: "salt", Type: "bytes32"})
	}
	return fields
}

// TypedData encapsulates everything needed to compute an EIP-712 digest:
// the type declarations, which one is being signed, the domain, and the
// message itself.
type TypedData struct {
	Types       Types
	PrimaryType string
	Domain      TypedDataDomain
	Message     Json
}

// typesWithDomain returns t.Types with a synthetic "EIP712Domain" entry
// derived from t.Domain, so EncodeType/Dependencies can treat the domain
// uniformly with every other declared struct type. An "EIP712Domain"
// declaration already present in t.Types is replaced by the derived one.
func (t *TypedData) typesWithDomain() Types {
	merged := make(Types, len(t.Types)+1)
	for k, v := range t.Types {
		merged[k] = v
	}
	merged["EIP712Domain"] = t.Domain.domainTypes()
	return merged
}

// Validate checks that the type declarations are internally consistent:
// every reference type is declared, no type references itself directly,
// and the domain carries at least one field. This mirrors go-ethereum's
// apitypes.TypedData.validate, performed eagerly rather than only as a
// side effect of EncodeData.
func (t *TypedData) Validate() error {
	if err := t.typesWithDomain().validate(); err != nil {
		return err
	}
	return t.Domain.validate()
}

func (types Types) validate() error {
	for typeKey, decls := range types {
		if len(typeKey) == 0 {
			return ErrEmptyTypeKey
		}
		for i, f := range decls {
			if len(f.Type) == 0 {
				return fmt.Errorf("type %q field %d: %w", typeKey, i, ErrEmptyFieldType)
			}
			if len(f.Name) == 0 {
				return fmt.Errorf("type %q field %d: %w", typeKey, i, ErrEmptyFieldName)
			}
			if typeKey == f.Type {
				return fmt.Errorf("type %q: %w", f.Type, ErrTypeSelfReference)
			}
			if isPrimitiveType(f.Type) {
				continue
			}
			if _, ok := types[f.baseType()]; !ok {
				return fmt.Errorf("type %q: %w", f.Type, ErrUndefinedReferenceType)
			}
			if !referenceTypeRegexp.MatchString(f.Type) {
				return fmt.Errorf("type %q: %w", f.Type, ErrInvalidReferenceType)
			}
		}
	}
	return nil
}

var primitiveTypes = buildPrimitiveTypeSet()

func buildPrimitiveTypeSet() map[string]struct{} {
	set := map[string]struct{}{}
	for _, t := range []string{
		"address", "address[]", "bool", "bool[]", "string", "string[]",
		"bytes", "bytes[]", "int", "int[]", "uint", "uint[]",
	} {
		set[t] = struct{}{}
	}
	for n := 1; n <= 32; n++ {
		set[fmt.Sprintf("bytes%d", n)] = struct{}{}
		set[fmt.Sprintf("bytes%d[]", n)] = struct{}{}
	}
	for n := 8; n <= 256; n += 8 {
		set[fmt.Sprintf("int%d", n)] = struct{}{}
		set[fmt.Sprintf("int%d[]", n)] = struct{}{}
		set[fmt.Sprintf("uint%d", n)] = struct{}{}
		set[fmt.Sprintf("uint%d[]", n)] = struct{}{}
	}
	return set
}

// isPrimitiveType reports whether t names a primitive ABI type, with any
// array suffix normalized to "[]" first: a fixed-size array ("uint256[4]")
// shares a base primitive with its dynamic-size counterpart ("uint256[]")
// in the lookup table above.
func isPrimitiveType(t string) bool {
	base := strings.Split(t, "[")[0]
	probe := base
	if strings.IndexByte(t, '[') > 0 {
		probe = base + "[]"
	}
	_, ok := primitiveTypes[probe]
	return ok
}
