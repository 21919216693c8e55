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
	"strings"

	"github.com/lishuailibertine/web3go/internal/abi"
)

// NameValueType is a simple (name, value, type) triple meant for
// displaying typed data to a user without requiring EIP-712 knowledge.
type NameValueType struct {
	Name  string
	Value any // string, or []*NameValueType for a nested struct/array
	Typ   string
}

// Pprint renders nvt indented by depth levels, recursing into nested
// struct/array values.
func (nvt *NameValueType) Pprint(depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&b, "%s [%s]: ", nvt.Name, nvt.Typ)
	if nested, ok := nvt.Value.([]*NameValueType); ok {
		b.WriteByte('\n')
		for _, n := range nested {
			b.WriteString(n.Pprint(depth + 1))
		}
	} else if nvt.Value != nil {
		fmt.Fprintf(&b, "%q\n", nvt.Value)
	} else {
		b.WriteByte('\n')
	}
	return b.String()
}

// Format renders the domain and the message as two top-level
// NameValueType trees, for UIs that want to show a user what they're
// signing without decoding EIP-712 themselves.
func (t *TypedData) Format() ([]*NameValueType, error) {
	domain, err := t.formatData("EIP712Domain", t.Domain.Map())
	if err != nil {
		return nil, err
	}
	primary, err := t.formatData(t.PrimaryType, t.Message)
	if err != nil {
		return nil, err
	}
	return []*NameValueType{
		{Name: "EIP712Domain", Typ: "domain", Value: domain},
		{Name: t.PrimaryType, Typ: "primary type", Value: primary},
	}, nil
}

func (t *TypedData) formatData(primaryType string, data Json) ([]*NameValueType, error) {
	types := t.typesWithDomain()
	var out []*NameValueType
	for _, field := range types[primaryType] {
		val := data.Field(field.Name)
		item := &NameValueType{Name: field.Name, Typ: field.Type}

		switch {
		case field.isArray():
			base := field.baseType()
			if types[base] != nil && val.Kind() == JsonArray {
				var children []*NameValueType
				for i, elem := range val.Array() {
					sub, err := t.formatData(base, elem)
					if err != nil {
						return nil, err
					}
					children = append(children, &NameValueType{
						Name: fmt.Sprintf("%s[%d]", field.Name, i),
						Typ:  base,
						Value: sub,
					})
				}
				item.Value = children
			} else {
				s, err := formatPrimitiveValue(field.Type, val)
				if err != nil {
					return nil, err
				}
				item.Value = s
			}

		case types[field.Type] != nil:
			if val.Kind() == JsonObject {
				sub, err := t.formatData(field.Type, val)
				if err != nil {
					return nil, err
				}
				item.Value = sub
			} else {
				item.Value = "<nil>"
			}

		default:
			s, err := formatPrimitiveValue(field.Type, val)
			if err != nil {
				return nil, err
			}
			item.Value = s
		}
		out = append(out, item)
	}
	return out, nil
}

func formatPrimitiveValue(encType string, val Json) (string, error) {
	switch encType {
	case "address":
		if val.Kind() != JsonString {
			return "", fmt.Errorf("could not format value as address: %w", ErrTypeMismatch)
		}
		addr, err := abi.ParseAddress(val.String())
		if err != nil {
			return "", err
		}
		return addr.Hex(), nil
	case "bool":
		if val.Kind() != JsonBool {
			return "", fmt.Errorf("could not format value as bool: %w", ErrTypeMismatch)
		}
		return fmt.Sprintf("%t", val.Bool()), nil
	case "string":
		return val.String(), nil
	}
	if strings.HasPrefix(encType, "bytes") {
		b, err := jsonToBytes(val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%#x", b), nil
	}
	if strings.HasPrefix(encType, "uint") || strings.HasPrefix(encType, "int") {
		b, err := jsonToBigInt(val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d (%#x)", b, b), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedPrimitiveType, encType)
}
