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

import "errors"

var (
	ErrTypeSelfReference        = errors.New("eip712: type cannot reference itself")
	ErrUndefinedReferenceType   = errors.New("eip712: reference type is undefined")
	ErrInvalidReferenceType     = errors.New("eip712: unknown reference type syntax")
	ErrEmptyTypeKey             = errors.New("eip712: empty type key")
	ErrEmptyFieldType           = errors.New("eip712: empty field type")
	ErrEmptyFieldName           = errors.New("eip712: empty field name")
	ErrEmptyDomain              = errors.New("eip712: domain has no fields set")
	ErrUnknownPrimaryType       = errors.New("eip712: unknown primary type")
	ErrExtraData                = errors.New("eip712: message has more fields than its type declares")
	ErrTypeMismatch             = errors.New("eip712: value does not match declared type")
	ErrUnrecognizedPrimitiveType = errors.New("eip712: unrecognized primitive type")
	ErrNotAnArray               = errors.New("eip712: value is not a JSON array")
	ErrIntegerOutOfRange        = errors.New("eip712: integer value out of range for declared width")
)

// ProcessingError annotates a failure with the type and field it occurred
// while processing, mirroring the context go-ethereum's dataMismatchError
// packs into a plain fmt.Errorf string.
type ProcessingError struct {
	Type  string
	Field string
	Err   error
}

func (e *ProcessingError) Error() string {
	if e.Field == "" {
		return "eip712: " + e.Type + ": " + e.Err.Error()
	}
	return "eip712: " + e.Type + "." + e.Field + ": " + e.Err.Error()
}

func (e *ProcessingError) Unwrap() error { return e.Err }
