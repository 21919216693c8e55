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
	"bytes"
	"encoding/json"
	"fmt"
)

// JsonKind discriminates the shape of a Json value.
type JsonKind uint8

const (
	JsonNull JsonKind = iota
	JsonBool
	JsonNumber
	JsonString
	JsonArray
	JsonObject
)

// Json is a tagged-union view of a JSON value. EncodeData and its helpers
// work over this instead of interface{} so that a numeric field (which in
// Go's encoding/json becomes a precision-losing float64) keeps its exact
// decimal text, and so a byte string field keeps its exact bytes instead
// of an ambiguous string/[]byte/[N]byte triple.
type Json struct {
	kind JsonKind
	b    bool
	num  string // decimal literal, verbatim
	s    string
	arr  []Json
	obj  map[string]Json
}

func JNull() Json           { return Json{kind: JsonNull} }
func JBool(b bool) Json     { return Json{kind: JsonBool, b: b} }
func JNum(literal string) Json { return Json{kind: JsonNumber, num: literal} }
func JStr(s string) Json    { return Json{kind: JsonString, s: s} }
func JArr(items ...Json) Json {
	return Json{kind: JsonArray, arr: items}
}
func JObj(fields map[string]Json) Json {
	return Json{kind: JsonObject, obj: fields}
}

func (j Json) Kind() JsonKind   { return j.kind }
func (j Json) IsNull() bool     { return j.kind == JsonNull }
func (j Json) Bool() bool       { return j.b }
func (j Json) NumberLiteral() string { return j.num }
func (j Json) String() string   { return j.s }
func (j Json) Array() []Json    { return j.arr }

// Field looks up a key in a JsonObject, returning JNull's zero value when
// the object is not actually an object or the key is absent.
func (j Json) Field(name string) Json {
	if j.kind != JsonObject || j.obj == nil {
		return JNull()
	}
	if v, ok := j.obj[name]; ok {
		return v
	}
	return JNull()
}

// Has reports whether a JsonObject has the given key at all, distinct
// from the key being present but null.
func (j Json) Has(name string) bool {
	if j.kind != JsonObject || j.obj == nil {
		return false
	}
	_, ok := j.obj[name]
	return ok
}

func (j Json) Len() int {
	switch j.kind {
	case JsonArray:
		return len(j.arr)
	case JsonObject:
		return len(j.obj)
	default:
		return 0
	}
}

// ParseJSON decodes raw JSON text into a Json tree. Numbers are kept as
// their original decimal text via json.Number rather than being widened
// to float64, preserving values too large for float64 to hold exactly
// (chain IDs and uint256 fields routinely exceed that range).
func ParseJSON(data []byte) (Json, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return JNull(), fmt.Errorf("eip712: parse JSON: %w", err)
	}
	return fromGo(raw), nil
}

func fromGo(v any) Json {
	switch t := v.(type) {
	case nil:
		return JNull()
	case bool:
		return JBool(t)
	case json.Number:
		return JNum(t.String())
	case string:
		return JStr(t)
	case []any:
		items := make([]Json, len(t))
		for i, e := range t {
			items[i] = fromGo(e)
		}
		return JArr(items...)
	case map[string]any:
		obj := make(map[string]Json, len(t))
		for k, e := range t {
			obj[k] = fromGo(e)
		}
		return JObj(obj)
	default:
		return JNull()
	}
}
