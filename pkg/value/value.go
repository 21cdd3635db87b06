// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package value defines the closed set of primitive types a generated command
// can carry, the tagged values of those types, and the conversions between raw
// command-line tokens and typed values.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type is the closed union of supported parameter types.
type Type int

const (
	// Invalid is the zero Type; it never describes a compiled parameter.
	Invalid Type = iota
	Int
	Float
	String
	Bool
)

// String returns the name used in help text.
func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType maps a type name (as written in manifests) to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer":
		return Int, nil
	case "float", "number":
		return Float, nil
	case "string", "str":
		return String, nil
	case "bool", "boolean":
		return Bool, nil
	default:
		return Invalid, fmt.Errorf("unknown type %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PositionalTypes lists the types a positional parameter may carry.
func PositionalTypes() []Type {
	return []Type{Int, Float, String}
}

// OptionTypes lists the types an option parameter may carry.
func OptionTypes() []Type {
	return []Type{Int, Float, String, Bool}
}

// Value is a tagged primitive value. The zero Value has type Invalid.
type Value struct {
	typ Type
	i   int64
	f   float64
	s   string
	b   bool
}

// IntOf returns an Int value.
func IntOf(v int64) Value { return Value{typ: Int, i: v} }

// FloatOf returns a Float value.
func FloatOf(v float64) Value { return Value{typ: Float, f: v} }

// StringOf returns a String value.
func StringOf(v string) Value { return Value{typ: String, s: v} }

// BoolOf returns a Bool value.
func BoolOf(v bool) Value { return Value{typ: Bool, b: v} }

// Type returns the tag of v.
func (v Value) Type() Type { return v.typ }

// Int returns the integer payload; zero unless v is an Int.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; zero unless v is a Float.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload; empty unless v is a String.
func (v Value) Str() string { return v.s }

// Bool returns the boolean payload; false unless v is a Bool.
func (v Value) Bool() bool { return v.b }

// Any returns the payload as an untyped Go value, or nil for Invalid.
func (v Value) Any() any {
	switch v.typ {
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	case Bool:
		return v.b
	default:
		return nil
	}
}

// String formats the payload the way help text shows defaults.
func (v Value) String() string {
	switch v.typ {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Infer picks the type of a parameter: the declared type if any, else the
// default's type, else String.
func Infer(declared Type, def *Value) Type {
	if declared != Invalid {
		return declared
	}
	if def != nil {
		return def.Type()
	}
	return String
}

// Parse coerces a raw token into a value of type t.
func Parse(t Type, raw string) (Value, error) {
	switch t {
	case Int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntOf(n), nil
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, err
		}
		return FloatOf(f), nil
	case String:
		return StringOf(raw), nil
	case Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, err
		}
		return BoolOf(b), nil
	default:
		return Value{}, fmt.Errorf("cannot parse into %s", t)
	}
}

// FromAny converts a decoded manifest scalar into a Value.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case int:
		return IntOf(int64(x)), nil
	case int64:
		return IntOf(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer default %d overflows int64", x)
		}
		return IntOf(int64(x)), nil
	case float64:
		return FloatOf(x), nil
	case string:
		return StringOf(x), nil
	case bool:
		return BoolOf(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported default %v (%T)", v, v)
	}
}
