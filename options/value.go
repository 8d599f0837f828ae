// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"slices"

	"github.com/MKhiriev/go-staffomatic/models"
	"github.com/go-resty/resty/v2"
)

// Middleware is a hook run against every outgoing request before it is
// sent. Returning an error aborts the request.
type Middleware = resty.RequestMiddleware

// Kind tags the dynamic type held by a [Value].
type Kind uint8

const (
	KindUnset Kind = iota
	KindString
	KindBool
	KindInt
	KindConnection
	KindMiddleware
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindConnection:
		return "connection_options"
	case KindMiddleware:
		return "middleware"
	default:
		return "unset"
	}
}

// Value is the dynamically typed form of one option, used by per-key access.
// The zero Value is unset.
type Value struct {
	kind Kind
	str  string
	b    bool
	i    int
	conn models.ConnectionOptions
	mw   []Middleware
}

// Unset returns a Value that clears an option when passed to Set.
func Unset() Value { return Value{} }

// StringValue returns a Value of KindString.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue returns a Value of KindBool.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns a Value of KindInt.
func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

// ConnectionValue returns a Value of KindConnection holding a copy of c.
func ConnectionValue(c models.ConnectionOptions) Value {
	return Value{kind: KindConnection, conn: cloneConnection(c)}
}

// MiddlewareValue returns a Value of KindMiddleware holding a copy of mw.
func MiddlewareValue(mw ...Middleware) Value {
	return Value{kind: KindMiddleware, mw: slices.Clone(mw)}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether v holds a non-zero value of some kind.
func (v Value) IsSet() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindConnection:
		return !v.conn.IsZero()
	case KindMiddleware:
		return len(v.mw) > 0
	default:
		return false
	}
}

// AsString returns the string held by v, or "" for another kind.
func (v Value) AsString() string { return v.str }

// AsBool returns the bool held by v, or false for another kind.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the int held by v, or 0 for another kind.
func (v Value) AsInt() int { return v.i }

// AsConnection returns a copy of the connection options held by v.
func (v Value) AsConnection() models.ConnectionOptions { return cloneConnection(v.conn) }

// AsMiddleware returns a copy of the middleware held by v.
func (v Value) AsMiddleware() []Middleware { return slices.Clone(v.mw) }
