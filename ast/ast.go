// Copyright (C) 2024 Hako Hakoo. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a
// recursive-descent parser that constructs syntax trees from the tokens
// produced by the jsontree scanner.
package ast

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hakohakoo/jsontree"
)

// A Value is an arbitrary JSON value in a syntax tree.
type Value interface{ Span() jsontree.Span }

func newSpan(pos, end int) jsontree.Span { return jsontree.Span{Pos: pos, End: end} }

// An Object is an ordered collection of key-value members. Members appear in
// order of occurrence in the source, and duplicate keys are preserved.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o Object) Span() jsontree.Span { return newSpan(o.pos, o.end) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o.Members) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	pos, end int

	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// Span satisfies the Value interface.
func (m Member) Span() jsontree.Span { return newSpan(m.pos, m.end) }

// An Array is an ordered sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a Array) Span() jsontree.Span { return newSpan(a.pos, a.end) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a.Values) }

// A String is a string value. Its text is exactly as written in the source,
// with surrounding quotes removed and no escape sequences decoded.
type String struct {
	pos, end int

	text string
}

// NewString constructs a String with the given text.
func NewString(text string) String { return String{text: text} }

// Span satisfies the Value interface.
func (s String) Span() jsontree.Span { return newSpan(s.pos, s.end) }

// Value returns the text of s.
func (s String) Value() string { return s.text }

// A Number is a numeric value. The grammar does not distinguish integers
// from floats; every number is carried as a float64.
type Number struct {
	pos, end int

	value float64
}

// NewNumber constructs a Number with the given value.
func NewNumber(value float64) Number { return Number{value: value} }

// Span satisfies the Value interface.
func (n Number) Span() jsontree.Span { return newSpan(n.pos, n.end) }

// Float64 returns the value of n.
func (n Number) Float64() float64 { return n.value }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	pos, end int

	value bool
}

// NewBool constructs a Bool with the given value.
func NewBool(value bool) Bool { return Bool{value: value} }

// Span satisfies the Value interface.
func (b Bool) Span() jsontree.Span { return newSpan(b.pos, b.end) }

// Value returns the truth value of b.
func (b Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{ pos, end int }

// Span satisfies the Value interface.
func (z Null) Span() jsontree.Span { return newSpan(z.pos, z.end) }

// ToValue converts a plain Go value into an ast.Value. It supports nil,
// bool, string, the built-in integer and float types, []any, and
// map[string]any; a Value passes through unmodified. Map keys are emitted in
// sorted order so the result is deterministic. ToValue panics if v is of any
// other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool{value: t}
	case string:
		return String{text: t}
	case float64:
		return Number{value: t}
	case float32:
		return Number{value: float64(t)}
	case int:
		return Number{value: float64(t)}
	case int8:
		return Number{value: float64(t)}
	case int16:
		return Number{value: float64(t)}
	case int32:
		return Number{value: float64(t)}
	case int64:
		return Number{value: float64(t)}
	case uint:
		return Number{value: float64(t)}
	case uint8:
		return Number{value: float64(t)}
	case uint16:
		return Number{value: float64(t)}
	case uint32:
		return Number{value: float64(t)}
	case uint64:
		return Number{value: float64(t)}
	case []any:
		arr := Array{Values: make([]Value, len(t))}
		for i, elt := range t {
			arr.Values[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		obj := Object{Members: make([]*Member, 0, len(t))}
		for _, key := range slices.Sorted(maps.Keys(t)) {
			obj.Members = append(obj.Members, Field(key, ToValue(t[key])))
		}
		return obj
	default:
		panic(fmt.Sprintf("cannot convert %T to ast.Value", v))
	}
}
