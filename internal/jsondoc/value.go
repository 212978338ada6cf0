// Package jsondoc models parsed JSON documents as an order-preserving tagged
// value and converts them to and from text.
package jsondoc

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindObject:  "object",
	KindArray:   "array",
}

// String returns the type tag used for styling ("null", "boolean", ...).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsContainer reports whether values of this kind hold children.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

// Member is a single key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value *Value
}

// Value is an immutable JSON value. The zero value is JSON null.
type Value struct {
	kind     Kind
	boolean  bool
	number   float64
	text     string
	members  []Member
	elements []*Value
}

// Null returns the JSON null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) *Value { return &Value{kind: KindBoolean, boolean: b} }

// Number wraps a number.
func Number(f float64) *Value { return &Value{kind: KindNumber, number: f} }

// String wraps a string.
func String(s string) *Value { return &Value{kind: KindString, text: s} }

// Object builds an object from members. A repeated key keeps the position of
// its first occurrence and the value of its last.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.members = setMember(v.members, m.Key, m.Value)
	}
	return v
}

// Array builds an array from elements.
func Array(elements ...*Value) *Value {
	dup := make([]*Value, len(elements))
	copy(dup, elements)
	return &Value{kind: KindArray, elements: dup}
}

func setMember(members []Member, key string, value *Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = value
			return members
		}
	}
	return append(members, Member{Key: key, Value: value})
}

// Classify returns the kind of v. A nil value classifies as null.
func Classify(v *Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Kind is shorthand for Classify(v).
func (v *Value) Kind() Kind { return Classify(v) }

// Bool returns the boolean payload.
func (v *Value) Bool() bool { return v != nil && v.boolean }

// Float64 returns the numeric payload.
func (v *Value) Float64() float64 {
	if v == nil {
		return 0
	}
	return v.number
}

// Str returns the string payload without any quoting.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Len reports the immediate child count of a container, or 0 for primitives.
func (v *Value) Len() int {
	switch Classify(v) {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.elements)
	default:
		return 0
	}
}

// Members returns a copy of the object members in insertion order.
func (v *Value) Members() []Member {
	if Classify(v) != KindObject || len(v.members) == 0 {
		return nil
	}
	dup := make([]Member, len(v.members))
	copy(dup, v.members)
	return dup
}

// Elements returns a copy of the array elements.
func (v *Value) Elements() []*Value {
	if Classify(v) != KindArray || len(v.elements) == 0 {
		return nil
	}
	dup := make([]*Value, len(v.elements))
	copy(dup, v.elements)
	return dup
}

// Get looks up an object member by key.
func (v *Value) Get(key string) (*Value, bool) {
	if Classify(v) != KindObject {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Index returns the array element at i.
func (v *Value) Index(i int) (*Value, bool) {
	if Classify(v) != KindArray || i < 0 || i >= len(v.elements) {
		return nil, false
	}
	return v.elements[i], true
}

// Canonical returns the primitive's canonical string form: "null", "true",
// "false", or the ECMAScript rendering of a number. Strings are returned
// unquoted; containers return an empty string.
func (v *Value) Canonical() string {
	switch Classify(v) {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindNumber:
		return formatNumber(v.number)
	case KindString:
		return v.text
	default:
		return ""
	}
}

// Equal reports structural equality: same kinds, same primitive payloads,
// same object keys in the same order and equal array elements.
func (v *Value) Equal(other *Value) bool {
	if Classify(v) != Classify(other) {
		return false
	}
	switch Classify(v) {
	case KindNull:
		return true
	case KindBoolean:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number == other.number || (math.IsNaN(v.number) && math.IsNaN(other.number))
	case KindString:
		return v.text == other.text
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i, m := range v.members {
			o := other.members[i]
			if m.Key != o.Key || !m.Value.Equal(o.Value) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.elements) != len(other.elements) {
			return false
		}
		for i, e := range v.elements {
			if !e.Equal(other.elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// formatNumber follows ECMAScript Number::toString, which encoding/json
// already implements for finite values.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	}
	b, err := json.Marshal(f)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.TrimSpace(string(b))
}
