package logging

import (
	"math"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindString
	KindWideString
)

// Value is a scalar or string that can be logged as part of a log statement.
//
// Getters for any kind other than the active one return a zero value, never panic.
type Value struct {
	kind Kind
	num  uint64
	str  string
	wide []uint16
}

// Kind returns the active kind.
func (v Value) Kind() Kind { return v.kind }

// IntValue returns the signed number, or 0 if the value is not KindInt.
func (v Value) IntValue() int64 {
	if v.kind != KindInt {
		return 0
	}
	return int64(v.num)
}

// UintValue returns the unsigned number, or 0 if the value is not KindUint.
func (v Value) UintValue() uint64 {
	if v.kind != KindUint {
		return 0
	}
	return v.num
}

// FloatValue returns the floating-point number, or 0 if the value is not KindFloat.
func (v Value) FloatValue() float64 {
	if v.kind != KindFloat {
		return 0
	}
	return math.Float64frombits(v.num)
}

// BoolValue returns the boolean, or false if the value is not KindBool.
func (v Value) BoolValue() bool {
	return v.kind == KindBool && v.num != 0
}

// StringValue returns the string, or "" if the value is not KindString.
func (v Value) StringValue() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// WideStringValue returns the UTF-16 code units, or nil if the value is not KindWideString.
func (v Value) WideStringValue() []uint16 {
	if v.kind != KindWideString {
		return nil
	}
	return v.wide
}

// NullValue returns a Value of KindNull.
func NullValue() Value { return Value{} }

// IntValueOf returns a Value holding a signed number.
func IntValueOf(value int64) Value { return Value{kind: KindInt, num: uint64(value)} }

// UintValueOf returns a Value holding an unsigned number.
func UintValueOf(value uint64) Value { return Value{kind: KindUint, num: value} }

// FloatValueOf returns a Value holding a floating-point number.
func FloatValueOf(value float64) Value { return Value{kind: KindFloat, num: math.Float64bits(value)} }

// BoolValueOf returns a Value holding a boolean.
func BoolValueOf(value bool) Value {
	var num uint64
	if value {
		num = 1
	}
	return Value{kind: KindBool, num: num}
}

// StringValueOf returns a Value holding a string.
func StringValueOf(value string) Value { return Value{kind: KindString, str: value} }

// WideStringValueOf returns a Value holding UTF-16 code units.
func WideStringValueOf(value []uint16) Value { return Value{kind: KindWideString, wide: value} }

// Attr is a key-value pair that can be part of a log message.
type Attr struct {
	Name  string
	Value Value
}

// String returns a string attribute.
func String(name string, value string) Attr { return Attr{name, StringValueOf(value)} }

// Wide returns a UTF-16 string attribute.
func Wide(name string, value []uint16) Attr { return Attr{name, WideStringValueOf(value)} }

// Int returns a signed number attribute.
func Int(name string, value int) Attr { return Attr{name, IntValueOf(int64(value))} }

// Int64 returns a signed number attribute.
func Int64(name string, value int64) Attr { return Attr{name, IntValueOf(value)} }

// Uint64 returns an unsigned number attribute.
func Uint64(name string, value uint64) Attr { return Attr{name, UintValueOf(value)} }

// Float returns a floating-point number attribute.
func Float(name string, value float64) Attr { return Attr{name, FloatValueOf(value)} }

// Bool returns a boolean attribute.
func Bool(name string, value bool) Attr { return Attr{name, BoolValueOf(value)} }

// Null returns an attribute with no value.
func Null(name string) Attr { return Attr{Name: name} }
