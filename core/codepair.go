package core

import (
	"strconv"
	"strings"
)

// ValueType represents the type of a code pair value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeDouble
	TypeBool
)

// String returns the string representation of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeDouble:
		return "Double"
	case TypeBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is a typed code pair value. The concrete type is one of String,
// Int16, Int32, Int64, Double, or Bool; which one is legal for a given
// group code is determined by TypeForCode.
type Value interface {
	Type() ValueType
	String() string
}

// String is a string value.
type String string

func (s String) Type() ValueType { return TypeString }
func (s String) String() string  { return string(s) }

// Int16 is a 16-bit integer value.
type Int16 int16

func (i Int16) Type() ValueType { return TypeInt16 }
func (i Int16) String() string  { return strconv.FormatInt(int64(i), 10) }

// Int32 is a 32-bit integer value.
type Int32 int32

func (i Int32) Type() ValueType { return TypeInt32 }
func (i Int32) String() string  { return strconv.FormatInt(int64(i), 10) }

// Int64 is a 64-bit integer value.
type Int64 int64

func (i Int64) Type() ValueType { return TypeInt64 }
func (i Int64) String() string  { return strconv.FormatInt(int64(i), 10) }

// Double is a 64-bit floating point value.
type Double float64

func (d Double) Type() ValueType { return TypeDouble }
func (d Double) String() string  { return formatDouble(float64(d)) }

// Bool is a boolean value.
type Bool bool

func (b Bool) Type() ValueType { return TypeBool }
func (b Bool) String() string {
	if b {
		return "1"
	}
	return "0"
}

// formatDouble renders a float the way DXF text files expect: always with
// a decimal point, never in exponent notation for typical magnitudes.
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// CodePair is the atomic unit of the DXF wire protocol: an integer group
// code paired with a typed value. Pairs are immutable once produced.
type CodePair struct {
	Code  int
	Value Value
}

// NewStringPair creates a code pair with a string value.
func NewStringPair(code int, value string) CodePair {
	return CodePair{Code: code, Value: String(value)}
}

// NewInt16Pair creates a code pair with a 16-bit integer value.
func NewInt16Pair(code int, value int16) CodePair {
	return CodePair{Code: code, Value: Int16(value)}
}

// NewInt32Pair creates a code pair with a 32-bit integer value.
func NewInt32Pair(code int, value int32) CodePair {
	return CodePair{Code: code, Value: Int32(value)}
}

// NewInt64Pair creates a code pair with a 64-bit integer value.
func NewInt64Pair(code int, value int64) CodePair {
	return CodePair{Code: code, Value: Int64(value)}
}

// NewDoublePair creates a code pair with a floating point value.
func NewDoublePair(code int, value float64) CodePair {
	return CodePair{Code: code, Value: Double(value)}
}

// NewBoolPair creates a code pair with a boolean value.
func NewBoolPair(code int, value bool) CodePair {
	return CodePair{Code: code, Value: Bool(value)}
}

// IsMarker reports whether the pair is a 0-code marker with the given
// string value (e.g. 0/SECTION, 0/ENDSEC, 0/EOF).
func (p CodePair) IsMarker(value string) bool {
	if p.Code != 0 {
		return false
	}
	s, ok := p.Value.(String)
	return ok && string(s) == value
}

// AsString returns the pair's value as a string, or a type error if the
// value is not a string.
func (p CodePair) AsString() (string, error) {
	if s, ok := p.Value.(String); ok {
		return string(s), nil
	}
	return "", valueTypeError(p, TypeString)
}

// AsInt16 returns the pair's value as an int16.
func (p CodePair) AsInt16() (int16, error) {
	if i, ok := p.Value.(Int16); ok {
		return int16(i), nil
	}
	return 0, valueTypeError(p, TypeInt16)
}

// AsInt32 returns the pair's value as an int32.
func (p CodePair) AsInt32() (int32, error) {
	if i, ok := p.Value.(Int32); ok {
		return int32(i), nil
	}
	return 0, valueTypeError(p, TypeInt32)
}

// AsInt64 returns the pair's value as an int64.
func (p CodePair) AsInt64() (int64, error) {
	if i, ok := p.Value.(Int64); ok {
		return int64(i), nil
	}
	return 0, valueTypeError(p, TypeInt64)
}

// AsDouble returns the pair's value as a float64.
func (p CodePair) AsDouble() (float64, error) {
	if d, ok := p.Value.(Double); ok {
		return float64(d), nil
	}
	return 0, valueTypeError(p, TypeDouble)
}

// AsBool returns the pair's value as a bool. Int16 values are accepted
// too; files older than R13 carry boolean header variables as integers.
func (p CodePair) AsBool() (bool, error) {
	switch v := p.Value.(type) {
	case Bool:
		return bool(v), nil
	case Int16:
		return v != 0, nil
	}
	return false, valueTypeError(p, TypeBool)
}

// String returns a code/value rendering of the pair, used in error text.
func (p CodePair) String() string {
	return strconv.Itoa(p.Code) + "/" + p.Value.String()
}

// TypeForCode returns the value type implied by a group code, following
// the DXF group code ranges.
func TypeForCode(code int) ValueType {
	switch {
	case code >= 0 && code <= 9:
		return TypeString
	case code >= 10 && code <= 59:
		return TypeDouble
	case code >= 60 && code <= 79:
		return TypeInt16
	case code >= 90 && code <= 99:
		return TypeInt32
	case code == 100 || code == 102 || code == 105:
		return TypeString
	case code >= 110 && code <= 149:
		return TypeDouble
	case code >= 160 && code <= 169:
		return TypeInt64
	case code >= 170 && code <= 179:
		return TypeInt16
	case code >= 210 && code <= 239:
		return TypeDouble
	case code >= 270 && code <= 289:
		return TypeInt16
	case code >= 290 && code <= 299:
		return TypeBool
	case code >= 300 && code <= 369:
		return TypeString
	case code >= 370 && code <= 389:
		return TypeInt16
	case code >= 390 && code <= 399:
		return TypeString
	case code >= 400 && code <= 409:
		return TypeInt16
	case code >= 410 && code <= 419:
		return TypeString
	case code >= 420 && code <= 429:
		return TypeInt32
	case code >= 430 && code <= 439:
		return TypeString
	case code >= 440 && code <= 449:
		return TypeInt32
	case code >= 450 && code <= 459:
		return TypeInt64
	case code >= 460 && code <= 469:
		return TypeDouble
	case code >= 470 && code <= 481:
		return TypeString
	case code == 999:
		return TypeString
	case code >= 1000 && code <= 1009:
		return TypeString
	case code >= 1010 && code <= 1059:
		return TypeDouble
	case code >= 1060 && code <= 1070:
		return TypeInt16
	case code == 1071:
		return TypeInt32
	default:
		return TypeString
	}
}
