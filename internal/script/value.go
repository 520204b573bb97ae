package script

import (
	"math"
	"strconv"
)

// ValueKind classifies a value crossing the host boundary.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindUnsupported

	// KindAny is only meaningful in a Param: it accepts every kind.
	KindAny ValueKind = -1
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindUnsupported:
		return "unsupported"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// Value is an engine-neutral script value.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	Bool  bool

	// TypeName is the engine's own name for an unsupported value.
	TypeName string
}

func NilValue() Value              { return Value{Kind: KindNil} }
func IntValue(i int64) Value       { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value   { return Value{Kind: KindFloat, Float: f} }
func StringValue(s string) Value   { return Value{Kind: KindString, Str: s} }
func BoolValue(b bool) Value       { return Value{Kind: KindBool, Bool: b} }
func Unsupported(typ string) Value { return Value{Kind: KindUnsupported, TypeName: typ} }

// NumberValue builds an Int when f holds an integral value that fits in
// int64, a Float otherwise.
func NumberValue(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}

// Format renders the value the way gen_print shows it.
func (v Value) Format() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "unsupported_type"
	}
}
