package lox

import "strconv"

// ValueType is the type tag of a Value.
type ValueType uint

// Possible ValueType values.
const (
	VInvalid ValueType = iota
	VNil
	VBool
	VNumber
	VString
	VFun

	numValueTypes
)

func (t ValueType) String() string {
	typeStrings := [numValueTypes]string{
		VInvalid: "invalid",
		VNil:     "nil",
		VBool:    "bool",
		VNumber:  "number",
		VString:  "string",
		VFun:     "function",
	}
	if t >= numValueTypes {
		return typeStrings[VInvalid]
	}
	return typeStrings[t]
}

// Value is a glox runtime value.
type Value struct {
	Type ValueType
	Bool bool
	Num  float64
	Str  string
	Fun  *Function
}

// Nil returns the nil value.
func Nil() Value {
	return Value{Type: VNil}
}

// Bool returns a Value representing the boolean b.
func Bool(b bool) Value {
	return Value{Type: VBool, Bool: b}
}

// Number returns a Value representing the number x.
func Number(x float64) Value {
	return Value{Type: VNumber, Num: x}
}

// String returns a Value representing the string s.
func String(s string) Value {
	return Value{Type: VString, Str: s}
}

// FunVal returns a Value wrapping the function f.
func FunVal(f *Function) Value {
	return Value{Type: VFun, Fun: f}
}

// Truthy reports whether v acts as true in a condition.  Only nil and false
// are falsy; every other value, including 0 and the empty string, is truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case VNil:
		return false
	case VBool:
		return v.Bool
	default:
		return true
	}
}

// Equal reports structural equality within a type.  Values of different
// types are never equal; functions compare by identity.
func (v Value) Equal(u Value) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case VNil:
		return true
	case VBool:
		return v.Bool == u.Bool
	case VNumber:
		return v.Num == u.Num
	case VString:
		return v.Str == u.Str
	case VFun:
		return v.Fun == u.Fun
	}
	return false
}

// String returns the display text used by print statements and the REPL.
func (v Value) String() string {
	switch v.Type {
	case VNil:
		return "nil"
	case VBool:
		return strconv.FormatBool(v.Bool)
	case VNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case VString:
		return v.Str
	case VFun:
		if v.Fun.Name == "" {
			return "<fn>"
		}
		return "<fn " + v.Fun.Name + ">"
	default:
		return "<invalid>"
	}
}
