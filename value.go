package script

import (
	"fmt"

	reflect "github.com/goccy/go-reflect"
	"golang.org/x/exp/slices"
)

// VariableType identifies which of the six value kinds a Value or an
// expression's static result holds. The ordering is load-bearing: it
// is used directly as an index into the operator dispatch tables in
// operators.go, so it must not be reordered without updating them.
type VariableType int

const (
	TypeErr VariableType = iota - 1
	TypeInteger
	TypeFloating
	TypeBoolean
	TypeString
	TypeCharacter
	TypeArray
)

func (t VariableType) String() string {
	switch t {
	case TypeInteger:
		return "int"
	case TypeFloating:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeCharacter:
		return "char"
	case TypeArray:
		return "array"
	default:
		return "error"
	}
}

// variableTypeFromToken maps a type-keyword token to its VariableType.
func variableTypeFromToken(kind TokenKind) VariableType {
	switch kind {
	case KeywordInt:
		return TypeInteger
	case KeywordFloat:
		return TypeFloating
	case KeywordBoolean:
		return TypeBoolean
	case KeywordString:
		return TypeString
	case KeywordChar:
		return TypeCharacter
	default:
		return TypeErr
	}
}

// Array is a reference-counted-by-aliasing slice of Values. A Go slice
// header already gives two array.Value copies the same cheap-aliasing,
// GC-managed backing store that a shared_ptr<vector<value_t>> gives in
// the original implementation, so Array needs no manual refcounting.
type Array []Value

// Clone returns an independent deep copy of the array, so mutating the
// copy never affects the original's backing store. Deep, because each
// element may itself be an Array.
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	out := slices.Clone(a)
	for i, v := range out {
		if v.Type == TypeArray {
			out[i] = ArrayValue(v.ArrayElem.Clone())
		}
	}
	return out
}

// Value is a tagged union over the six runtime value kinds. It is
// modeled as a struct with one field per kind, rather than as an
// interface, to mirror a closed variant: callers switch on Type and
// read the matching field instead of type-asserting an interface.
type Value struct {
	Type      VariableType
	Int       int32
	Float     float64
	Bool      bool
	Str       string
	Char      byte
	ArrayElem Array
}

func IntValue(v int32) Value        { return Value{Type: TypeInteger, Int: v} }
func FloatValue(v float64) Value    { return Value{Type: TypeFloating, Float: v} }
func BoolValue(v bool) Value        { return Value{Type: TypeBoolean, Bool: v} }
func StringValue(v string) Value    { return Value{Type: TypeString, Str: v} }
func CharValue(v byte) Value        { return Value{Type: TypeCharacter, Char: v} }
func ArrayValue(v Array) Value      { return Value{Type: TypeArray, ArrayElem: v} }

// zeroValue returns the zero-valued Value of the given primitive type,
// used as the innermost fill value for `new` array construction.
func zeroValue(t VariableType) Value {
	switch t {
	case TypeInteger:
		return IntValue(0)
	case TypeFloating:
		return FloatValue(0)
	case TypeBoolean:
		return BoolValue(false)
	case TypeString:
		return StringValue("")
	case TypeCharacter:
		return CharValue(0)
	case TypeArray:
		return ArrayValue(nil)
	default:
		return Value{Type: TypeErr}
	}
}

func (v Value) String() string {
	switch v.Type {
	case TypeInteger:
		return fmt.Sprintf("%d", v.Int)
	case TypeFloating:
		return fmt.Sprintf("%g", v.Float)
	case TypeBoolean:
		return fmt.Sprintf("%t", v.Bool)
	case TypeString:
		return v.Str
	case TypeCharacter:
		return string(v.Char)
	case TypeArray:
		return fmt.Sprintf("%v", []Value(v.ArrayElem))
	default:
		return "<error>"
	}
}

// ValuesEqual reports whether two values are structurally identical,
// including element-by-element for arrays. The language's own == and
// != operators never reach this function (arrays can't appear on
// either side of them per canCompare), so this is for host code —
// formatters, tests, dedup — that needs to compare two Values outright.
func ValuesEqual(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Type == TypeArray {
		return reflect.DeepEqual([]Value(a.ArrayElem), []Value(b.ArrayElem))
	}
	return a.Int == b.Int && a.Float == b.Float && a.Bool == b.Bool &&
		a.Str == b.Str && a.Char == b.Char
}

func isBothString(l, r VariableType) bool { return l == TypeString && r == TypeString }
func isBothInt(l, r VariableType) bool    { return l == TypeInteger && r == TypeInteger }
func isBothBoolean(l, r VariableType) bool {
	return l == TypeBoolean && r == TypeBoolean
}
func isArithmeticType(t VariableType) bool { return t == TypeInteger || t == TypeFloating }

// arithmeticTypeCast reports the result type of an arithmetic operator
// applied to l and r: int/int stays int, any int/float or float/float
// mix promotes to float, anything else is a TypeErr.
func arithmeticTypeCast(l, r VariableType) VariableType {
	switch {
	case l == TypeInteger && r == TypeInteger:
		return TypeInteger
	case l == TypeFloating && r == TypeFloating,
		l == TypeInteger && r == TypeFloating,
		l == TypeFloating && r == TypeInteger:
		return TypeFloating
	default:
		return TypeErr
	}
}

// canCompare reports whether l and r may appear on either side of a
// relational or equality operator. Arrays are never comparable.
func canCompare(l, r VariableType) bool {
	switch {
	case l == TypeInteger && r == TypeInteger,
		l == TypeFloating && r == TypeFloating,
		l == TypeInteger && r == TypeFloating,
		l == TypeFloating && r == TypeInteger:
		return true
	case l == TypeBoolean && r == TypeBoolean:
		return true
	case l == TypeString && r == TypeString:
		return true
	case l == TypeCharacter && r == TypeCharacter:
		return true
	default:
		return false
	}
}
