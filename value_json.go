package script

import (
	"fmt"

	"github.com/oarkflow/json"
)

// jsonValue is the wire shape a Value round-trips through. A plain
// JSON number can't tell an int apart from a float once it comes back
// off the wire, so the tag travels alongside the payload.
type jsonValue struct {
	Type  string      `json:"type"`
	Int   *int32      `json:"int,omitempty"`
	Float *float64    `json:"float,omitempty"`
	Bool  *bool       `json:"bool,omitempty"`
	Str   *string     `json:"string,omitempty"`
	Char  *string     `json:"char,omitempty"`
	Array []jsonValue `json:"array,omitempty"`
}

func toJSONValue(v Value) jsonValue {
	switch v.Type {
	case TypeInteger:
		n := v.Int
		return jsonValue{Type: "int", Int: &n}
	case TypeFloating:
		f := v.Float
		return jsonValue{Type: "float", Float: &f}
	case TypeBoolean:
		b := v.Bool
		return jsonValue{Type: "boolean", Bool: &b}
	case TypeString:
		s := v.Str
		return jsonValue{Type: "string", Str: &s}
	case TypeCharacter:
		s := string(v.Char)
		return jsonValue{Type: "char", Char: &s}
	case TypeArray:
		elems := make([]jsonValue, len(v.ArrayElem))
		for i, e := range v.ArrayElem {
			elems[i] = toJSONValue(e)
		}
		return jsonValue{Type: "array", Array: elems}
	default:
		return jsonValue{Type: "error"}
	}
}

func fromJSONValue(jv jsonValue) (Value, error) {
	switch jv.Type {
	case "int":
		if jv.Int == nil {
			return Value{}, fmt.Errorf("script: int value missing payload")
		}
		return IntValue(*jv.Int), nil
	case "float":
		if jv.Float == nil {
			return Value{}, fmt.Errorf("script: float value missing payload")
		}
		return FloatValue(*jv.Float), nil
	case "boolean":
		if jv.Bool == nil {
			return Value{}, fmt.Errorf("script: boolean value missing payload")
		}
		return BoolValue(*jv.Bool), nil
	case "string":
		if jv.Str == nil {
			return Value{}, fmt.Errorf("script: string value missing payload")
		}
		return StringValue(*jv.Str), nil
	case "char":
		if jv.Char == nil || len(*jv.Char) == 0 {
			return Value{}, fmt.Errorf("script: char value missing payload")
		}
		return CharValue((*jv.Char)[0]), nil
	case "array":
		elems := make(Array, len(jv.Array))
		for i, e := range jv.Array {
			v, err := fromJSONValue(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return ArrayValue(elems), nil
	default:
		return Value{}, fmt.Errorf("script: unknown value type %q", jv.Type)
	}
}

// MarshalJSON lets a Value appear directly in any structure encoded
// with github.com/oarkflow/json.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}

// UnmarshalJSON restores a Value from its tagged wire representation.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	parsed, err := fromJSONValue(jv)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
