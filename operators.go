package script

// binaryOp performs a binary operation on two already-typechecked
// operands and produces the result Value, or an ExecuteError for a
// failure that can only be detected at run time (division by zero,
// negative shift count).
type binaryOp func(lhs, rhs Value) (Value, error)

// dispatchTable is indexed [lhs.Type][rhs.Type]; a nil entry means the
// parser's construction-time type check already ruled that pairing
// out, so the table is never probed there.
type dispatchTable [TypeArray + 1][TypeArray + 1]binaryOp

func intInt(f func(l, r int32) int32) binaryOp {
	return func(lhs, rhs Value) (Value, error) {
		return IntValue(f(lhs.Int, rhs.Int)), nil
	}
}

func floatFloat(f func(l, r float64) float64) binaryOp {
	return func(lhs, rhs Value) (Value, error) {
		return FloatValue(f(lhs.Float, rhs.Float)), nil
	}
}

func intFloat(f func(l float64, r float64) float64) binaryOp {
	return func(lhs, rhs Value) (Value, error) {
		return FloatValue(f(float64(lhs.Int), rhs.Float)), nil
	}
}

func floatInt(f func(l, r float64) float64) binaryOp {
	return func(lhs, rhs Value) (Value, error) {
		return FloatValue(f(lhs.Float, float64(rhs.Int))), nil
	}
}

var addTable = buildArithTable(
	func(l, r int32) int32 { return l + r },
	func(l, r float64) float64 { return l + r },
)

var subTable = buildArithTable(
	func(l, r int32) int32 { return l - r },
	func(l, r float64) float64 { return l - r },
)

var mulTable = buildArithTable(
	func(l, r int32) int32 { return l * r },
	func(l, r float64) float64 { return l * r },
)

func buildArithTable(ii func(l, r int32) int32, ff func(l, r float64) float64) dispatchTable {
	var t dispatchTable
	t[TypeInteger][TypeInteger] = intInt(ii)
	t[TypeFloating][TypeFloating] = floatFloat(ff)
	t[TypeInteger][TypeFloating] = intFloat(ff)
	t[TypeFloating][TypeInteger] = floatInt(ff)
	return t
}

func init() {
	addTable[TypeString][TypeString] = func(lhs, rhs Value) (Value, error) {
		return StringValue(lhs.Str + rhs.Str), nil
	}
}

var divTable = dispatchTable{
	TypeInteger: [TypeArray + 1]binaryOp{
		TypeInteger: func(lhs, rhs Value) (Value, error) {
			if rhs.Int == 0 {
				return Value{}, newExecuteError("division by zero")
			}
			return IntValue(lhs.Int / rhs.Int), nil
		},
		TypeFloating: func(lhs, rhs Value) (Value, error) {
			if rhs.Float == 0 {
				return Value{}, newExecuteError("division by zero")
			}
			return FloatValue(float64(lhs.Int) / rhs.Float), nil
		},
	},
	TypeFloating: [TypeArray + 1]binaryOp{
		TypeInteger: func(lhs, rhs Value) (Value, error) {
			if rhs.Int == 0 {
				return Value{}, newExecuteError("division by zero")
			}
			return FloatValue(lhs.Float / float64(rhs.Int)), nil
		},
		TypeFloating: func(lhs, rhs Value) (Value, error) {
			if rhs.Float == 0 {
				return Value{}, newExecuteError("division by zero")
			}
			return FloatValue(lhs.Float / rhs.Float), nil
		},
	},
}

func modulus(lhs, rhs Value) (Value, error) {
	if rhs.Int == 0 {
		return Value{}, newExecuteError("division by zero")
	}
	return IntValue(lhs.Int % rhs.Int), nil
}

func bitAndOp(lhs, rhs Value) Value  { return IntValue(lhs.Int & rhs.Int) }
func bitOrOp(lhs, rhs Value) Value   { return IntValue(lhs.Int | rhs.Int) }
func bitXorOp(lhs, rhs Value) Value  { return IntValue(lhs.Int ^ rhs.Int) }
func bitNotOp(v Value) Value         { return IntValue(^v.Int) }
func logicalNotOp(v Value) Value     { return BoolValue(!v.Bool) }
func negativeInt(v Value) Value      { return IntValue(-v.Int) }
func negativeFloat(v Value) Value    { return FloatValue(-v.Float) }

// shiftLeft and shiftRight apply the count modulo 32 (the width of a
// signed 32-bit integer) after rejecting a negative count — checking
// the sign first and only then reducing it matters: a count of -32
// would otherwise wrap to a harmless-looking 0.
func shiftLeft(lhs, rhs Value) (Value, error) {
	if rhs.Int < 0 {
		return Value{}, newExecuteError("negative shift count")
	}
	count := uint32(rhs.Int) % 32
	return IntValue(lhs.Int << count), nil
}

func shiftRight(lhs, rhs Value) (Value, error) {
	if rhs.Int < 0 {
		return Value{}, newExecuteError("negative shift count")
	}
	count := uint32(rhs.Int) % 32
	return IntValue(lhs.Int >> count), nil
}

func buildRelTable(ii func(l, r int32) bool, ff func(l, r float64) bool, includeBool bool, eqOp func(l, r bool) bool) dispatchTable {
	var t dispatchTable
	t[TypeInteger][TypeInteger] = func(lhs, rhs Value) (Value, error) { return BoolValue(ii(lhs.Int, rhs.Int)), nil }
	t[TypeFloating][TypeFloating] = func(lhs, rhs Value) (Value, error) { return BoolValue(ff(lhs.Float, rhs.Float)), nil }
	t[TypeInteger][TypeFloating] = func(lhs, rhs Value) (Value, error) {
		return BoolValue(ff(float64(lhs.Int), rhs.Float)), nil
	}
	t[TypeFloating][TypeInteger] = func(lhs, rhs Value) (Value, error) {
		return BoolValue(ff(lhs.Float, float64(rhs.Int))), nil
	}
	t[TypeString][TypeString] = func(lhs, rhs Value) (Value, error) { return BoolValue(stringRel(lhs.Str, rhs.Str, ii)), nil }
	t[TypeCharacter][TypeCharacter] = func(lhs, rhs Value) (Value, error) {
		return BoolValue(ii(int32(lhs.Char), int32(rhs.Char))), nil
	}
	if includeBool {
		t[TypeBoolean][TypeBoolean] = func(lhs, rhs Value) (Value, error) { return BoolValue(eqOp(lhs.Bool, rhs.Bool)), nil }
	}
	return t
}

func stringRel(l, r string, ii func(l, r int32) bool) bool {
	switch {
	case l < r:
		return ii(0, 1)
	case l > r:
		return ii(1, 0)
	default:
		return ii(0, 0)
	}
}

var lessTable = buildRelTable(
	func(l, r int32) bool { return l < r },
	func(l, r float64) bool { return l < r },
	false, nil,
)

var lessEqualTable = buildRelTable(
	func(l, r int32) bool { return l <= r },
	func(l, r float64) bool { return l <= r },
	false, nil,
)

var greaterTable = buildRelTable(
	func(l, r int32) bool { return l > r },
	func(l, r float64) bool { return l > r },
	false, nil,
)

var greaterEqualTable = buildRelTable(
	func(l, r int32) bool { return l >= r },
	func(l, r float64) bool { return l >= r },
	false, nil,
)

var equalTable = buildRelTable(
	func(l, r int32) bool { return l == r },
	func(l, r float64) bool { return l == r },
	true, func(l, r bool) bool { return l == r },
)

var notEqualTable = buildRelTable(
	func(l, r int32) bool { return l != r },
	func(l, r float64) bool { return l != r },
	true, func(l, r bool) bool { return l != r },
)

// castOp converts a single Value of a known source type to the target
// type. Only int->float, float->int, and char->int are populated;
// identity casts are handled separately in the cast node without
// consulting this table.
type castOp func(Value) Value

var castTable [TypeArray + 1][TypeArray + 1]castOp

func init() {
	castTable[TypeInteger][TypeFloating] = func(v Value) Value { return FloatValue(float64(v.Int)) }
	castTable[TypeFloating][TypeInteger] = func(v Value) Value { return IntValue(int32(v.Float)) }
	castTable[TypeCharacter][TypeInteger] = func(v Value) Value { return IntValue(int32(v.Char)) }
}
