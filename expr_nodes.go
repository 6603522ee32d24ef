package script

import (
	"strconv"
)

// literalExpr is a leaf node whose value is fixed at parse time.
type literalExpr struct {
	value Value
}

func (e *literalExpr) Eval() (Value, error) { return e.value, nil }
func (e *literalExpr) Type() VariableType    { return e.value.Type }

func newIntLiteral(tok Token) (Expression, error) {
	n, err := strconv.ParseInt(tok.Content, 10, 32)
	if err != nil {
		return nil, newSyntaxErrorAt(tok, "invalid integer literal %q", tok.Content)
	}
	return &literalExpr{value: IntValue(int32(n))}, nil
}

func newFloatLiteral(tok Token) (Expression, error) {
	f, err := strconv.ParseFloat(tok.Content, 64)
	if err != nil {
		return nil, newSyntaxErrorAt(tok, "invalid float literal %q", tok.Content)
	}
	return &literalExpr{value: FloatValue(f)}, nil
}

func newBoolLiteral(tok Token) Expression {
	return &literalExpr{value: BoolValue(tok.Kind == LiteralTrue)}
}

func newStringLiteral(tok Token) Expression {
	return &literalExpr{value: StringValue(tok.Content)}
}

func newCharLiteral(tok Token) Expression {
	var c byte
	if len(tok.Content) > 0 {
		c = tok.Content[0]
	}
	return &literalExpr{value: CharValue(c)}
}

// binaryExpr wraps any binary operator whose construction-time type
// check has already been reduced to "is this table cell populated".
type binaryExpr struct {
	lhs, rhs Expression
	op       binaryOp
	typ      VariableType
	sym      string
}

func (e *binaryExpr) Type() VariableType { return e.typ }

func (e *binaryExpr) Eval() (Value, error) {
	l, err := e.lhs.Eval()
	if err != nil {
		return Value{}, err
	}
	r, err := e.rhs.Eval()
	if err != nil {
		return Value{}, err
	}
	return e.op(l, r)
}

func invalidOperatorError(opTok Token, l, r VariableType) *TypeError {
	return newTypeError(opTok, "invalid operator %s between %s and %s", opTok.Content, l, r)
}

func newTableBinary(lhs, rhs Expression, opTok Token, table dispatchTable) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	fn := table[lt][rt]
	if fn == nil {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return &binaryExpr{lhs: lhs, rhs: rhs, op: fn, typ: arithResultType(lt, rt, table), sym: opTok.Content}, nil
}

// arithResultType infers the declared result type of a populated table
// cell: string concatenation yields string, everything else follows
// the usual arithmetic promotion (int stays int, any float operand
// promotes to float).
func arithResultType(l, r VariableType, table dispatchTable) VariableType {
	if l == TypeString && r == TypeString {
		return TypeString
	}
	if t := arithmeticTypeCast(l, r); t != TypeErr {
		return t
	}
	return TypeBoolean
}

func newAddNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newTableBinary(lhs, rhs, opTok, addTable)
}

func newSubNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if arithmeticTypeCast(lt, rt) == TypeErr {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return newTableBinary(lhs, rhs, opTok, subTable)
}

func newMulNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if arithmeticTypeCast(lt, rt) == TypeErr {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return newTableBinary(lhs, rhs, opTok, mulTable)
}

func newDivNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if arithmeticTypeCast(lt, rt) == TypeErr {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	fn := divTable[lt][rt]
	return &binaryExpr{lhs: lhs, rhs: rhs, op: fn, typ: arithmeticTypeCast(lt, rt), sym: opTok.Content}, nil
}

func newModNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if !isBothInt(lt, rt) {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return &binaryExpr{lhs: lhs, rhs: rhs, op: modulus, typ: TypeInteger, sym: opTok.Content}, nil
}

func intOnlyOp(fn func(l, r Value) Value) binaryOp {
	return func(lhs, rhs Value) (Value, error) { return fn(lhs, rhs), nil }
}

func newBitwiseNode(lhs, rhs Expression, opTok Token, fn func(l, r Value) Value) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if !isBothInt(lt, rt) {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return &binaryExpr{lhs: lhs, rhs: rhs, op: intOnlyOp(fn), typ: TypeInteger, sym: opTok.Content}, nil
}

func newBitAndNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newBitwiseNode(lhs, rhs, opTok, bitAndOp)
}

func newBitOrNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newBitwiseNode(lhs, rhs, opTok, bitOrOp)
}

func newBitXorNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newBitwiseNode(lhs, rhs, opTok, bitXorOp)
}

func newShiftNode(lhs, rhs Expression, opTok Token, fn binaryOp) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if !isBothInt(lt, rt) {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return &binaryExpr{lhs: lhs, rhs: rhs, op: fn, typ: TypeInteger, sym: opTok.Content}, nil
}

func newShiftLeftNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newShiftNode(lhs, rhs, opTok, shiftLeft)
}

func newShiftRightNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newShiftNode(lhs, rhs, opTok, shiftRight)
}

// logicalAndExpr and logicalOrExpr evaluate their right operand only
// when the left operand didn't already decide the result.
type logicalAndExpr struct{ lhs, rhs Expression }

func (e *logicalAndExpr) Type() VariableType { return TypeBoolean }

func (e *logicalAndExpr) Eval() (Value, error) {
	l, err := e.lhs.Eval()
	if err != nil {
		return Value{}, err
	}
	if !l.Bool {
		return BoolValue(false), nil
	}
	r, err := e.rhs.Eval()
	if err != nil {
		return Value{}, err
	}
	return BoolValue(r.Bool), nil
}

type logicalOrExpr struct{ lhs, rhs Expression }

func (e *logicalOrExpr) Type() VariableType { return TypeBoolean }

func (e *logicalOrExpr) Eval() (Value, error) {
	l, err := e.lhs.Eval()
	if err != nil {
		return Value{}, err
	}
	if l.Bool {
		return BoolValue(true), nil
	}
	r, err := e.rhs.Eval()
	if err != nil {
		return Value{}, err
	}
	return BoolValue(r.Bool), nil
}

func newLogicalAndNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	if !isBothBoolean(lhs.Type(), rhs.Type()) {
		return nil, invalidOperatorError(opTok, lhs.Type(), rhs.Type())
	}
	return &logicalAndExpr{lhs: lhs, rhs: rhs}, nil
}

func newLogicalOrNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	if !isBothBoolean(lhs.Type(), rhs.Type()) {
		return nil, invalidOperatorError(opTok, lhs.Type(), rhs.Type())
	}
	return &logicalOrExpr{lhs: lhs, rhs: rhs}, nil
}

// newRelationalNode builds a comparison node using the actual operator
// token to drive the construction-time type check, rather than always
// checking against a fixed operator regardless of which one the
// parser actually matched.
func newRelationalNode(lhs, rhs Expression, opTok Token, table dispatchTable, ordering bool) (Expression, error) {
	lt, rt := lhs.Type(), rhs.Type()
	if ordering && isBothBoolean(lt, rt) {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	if !canCompare(lt, rt) {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	fn := table[lt][rt]
	if fn == nil {
		return nil, invalidOperatorError(opTok, lt, rt)
	}
	return &binaryExpr{lhs: lhs, rhs: rhs, op: fn, typ: TypeBoolean, sym: opTok.Content}, nil
}

func newLessNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, lessTable, true)
}

func newLessEqualNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, lessEqualTable, true)
}

func newGreaterNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, greaterTable, true)
}

func newGreaterEqualNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, greaterEqualTable, true)
}

func newEqualNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, equalTable, false)
}

func newNotEqualNode(lhs, rhs Expression, opTok Token) (Expression, error) {
	return newRelationalNode(lhs, rhs, opTok, notEqualTable, false)
}

// unaryExpr wraps a unary operator whose operand type has already been
// validated at construction time.
type unaryExpr struct {
	operand Expression
	op      func(Value) Value
	typ     VariableType
	sym     string
}

func (e *unaryExpr) Type() VariableType { return e.typ }

func (e *unaryExpr) Eval() (Value, error) {
	v, err := e.operand.Eval()
	if err != nil {
		return Value{}, err
	}
	return e.op(v), nil
}

func newNegativeNode(operand Expression, opTok Token) (Expression, error) {
	t := operand.Type()
	if !isArithmeticType(t) {
		return nil, newTypeError(opTok, "invalid operator - on %s", t)
	}
	if t == TypeInteger {
		return &unaryExpr{operand: operand, op: negativeInt, typ: TypeInteger, sym: "-"}, nil
	}
	return &unaryExpr{operand: operand, op: negativeFloat, typ: TypeFloating, sym: "-"}, nil
}

func newLogicalNotNode(operand Expression, opTok Token) (Expression, error) {
	if operand.Type() != TypeBoolean {
		return nil, newTypeError(opTok, "invalid operator ! on %s", operand.Type())
	}
	return &unaryExpr{operand: operand, op: logicalNotOp, typ: TypeBoolean, sym: "!"}, nil
}

func newBitNotNode(operand Expression, opTok Token) (Expression, error) {
	if operand.Type() != TypeInteger {
		return nil, newTypeError(opTok, "invalid operator ~ on %s", operand.Type())
	}
	return &unaryExpr{operand: operand, op: bitNotOp, typ: TypeInteger, sym: "~"}, nil
}

// castExpr converts its operand's runtime Value from one primitive
// type to another. Identity casts (source == target) are a no-op copy
// rather than a table lookup.
type castExpr struct {
	operand Expression
	target  VariableType
	convert func(Value) Value
}

func (e *castExpr) Type() VariableType { return e.target }

func (e *castExpr) Eval() (Value, error) {
	v, err := e.operand.Eval()
	if err != nil {
		return Value{}, err
	}
	return e.convert(v), nil
}

func newCastNode(operand Expression, target VariableType, opTok Token) (Expression, error) {
	source := operand.Type()
	if source == target {
		return &castExpr{operand: operand, target: target, convert: func(v Value) Value { return v }}, nil
	}
	fn := castTable[source][target]
	if fn == nil {
		return nil, newTypeError(opTok, "invalid cast from %s to %s", source, target)
	}
	return &castExpr{operand: operand, target: target, convert: fn}, nil
}

// newArrayExpr builds a nested array: every dimension's size expression
// is evaluated once, outward dimension first, before any level of the
// array is allocated.
type newArrayExpr struct {
	elemType VariableType
	dims     []Expression
}

func (e *newArrayExpr) Type() VariableType { return TypeArray }

func (e *newArrayExpr) Eval() (Value, error) {
	sizes := make([]int32, len(e.dims))
	for i, dim := range e.dims {
		v, err := dim.Eval()
		if err != nil {
			return Value{}, err
		}
		if v.Int < 0 {
			return Value{}, newExecuteError("negative array size")
		}
		sizes[i] = v.Int
	}
	return buildArray(e.elemType, sizes), nil
}

func buildArray(elemType VariableType, sizes []int32) Value {
	if len(sizes) == 0 {
		return zeroValue(elemType)
	}
	arr := make(Array, sizes[0])
	for i := range arr {
		arr[i] = buildArray(elemType, sizes[1:])
	}
	return ArrayValue(arr)
}

func newNewArrayNode(elemType VariableType, dims []Expression, opTok Token) (Expression, error) {
	for _, dim := range dims {
		if dim.Type() != TypeInteger {
			return nil, newTypeError(opTok, "array dimension must be int, got %s", dim.Type())
		}
	}
	return &newArrayExpr{elemType: elemType, dims: dims}, nil
}
