package ast

import (
	"fmt"

	"github.com/sophie-lund/forge/pkg/source"
)

// Expr is the closed sum type of Forge's expressions.
type Expr interface {
	Node
	isExpr()
}

// IntValueKind names which concrete width/signedness an IntValue holds.
type IntValueKind int

const (
	IntValueI8 IntValueKind = iota
	IntValueI16
	IntValueI32
	IntValueI64
	IntValueU8
	IntValueU16
	IntValueU32
	IntValueU64
)

// IntValue is a typed integer literal value, tagged with its exact
// width/signedness so the parser never has to guess which Go integer
// type to widen into.
type IntValue struct {
	Kind IntValueKind
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
}

func NewIntValueI8(v int8) IntValue   { return IntValue{Kind: IntValueI8, I8: v} }
func NewIntValueI16(v int16) IntValue { return IntValue{Kind: IntValueI16, I16: v} }
func NewIntValueI32(v int32) IntValue { return IntValue{Kind: IntValueI32, I32: v} }
func NewIntValueI64(v int64) IntValue { return IntValue{Kind: IntValueI64, I64: v} }
func NewIntValueU8(v uint8) IntValue   { return IntValue{Kind: IntValueU8, U8: v} }
func NewIntValueU16(v uint16) IntValue { return IntValue{Kind: IntValueU16, U16: v} }
func NewIntValueU32(v uint32) IntValue { return IntValue{Kind: IntValueU32, U32: v} }
func NewIntValueU64(v uint64) IntValue { return IntValue{Kind: IntValueU64, U64: v} }

func (v IntValue) Equal(other IntValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case IntValueI8:
		return v.I8 == other.I8
	case IntValueI16:
		return v.I16 == other.I16
	case IntValueI32:
		return v.I32 == other.I32
	case IntValueI64:
		return v.I64 == other.I64
	case IntValueU8:
		return v.U8 == other.U8
	case IntValueU16:
		return v.U16 == other.U16
	case IntValueU32:
		return v.U32 == other.U32
	case IntValueU64:
		return v.U64 == other.U64
	default:
		return false
	}
}

func (v IntValue) String() string {
	switch v.Kind {
	case IntValueI8:
		return fmt.Sprintf("%di8", v.I8)
	case IntValueI16:
		return fmt.Sprintf("%di16", v.I16)
	case IntValueI32:
		return fmt.Sprintf("%di32", v.I32)
	case IntValueI64:
		return fmt.Sprintf("%di64", v.I64)
	case IntValueU8:
		return fmt.Sprintf("%du8", v.U8)
	case IntValueU16:
		return fmt.Sprintf("%du16", v.U16)
	case IntValueU32:
		return fmt.Sprintf("%du32", v.U32)
	case IntValueU64:
		return fmt.Sprintf("%du64", v.U64)
	default:
		return "<invalid int value>"
	}
}

// FloatValueKind names which concrete width a FloatValue holds.
type FloatValueKind int

const (
	FloatValueF32 FloatValueKind = iota
	FloatValueF64
)

// FloatValue is a typed floating point literal value.
type FloatValue struct {
	Kind FloatValueKind
	F32  float32
	F64  float64
}

func NewFloatValueF32(v float32) FloatValue { return FloatValue{Kind: FloatValueF32, F32: v} }
func NewFloatValueF64(v float64) FloatValue { return FloatValue{Kind: FloatValueF64, F64: v} }

func (v FloatValue) Equal(other FloatValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case FloatValueF32:
		return v.F32 == other.F32
	case FloatValueF64:
		return v.F64 == other.F64
	default:
		return false
	}
}

func (v FloatValue) String() string {
	switch v.Kind {
	case FloatValueF32:
		return fmt.Sprintf("%gf32", v.F32)
	case FloatValueF64:
		return fmt.Sprintf("%gf64", v.F64)
	default:
		return "<invalid float value>"
	}
}

// UnaryOperator enumerates Forge's prefix unary operators.
type UnaryOperator int

const (
	UnaryLogNot UnaryOperator = iota
	UnaryBitNot
	UnaryNeg
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryLogNot:
		return "!"
	case UnaryBitNot:
		return "~"
	case UnaryNeg:
		return "-"
	default:
		return "<invalid unary operator>"
	}
}

func (op UnaryOperator) JSONName() string {
	switch op {
	case UnaryLogNot:
		return "logNot"
	case UnaryBitNot:
		return "bitNot"
	case UnaryNeg:
		return "neg"
	default:
		return "invalid"
	}
}

// BinaryOperator enumerates Forge's infix binary and assignment
// operators, matching the grammar's full 29-operator set.
type BinaryOperator int

const (
	BinaryLogAnd BinaryOperator = iota
	BinaryLogOr
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryBitShL
	BinaryBitShR
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
	BinaryNe
	BinaryEq
	BinaryAssign
	BinaryBitAndAssign
	BinaryBitOrAssign
	BinaryBitXorAssign
	BinaryBitShLAssign
	BinaryBitShRAssign
	BinaryAddAssign
	BinarySubAssign
	BinaryMulAssign
	BinaryDivAssign
	BinaryModAssign
)

var binaryOperatorJSONNames = [...]string{
	BinaryLogAnd: "logAnd", BinaryLogOr: "logOr",
	BinaryBitAnd: "bitAnd", BinaryBitOr: "bitOr", BinaryBitXor: "bitXor",
	BinaryBitShL: "bitShL", BinaryBitShR: "bitShR",
	BinaryAdd: "add", BinarySub: "sub", BinaryMul: "mul", BinaryDiv: "div", BinaryMod: "mod",
	BinaryLt: "lt", BinaryLe: "le", BinaryGt: "gt", BinaryGe: "ge", BinaryNe: "ne", BinaryEq: "eq",
	BinaryAssign: "assign",
	BinaryBitAndAssign: "bitAndAssign", BinaryBitOrAssign: "bitOrAssign", BinaryBitXorAssign: "bitXorAssign",
	BinaryBitShLAssign: "bitShLAssign", BinaryBitShRAssign: "bitShRAssign",
	BinaryAddAssign: "addAssign", BinarySubAssign: "subAssign", BinaryMulAssign: "mulAssign",
	BinaryDivAssign: "divAssign", BinaryModAssign: "modAssign",
}

func (op BinaryOperator) JSONName() string {
	if int(op) >= 0 && int(op) < len(binaryOperatorJSONNames) {
		return binaryOperatorJSONNames[op]
	}
	return "invalid"
}

// IsAssignment reports whether op is one of the compound/plain
// assignment operators, which the parser treats as right-associative.
// The parser does not check the shape of their left operand.
func (op BinaryOperator) IsAssignment() bool {
	return op >= BinaryAssign && op <= BinaryModAssign
}

// ExprBool is a boolean literal.
type ExprBool struct {
	hasRange    bool
	sourceRange source.Range
	Value       bool
}

func NewExprBool(value bool) *ExprBool { return &ExprBool{Value: value} }
func NewExprBoolFromSource(r source.Range, value bool) *ExprBool {
	return &ExprBool{hasRange: true, sourceRange: r, Value: value}
}
func (e *ExprBool) isExpr()                     {}
func (e *ExprBool) TypeTag() string             { return "exprBool" }
func (e *ExprBool) SourceRange() *source.Range  { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprBool) Children() []Node            { return nil }
func (e *ExprBool) Equal(other Node) bool {
	o, ok := other.(*ExprBool)
	return ok && e.Value == o.Value
}

// ExprInt is an integer literal.
type ExprInt struct {
	hasRange    bool
	sourceRange source.Range
	Value       IntValue
}

func NewExprInt(value IntValue) *ExprInt { return &ExprInt{Value: value} }
func NewExprIntFromSource(r source.Range, value IntValue) *ExprInt {
	return &ExprInt{hasRange: true, sourceRange: r, Value: value}
}
func (e *ExprInt) isExpr()                    {}
func (e *ExprInt) TypeTag() string            { return "exprInt" }
func (e *ExprInt) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprInt) Children() []Node           { return nil }
func (e *ExprInt) Equal(other Node) bool {
	o, ok := other.(*ExprInt)
	return ok && e.Value.Equal(o.Value)
}

// ExprFloat is a floating point literal.
type ExprFloat struct {
	hasRange    bool
	sourceRange source.Range
	Value       FloatValue
}

func NewExprFloat(value FloatValue) *ExprFloat { return &ExprFloat{Value: value} }
func NewExprFloatFromSource(r source.Range, value FloatValue) *ExprFloat {
	return &ExprFloat{hasRange: true, sourceRange: r, Value: value}
}
func (e *ExprFloat) isExpr()                    {}
func (e *ExprFloat) TypeTag() string            { return "exprFloat" }
func (e *ExprFloat) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprFloat) Children() []Node           { return nil }
func (e *ExprFloat) Equal(other Node) bool {
	o, ok := other.(*ExprFloat)
	return ok && e.Value.Equal(o.Value)
}

// ExprSymbol references a named variable or function.
type ExprSymbol struct {
	hasRange    bool
	sourceRange source.Range
	Name        string
}

func NewExprSymbol(name string) *ExprSymbol { return &ExprSymbol{Name: name} }
func NewExprSymbolFromSource(r source.Range, name string) *ExprSymbol {
	return &ExprSymbol{hasRange: true, sourceRange: r, Name: name}
}
func (e *ExprSymbol) isExpr()                    {}
func (e *ExprSymbol) TypeTag() string            { return "exprSymbol" }
func (e *ExprSymbol) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprSymbol) Children() []Node           { return nil }
func (e *ExprSymbol) Equal(other Node) bool {
	o, ok := other.(*ExprSymbol)
	return ok && e.Name == o.Name
}

// ExprUnary applies a prefix unary operator to an operand.
type ExprUnary struct {
	hasRange    bool
	sourceRange source.Range
	Operator    UnaryOperator
	Operand     Expr
}

func NewExprUnary(operator UnaryOperator, operand Expr) *ExprUnary {
	return &ExprUnary{Operator: operator, Operand: operand}
}
func NewExprUnaryFromSource(r source.Range, operator UnaryOperator, operand Expr) *ExprUnary {
	return &ExprUnary{hasRange: true, sourceRange: r, Operator: operator, Operand: operand}
}
func (e *ExprUnary) isExpr()                    {}
func (e *ExprUnary) TypeTag() string            { return "exprUnary" }
func (e *ExprUnary) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprUnary) Children() []Node           { return childrenFrom(e.Operand) }
func (e *ExprUnary) Equal(other Node) bool {
	o, ok := other.(*ExprUnary)
	return ok && e.Operator == o.Operator && nodeEqual(e.Operand, o.Operand)
}

// ExprBinary applies an infix binary or assignment operator to two
// operands.
type ExprBinary struct {
	hasRange    bool
	sourceRange source.Range
	Operator    BinaryOperator
	Left        Expr
	Right       Expr
}

func NewExprBinary(operator BinaryOperator, left, right Expr) *ExprBinary {
	return &ExprBinary{Operator: operator, Left: left, Right: right}
}
func NewExprBinaryFromSource(r source.Range, operator BinaryOperator, left, right Expr) *ExprBinary {
	return &ExprBinary{hasRange: true, sourceRange: r, Operator: operator, Left: left, Right: right}
}
func (e *ExprBinary) isExpr()                    {}
func (e *ExprBinary) TypeTag() string            { return "exprBinary" }
func (e *ExprBinary) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprBinary) Children() []Node           { return childrenFrom(e.Left, e.Right) }
func (e *ExprBinary) Equal(other Node) bool {
	o, ok := other.(*ExprBinary)
	return ok && e.Operator == o.Operator && nodeEqual(e.Left, o.Left) && nodeEqual(e.Right, o.Right)
}

// ExprCall invokes callee with args.
type ExprCall struct {
	hasRange    bool
	sourceRange source.Range
	Callee      Expr
	Args        []Expr
}

func NewExprCall(callee Expr) *ExprCall { return &ExprCall{Callee: callee} }
func NewExprCallFromSource(r source.Range, callee Expr) *ExprCall {
	return &ExprCall{hasRange: true, sourceRange: r, Callee: callee}
}

// WithAppendedArg returns a copy of e with arg appended to its argument
// list, following the original implementation's move-and-return builder
// idiom (fluent construction without in-place mutation surprises).
func (e ExprCall) WithAppendedArg(arg Expr) *ExprCall {
	next := make([]Expr, len(e.Args)+1)
	copy(next, e.Args)
	next[len(e.Args)] = arg
	e.Args = next
	return &e
}

// WithAppendedArgs returns a copy of e with args appended.
func (e ExprCall) WithAppendedArgs(args ...Expr) *ExprCall {
	next := make([]Expr, len(e.Args)+len(args))
	copy(next, e.Args)
	copy(next[len(e.Args):], args)
	e.Args = next
	return &e
}

// WithReplacedArgs returns a copy of e whose argument list is replaced
// entirely.
func (e ExprCall) WithReplacedArgs(args []Expr) *ExprCall {
	e.Args = args
	return &e
}

func (e *ExprCall) isExpr()                    {}
func (e *ExprCall) TypeTag() string            { return "exprCall" }
func (e *ExprCall) SourceRange() *source.Range { return rangePtr(e.sourceRange, e.hasRange) }
func (e *ExprCall) Children() []Node {
	out := childrenFrom(e.Callee)
	for _, a := range e.Args {
		out = append(out, childrenFrom(a)...)
	}
	return out
}
func (e *ExprCall) Equal(other Node) bool {
	o, ok := other.(*ExprCall)
	if !ok || !nodeEqual(e.Callee, o.Callee) || len(e.Args) != len(o.Args) {
		return false
	}
	for i := range e.Args {
		if !nodeEqual(e.Args[i], o.Args[i]) {
			return false
		}
	}
	return true
}
