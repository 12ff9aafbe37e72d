package ast

import "github.com/sophie-lund/forge/pkg/source"

// Type is the closed sum type of Forge's type expressions.
type Type interface {
	Node
	isType()
}

// TypeMissing stands in for a type the parser could not recover, so
// downstream code can keep walking the tree instead of aborting.
type TypeMissing struct {
	hasRange    bool
	sourceRange source.Range
}

func NewTypeMissing() *TypeMissing { return &TypeMissing{} }

func NewTypeMissingFromSource(r source.Range) *TypeMissing {
	return &TypeMissing{hasRange: true, sourceRange: r}
}

func (t *TypeMissing) isType() {}
func (t *TypeMissing) TypeTag() string { return "typeMissing" }
func (t *TypeMissing) SourceRange() *source.Range { return rangePtr(t.sourceRange, t.hasRange) }
func (t *TypeMissing) Children() []Node { return nil }
func (t *TypeMissing) Equal(other Node) bool {
	_, ok := other.(*TypeMissing)
	return ok
}

// TypeBool is the boolean type.
type TypeBool struct {
	hasRange    bool
	sourceRange source.Range
}

func NewTypeBool() *TypeBool { return &TypeBool{} }

func NewTypeBoolFromSource(r source.Range) *TypeBool {
	return &TypeBool{hasRange: true, sourceRange: r}
}

func (t *TypeBool) isType() {}
func (t *TypeBool) TypeTag() string { return "typeBool" }
func (t *TypeBool) SourceRange() *source.Range { return rangePtr(t.sourceRange, t.hasRange) }
func (t *TypeBool) Children() []Node { return nil }
func (t *TypeBool) Equal(other Node) bool {
	_, ok := other.(*TypeBool)
	return ok
}

// TypeInt is a fixed-width integer type, signed or unsigned.
type TypeInt struct {
	hasRange    bool
	sourceRange source.Range
	BitWidth    uint8
	Signed      bool
}

func NewTypeInt(bitWidth uint8, signed bool) *TypeInt {
	return &TypeInt{BitWidth: bitWidth, Signed: signed}
}

func NewTypeIntFromSource(r source.Range, bitWidth uint8, signed bool) *TypeInt {
	return &TypeInt{hasRange: true, sourceRange: r, BitWidth: bitWidth, Signed: signed}
}

func (t *TypeInt) isType() {}
func (t *TypeInt) TypeTag() string { return "typeInt" }
func (t *TypeInt) SourceRange() *source.Range { return rangePtr(t.sourceRange, t.hasRange) }
func (t *TypeInt) Children() []Node { return nil }
func (t *TypeInt) Equal(other Node) bool {
	o, ok := other.(*TypeInt)
	return ok && t.BitWidth == o.BitWidth && t.Signed == o.Signed
}

// TypeFloat is a fixed-width floating point type.
type TypeFloat struct {
	hasRange    bool
	sourceRange source.Range
	BitWidth    uint8
}

func NewTypeFloat(bitWidth uint8) *TypeFloat {
	return &TypeFloat{BitWidth: bitWidth}
}

func NewTypeFloatFromSource(r source.Range, bitWidth uint8) *TypeFloat {
	return &TypeFloat{hasRange: true, sourceRange: r, BitWidth: bitWidth}
}

func (t *TypeFloat) isType() {}
func (t *TypeFloat) TypeTag() string { return "typeFloat" }
func (t *TypeFloat) SourceRange() *source.Range { return rangePtr(t.sourceRange, t.hasRange) }
func (t *TypeFloat) Children() []Node { return nil }
func (t *TypeFloat) Equal(other Node) bool {
	o, ok := other.(*TypeFloat)
	return ok && t.BitWidth == o.BitWidth
}

// TypePointer is a pointer to another type.
type TypePointer struct {
	hasRange    bool
	sourceRange source.Range
	DerefType   Type
}

func NewTypePointer(derefType Type) *TypePointer {
	return &TypePointer{DerefType: derefType}
}

func NewTypePointerFromSource(r source.Range, derefType Type) *TypePointer {
	return &TypePointer{hasRange: true, sourceRange: r, DerefType: derefType}
}

func (t *TypePointer) isType() {}
func (t *TypePointer) TypeTag() string { return "typePointer" }
func (t *TypePointer) SourceRange() *source.Range { return rangePtr(t.sourceRange, t.hasRange) }
func (t *TypePointer) Children() []Node { return childrenFrom(t.DerefType) }
func (t *TypePointer) Equal(other Node) bool {
	o, ok := other.(*TypePointer)
	return ok && nodeEqual(t.DerefType, o.DerefType)
}
