package ir

import (
	"fmt"
)

// ConstantKind discriminates how a Constant's value is interpreted and how
// arithmetic/printing dispatch on it (§3.2).
type ConstantKind uint8

const (
	CByte ConstantKind = iota
	CUByte
	CShort
	CUShort
	CInt
	CUInt
	CLong
	CULong
	CFloat
	CDouble
	CChar
	CString
	// CRelativeAddress refers to a LocalConstant variable, used for
	// initializer data in global-variable tables.
	CRelativeAddress
)

func (k ConstantKind) String() string {
	switch k {
	case CByte:
		return "byte"
	case CUByte:
		return "ubyte"
	case CShort:
		return "short"
	case CUShort:
		return "ushort"
	case CInt:
		return "int"
	case CUInt:
		return "uint"
	case CLong:
		return "long"
	case CULong:
		return "ulong"
	case CFloat:
		return "float"
	case CDouble:
		return "double"
	case CChar:
		return "char"
	case CString:
		return "string"
	case CRelativeAddress:
		return "relative_address"
	default:
		return fmt.Sprintf("ConstantKind(%d)", k)
	}
}

// isInteger reports whether k's arithmetic is integer (vs. float/string/
// relative-address, which folding does not handle; §4.4).
func (k ConstantKind) isInteger() bool {
	switch k {
	case CByte, CUByte, CShort, CUShort, CInt, CUInt, CLong, CULong, CChar:
		return true
	default:
		return false
	}
}

// isSigned reports the signedness of k's integer interpretation. Only
// meaningful when isInteger() is true.
func (k ConstantKind) isSigned() bool {
	switch k {
	case CByte, CShort, CInt, CLong:
		return true
	default:
		return false
	}
}

// Constant is a typed literal value with a kind tag (§3.2). Signed and
// unsigned fields are kept separate so that folding always reads the
// numeric interpretation appropriate to a constant's own kind, never
// reinterpreting bits across signedness.
//
// Constant values are immutable in the source but mutable by design inside
// the folding helpers (fold.go), which overwrite the receiver in place.
// Callers of a fold routine must ensure its first operand is not referenced
// by any other instruction; the core does not track sharing itself.
type Constant struct {
	Kind ConstantKind

	signedValue   int64
	unsignedValue uint64
	floatValue    float64 // used for both CFloat and CDouble
	stringValue   string  // used for CString

	// RelativeTo is valid only when Kind == CRelativeAddress: the
	// LocalConstant this constant's value is the (relocated) address of.
	RelativeTo *LocalConstant
}

// SignedValue returns the constant's value interpreted as a signed 64-bit
// integer. Valid for any integer kind.
func (c *Constant) SignedValue() int64 {
	if c.Kind.isSigned() {
		return c.signedValue
	}
	return int64(c.unsignedValue)
}

// UnsignedValue returns the constant's value interpreted as an unsigned
// 64-bit integer. Valid for any integer kind.
func (c *Constant) UnsignedValue() uint64 {
	if c.Kind.isSigned() {
		return uint64(c.signedValue)
	}
	return c.unsignedValue
}

// FloatValue returns the constant's value as a float64. Valid for CFloat
// and CDouble only.
func (c *Constant) FloatValue() float64 { return c.floatValue }

// StringValue returns the constant's raw string payload. Valid for CString
// only.
func (c *Constant) StringValue() string { return c.stringValue }

// setSigned stores v as the receiver's value under the given signed kind.
func (c *Constant) setSigned(kind ConstantKind, v int64) {
	c.Kind = kind
	c.signedValue = v
	c.unsignedValue = 0
}

// setUnsigned stores v as the receiver's value under the given unsigned
// kind.
func (c *Constant) setUnsigned(kind ConstantKind, v uint64) {
	c.Kind = kind
	c.unsignedValue = v
	c.signedValue = 0
}

// directIntegerConstant allocates a Constant from a literal integer/char
// value, picking the ConstantKind from a basic-type token (§4.1). Strings
// and floats must go through the LocalConstant path instead; basicType must
// be an integer-classed scalar or this aborts (structural violation).
func (a *Arena) directIntegerConstant(basicType BasicTypeToken, value int64) *Constant {
	c := a.consts.allocate()
	switch basicType {
	case I8:
		c.setSigned(CByte, value)
	case U8:
		c.setUnsigned(CUByte, uint64(value))
	case I16:
		c.setSigned(CShort, value)
	case U16:
		c.setUnsigned(CUShort, uint64(value))
	case I32:
		c.setSigned(CInt, value)
	case U32:
		c.setUnsigned(CUInt, uint64(value))
	case I64:
		c.setSigned(CLong, value)
	case U64:
		c.setUnsigned(CULong, uint64(value))
	case Char, Bool:
		c.setUnsigned(CChar, uint64(value))
	default:
		Abort("ir: directIntegerConstant: %s is not a basic integer scalar", basicType)
	}
	a.registerConst(c)
	return c
}

// floatConstant allocates a CFloat/CDouble Constant directly; real floating
// literals are ordinarily emitted via a LocalConstant instead (§1, §4.4),
// but the value is still representable here for constant-folding call
// sites that need to synthesize one (e.g. default-initializing a global).
func (a *Arena) floatConstant(double bool, value float64) *Constant {
	c := a.consts.allocate()
	c.floatValue = value
	if double {
		c.Kind = CDouble
	} else {
		c.Kind = CFloat
	}
	a.registerConst(c)
	return c
}

// stringConstant allocates a CString Constant.
func (a *Arena) stringConstant(value string) *Constant {
	c := a.consts.allocate()
	c.Kind = CString
	c.stringValue = value
	a.registerConst(c)
	return c
}

// relativeAddressConstant allocates a CRelativeAddress Constant pointing at
// lc, for use in global-variable initializer tables.
func (a *Arena) relativeAddressConstant(lc *LocalConstant) *Constant {
	c := a.consts.allocate()
	c.Kind = CRelativeAddress
	c.RelativeTo = lc
	lc.ReferenceCount++
	a.registerConst(c)
	return c
}

// rawSignedConstant promotes a raw 64-bit signed value to a signed Long
// constant, regardless of any prior kind. Used during LEA simplification
// where address arithmetic needs a plain 64-bit accumulator (§4.4).
func (a *Arena) rawSignedConstant(value int64) *Constant {
	c := a.consts.allocate()
	c.setSigned(CLong, value)
	a.registerConst(c)
	return c
}

func (a *Arena) registerConst(c *Constant) {
	a.allConsts = append(a.allConsts, c)
}

// NewIntegerConstant is directIntegerConstant exported for code outside
// this package (internal/codegen/amd64 and its tests) that needs a constant
// of known value without reaching into this package's unexported fields.
// Unlike the internal emitter, this is the boundary the driver calls
// through with literal values of unverified provenance, so it classifies
// the value against basicType's width first (§3.2.1, §7): a value that does
// not fit returns a *ClassificationError instead of silently wrapping or
// truncating. The error result is nil (an untyped nil error) on success.
func (a *Arena) NewIntegerConstant(basicType BasicTypeToken, value int64) (*Constant, error) {
	if err := classifyIntegerLiteral(basicType, value); err != nil {
		return nil, err
	}
	return a.directIntegerConstant(basicType, value), nil
}

// classifyIntegerLiteral reports whether value fits in basicType's declared
// width, signed or unsigned as basicType itself is.
func classifyIntegerLiteral(basicType BasicTypeToken, value int64) *ClassificationError {
	bits := uint(basicType.Bytes()) * 8
	if bits == 0 || bits >= 64 {
		return nil
	}
	if basicType.Signed() {
		max := int64(1)<<(bits-1) - 1
		min := -(int64(1) << (bits - 1))
		if value < min || value > max {
			return classificationErrorf("ir: literal %d does not fit in %s (range [%d, %d])", value, basicType, min, max)
		}
		return nil
	}
	if value < 0 {
		return classificationErrorf("ir: literal %d does not fit in unsigned %s", value, basicType)
	}
	max := uint64(1)<<bits - 1
	if uint64(value) > max {
		return classificationErrorf("ir: literal %d does not fit in %s (max %d)", value, basicType, max)
	}
	return nil
}

// bitWidth returns the width, in bits, of k's integer representation.
func (k ConstantKind) bitWidth() int {
	switch k {
	case CByte, CUByte:
		return 8
	case CShort, CUShort:
		return 16
	case CInt, CUInt:
		return 32
	case CLong, CULong, CChar:
		return 64
	default:
		return 0
	}
}

// truncate masks v down to k's bit width, keeping the two's-complement
// pattern intact. Used after folding to keep a constant's stored value
// consistent with its declared width.
func truncateToWidth(v int64, width int) int64 {
	if width >= 64 {
		return v
	}
	mask := int64(1)<<uint(width) - 1
	u := v & mask
	signBit := int64(1) << uint(width-1)
	if u&signBit != 0 {
		u -= mask + 1
	}
	return u
}
