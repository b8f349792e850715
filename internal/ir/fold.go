package ir

// Constant-arithmetic folding (§4.4). Each routine overwrites operand 1 in
// place with the result; callers are responsible for ensuring operand 1 is
// not aliased by any other instruction (Constant's own doc comment repeats
// this contract). Signedness is always read from operand 1's kind, never
// operand 2's: a signed op1 folded against an unsigned op2 still produces a
// signed result, matching the "dispatch reads operand 2's numeric value but
// operand 1's signedness" rule.

// Add folds op1 += op2, in place, for any pair of integer-kind constants.
func Add(op1, op2 *Constant) {
	foldInt(op1, op2, func(a, b int64) int64 { return a + b })
}

// Sub folds op1 -= op2, in place.
func Sub(op1, op2 *Constant) {
	foldInt(op1, op2, func(a, b int64) int64 { return a - b })
}

// Mul folds op1 *= op2, in place.
func Mul(op1, op2 *Constant) {
	foldInt(op1, op2, func(a, b int64) int64 { return a * b })
}

// foldInt implements the shared shape of add/sub/mul: read both operands
// under op1's signedness, apply fn, and write the truncated result back
// into op1 under its own (unchanged) kind.
func foldInt(op1, op2 *Constant, fn func(a, b int64) int64) {
	if !op1.Kind.isInteger() || !op2.Kind.isInteger() {
		Abort("ir: fold: operand kinds %s/%s are not both integer", op1.Kind, op2.Kind)
	}
	kind := op1.Kind
	signed := kind.isSigned()

	var a, b int64
	if signed {
		a = op1.SignedValue()
	} else {
		a = int64(op1.UnsignedValue())
	}
	if op2.Kind.isSigned() {
		b = op2.SignedValue()
	} else {
		b = int64(op2.UnsignedValue())
	}

	result := truncateToWidth(fn(a, b), kind.bitWidth())
	if signed {
		op1.setSigned(kind, result)
	} else {
		u := uint64(result)
		if w := kind.bitWidth(); w < 64 {
			u &= uint64(1)<<uint(w) - 1
		}
		op1.setUnsigned(kind, u)
	}
}

// LogicalOr folds op1 ||= op2 by short-circuit truthiness, in place,
// overwriting op1 with a 0/1 ULong (§4.4).
func LogicalOr(op1, op2 *Constant) {
	op1.setUnsigned(CULong, boolToU64(isTruthy(op1) || isTruthy(op2)))
}

// LogicalAnd folds op1 &&= op2 by short-circuit truthiness, in place,
// overwriting op1 with a 0/1 ULong.
func LogicalAnd(op1, op2 *Constant) {
	op1.setUnsigned(CULong, boolToU64(isTruthy(op1) && isTruthy(op2)))
}

// isTruthy reports a constant's literal truthiness: nonzero for integer
// kinds, nonzero value for float (so -0.0 is falsy), non-empty for string.
func isTruthy(c *Constant) bool {
	switch {
	case c.Kind.isInteger():
		return c.UnsignedValue() != 0
	case c.Kind == CFloat || c.Kind == CDouble:
		return c.FloatValue() != 0
	case c.Kind == CString:
		return c.StringValue() != ""
	default:
		return true
	}
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// AddRaw is the §4.4 convenience variant for LEA-offset simplification: it
// promotes op1 to a signed Long constant regardless of its prior kind, then
// adds the raw value v.
func AddRaw(op1 *Constant, v int64) {
	op1.setSigned(CLong, op1.SignedValue()+v)
}
