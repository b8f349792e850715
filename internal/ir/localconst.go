package ir

import "strconv"

// LocalConstant is a function-scoped .LC entry: a string or floating-point
// literal emitted into the read-only data section and referenced from code
// via a LocalConstantVar variable (§3.6).
type LocalConstant struct {
	ID             uint32
	ReferenceCount int

	// Exactly one of String/Float is meaningful, selected by IsString.
	IsString bool
	String   string
	// FloatBits holds the raw IEEE-754 bit pattern (32 or 64 bit, per
	// FloatDouble) so the printer can emit it as .long pairs without
	// re-deriving the encoding (§6: "Floats emit their raw bit pattern").
	FloatBits   uint64
	FloatDouble bool
}

// Label renders this local constant's assembler label, e.g. ".LC3".
func (lc *LocalConstant) Label() string {
	return ".LC" + strconv.FormatUint(uint64(lc.ID), 10)
}

// localConstantString interns (creates, in this simplified per-call model)
// a string literal into the function-scoped local constant pool.
func (a *Arena) localConstantString(value string) *LocalConstant {
	lc := a.localConsts.allocate()
	lc.ID = a.nextLCID
	lc.IsString = true
	lc.String = value
	a.nextLCID++
	a.registerLC(lc)
	return lc
}

// localConstantFloat interns a floating-point literal (given its raw bit
// pattern) into the function-scoped local constant pool.
func (a *Arena) localConstantFloat(bits uint64, double bool) *LocalConstant {
	lc := a.localConsts.allocate()
	lc.ID = a.nextLCID
	lc.FloatBits = bits
	lc.FloatDouble = double
	a.nextLCID++
	a.registerLC(lc)
	return lc
}

func (a *Arena) registerLC(lc *LocalConstant) {
	a.allLocalConsts = append(a.allLocalConsts, lc)
}
