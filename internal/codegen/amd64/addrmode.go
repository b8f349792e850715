package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

// leaFormToAddrMode is the straight abstract-to-concrete table §4.6
// describes; the degenerate short-circuits below are applied on top of it.
var leaFormToAddrMode = map[ir.LeaForm]ir.AddrMode{
	ir.LeaOffsetOnly:              ir.AddrOffsetOnly,
	ir.LeaRegistersOnly:           ir.AddrRegistersOnly,
	ir.LeaRegistersAndScale:       ir.AddrRegistersAndScale,
	ir.LeaRegistersAndOffset:      ir.AddrRegistersAndOffset,
	ir.LeaRegistersOffsetAndScale: ir.AddrRegistersOffsetAndScale,
	ir.LeaRipRelative:             ir.AddrRipRelative,
	ir.LeaRipRelativeWithOffset:   ir.AddrRipRelativeWithOffset,
	ir.LeaIndexAndScale:           ir.AddrIndexAndScale,
	ir.LeaIndexOffsetAndScale:     ir.AddrIndexOffsetAndScale,
}

// SelectAddressMode lowers in's abstract LeaForm to a concrete AddrMode and
// picks the LEA opcode at the width implied by in.Assignee, applying the two
// selector-side short-circuits §4.6 names:
//
//   - OffsetOnly with a zero constant degenerates to a plain register move
//     (LEA 0(t3), t4 → MOVQ t3, t4).
//   - RegistersAndScale with scale 1 degenerates to RegistersOnly, since a
//     scale-1 SIB byte computes the same address as a bare base+index.
//
// in must be a StLEA statement that has not yet been selected.
func SelectAddressMode(in *ir.Instruction) {
	form := in.LeaStatementType

	if form == ir.LeaOffsetOnly && in.Offset != nil && ir.IsConstantValueZero(in.Offset) {
		in.AddressCalculationMode = ir.AddrRegistersOnly
		in.Opcode = moveOpcodeForSize(in.Assignee.Size)
		in.Op2 = nil
		return
	}

	if form == ir.LeaRegistersAndScale && in.LeaMultiplier == 1 {
		form = ir.LeaRegistersOnly
	}

	mode, ok := leaFormToAddrMode[form]
	if !ok {
		ir.Abort("amd64: SelectAddressMode: unknown LeaForm %d", form)
	}
	in.AddressCalculationMode = mode
	in.LeaStatementType = form
	in.Opcode = leaOpcodeForSize(in.Assignee.Size)
}

// leaOpcodeForSize picks LEAW/LEAL/LEAQ for the destination's width. LEA has
// no byte form, nor an SSE form (an address is always a GPR value).
func leaOpcodeForSize(size ir.VarSize) ir.Opcode {
	switch size {
	case ir.Word:
		return ir.LEAW
	case ir.DWord:
		return ir.LEAL
	case ir.QWord:
		return ir.LEAQ
	default:
		ir.Abort("amd64: leaOpcodeForSize: unsupported size %s", size)
		return ir.OpcodeNone
	}
}

// moveOpcodeForSize picks the plain-move opcode for size, used by the
// offset-zero LEA short-circuit.
func moveOpcodeForSize(size ir.VarSize) ir.Opcode {
	switch size {
	case ir.Byte:
		return ir.MOVB
	case ir.Word:
		return ir.MOVW
	case ir.DWord:
		return ir.MOVL
	case ir.QWord:
		return ir.MOVQ
	case ir.Single:
		return ir.MOVSS
	case ir.Double:
		return ir.MOVSD
	default:
		ir.Abort("amd64: moveOpcodeForSize: unsupported size %s", size)
		return ir.OpcodeNone
	}
}
