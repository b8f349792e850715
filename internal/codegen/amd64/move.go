package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

// MemorySide names which side of a move, if any, is computed via an address
// mode rather than being a plain register (§4.7: "memory_access_type is set
// to Read (source is memory) or Write (destination is memory) depending on
// which side is computed via an address mode"). Neither width nor
// signedness determines this — a load and a store can share every other
// selection input — so the caller states it explicitly.
type MemorySide uint8

const (
	MemoryNone MemorySide = iota
	MemorySource
	MemoryDestination
)

// SelectMove implements §4.7: given a destination and source variable, the
// signedness of the conversion (meaningful only for integer widening), and
// which side of the move (if either) is memory-resident, choose the
// concrete move/convert opcode and the memory_access_type it should carry.
// signed is read from the *source*'s declared type — widening a signed
// source sign-extends regardless of the destination's own signedness
// (assigning a negative i32 to a u64 still sign-extends the bit pattern;
// only the printed type differs).
func SelectMove(dst, src *ir.Variable, signed bool, side MemorySide) (ir.Opcode, ir.MemoryAccessType) {
	dstFloat := dst.Type != nil && dst.Type.IsFloat()
	srcFloat := src.Type != nil && src.Type.IsFloat()

	var op ir.Opcode
	switch {
	case dstFloat && srcFloat:
		op = floatToFloat(dst.Size, src.Size)
	case dstFloat && !srcFloat:
		op = intToFloat(dst.Size, src.Size)
	case !dstFloat && srcFloat:
		op = floatToInt(dst.Size, src.Size)
	default:
		op = intToInt(dst.Size, src.Size, signed)
	}
	return op, memoryAccessForSide(side)
}

// memoryAccessForSide maps the caller-stated memory side to the
// memory_access_type the instruction record carries (§3.4: a Write move
// does not assign the destination variable; Read or None does).
func memoryAccessForSide(side MemorySide) ir.MemoryAccessType {
	switch side {
	case MemorySource:
		return ir.AccessRead
	case MemoryDestination:
		return ir.AccessWrite
	default:
		return ir.AccessNone
	}
}

func floatToFloat(dstSize, srcSize ir.VarSize) ir.Opcode {
	switch {
	case dstSize == ir.Single && srcSize == ir.Single:
		return ir.MOVSS
	case dstSize == ir.Double && srcSize == ir.Double:
		return ir.MOVSD
	case dstSize == ir.Double && srcSize == ir.Single:
		return ir.CVTSS2SD
	case dstSize == ir.Single && srcSize == ir.Double:
		return ir.CVTSD2SS
	default:
		ir.Abort("amd64: floatToFloat: unsupported size pair %s/%s", dstSize, srcSize)
		return ir.OpcodeNone
	}
}

// intToFloat picks the CVTSI2SS/CVTSI2SD form for the integer source's
// width (§4.7: "CVTSI2SS{L,Q}, CVTSI2SD{L,Q}").
func intToFloat(dstSize, srcSize ir.VarSize) ir.Opcode {
	wide := srcSize == ir.QWord
	if dstSize == ir.Single {
		if wide {
			return ir.CVTSI2SSQ
		}
		return ir.CVTSI2SSL
	}
	if wide {
		return ir.CVTSI2SDQ
	}
	return ir.CVTSI2SDL
}

// floatToInt picks the truncating CVTTSS2SI/CVTTSD2SI form for the integer
// destination's width (§4.7: "truncating-to-integer conversions use the
// CVTT* forms").
func floatToInt(dstSize, srcSize ir.VarSize) ir.Opcode {
	wide := dstSize == ir.QWord
	if srcSize == ir.Single {
		if wide {
			return ir.CVTTSS2SIQ
		}
		return ir.CVTTSS2SIL
	}
	if wide {
		return ir.CVTTSD2SIQ
	}
	return ir.CVTTSD2SIL
}

func widthRank(size ir.VarSize) int {
	switch size {
	case ir.Byte:
		return 1
	case ir.Word:
		return 2
	case ir.DWord:
		return 3
	case ir.QWord:
		return 4
	default:
		ir.Abort("amd64: widthRank: non-integer size %s", size)
		return 0
	}
}

// intToInt selects a same-width move, a widening sign/zero-extend, or a
// plain narrowing move (§4.7). Narrowing is implicit on x86-64: writing to
// a narrower sub-register simply discards the high bits, so it reuses the
// same-width MOV{B,W,L,Q} opcode at the destination's width.
func intToInt(dstSize, srcSize ir.VarSize, signed bool) ir.Opcode {
	dstRank, srcRank := widthRank(dstSize), widthRank(srcSize)

	if dstRank <= srcRank {
		return moveOpcodeForSize(dstSize)
	}

	if signed {
		switch {
		case srcSize == ir.Byte && dstSize == ir.Word:
			return ir.MOVSBW
		case srcSize == ir.Byte && dstSize == ir.DWord:
			return ir.MOVSBL
		case srcSize == ir.Byte && dstSize == ir.QWord:
			return ir.MOVSBQ
		case srcSize == ir.Word && dstSize == ir.DWord:
			return ir.MOVSWL
		case srcSize == ir.Word && dstSize == ir.QWord:
			return ir.MOVSWQ
		case srcSize == ir.DWord && dstSize == ir.QWord:
			return ir.MOVSLQ
		}
	} else {
		switch {
		case srcSize == ir.Byte && dstSize == ir.Word:
			return ir.MOVZBW
		case srcSize == ir.Byte && dstSize == ir.DWord:
			return ir.MOVZBL
		case srcSize == ir.Byte && dstSize == ir.QWord:
			return ir.MOVZBQ
		case srcSize == ir.Word && dstSize == ir.DWord:
			return ir.MOVZWL
		case srcSize == ir.Word && dstSize == ir.QWord:
			return ir.MOVZWQ
		case srcSize == ir.DWord && dstSize == ir.QWord:
			// Writing a 32-bit GPR already zero-extends into the full
			// 64-bit register; the canonical selection is still a plain
			// MOVL at the source width (§4.7 note).
			return ir.MOVL
		}
	}

	ir.Abort("amd64: intToInt: unreachable width pair dst=%s src=%s", dstSize, srcSize)
	return ir.OpcodeNone
}
