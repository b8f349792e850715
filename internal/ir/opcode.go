package ir

// Opcode is the concrete x86-64 instruction chosen by instruction selection
// (§3.4, §4.7–§4.10). OpcodeNone marks an Instruction still in abstract OIR
// form (Instruction.IsAbstract).
//
// The catalog below covers every opcode family §3.4 names explicitly: the
// plain-move family at each integer width plus the two SSE scalar moves;
// the sign- and zero-extending move families; the destination-is-also-
// operand ALU family at each width, plus its SSE arithmetic and compare
// counterparts; the three LEA widths; the CVT conversion family; the
// conditional move, set, and jump families; division and the wide
// unsigned-multiply form with their implicit operand pairs; push/pop both
// via live range and via direct register; and the standalone CALL,
// INDIRECT_CALL, RET, NOP and CBTW/CWTL/CLTD/CQTO extension instructions.
type Opcode uint32

const (
	OpcodeNone Opcode = iota

	// Plain moves, one per integer width plus the two SSE scalar widths.
	MOVB
	MOVW
	MOVL
	MOVQ
	MOVSS
	MOVSD

	// Sign-extending moves (§4.7: "Smaller signed → larger").
	MOVSBW
	MOVSBL
	MOVSBQ
	MOVSWL
	MOVSWQ
	MOVSLQ

	// Zero-extending moves (§4.7: "Smaller unsigned → larger"). Note there
	// is no MOVZLQ: writing a 32-bit GPR already zero-extends into the
	// full 64-bit register on x86-64, so that case selects a plain MOVL.
	MOVZBW
	MOVZBL
	MOVZBQ
	MOVZWL
	MOVZWQ

	// Destination-also-operand integer ALU family (§3.4's ALU-RMW family),
	// one set per width.
	ADDB
	ADDW
	ADDL
	ADDQ
	SUBB
	SUBW
	SUBL
	SUBQ
	IMULW
	IMULL
	IMULQ
	ANDB
	ANDW
	ANDL
	ANDQ
	ORB
	ORW
	ORL
	ORQ
	XORB
	XORW
	XORL
	XORQ
	SARB
	SARW
	SARL
	SARQ
	SHRB
	SHRW
	SHRL
	SHRQ
	SHLB
	SHLW
	SHLL
	SHLQ
	SALB
	SALW
	SALL
	SALQ

	// SSE scalar arithmetic and compare, also destination-also-operand.
	ADDSS
	ADDSD
	SUBSS
	SUBSD
	MULSS
	MULSD
	DIVSS
	DIVSD
	UCOMISS
	UCOMISD

	// LEA, at three widths.
	LEAW
	LEAL
	LEAQ

	// Integer↔float conversion family (§4.7).
	CVTSI2SSL
	CVTSI2SSQ
	CVTSI2SDL
	CVTSI2SDQ
	CVTTSS2SIL
	CVTTSS2SIQ
	CVTTSD2SIL
	CVTTSD2SIQ
	CVTSS2SD
	CVTSD2SS

	// Division, with implicit {RDX:RAX, EDX:EAX, DX:AX, AH:AL} operand
	// pairs (§3.4, §4.8).
	IDIVB
	IDIVW
	IDIVL
	IDIVQ
	DIVB
	DIVW
	DIVL
	DIVQ

	// Wide unsigned multiply: implicit AL/AX/EAX/RAX source, implicit
	// AX/DX:AX/EDX:EAX/RDX:RAX destination pair (§3.4, §4.3
	// is_unsigned_multiplication).
	MULB
	MULW
	MULL
	MULQ

	// Sign-extension instructions preceding a signed divide (§4.8).
	CBTW
	CWTL
	CLTD
	CQTO

	// Unary integer ops.
	NEGB
	NEGW
	NEGL
	NEGQ
	NOTB
	NOTW
	NOTL
	NOTQ
	INCB
	INCW
	INCL
	INCQ
	DECB
	DECW
	DECL
	DECQ
	TESTB
	TESTW
	TESTL
	TESTQ
	CMPB
	CMPW
	CMPL
	CMPQ

	// Conditional move family (§4.10).
	CMOVE
	CMOVNE
	CMOVG
	CMOVL
	CMOVGE
	CMOVLE
	CMOVA
	CMOVAE
	CMOVB
	CMOVBE

	// Conditional set family (§4.5).
	SETE
	SETNE
	SETG
	SETL
	SETGE
	SETLE
	SETA
	SETAE
	SETB
	SETBE

	// Conditional jump family (§4.5), plus the unconditional jump.
	JE
	JNE
	JG
	JL
	JGE
	JLE
	JA
	JAE
	JB
	JBE
	JZ
	JNZ
	JMP

	// Push/pop, both the live-range-indirected form used before register
	// assignment and the direct-register form used only after it (§3.4).
	PUSH_LIVE_RANGE_GP
	PUSH_LIVE_RANGE_SSE
	POP_LIVE_RANGE_GP
	POP_LIVE_RANGE_SSE
	PUSH_DIRECT_GP
	PUSH_DIRECT_SSE
	POP_DIRECT_GP
	POP_DIRECT_SSE

	NOP
	CALL
	INDIRECT_CALL
	RET
)

// isALURMW reports whether op belongs to the destination-is-also-operand
// family (§4.3 is_destination_also_operand).
func (op Opcode) isALURMW() bool {
	switch op {
	case ADDB, ADDW, ADDL, ADDQ, SUBB, SUBW, SUBL, SUBQ,
		IMULW, IMULL, IMULQ,
		SARB, SARW, SARL, SARQ, SHRB, SHRW, SHRL, SHRQ,
		SHLB, SHLW, SHLL, SHLQ, SALB, SALW, SALL, SALQ,
		ANDB, ANDW, ANDL, ANDQ, ORB, ORW, ORL, ORQ, XORB, XORW, XORL, XORQ,
		ADDSS, ADDSD, SUBSS, SUBSD, MULSS, MULSD, DIVSS, DIVSD, UCOMISS, UCOMISD:
		return true
	default:
		return false
	}
}

// isMove reports whether op is any plain or SSE scalar move (MOV* family,
// not the extending MOVS*/MOVZ* forms) — §4.3 is_instruction_pure_copy and
// is_move_destination_assigned both start from this family.
func (op Opcode) isMove() bool {
	switch op {
	case MOVB, MOVW, MOVL, MOVQ, MOVSS, MOVSD:
		return true
	default:
		return false
	}
}

// isUnsignedMultiplication reports whether op is one of the wide-multiply
// opcodes (MULB/W/L/Q), as distinct from IMUL's RMW forms (§4.3).
func (op Opcode) isUnsignedMultiplication() bool {
	switch op {
	case MULB, MULW, MULL, MULQ:
		return true
	default:
		return false
	}
}

// isConditionalJump reports whether op is one of the Jcc family (excludes
// the unconditional JMP).
func (op Opcode) isConditionalJump() bool {
	switch op {
	case JE, JNE, JG, JL, JGE, JLE, JA, JAE, JB, JBE, JZ, JNZ:
		return true
	default:
		return false
	}
}
