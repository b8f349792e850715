package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

func cmovOpcodeForCC(cc ir.BranchCC) ir.Opcode {
	switch cc {
	case ir.CCE:
		return ir.CMOVE
	case ir.CCNE:
		return ir.CMOVNE
	case ir.CCG:
		return ir.CMOVG
	case ir.CCL:
		return ir.CMOVL
	case ir.CCGE:
		return ir.CMOVGE
	case ir.CCLE:
		return ir.CMOVLE
	case ir.CCA:
		return ir.CMOVA
	case ir.CCAE:
		return ir.CMOVAE
	case ir.CCB:
		return ir.CMOVB
	case ir.CCBE:
		return ir.CMOVBE
	default:
		ir.Abort("amd64: cmovOpcodeForCC: %s has no CMOV form", cc)
		return ir.OpcodeNone
	}
}

func setOpcodeForCC(cc ir.BranchCC) ir.Opcode {
	switch cc {
	case ir.CCE:
		return ir.SETE
	case ir.CCNE:
		return ir.SETNE
	case ir.CCG:
		return ir.SETG
	case ir.CCL:
		return ir.SETL
	case ir.CCGE:
		return ir.SETGE
	case ir.CCLE:
		return ir.SETLE
	case ir.CCA:
		return ir.SETA
	case ir.CCAE:
		return ir.SETAE
	case ir.CCB:
		return ir.SETB
	case ir.CCBE:
		return ir.SETBE
	default:
		ir.Abort("amd64: setOpcodeForCC: %s has no SET form", cc)
		return ir.OpcodeNone
	}
}

func cmpOpcodeForSize(size ir.VarSize) ir.Opcode {
	switch size {
	case ir.Byte:
		return ir.CMPB
	case ir.Word:
		return ir.CMPW
	case ir.DWord:
		return ir.CMPL
	case ir.QWord:
		return ir.CMPQ
	default:
		ir.Abort("amd64: cmpOpcodeForSize: unsupported size %s", size)
		return ir.OpcodeNone
	}
}

// SelectConditionalMove implements §4.10: for `dst := a ? b : c` reduced to
// a comparison, emit a CMP comparing lhs against rhs, then a CMOV that
// conditionally copies whenTrueReg into destReg — the same signedness/
// operator table as branch selection (ir.SelectBranch) but rendered as the
// CMOVcc family instead of Jcc. Polarity is always Normal here: the CMOV
// copies precisely when the comparison holds.
func SelectConditionalMove(a *ir.Arena, blk *ir.BasicBlock, op ir.SourceOperator, signed bool, size ir.VarSize, destReg, lhsReg, rhsReg, whenTrueReg ir.PhysReg) (*ir.Instruction, *ir.Instruction) {
	cmp := a.NewConcreteInstruction()
	cmp.Opcode = cmpOpcodeForSize(size)
	cmp.SourceRegister = rhsReg
	cmp.DestinationRegister = lhsReg
	blk.Append(cmp)

	cc := ir.SelectBranch(op, ir.Normal, signed)
	cmov := a.NewConcreteInstruction()
	cmov.Opcode = cmovOpcodeForCC(cc)
	cmov.SourceRegister = whenTrueReg
	cmov.DestinationRegister = destReg
	cmov.BranchType = cc
	cmov.Assignee = &ir.Variable{Kind: ir.Temp, Size: size, Register: destReg}
	blk.Append(cmov)

	return cmp, cmov
}

// SelectSetInstruction emits the SETcc that §4.5's set-selection table
// names: dst := (lhs <op> rhs), rendered as CMP + SETcc producing a 0/1
// byte in dst.
func SelectSetInstruction(a *ir.Arena, blk *ir.BasicBlock, op ir.SourceOperator, signed bool, size ir.VarSize, destReg, lhsReg, rhsReg ir.PhysReg) (*ir.Instruction, *ir.Instruction) {
	cmp := a.NewConcreteInstruction()
	cmp.Opcode = cmpOpcodeForSize(size)
	cmp.SourceRegister = rhsReg
	cmp.DestinationRegister = lhsReg
	blk.Append(cmp)

	cc := ir.SelectSet(op, ir.Normal, signed)
	set := a.NewConcreteInstruction()
	set.Opcode = setOpcodeForCC(cc)
	set.DestinationRegister = destReg
	set.BranchType = cc
	// SETcc always writes a single byte (§4.10), regardless of the width
	// used for the preceding CMP.
	set.Assignee = &ir.Variable{Kind: ir.Temp, Size: ir.Byte, Register: destReg}
	blk.Append(set)

	return cmp, set
}
