package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

// ccJumpOpcode maps a resolved BranchCC to its Jcc mnemonic.
func ccJumpOpcode(cc ir.BranchCC) ir.Opcode {
	switch cc {
	case ir.CCG:
		return ir.JG
	case ir.CCL:
		return ir.JL
	case ir.CCGE:
		return ir.JGE
	case ir.CCLE:
		return ir.JLE
	case ir.CCA:
		return ir.JA
	case ir.CCB:
		return ir.JB
	case ir.CCAE:
		return ir.JAE
	case ir.CCBE:
		return ir.JBE
	case ir.CCE:
		return ir.JE
	case ir.CCNE:
		return ir.JNE
	case ir.CCZ:
		return ir.JZ
	case ir.CCNZ:
		return ir.JNZ
	default:
		ir.Abort("amd64: ccJumpOpcode: %s has no Jcc form", cc)
		return ir.OpcodeNone
	}
}

// SelectBranch lowers an abstract StBranch instruction into the concrete
// Jcc/JMP pair §8's end-to-end scenario 4 names: a conditional jump to the
// if-edge followed by an unconditional jump to the else-edge. Any compare
// (or TEST, for the logical-not/catch-all polarity cases) that the
// condition depends on must already have been emitted by the caller; this
// only selects the two control-transfer instructions.
func SelectBranch(a *ir.Arena, in *ir.Instruction) []*ir.Instruction {
	jcc := a.NewConcreteInstruction()
	jcc.Opcode = ccJumpOpcode(in.BranchType)
	jcc.IfBlock = in.IfBlock
	jcc.BranchType = in.BranchType
	in.Block().Append(jcc)

	jmp := a.NewConcreteInstruction()
	jmp.Opcode = ir.JMP
	jmp.IfBlock = in.ElseBlock
	in.Block().Append(jmp)

	return []*ir.Instruction{jcc, jmp}
}
