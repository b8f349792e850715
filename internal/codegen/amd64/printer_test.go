package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func TestPrintInstructionPlainMove(t *testing.T) {
	in := &ir.Instruction{
		Opcode:              ir.MOVL,
		Assignee:            &ir.Variable{Size: ir.DWord},
		SourceRegister:      RAX.ToPhysReg(),
		DestinationRegister: RBX.ToPhysReg(),
	}
	require.Equal(t, "movl %eax, %ebx", PrintInstruction(in, Registers))
}

func TestPrintInstructionImmediateMove(t *testing.T) {
	a := ir.NewArena()
	c, err := a.NewIntegerConstant(ir.I32, 7)
	require.NoError(t, err)
	in := &ir.Instruction{
		Opcode:              ir.MOVL,
		Assignee:            &ir.Variable{Size: ir.DWord},
		SourceImmediate:     c,
		DestinationRegister: RAX.ToPhysReg(),
	}
	require.Equal(t, "movl $7, %eax", PrintInstruction(in, Registers))
}

func TestPrintInstructionALURegPair(t *testing.T) {
	in := &ir.Instruction{
		Opcode:              ir.ADDL,
		Assignee:            &ir.Variable{Size: ir.DWord},
		SourceRegister:      RCX.ToPhysReg(),
		DestinationRegister: RDX.ToPhysReg(),
	}
	require.Equal(t, "addl %ecx, %edx", PrintInstruction(in, Registers))
}

func TestPrintInstructionJccUsesBlockLabel(t *testing.T) {
	blk := &ir.BasicBlock{ID: 3}
	in := &ir.Instruction{Opcode: ir.JG, IfBlock: blk}
	require.Equal(t, "jg .L3", PrintInstruction(in, Registers))
}

func TestPrintInstructionRetAndNop(t *testing.T) {
	require.Equal(t, "ret", PrintInstruction(&ir.Instruction{Opcode: ir.RET}, Registers))
	require.Equal(t, "nop", PrintInstruction(&ir.Instruction{Opcode: ir.NOP}, Registers))
}

func TestPrintInstructionDivideRendersCommentForm(t *testing.T) {
	in := &ir.Instruction{
		Opcode:               ir.IDIVL,
		SourceRegister:       RCX.ToPhysReg(),
		SourceRegister2:      RAX.ToPhysReg(),
		AddressCalcRegister1: RDX.ToPhysReg(),
		DestinationRegister:  RAX.ToPhysReg(),
		DestinationRegister2: RDX.ToPhysReg(),
	}
	got := PrintInstruction(in, Registers)
	require.Equal(t, "idivl %ecx # implicit dividend=%edx:%eax quotient->%eax remainder->%edx", got)
}

func TestPrintInstructionCMOVRendersRegPair(t *testing.T) {
	in := &ir.Instruction{
		Opcode:              ir.CMOVG,
		Assignee:            &ir.Variable{Size: ir.QWord},
		SourceRegister:      RCX.ToPhysReg(),
		DestinationRegister: RAX.ToPhysReg(),
	}
	require.Equal(t, "cmovg %rcx, %rax", PrintInstruction(in, Registers))
}

func TestPrintOperandFallsBackToOIRNameOutsideRegistersMode(t *testing.T) {
	v := &ir.Variable{Kind: ir.Temp, TempID: 5}
	require.Equal(t, "t5", PrintOperand(v, Inline))
}

func TestPrintOperandLiveRangeMode(t *testing.T) {
	v := &ir.Variable{Kind: ir.Temp, TempID: 5, LiveRange: &ir.LiveRange{ID: 2}}
	require.Equal(t, "lr2", PrintOperand(v, LiveRanges))
}
