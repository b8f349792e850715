package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func TestSelectDivideSignedEmitsExtensionThenIDIV(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	div := SelectDivide(a, blk, ir.DWord, true, RAX.ToPhysReg(), RDX.ToPhysReg(), RCX.ToPhysReg(), RAX.ToPhysReg(), RDX.ToPhysReg())

	all := blk.All()
	require.Equal(t, 2, len(all))
	require.Equal(t, ir.CLTD, all[0].Opcode)
	require.Equal(t, ir.IDIVL, all[1].Opcode)
	require.Equal(t, div, all[1])
}

func TestSelectDivideUnsignedZeroesHiRegister(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	SelectDivide(a, blk, ir.DWord, false, RAX.ToPhysReg(), RDX.ToPhysReg(), RCX.ToPhysReg(), RAX.ToPhysReg(), RDX.ToPhysReg())

	all := blk.All()
	require.Equal(t, 2, len(all))
	require.Equal(t, ir.XORL, all[0].Opcode)
	require.Equal(t, ir.DIVL, all[1].Opcode)
}

func TestSelectDivideUnsignedByteHasNoXor(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	SelectDivide(a, blk, ir.Byte, false, RAX.ToPhysReg(), RAX.ToPhysReg(), RCX.ToPhysReg(), RAX.ToPhysReg(), RAX.ToPhysReg())

	all := blk.All()
	require.Equal(t, 1, len(all))
	require.Equal(t, ir.DIVB, all[0].Opcode)
}

func TestSelectUnsignedWideMultiply(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	mul := SelectUnsignedWideMultiply(a, blk, ir.QWord, RAX.ToPhysReg(), RDX.ToPhysReg(), RCX.ToPhysReg())

	require.Equal(t, ir.MULQ, mul.Opcode)
	require.Equal(t, RAX.ToPhysReg(), mul.DestinationRegister)
	require.Equal(t, RDX.ToPhysReg(), mul.DestinationRegister2)
}

func TestSynthesizeIndexedAddressScaleFourUsesSingleLEA(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	instrs := SynthesizeIndexedAddress(a, blk, ir.QWord, RAX.ToPhysReg(), RBX.ToPhysReg(), RCX.ToPhysReg(), 4, nil)

	require.Equal(t, 1, len(instrs))
	require.Equal(t, ir.LEAQ, instrs[0].Opcode)
}

func TestSynthesizeIndexedAddressNonPowerOf2UsesIMULThenADD(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	instrs := SynthesizeIndexedAddress(a, blk, ir.QWord, RAX.ToPhysReg(), RBX.ToPhysReg(), RCX.ToPhysReg(), 3, nil)

	require.Equal(t, 2, len(instrs))
	require.Equal(t, ir.IMULQ, instrs[0].Opcode)
	require.Equal(t, ir.ADDQ, instrs[1].Opcode)
}

func TestSynthesizeIndexedAddressPowerOf2OutsideSIBUsesSALThenADD(t *testing.T) {
	a := ir.NewArena()
	blk := &ir.BasicBlock{}

	instrs := SynthesizeIndexedAddress(a, blk, ir.QWord, RAX.ToPhysReg(), RBX.ToPhysReg(), RCX.ToPhysReg(), 16, nil)

	require.Equal(t, 2, len(instrs))
	require.Equal(t, ir.SALQ, instrs[0].Opcode)
	require.Equal(t, int8(4), instrs[0].LeaMultiplier)
	require.Equal(t, ir.ADDQ, instrs[1].Opcode)
}
