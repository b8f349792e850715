package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func ptrVar(id uint32) *ir.Variable {
	return &ir.Variable{Kind: ir.Temp, Size: ir.QWord, TempID: id, Register: ir.NoPhysReg}
}

func TestSelectAddressModeZeroOffsetDegeneratesToMove(t *testing.T) {
	a := ir.NewArena()
	zero, err := a.NewIntegerConstant(ir.I32, 0)
	require.NoError(t, err)

	in := &ir.Instruction{
		Statement:        ir.StLEA,
		LeaStatementType: ir.LeaOffsetOnly,
		Assignee:         ptrVar(1),
		Op1:              ptrVar(2),
		Op2:              ptrVar(3),
		Offset:           zero,
	}

	SelectAddressMode(in)

	require.Equal(t, ir.AddrRegistersOnly, in.AddressCalculationMode)
	require.Equal(t, ir.MOVQ, in.Opcode)
	require.True(t, in.Op2 == nil)
}

func TestSelectAddressModeScaleOneDegeneratesToRegistersOnly(t *testing.T) {
	in := &ir.Instruction{
		Statement:        ir.StLEA,
		LeaStatementType: ir.LeaRegistersAndScale,
		Assignee:         ptrVar(1),
		Op1:              ptrVar(2),
		Op2:              ptrVar(3),
		LeaMultiplier:    1,
	}

	SelectAddressMode(in)

	require.Equal(t, ir.AddrRegistersOnly, in.AddressCalculationMode)
	require.Equal(t, ir.LeaRegistersOnly, in.LeaStatementType)
	require.Equal(t, ir.LEAQ, in.Opcode)
}

func TestSelectAddressModeScaleFourStaysRegistersAndScale(t *testing.T) {
	dst := ptrVar(1)
	dst.Size = ir.DWord
	in := &ir.Instruction{
		Statement:        ir.StLEA,
		LeaStatementType: ir.LeaRegistersAndScale,
		Assignee:         dst,
		Op1:              ptrVar(2),
		Op2:              ptrVar(3),
		LeaMultiplier:    4,
	}

	SelectAddressMode(in)

	require.Equal(t, ir.AddrRegistersAndScale, in.AddressCalculationMode)
	require.Equal(t, ir.LEAL, in.Opcode)
}

func TestSelectAddressModeRipRelative(t *testing.T) {
	in := &ir.Instruction{
		Statement:        ir.StLEA,
		LeaStatementType: ir.LeaRipRelative,
		Assignee:         ptrVar(1),
		RipOffsetVar:     ptrVar(2),
	}

	SelectAddressMode(in)

	require.Equal(t, ir.AddrRipRelative, in.AddressCalculationMode)
	require.Equal(t, ir.LeaRipRelative, in.LeaStatementType)
}
