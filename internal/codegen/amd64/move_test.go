package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func intVar(size ir.VarSize, basic ir.BasicTypeToken) *ir.Variable {
	return &ir.Variable{Size: size, Type: &ir.Type{Class: ir.TypeClassBasic, Basic: basic}}
}

func TestSelectMoveSameWidthIsPlainMove(t *testing.T) {
	dst := intVar(ir.DWord, ir.I32)
	src := intVar(ir.DWord, ir.I32)
	op, access := SelectMove(dst, src, true, MemoryNone)
	require.Equal(t, ir.MOVL, op)
	require.Equal(t, ir.AccessNone, access)
}

func TestSelectMoveSignedWidening(t *testing.T) {
	dst := intVar(ir.QWord, ir.I64)
	src := intVar(ir.Byte, ir.I8)
	op, _ := SelectMove(dst, src, true, MemoryNone)
	require.Equal(t, ir.MOVSBQ, op)
}

func TestSelectMoveUnsignedWidening(t *testing.T) {
	dst := intVar(ir.DWord, ir.U32)
	src := intVar(ir.Word, ir.U16)
	op, _ := SelectMove(dst, src, false, MemoryNone)
	require.Equal(t, ir.MOVZWL, op)
}

func TestSelectMoveDWordToQWordUnsignedFallsBackToPlainMovl(t *testing.T) {
	dst := intVar(ir.QWord, ir.U64)
	src := intVar(ir.DWord, ir.U32)
	op, _ := SelectMove(dst, src, false, MemoryNone)
	require.Equal(t, ir.MOVL, op)
}

func TestSelectMoveNarrowingIsPlainMoveAtDestWidth(t *testing.T) {
	dst := intVar(ir.Byte, ir.I8)
	src := intVar(ir.QWord, ir.I64)
	op, _ := SelectMove(dst, src, true, MemoryNone)
	require.Equal(t, ir.MOVB, op)
}

func TestSelectMoveIntToFloat(t *testing.T) {
	dst := intVar(ir.Single, ir.F32)
	src := intVar(ir.DWord, ir.I32)
	op, _ := SelectMove(dst, src, true, MemoryNone)
	require.Equal(t, ir.CVTSI2SSL, op)

	src64 := intVar(ir.QWord, ir.I64)
	op64, _ := SelectMove(dst, src64, true, MemoryNone)
	require.Equal(t, ir.CVTSI2SSQ, op64)
}

func TestSelectMoveFloatToIntTruncates(t *testing.T) {
	dst := intVar(ir.DWord, ir.I32)
	src := intVar(ir.Double, ir.F64)
	op, _ := SelectMove(dst, src, true, MemoryNone)
	require.Equal(t, ir.CVTTSD2SIL, op)
}

func TestSelectMoveFloatWidening(t *testing.T) {
	dst := intVar(ir.Double, ir.F64)
	src := intVar(ir.Single, ir.F32)
	op, _ := SelectMove(dst, src, false, MemoryNone)
	require.Equal(t, ir.CVTSS2SD, op)
}

func TestSelectMoveSameWidthFloat(t *testing.T) {
	dst := intVar(ir.Single, ir.F32)
	src := intVar(ir.Single, ir.F32)
	op, _ := SelectMove(dst, src, false, MemoryNone)
	require.Equal(t, ir.MOVSS, op)
}

func TestSelectMoveSourceMemorySideIsAccessRead(t *testing.T) {
	dst := intVar(ir.DWord, ir.I32)
	src := intVar(ir.DWord, ir.I32)
	_, access := SelectMove(dst, src, true, MemorySource)
	require.Equal(t, ir.AccessRead, access)
}

func TestSelectMoveDestinationMemorySideIsAccessWrite(t *testing.T) {
	dst := intVar(ir.DWord, ir.I32)
	src := intVar(ir.DWord, ir.I32)
	_, access := SelectMove(dst, src, true, MemoryDestination)
	require.Equal(t, ir.AccessWrite, access)
}
