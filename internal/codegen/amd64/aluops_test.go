package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func TestSelectALUOpcodeAddSubBitwise(t *testing.T) {
	require.Equal(t, ir.ADDL, SelectALUOpcode(ir.OpAdd, ir.DWord, true))
	require.Equal(t, ir.SUBQ, SelectALUOpcode(ir.OpSub, ir.QWord, true))
	require.Equal(t, ir.ANDB, SelectALUOpcode(ir.OpBitAnd, ir.Byte, true))
	require.Equal(t, ir.ORW, SelectALUOpcode(ir.OpBitOr, ir.Word, true))
	require.Equal(t, ir.XORL, SelectALUOpcode(ir.OpBitXor, ir.DWord, true))
}

func TestSelectALUOpcodeMulHasNoByteForm(t *testing.T) {
	require.Equal(t, ir.IMULW, SelectALUOpcode(ir.OpMul, ir.Word, true))
	require.Equal(t, ir.IMULL, SelectALUOpcode(ir.OpMul, ir.DWord, true))
	require.Equal(t, ir.IMULQ, SelectALUOpcode(ir.OpMul, ir.QWord, true))
}

func TestSelectALUOpcodeShlAlwaysSAL(t *testing.T) {
	require.Equal(t, ir.SALL, SelectALUOpcode(ir.OpShl, ir.DWord, true))
	require.Equal(t, ir.SALL, SelectALUOpcode(ir.OpShl, ir.DWord, false))
}

func TestSelectALUOpcodeShrSignedVsUnsigned(t *testing.T) {
	require.Equal(t, ir.SARL, SelectALUOpcode(ir.OpShr, ir.DWord, true))
	require.Equal(t, ir.SHRL, SelectALUOpcode(ir.OpShr, ir.DWord, false))
}
