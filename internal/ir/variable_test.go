package ir

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func i32Type() *Type { return &Type{Class: TypeClassBasic, Basic: I32} }

func TestTempIDsAreMonotonic(t *testing.T) {
	a := NewArena()
	ty := i32Type()
	t1 := a.temp(ty)
	t2 := a.temp(ty)
	require.True(t, t2.TempID > t1.TempID)
	require.Equal(t, DWord, t1.Size)
	require.Equal(t, NoPhysReg, t1.Register)
}

func TestVariableEqualsTemp(t *testing.T) {
	a := NewArena()
	ty := i32Type()
	t1 := a.temp(ty)
	t1Copy := a.varCopy(t1)
	require.True(t, t1.equals(t1Copy))
}

func TestVariableEqualsNonTempSSAGeneration(t *testing.T) {
	a := NewArena()
	sym := &Symbol{Name: "x", Type: i32Type()}

	v1 := a.variable(sym)
	v1.SSAGen = 1
	v2 := a.variable(sym)
	v2.SSAGen = 2

	require.False(t, v1.equals(v2))
	require.True(t, v1.equalsNoSSA(v2))
}

func TestVariableAliasSubstitution(t *testing.T) {
	a := NewArena()
	impl := &Symbol{Name: "hidden", Type: i32Type()}
	param := &Symbol{Name: "p", Type: i32Type(), Alias: impl}

	v := a.variable(param)
	require.Equal(t, impl, v.Symbol)
}

func TestLocalConstantVarReferenceCount(t *testing.T) {
	a := NewArena()
	lc := a.localConstantString("hello")
	require.Equal(t, 0, lc.ReferenceCount)

	v := a.localConstantTemp(lc)
	require.Equal(t, 1, lc.ReferenceCount)
	require.Equal(t, QWord, v.Size)
	require.Equal(t, lc, v.LC)
}

func TestMemoryAddressVarIsAlwaysQWord(t *testing.T) {
	a := NewArena()
	sym := &Symbol{Name: "arr", Type: &Type{Class: TypeClassAggregate, AggregateBytes: 32}}
	v := a.memoryAddressVar(sym)
	require.Equal(t, QWord, v.Size)
	require.Equal(t, MemoryAddress, v.Kind)
}

func TestFunctionPointerTemp(t *testing.T) {
	a := NewArena()
	sig := &FunctionSignature{Name: "f"}
	v := a.functionPointerTemp(sig)
	require.Equal(t, QWord, v.Size)
	require.Equal(t, FunctionAddress, v.Kind)
	require.Equal(t, sig, v.Func)
}

func TestSizeOfBasicTypes(t *testing.T) {
	require.Equal(t, Byte, SizeOf(&Type{Class: TypeClassBasic, Basic: I8}))
	require.Equal(t, Word, SizeOf(&Type{Class: TypeClassBasic, Basic: U16}))
	require.Equal(t, DWord, SizeOf(&Type{Class: TypeClassBasic, Basic: I32}))
	require.Equal(t, QWord, SizeOf(&Type{Class: TypeClassBasic, Basic: U64}))
	require.Equal(t, Single, SizeOf(&Type{Class: TypeClassBasic, Basic: F32}))
	require.Equal(t, Double, SizeOf(&Type{Class: TypeClassBasic, Basic: F64}))
	require.Equal(t, QWord, SizeOf(&Type{Class: TypeClassPointer, Pointee: i32Type()}))
}
