package ir

import "testing"

import "github.com/jackr276/ollie-language-sub001/internal/testing/require"

func TestAddSubMul(t *testing.T) {
	a := NewArena()

	seven := a.directIntegerConstant(I32, 7)
	three := a.directIntegerConstant(I32, 3)
	Add(seven, three)
	require.Equal(t, int64(10), seven.SignedValue())

	ten := a.directIntegerConstant(I32, 10)
	four := a.directIntegerConstant(I32, 4)
	Sub(ten, four)
	require.Equal(t, int64(6), ten.SignedValue())

	five := a.directIntegerConstant(I32, 5)
	six := a.directIntegerConstant(I32, 6)
	Mul(five, six)
	require.Equal(t, int64(30), five.SignedValue())
}

func TestAddZeroIdentity(t *testing.T) {
	a := NewArena()
	v := a.directIntegerConstant(I64, 42)
	zero := a.directIntegerConstant(I64, 0)
	Add(v, zero)
	require.Equal(t, int64(42), v.SignedValue())
}

func TestMulIdentityAndZero(t *testing.T) {
	a := NewArena()
	v := a.directIntegerConstant(I64, 42)
	one := a.directIntegerConstant(I64, 1)
	Mul(v, one)
	require.Equal(t, int64(42), v.SignedValue())

	v2 := a.directIntegerConstant(I64, 42)
	zero := a.directIntegerConstant(I64, 0)
	Mul(v2, zero)
	require.Equal(t, int64(0), v2.SignedValue())
}

func TestSubSelfIsZero(t *testing.T) {
	a := NewArena()
	v := a.directIntegerConstant(I32, 17)
	v2 := a.directIntegerConstant(I32, 17)
	Sub(v, v2)
	require.Equal(t, int64(0), v.SignedValue())
}

func TestUnsignedFoldUsesOp1Signedness(t *testing.T) {
	a := NewArena()
	u := a.directIntegerConstant(U16, 5)
	s := a.directIntegerConstant(I16, -1)
	Add(u, s)
	require.False(t, u.Kind.isSigned())
	require.Equal(t, uint64(4), u.UnsignedValue())
}

func TestLogicalOrAnd(t *testing.T) {
	a := NewArena()
	c1 := a.directIntegerConstant(I32, 0)
	c2 := a.directIntegerConstant(I32, 7)

	orResult := a.directIntegerConstant(I32, 0)
	*orResult = *c1
	LogicalOr(orResult, c2)
	require.Equal(t, CULong, orResult.Kind)
	require.Equal(t, uint64(1), orResult.UnsignedValue())

	andResult := a.directIntegerConstant(I32, 0)
	*andResult = *c1
	LogicalAnd(andResult, c2)
	require.Equal(t, uint64(0), andResult.UnsignedValue())
}

func TestLogicalOrAndProperties(t *testing.T) {
	a := NewArena()
	zero := a.directIntegerConstant(I32, 0)
	zero2 := a.directIntegerConstant(I32, 0)
	LogicalOr(zero, zero2)
	require.Equal(t, uint64(0), zero.UnsignedValue())

	nz1 := a.directIntegerConstant(I32, 3)
	nz2 := a.directIntegerConstant(I32, 9)
	LogicalAnd(nz1, nz2)
	require.Equal(t, uint64(1), nz1.UnsignedValue())
}

func TestAddRawPromotesToSignedLong(t *testing.T) {
	a := NewArena()
	c := a.directIntegerConstant(U8, 5)
	AddRaw(c, 100)
	require.Equal(t, CLong, c.Kind)
	require.Equal(t, int64(105), c.SignedValue())
}

func TestTruncateToWidth(t *testing.T) {
	require.Equal(t, int64(-1), truncateToWidth(0xFF, 8))
	require.Equal(t, int64(127), truncateToWidth(0x7F, 8))
	require.Equal(t, int64(-128), truncateToWidth(0x80, 8))
}
