package amd64

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func TestNaiveAllocateAssignsDistinctRegistersRoundRobin(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	blk := &ir.BasicBlock{ID: 0, Function: fn}
	fn.Blocks = []*ir.BasicBlock{blk}

	v1 := &ir.Variable{Kind: ir.Temp, Size: ir.DWord, TempID: 1, Register: ir.NoPhysReg}
	v2 := &ir.Variable{Kind: ir.Temp, Size: ir.DWord, TempID: 2, Register: ir.NoPhysReg}
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: v1})
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: v2})

	NaiveAllocate(fn)

	require.True(t, v1.Register != ir.NoPhysReg)
	require.True(t, v2.Register != ir.NoPhysReg)
	require.True(t, v1.Register != v2.Register)
}

func TestNaiveAllocateReusesRegisterWithinLiveRange(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	blk := &ir.BasicBlock{ID: 0, Function: fn}
	fn.Blocks = []*ir.BasicBlock{blk}

	lr := &ir.LiveRange{ID: 7}
	v1 := &ir.Variable{Kind: ir.Temp, Size: ir.DWord, TempID: 1, Register: ir.NoPhysReg, LiveRange: lr}
	v2 := &ir.Variable{Kind: ir.Temp, Size: ir.DWord, TempID: 2, Register: ir.NoPhysReg, LiveRange: lr}
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: v1})
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: v2})

	NaiveAllocate(fn)

	require.Equal(t, v1.Register, v2.Register)
	require.Equal(t, v1.Register, lr.Register)
}

func TestNaiveAllocateSeparatesGPAndSSEPools(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	blk := &ir.BasicBlock{ID: 0, Function: fn}
	fn.Blocks = []*ir.BasicBlock{blk}

	gp := &ir.Variable{Kind: ir.Temp, Size: ir.DWord, TempID: 1, Register: ir.NoPhysReg}
	sse := &ir.Variable{Kind: ir.Temp, Size: ir.Single, TempID: 2, Register: ir.NoPhysReg}
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: gp})
	blk.Append(&ir.Instruction{Statement: ir.StAssign, Assignee: sse})

	NaiveAllocate(fn)

	require.False(t, FromPhysReg(gp.Register).IsSSE())
	require.True(t, FromPhysReg(sse.Register).IsSSE())
}
