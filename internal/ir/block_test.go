package ir

import (
	"testing"

	"github.com/jackr276/ollie-language-sub001/internal/testing/require"
)

func TestAppendInstructionMaintainsLeaderAndExit(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)

	i1 := a.emitIdle(b)
	require.Equal(t, i1, b.Leader())
	require.Equal(t, i1, b.Exit())
	require.Equal(t, 1, b.NumInstructions())

	i2 := a.emitIdle(b)
	require.Equal(t, i1, b.Leader())
	require.Equal(t, i2, b.Exit())
	require.Equal(t, 2, b.NumInstructions())
	require.Equal(t, i2, i1.Next())
	require.Equal(t, i1, i2.Prev())
}

// TestInsertAfterTailUpdatesExitToNewNode is the regression test for the
// fixed Open Question (§9): inserting after the current tail must leave
// Exit() pointing at the newly inserted node, never at the old pivot.
func TestInsertAfterTailUpdatesExitToNewNode(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)

	pivot := a.emitIdle(b)
	inserted := a.newInstruction(StIdle)
	insertAfter(inserted, pivot)

	require.Equal(t, inserted, b.Exit())
	require.True(t, b.Exit().Next() == nil)
	require.Equal(t, 2, b.NumInstructions())
}

func TestInsertBeforeLeaderUpdatesLeader(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)

	pivot := a.emitIdle(b)
	inserted := a.newInstruction(StIdle)
	insertBefore(inserted, pivot)

	require.Equal(t, inserted, b.Leader())
	require.Equal(t, pivot, b.Exit())
	require.Equal(t, 2, b.NumInstructions())
}

func TestInsertBetweenPreservesLinks(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)

	first := a.emitIdle(b)
	last := a.emitIdle(b)
	middle := a.newInstruction(StIdle)
	insertAfter(middle, first)

	require.Equal(t, first, b.Leader())
	require.Equal(t, last, b.Exit())
	require.Equal(t, 3, b.NumInstructions())

	all := b.All()
	require.Equal(t, 3, len(all))
	require.Equal(t, first, all[0])
	require.Equal(t, middle, all[1])
	require.Equal(t, last, all[2])
}

func TestBlockName(t *testing.T) {
	a := NewArena()
	b := a.newBasicBlock(nil)
	require.Equal(t, ".L0", b.Name())
}

func TestIndexOfFindsMember(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)

	first := a.emitIdle(b)
	second := a.emitIdle(b)

	require.Equal(t, 0, b.IndexOf(first))
	require.Equal(t, 1, b.IndexOf(second))
}

func TestIndexOfReturnsNotFoundForNonMember(t *testing.T) {
	a := NewArena()
	fn := &Function{Name: "f"}
	b := a.newBasicBlock(fn)
	other := a.newBasicBlock(fn)

	a.emitIdle(b)
	strayInstr := a.emitIdle(other)

	require.Equal(t, NotFound, b.IndexOf(strayInstr))
}
