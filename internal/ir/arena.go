package ir

// Arena is the process-scoped owner of every IR node (§5). Nothing in this
// package allocates a Variable, Constant, Instruction, BasicBlock,
// LocalConstant or LiveRange except through an Arena method; this is the
// single seam where the "ownership via pooled arenas, not per-node GC
// allocation" design (§1, grounded on the teacher's ssa.pool[T]) is
// enforced.
//
// An Arena is not safe for concurrent use; callers needing parallel
// compilation units create one Arena per unit.
type Arena struct {
	vars        pool[Variable]
	consts      pool[Constant]
	instrs      pool[Instruction]
	blocks      pool[BasicBlock]
	localConsts pool[LocalConstant]
	liveRanges  pool[LiveRange]

	allVars        []*Variable
	allConsts      []*Constant
	allInstrs      []*Instruction
	allBlocks      []*BasicBlock
	allLocalConsts []*LocalConstant
	allLiveRanges  []*LiveRange

	globals []*GlobalVariable

	nextTempID      uint32
	nextLCID        uint32
	nextLiveRangeID int
	nextBlockID     uint32
}

// NewArena returns a fresh, empty Arena.
func NewArena() *Arena {
	a := &Arena{
		vars:        newPool[Variable](),
		consts:      newPool[Constant](),
		instrs:      newPool[Instruction](),
		blocks:      newPool[BasicBlock](),
		localConsts: newPool[LocalConstant](),
		liveRanges:  newPool[LiveRange](),
	}
	return a
}

// Teardown releases every collection owned by this Arena (§5), in a fixed
// order: instructions, blocks, live ranges, local constants, globals,
// constants, and variables last. Each collection is released as a whole;
// individual nodes are not walked.
//
// After Teardown, every pointer this Arena ever handed out is invalid; a
// caller that needs a fresh Arena obtains one from NewArena rather than
// continuing to use this one.
func (a *Arena) Teardown() {
	a.instrs.reset()
	a.allInstrs = nil

	a.blocks.reset()
	a.allBlocks = nil

	a.liveRanges.reset()
	a.allLiveRanges = nil

	a.localConsts.reset()
	a.allLocalConsts = nil

	a.globals = nil

	a.consts.reset()
	a.allConsts = nil

	a.vars.reset()
	a.allVars = nil
}
