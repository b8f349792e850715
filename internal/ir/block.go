package ir

import "strconv"

// BasicBlock is a linear run of Instructions with a single entry (leader)
// and, once laid out, a single physical successor edge. Control-flow-graph
// construction and dominance analysis are out of scope (§1); this type only
// threads the doubly linked instruction list and keeps the leader/exit/count
// triple consistent as instructions are inserted (§3.4 invariant 1).
type BasicBlock struct {
	ID uint32

	leader *Instruction
	tail   *Instruction

	numberOfInstructions int

	// Function is a back-reference to the owning function, for printing
	// and for the selector's per-function state (current label counters
	// etc.); opaque beyond its Name.
	Function *Function
}

// Name renders this block's label, e.g. ".L4".
func (b *BasicBlock) Name() string {
	return ".L" + strconv.FormatUint(uint64(b.ID), 10)
}

// Leader returns the first instruction in the block, or nil if empty.
func (b *BasicBlock) Leader() *Instruction { return b.leader }

// Exit returns the last instruction in the block, or nil if empty. Per the
// fixed Open Question (§9): Exit is always exactly the node whose Next() is
// nil; it is tracked incrementally by insertBefore/insertAfter rather than
// ever being assigned to the wrong node, and NumInstructions is kept in
// step with it.
func (b *BasicBlock) Exit() *Instruction { return b.tail }

// NumInstructions returns the number of instructions currently in the block.
func (b *BasicBlock) NumInstructions() int { return b.numberOfInstructions }

// All returns the instructions of this block in order, front to back. Used
// by both printer fidelity levels (§4.11) and by the disassembly-oriented
// iteration supplement in SPEC_FULL.md.
func (b *BasicBlock) All() []*Instruction {
	out := make([]*Instruction, 0, b.numberOfInstructions)
	for i := b.leader; i != nil; i = i.next {
		out = append(out, i)
	}
	return out
}

// IndexOf returns instr's position within this block (0 = leader), or
// NotFound if instr is not a member of b (§7's recoverable-lookup
// sentinel). Used by diagnostics that report "instruction N of block M"
// without assuming the caller already knows instr belongs to b.
func (b *BasicBlock) IndexOf(instr *Instruction) int {
	i := 0
	for cur := b.leader; cur != nil; cur = cur.next {
		if cur == instr {
			return i
		}
		i++
	}
	return NotFound
}

// insertBefore inserts newInstr immediately before pivot in pivot's block,
// updating leader/tail and the count (§3.4 invariant 1, §8 property 1).
// If pivot is the block's leader, newInstr becomes the new leader.
func insertBefore(newInstr, pivot *Instruction) {
	blk := pivot.blockContainedIn
	newInstr.blockContainedIn = blk
	newInstr.prev = pivot.prev
	newInstr.next = pivot
	if pivot.prev != nil {
		pivot.prev.next = newInstr
	} else {
		blk.leader = newInstr
	}
	pivot.prev = newInstr
	blk.numberOfInstructions++
}

// insertAfter inserts newInstr immediately after pivot in pivot's block.
// This is the site of the fixed Open Question (§9): the block's tail is
// updated to newInstr whenever pivot was the previous tail, never left
// pointing at pivot itself.
func insertAfter(newInstr, pivot *Instruction) {
	blk := pivot.blockContainedIn
	newInstr.blockContainedIn = blk
	newInstr.next = pivot.next
	newInstr.prev = pivot
	if pivot.next != nil {
		pivot.next.prev = newInstr
	} else {
		blk.tail = newInstr
	}
	pivot.next = newInstr
	blk.numberOfInstructions++
}

// Append inserts instr at the tail of the block. Exported for the selector
// (internal/codegen/amd64), which builds concrete instructions directly
// rather than through the abstract emitters in this package.
func (b *BasicBlock) Append(instr *Instruction) {
	b.appendInstruction(instr)
}

// appendInstruction inserts instr at the tail of the block, the common case
// during initial emission.
func (b *BasicBlock) appendInstruction(instr *Instruction) {
	instr.blockContainedIn = b
	if b.tail == nil {
		b.leader = instr
		b.tail = instr
		instr.prev, instr.next = nil, nil
	} else {
		insertAfter(instr, b.tail)
	}
	if b.numberOfInstructions == 0 {
		b.numberOfInstructions = 1
	}
}

// newBasicBlock allocates a fresh, empty BasicBlock owned by fn.
func (a *Arena) newBasicBlock(fn *Function) *BasicBlock {
	b := a.blocks.allocate()
	b.ID = a.nextBlockID
	b.Function = fn
	a.nextBlockID++
	a.allBlocks = append(a.allBlocks, b)
	if fn != nil {
		fn.Blocks = append(fn.Blocks, b)
	}
	return b
}

// Function is the minimal container the printer and selector need: a name,
// its parameter symbols (for prologue/parameter-classification purposes)
// and its basic blocks in layout order. CFG/SSA construction over these
// blocks is external (§1).
type Function struct {
	Name   string
	Params []*Symbol
	Blocks []*BasicBlock

	LocalConstants []*LocalConstant
}
