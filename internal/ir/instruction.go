package ir

// StatementType is the abstract OIR class of an Instruction (§3.4). An
// Instruction is "in" abstract form while Opcode == OpcodeNone; once the
// selector runs it becomes concrete, carrying an Opcode and, usually,
// physical registers instead of Variables.
type StatementType uint8

const (
	StNone StatementType = iota
	StBinaryOp
	StBinaryOpConst
	StAssign
	StAssignConst
	StRet
	StJump
	StBranch
	StCall
	StIndirectCall
	StLoad
	StStore
	StLoadOff
	StStoreOff
	StLEA
	StPhi
	StNeg
	StNot
	StLogicalNot
	StInc
	StDec
	StAsmInline
	StIdle
	StTestIfNotZero
	StMemAccess
	StIndirJumpAddrCalc
	StIndirectJump
	StClear
	StStackAlloc
	StStackDealloc
	StSetNe
)

var statementNames = [...]string{
	StNone: "none", StBinaryOp: "binary_op", StBinaryOpConst: "binary_op_const",
	StAssign: "assign", StAssignConst: "assign_const", StRet: "ret", StJump: "jump",
	StBranch: "branch", StCall: "call", StIndirectCall: "indirect_call", StLoad: "load",
	StStore: "store", StLoadOff: "load_off", StStoreOff: "store_off", StLEA: "lea",
	StPhi: "phi", StNeg: "neg", StNot: "not", StLogicalNot: "logical_not", StInc: "inc",
	StDec: "dec", StAsmInline: "asm", StIdle: "idle", StTestIfNotZero: "test_if_not_zero",
	StMemAccess: "mem_access", StIndirJumpAddrCalc: "indir_jump_addr_calc",
	StIndirectJump: "indirect_jump", StClear: "clear", StStackAlloc: "stack_alloc",
	StStackDealloc: "stack_dealloc", StSetNe: "set_ne",
}

func (s StatementType) String() string {
	if int(s) < len(statementNames) {
		return statementNames[s]
	}
	return "invalid"
}

// MemoryAccessType distinguishes how a move-family instruction touches
// memory (§3.4, GLOSSARY).
type MemoryAccessType uint8

const (
	AccessNone MemoryAccessType = iota
	AccessRead
	AccessWrite
)

func (m MemoryAccessType) String() string {
	switch m {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	default:
		return "none"
	}
}

// SourceOperator is the original source-level token a BinaryOp/
// BinaryOpConst instruction carries (§4.2: "the operator is the original
// source-level token"). The relational subset plus LogicalNotOperator and
// the OpOther catch-all are what §4.5's branch/set selection dispatches on;
// the rest are plain arithmetic/bitwise operators the instruction selector
// maps directly to an ALU opcode family.
type SourceOperator uint8

const (
	OpAdd SourceOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpGT
	OpLT
	OpGE
	OpLE
	OpEQ
	OpNE
	OpLogicalAnd
	OpLogicalOr
	OpLogicalNotOperator
	OpOther
)

// isRelational reports whether op is one of the six relational operators
// (§4.3 is_relational_operator).
func (op SourceOperator) isRelational() bool {
	switch op {
	case OpGT, OpLT, OpGE, OpLE, OpEQ, OpNE:
		return true
	default:
		return false
	}
}

// generatesTruthfulByte reports whether op is one of the short-circuit
// logical operators that produce a 0/1 byte result (§4.3
// generates_truthful_byte).
func (op SourceOperator) generatesTruthfulByte() bool {
	return op == OpLogicalAnd || op == OpLogicalOr
}

// Polarity selects whether a branch takes its if-edge on the condition
// holding (Normal) or failing (Inverse) (GLOSSARY, §4.5).
type Polarity uint8

const (
	Normal Polarity = iota
	Inverse
)

// LeaForm is the abstract shape of a LEA-style address expression, before
// it has been lowered to a concrete x86-64 addressing mode (§4.2).
type LeaForm uint8

const (
	LeaNone LeaForm = iota
	LeaOffsetOnly               // k(r)
	LeaRegistersOnly            // (r1, r2)
	LeaRegistersAndScale        // (r1, r2, s)
	LeaRegistersAndOffset       // k(r1, r2)
	LeaRegistersOffsetAndScale  // k(r1, r2, s)
	LeaRipRelative              // lc(%rip) / f(%rip)
	LeaRipRelativeWithOffset    // k + lc(%rip)
	LeaIndexAndScale            // (, r, s)
	LeaIndexOffsetAndScale      // k(, r, s)
)

// AddrMode is the concrete address-calculation mode an Instruction carries
// once the selector has lowered a LeaForm (§4.6). A handful of modes have no
// LeaForm counterpart (e.g. plain register or RIP-relative-without-offset
// moves use these too), so this is its own enumeration rather than a type
// alias of LeaForm.
type AddrMode uint8

const (
	AddrNone AddrMode = iota
	AddrOffsetOnly
	AddrRegistersOnly
	AddrRegistersAndScale
	AddrRegistersAndOffset
	AddrRegistersOffsetAndScale
	AddrRipRelative
	AddrRipRelativeWithOffset
	AddrIndexAndScale
	AddrIndexOffsetAndScale
)

// Instruction is a discriminated record carrying either an abstract OIR
// statement (Statement set, Opcode == OpcodeNone) or a concrete selected
// x86-64 instruction (Opcode set). See §3.4 for the full field-by-field
// contract; fields not meaningful for a given Statement/Opcode are simply
// left at their zero value, mirroring the teacher's own wide instruction
// record (backend/isa/arm64/instr.go's single `instruction` struct keyed by
// `kind`).
type Instruction struct {
	Statement StatementType
	Opcode    Opcode

	Assignee *Variable
	Op1      *Variable
	Op1Const *Constant // first-operand constant, for *Const statement variants
	Op2      *Variable
	Operator SourceOperator // original source-level operator, for BinaryOp/BinaryOpConst

	// Registers, valid once Opcode != OpcodeNone.
	SourceRegister          PhysReg
	SourceRegister2         PhysReg
	DestinationRegister     PhysReg
	DestinationRegister2    PhysReg
	AddressCalcRegister1    PhysReg // high-part source for divide; also LEA base
	AddressCalcRegister2    PhysReg // LEA index

	SourceImmediate *Constant // immediate operand of a constant move
	Offset          *Constant
	RipOffsetVar    *Variable
	LeaMultiplier   int8 // scale ∈ {1,2,4,8}, or raw shift amount for non-LEA-compatible powers of 2

	IfBlock   *BasicBlock
	ElseBlock *BasicBlock
	ReliesOn  *Variable // condition variable a branch/cmov/set depends on

	Params []*Variable // call arguments, or phi operands (one per predecessor)
	Target *FunctionSignature

	BranchType BranchCC
	AddressCalculationMode AddrMode
	LeaStatementType       LeaForm
	MemoryAccessType       MemoryAccessType

	InlinedAssembly string

	prev, next       *Instruction
	blockContainedIn *BasicBlock
}

// Block returns the BasicBlock this instruction belongs to.
func (i *Instruction) Block() *BasicBlock { return i.blockContainedIn }

// Next and Prev walk the doubly linked list threading this instruction
// through its containing block.
func (i *Instruction) Next() *Instruction { return i.next }
func (i *Instruction) Prev() *Instruction { return i.prev }

// IsAbstract reports whether this instruction is still in OIR form.
func (i *Instruction) IsAbstract() bool { return i.Opcode == OpcodeNone }

// IsConcrete reports whether the selector has lowered this instruction.
func (i *Instruction) IsConcrete() bool { return i.Opcode != OpcodeNone }

// NewConcreteInstruction allocates a bare Instruction for the selector
// (internal/codegen/amd64) to populate directly: unlike newInstruction it
// takes no statement type, since selector-built instructions are often pure
// concrete sequences (sign-extensions, zeroing idioms) with no abstract OIR
// counterpart.
func (a *Arena) NewConcreteInstruction() *Instruction {
	in := a.instrs.allocate()
	in.Opcode = OpcodeNone
	a.allInstrs = append(a.allInstrs, in)
	return in
}

func (a *Arena) newInstruction(stmt StatementType) *Instruction {
	in := a.instrs.allocate()
	in.Statement = stmt
	in.Opcode = OpcodeNone
	a.allInstrs = append(a.allInstrs, in)
	return in
}

// The following are the per-statement-type emitters described in §4.2: each
// allocates an instruction, populates its statement-specific fields, and
// appends it to blk. Binary operations take the original source-level
// operator token; branch emitters take the target blocks, the condition
// variable, and a polarity-resolved condition code (BranchCC).

func (a *Arena) emitBinaryOp(blk *BasicBlock, assignee, op1 *Variable, op SourceOperator, op2 *Variable) *Instruction {
	in := a.newInstruction(StBinaryOp)
	in.Assignee, in.Op1, in.Op2, in.Operator = assignee, op1, op2, op
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitBinaryOpConst(blk *BasicBlock, assignee, op1 *Variable, op SourceOperator, op2 *Constant) *Instruction {
	in := a.newInstruction(StBinaryOpConst)
	in.Assignee, in.Op1, in.Op1Const, in.Operator = assignee, op1, op2, op
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitAssign(blk *BasicBlock, assignee, src *Variable) *Instruction {
	in := a.newInstruction(StAssign)
	in.Assignee, in.Op1 = assignee, src
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitAssignConst(blk *BasicBlock, assignee *Variable, src *Constant) *Instruction {
	in := a.newInstruction(StAssignConst)
	in.Assignee, in.Op1Const = assignee, src
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitRet(blk *BasicBlock, value *Variable) *Instruction {
	in := a.newInstruction(StRet)
	in.Op1 = value
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitJump(blk *BasicBlock, target *BasicBlock) *Instruction {
	in := a.newInstruction(StJump)
	in.IfBlock = target
	blk.appendInstruction(in)
	return in
}

// emitBranch takes the if/else targets, the condition variable the branch
// relies on, and the already polarity-resolved BranchCC (§4.2).
func (a *Arena) emitBranch(blk *BasicBlock, ifBlock, elseBlock *BasicBlock, reliesOn *Variable, branchType BranchCC) *Instruction {
	in := a.newInstruction(StBranch)
	in.IfBlock, in.ElseBlock, in.ReliesOn, in.BranchType = ifBlock, elseBlock, reliesOn, branchType
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitCall(blk *BasicBlock, assignee *Variable, target *FunctionSignature, params []*Variable) *Instruction {
	in := a.newInstruction(StCall)
	in.Assignee, in.Target, in.Params = assignee, target, params
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitIndirectCall(blk *BasicBlock, assignee, callee *Variable, params []*Variable) *Instruction {
	in := a.newInstruction(StIndirectCall)
	in.Assignee, in.Op1, in.Params = assignee, callee, params
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitLoad(blk *BasicBlock, assignee, addr *Variable) *Instruction {
	in := a.newInstruction(StLoad)
	in.Assignee, in.Op1 = assignee, addr
	in.MemoryAccessType = AccessRead
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitStore(blk *BasicBlock, addr, value *Variable) *Instruction {
	in := a.newInstruction(StStore)
	in.Op1, in.Op2 = addr, value
	in.MemoryAccessType = AccessWrite
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitLoadOff(blk *BasicBlock, assignee, base *Variable, offset *Constant) *Instruction {
	in := a.newInstruction(StLoadOff)
	in.Assignee, in.Op1, in.Offset = assignee, base, offset
	in.MemoryAccessType = AccessRead
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitStoreOff(blk *BasicBlock, base *Variable, offset *Constant, value *Variable) *Instruction {
	in := a.newInstruction(StStoreOff)
	in.Op1, in.Offset, in.Op2 = base, offset, value
	in.MemoryAccessType = AccessWrite
	blk.appendInstruction(in)
	return in
}

// emitLEA allocates a LEA statement in any of the nine abstract LeaForm
// shapes, per §4.2's LEA-emitter family. Callers populate only the fields
// relevant to `form`.
func (a *Arena) emitLEA(blk *BasicBlock, form LeaForm, assignee, reg1, reg2 *Variable, scale int8, offset *Constant, ripVar *Variable) *Instruction {
	in := a.newInstruction(StLEA)
	in.Assignee, in.LeaStatementType = assignee, form
	in.Op1, in.Op2, in.LeaMultiplier, in.Offset, in.RipOffsetVar = reg1, reg2, scale, offset, ripVar
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitPhi(blk *BasicBlock, assignee *Variable, params []*Variable) *Instruction {
	in := a.newInstruction(StPhi)
	in.Assignee, in.Params = assignee, params
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitNeg(blk *BasicBlock, assignee, op1 *Variable) *Instruction {
	in := a.newInstruction(StNeg)
	in.Assignee, in.Op1 = assignee, op1
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitNot(blk *BasicBlock, assignee, op1 *Variable) *Instruction {
	in := a.newInstruction(StNot)
	in.Assignee, in.Op1 = assignee, op1
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitLogicalNot(blk *BasicBlock, assignee, op1 *Variable) *Instruction {
	in := a.newInstruction(StLogicalNot)
	in.Assignee, in.Op1 = assignee, op1
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitInc(blk *BasicBlock, assignee *Variable) *Instruction {
	in := a.newInstruction(StInc)
	in.Assignee = assignee
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitDec(blk *BasicBlock, assignee *Variable) *Instruction {
	in := a.newInstruction(StDec)
	in.Assignee = assignee
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitAsmInline(blk *BasicBlock, asm string) *Instruction {
	in := a.newInstruction(StAsmInline)
	in.InlinedAssembly = asm
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitIdle(blk *BasicBlock) *Instruction {
	in := a.newInstruction(StIdle)
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitTestIfNotZero(blk *BasicBlock, reliesOn *Variable) *Instruction {
	in := a.newInstruction(StTestIfNotZero)
	in.ReliesOn = reliesOn
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitMemAccess(blk *BasicBlock, op1 *Variable, kind MemoryAccessType) *Instruction {
	in := a.newInstruction(StMemAccess)
	in.Op1, in.MemoryAccessType = op1, kind
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitIndirJumpAddrCalc(blk *BasicBlock, assignee, base, index *Variable, scale int8, offset *Constant) *Instruction {
	in := a.newInstruction(StIndirJumpAddrCalc)
	in.Assignee, in.Op1, in.Op2, in.LeaMultiplier, in.Offset = assignee, base, index, scale, offset
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitIndirectJump(blk *BasicBlock, target *Variable) *Instruction {
	in := a.newInstruction(StIndirectJump)
	in.Op1 = target
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitClear(blk *BasicBlock, assignee *Variable) *Instruction {
	in := a.newInstruction(StClear)
	in.Assignee = assignee
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitStackAlloc(blk *BasicBlock, bytes *Constant) *Instruction {
	in := a.newInstruction(StStackAlloc)
	in.Offset = bytes
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitStackDealloc(blk *BasicBlock, bytes *Constant) *Instruction {
	in := a.newInstruction(StStackDealloc)
	in.Offset = bytes
	blk.appendInstruction(in)
	return in
}

func (a *Arena) emitSetNe(blk *BasicBlock, assignee, reliesOn *Variable) *Instruction {
	in := a.newInstruction(StSetNe)
	in.Assignee, in.ReliesOn = assignee, reliesOn
	blk.appendInstruction(in)
	return in
}
