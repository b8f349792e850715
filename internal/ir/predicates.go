package ir

// The classification predicates of §4.3: a uniform boolean vocabulary the
// selector and its downstream passes query instead of re-deriving these
// facts ad hoc at each call site. isRelational and generatesTruthfulByte
// already live on SourceOperator (instruction.go); the rest are gathered
// here.

// IsStoreOrLoadOperation reports whether stmt is one of the store/load
// statement classes, including both offset-form variants.
func IsStoreOrLoadOperation(stmt StatementType) bool {
	switch stmt {
	case StLoad, StStore, StLoadOff, StStoreOff:
		return true
	default:
		return false
	}
}

// IsLoadInstruction reports whether instr is a concrete MOV* whose
// memory_access_type is Read.
func IsLoadInstruction(instr *Instruction) bool {
	return instr.Opcode.isMove() && instr.MemoryAccessType == AccessRead
}

// IsBinaryOp reports whether stmt is one of the binary-operation statement
// classes.
func IsBinaryOp(stmt StatementType) bool {
	return stmt == StBinaryOp || stmt == StBinaryOpConst
}

// IsAssignment reports whether stmt is one of the assignment statement
// classes.
func IsAssignment(stmt StatementType) bool {
	return stmt == StAssign || stmt == StAssignConst
}

// IsDestinationAlsoOperand reports whether instr's opcode belongs to the
// ALU-RMW family (§3.4), where the destination operand is also read.
func IsDestinationAlsoOperand(instr *Instruction) bool {
	return instr.Opcode.isALURMW()
}

// IsMoveDestinationAssigned reports whether instr is a concrete MOV* whose
// memory_access_type is not Write, i.e. its destination is a register
// binding rather than a memory store.
func IsMoveDestinationAssigned(instr *Instruction) bool {
	return instr.Opcode.isMove() && instr.MemoryAccessType != AccessWrite
}

// IsUnsignedMultiplication reports whether instr's opcode is one of
// MULB/W/L/Q, as distinct from IMUL's RMW forms.
func IsUnsignedMultiplication(instr *Instruction) bool {
	return instr.Opcode.isUnsignedMultiplication()
}

// IsConstantValueZero reports whether c's integer value is zero, regardless
// of its declared width or signedness.
func IsConstantValueZero(c *Constant) bool {
	return c.Kind.isInteger() && c.UnsignedValue() == 0
}

// IsConstantValueOne reports whether c's integer value is one, regardless
// of its declared width or signedness.
func IsConstantValueOne(c *Constant) bool {
	return c.Kind.isInteger() && c.UnsignedValue() == 1
}

// IsConstantPowerOf2 reports whether c is an integer-kind constant whose
// value is a power of 2 (§8 property 3: "exactly one bit is set AND
// (unsigned or value > 0)"). Unsigned kinds are tested on their raw bit
// pattern: an unsigned value with the high bit set (e.g. 1<<63) is a
// legitimate single-bit power of 2 even though SignedValue() would
// reinterpret it as negative.
func IsConstantPowerOf2(c *Constant) bool {
	if !c.Kind.isInteger() {
		return false
	}
	if !c.Kind.isSigned() {
		u := c.UnsignedValue()
		return u != 0 && u&(u-1) == 0
	}
	v := c.SignedValue()
	return v > 0 && v&(v-1) == 0
}

// IsConstantLeaCompatiblePowerOf2 reports whether c's value is one of the
// four scale factors a single x86-64 LEA/SIB byte can encode: 1, 2, 4, 8.
func IsConstantLeaCompatiblePowerOf2(c *Constant) bool {
	if !c.Kind.isInteger() {
		return false
	}
	switch c.SignedValue() {
	case 1, 2, 4, 8:
		return true
	default:
		return false
	}
}

// IsInstructionPureCopy reports whether instr is a MOV{B,W,L,Q,SS,SD} with
// a source register set and no memory access, i.e. a plain register-to-
// register move.
func IsInstructionPureCopy(instr *Instruction) bool {
	return instr.Opcode.isMove() && instr.SourceRegister != NoPhysReg && instr.MemoryAccessType == AccessNone
}

// IsInstructionConstantAssignment reports whether instr is a
// MOV{B,W,L,Q} with an immediate source operand and no memory access.
func IsInstructionConstantAssignment(instr *Instruction) bool {
	switch instr.Opcode {
	case MOVB, MOVW, MOVL, MOVQ:
	default:
		return false
	}
	return instr.SourceImmediate != nil && instr.MemoryAccessType == AccessNone
}
