package amd64

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackr276/ollie-language-sub001/internal/ir"
)

// VariablePrintingMode selects how the concrete printer renders a Variable
// operand (§4.11): as a plain inline name, as a block-header parameter, as
// an operand within a fully rendered instruction, as its live-range handle,
// or as its assigned physical register.
type VariablePrintingMode uint8

const (
	Inline VariablePrintingMode = iota
	BlockHeader
	InInstruction
	LiveRanges
	Registers
)

// PrintOperand renders v under mode. Only Registers mode consults the
// physical register; LiveRanges mode renders v's live range as "lr<id>"
// when it has one; every other case falls back to the same OIR-style
// naming the abstract printer uses, matching §9's guidance to keep the
// printing mode a small strategy enum rather than a field on the variable.
func PrintOperand(v *ir.Variable, mode VariablePrintingMode) string {
	if v == nil {
		return "<nil>"
	}
	switch mode {
	case Registers:
		return NameForVar(v)
	case LiveRanges:
		if v.LiveRange != nil {
			return "lr" + strconv.Itoa(v.LiveRange.ID)
		}
		return ir.VarString(v)
	default:
		return ir.VarString(v)
	}
}

// opcodeMnemonics maps each concrete Opcode to its AT&T mnemonic text.
var opcodeMnemonics = map[ir.Opcode]string{
	ir.MOVB: "movb", ir.MOVW: "movw", ir.MOVL: "movl", ir.MOVQ: "movq",
	ir.MOVSS: "movss", ir.MOVSD: "movsd",
	ir.MOVSBW: "movsbw", ir.MOVSBL: "movsbl", ir.MOVSBQ: "movsbq",
	ir.MOVSWL: "movswl", ir.MOVSWQ: "movswq", ir.MOVSLQ: "movslq",
	ir.MOVZBW: "movzbw", ir.MOVZBL: "movzbl", ir.MOVZBQ: "movzbq",
	ir.MOVZWL: "movzwl", ir.MOVZWQ: "movzwq",
	ir.ADDB: "addb", ir.ADDW: "addw", ir.ADDL: "addl", ir.ADDQ: "addq",
	ir.SUBB: "subb", ir.SUBW: "subw", ir.SUBL: "subl", ir.SUBQ: "subq",
	ir.IMULW: "imulw", ir.IMULL: "imull", ir.IMULQ: "imulq",
	ir.ANDB: "andb", ir.ANDW: "andw", ir.ANDL: "andl", ir.ANDQ: "andq",
	ir.ORB: "orb", ir.ORW: "orw", ir.ORL: "orl", ir.ORQ: "orq",
	ir.XORB: "xorb", ir.XORW: "xorw", ir.XORL: "xorl", ir.XORQ: "xorq",
	ir.SARB: "sarb", ir.SARW: "sarw", ir.SARL: "sarl", ir.SARQ: "sarq",
	ir.SHRB: "shrb", ir.SHRW: "shrw", ir.SHRL: "shrl", ir.SHRQ: "shrq",
	ir.SHLB: "shlb", ir.SHLW: "shlw", ir.SHLL: "shll", ir.SHLQ: "shlq",
	ir.SALB: "salb", ir.SALW: "salw", ir.SALL: "sall", ir.SALQ: "salq",
	ir.ADDSS: "addss", ir.ADDSD: "addsd", ir.SUBSS: "subss", ir.SUBSD: "subsd",
	ir.MULSS: "mulss", ir.MULSD: "mulsd", ir.DIVSS: "divss", ir.DIVSD: "divsd",
	ir.UCOMISS: "ucomiss", ir.UCOMISD: "ucomisd",
	ir.LEAW: "leaw", ir.LEAL: "leal", ir.LEAQ: "leaq",
	ir.CVTSI2SSL: "cvtsi2ssl", ir.CVTSI2SSQ: "cvtsi2ssq",
	ir.CVTSI2SDL: "cvtsi2sdl", ir.CVTSI2SDQ: "cvtsi2sdq",
	ir.CVTTSS2SIL: "cvttss2sil", ir.CVTTSS2SIQ: "cvttss2siq",
	ir.CVTTSD2SIL: "cvttsd2sil", ir.CVTTSD2SIQ: "cvttsd2siq",
	ir.CVTSS2SD: "cvtss2sd", ir.CVTSD2SS: "cvtsd2ss",
	ir.IDIVB: "idivb", ir.IDIVW: "idivw", ir.IDIVL: "idivl", ir.IDIVQ: "idivq",
	ir.DIVB: "divb", ir.DIVW: "divw", ir.DIVL: "divl", ir.DIVQ: "divq",
	ir.MULB: "mulb", ir.MULW: "mulw", ir.MULL: "mull", ir.MULQ: "mulq",
	ir.CBTW: "cbtw", ir.CWTL: "cwtl", ir.CLTD: "cltd", ir.CQTO: "cqto",
	ir.NEGB: "negb", ir.NEGW: "negw", ir.NEGL: "negl", ir.NEGQ: "negq",
	ir.NOTB: "notb", ir.NOTW: "notw", ir.NOTL: "notl", ir.NOTQ: "notq",
	ir.INCB: "incb", ir.INCW: "incw", ir.INCL: "incl", ir.INCQ: "incq",
	ir.DECB: "decb", ir.DECW: "decw", ir.DECL: "decl", ir.DECQ: "decq",
	ir.TESTB: "testb", ir.TESTW: "testw", ir.TESTL: "testl", ir.TESTQ: "testq",
	ir.CMPB: "cmpb", ir.CMPW: "cmpw", ir.CMPL: "cmpl", ir.CMPQ: "cmpq",
	ir.CMOVE: "cmove", ir.CMOVNE: "cmovne", ir.CMOVG: "cmovg", ir.CMOVL: "cmovl",
	ir.CMOVGE: "cmovge", ir.CMOVLE: "cmovle", ir.CMOVA: "cmova", ir.CMOVAE: "cmovae",
	ir.CMOVB: "cmovb", ir.CMOVBE: "cmovbe",
	ir.SETE: "sete", ir.SETNE: "setne", ir.SETG: "setg", ir.SETL: "setl",
	ir.SETGE: "setge", ir.SETLE: "setle", ir.SETA: "seta", ir.SETAE: "setae",
	ir.SETB: "setb", ir.SETBE: "setbe",
	ir.JE: "je", ir.JNE: "jne", ir.JG: "jg", ir.JL: "jl", ir.JGE: "jge", ir.JLE: "jle",
	ir.JA: "ja", ir.JAE: "jae", ir.JB: "jb", ir.JBE: "jbe", ir.JZ: "jz", ir.JNZ: "jnz",
	ir.JMP: "jmp",
	ir.PUSH_DIRECT_GP: "pushq", ir.PUSH_DIRECT_SSE: "pushq",
	ir.POP_DIRECT_GP: "popq", ir.POP_DIRECT_SSE: "popq",
	ir.PUSH_LIVE_RANGE_GP: "pushq", ir.PUSH_LIVE_RANGE_SSE: "pushq",
	ir.POP_LIVE_RANGE_GP: "popq", ir.POP_LIVE_RANGE_SSE: "popq",
	ir.NOP: "nop", ir.CALL: "call", ir.INDIRECT_CALL: "call", ir.RET: "ret",
}

func mnemonic(op ir.Opcode) string {
	if m, ok := opcodeMnemonics[op]; ok {
		return m
	}
	return fmt.Sprintf("<opcode %d>", op)
}

// PrintInstruction renders in as AT&T-syntax x86-64 (§4.11, print_instruction):
// percent-prefixed registers, $-prefixed immediates, source-then-destination
// operand order. mode controls how Variable operands that have not yet been
// resolved to physical registers are rendered (ordinarily Registers, once
// allocation has run).
//
// Division instructions are not rendered as a single line (§4.8): the
// implicit dividend/divisor/quotient/remainder registers are named in a
// trailing comment instead of forced into a two-operand AT&T line that
// cannot actually express them.
func PrintInstruction(in *ir.Instruction, mode VariablePrintingMode) string {
	if isDivideOpcode(in.Opcode) {
		return printDivide(in)
	}

	m := mnemonic(in.Opcode)

	switch {
	case in.Opcode >= ir.JE && in.Opcode <= ir.JMP: // Jcc family plus JMP
		return m + " " + blockLabel(in.IfBlock)
	case isCMOVOpcode(in.Opcode) || isSETOpcode(in.Opcode):
		return printRegPair(m, in)
	case in.Opcode == ir.CALL:
		if in.Target != nil {
			return m + " " + in.Target.Name
		}
		return m + " ?"
	case in.Opcode == ir.INDIRECT_CALL:
		return m + " *" + regName(in.SourceRegister, ir.QWord)
	case in.Opcode == ir.RET || in.Opcode == ir.NOP:
		return m
	case in.Opcode >= ir.MOVB && in.Opcode <= ir.MOVSD: // plain MOV{B,W,L,Q,SS,SD}
		return printMove(m, in, mode)
	case ir.IsDestinationAlsoOperand(in):
		return printRegPair(m, in)
	default:
		return printRegPair(m, in)
	}
}

func isCMOVOpcode(op ir.Opcode) bool {
	switch op {
	case ir.CMOVE, ir.CMOVNE, ir.CMOVG, ir.CMOVL, ir.CMOVGE, ir.CMOVLE, ir.CMOVA, ir.CMOVAE, ir.CMOVB, ir.CMOVBE:
		return true
	default:
		return false
	}
}

func isSETOpcode(op ir.Opcode) bool {
	switch op {
	case ir.SETE, ir.SETNE, ir.SETG, ir.SETL, ir.SETGE, ir.SETLE, ir.SETA, ir.SETAE, ir.SETB, ir.SETBE:
		return true
	default:
		return false
	}
}

func isDivideOpcode(op ir.Opcode) bool {
	switch op {
	case ir.IDIVB, ir.IDIVW, ir.IDIVL, ir.IDIVQ, ir.DIVB, ir.DIVW, ir.DIVL, ir.DIVQ:
		return true
	default:
		return false
	}
}

// divideWidth maps a div/idiv opcode to its VarSize, for register naming.
func divideWidth(op ir.Opcode) ir.VarSize {
	switch op {
	case ir.IDIVB, ir.DIVB:
		return ir.Byte
	case ir.IDIVW, ir.DIVW:
		return ir.Word
	case ir.IDIVL, ir.DIVL:
		return ir.DWord
	default:
		return ir.QWord
	}
}

func printDivide(in *ir.Instruction) string {
	size := divideWidth(in.Opcode)
	return fmt.Sprintf("%s %s # implicit dividend=%s:%s quotient->%s remainder->%s",
		mnemonic(in.Opcode), regName(in.SourceRegister, size),
		regName(in.AddressCalcRegister1, size), regName(in.SourceRegister2, size),
		regName(in.DestinationRegister, size), regName(in.DestinationRegister2, size))
}

func regName(r ir.PhysReg, size ir.VarSize) string {
	if r == ir.NoPhysReg {
		return "%?"
	}
	return Name(FromPhysReg(r), size)
}

// printRegPair renders the common two-physical-register AT&T line
// (source, destination), used by the ALU-RMW family, CMOV, and SET.
func printRegPair(mnem string, in *ir.Instruction) string {
	size := destSize(in)
	if in.DestinationRegister != ir.NoPhysReg && in.SourceRegister == ir.NoPhysReg {
		return fmt.Sprintf("%s %s", mnem, regName(in.DestinationRegister, size))
	}
	return fmt.Sprintf("%s %s, %s", mnem, regName(in.SourceRegister, size), regName(in.DestinationRegister, size))
}

// destSize returns the operand width register names are rendered at: the
// size of in.Assignee, or QWord when in.Assignee is nil. The opcode's own
// width suffix is not consulted.
func destSize(in *ir.Instruction) ir.VarSize {
	if in.Assignee != nil {
		return in.Assignee.Size
	}
	return ir.QWord
}

func printMove(mnem string, in *ir.Instruction, mode VariablePrintingMode) string {
	if in.SourceImmediate != nil {
		return fmt.Sprintf("%s $%s, %s", mnem, ir.ConstString(in.SourceImmediate), operandOrReg(in.Assignee, in.DestinationRegister, destSize(in), mode))
	}
	src := operandOrReg(in.Op1, in.SourceRegister, destSize(in), mode)
	dst := operandOrReg(in.Assignee, in.DestinationRegister, destSize(in), mode)
	return fmt.Sprintf("%s %s, %s", mnem, src, dst)
}

func operandOrReg(v *ir.Variable, r ir.PhysReg, size ir.VarSize, mode VariablePrintingMode) string {
	if mode == Registers && r != ir.NoPhysReg {
		return regName(r, size)
	}
	if v != nil {
		return PrintOperand(v, mode)
	}
	return regName(r, size)
}

func blockLabel(b *ir.BasicBlock) string {
	if b == nil {
		return "<nil>"
	}
	return b.Name()
}

// PrintFunction renders every instruction of fn at the given mode, one per
// line, grouped under their block labels.
func PrintFunction(fn *ir.Function, mode VariablePrintingMode) string {
	var sb strings.Builder
	for _, b := range fn.Blocks {
		sb.WriteString(b.Name())
		sb.WriteString(":\n")
		for _, in := range b.All() {
			sb.WriteString("    ")
			sb.WriteString(PrintInstruction(in, mode))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
