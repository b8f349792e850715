package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// operatorSymbols renders a SourceOperator the way OIR mode spells it out
// (§4.11: "t7 <- t3 + t4").
var operatorSymbols = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^", OpShl: "<<", OpShr: ">>",
	OpGT: ">", OpLT: "<", OpGE: ">=", OpLE: "<=", OpEQ: "==", OpNE: "!=",
	OpLogicalAnd: "&&", OpLogicalOr: "||", OpLogicalNotOperator: "!",
	OpOther: "?",
}

func (op SourceOperator) symbol() string {
	if int(op) < len(operatorSymbols) && operatorSymbols[op] != "" {
		return operatorSymbols[op]
	}
	return "?"
}

// varName renders a Variable in OIR mode, independent of any eventual
// register assignment (§3.1, §4.11).
func varName(v *Variable) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case Temp:
		return "t" + strconv.FormatUint(uint64(v.TempID), 10)
	case NonTemp:
		name := "?"
		if v.Symbol != nil {
			name = v.Symbol.Name
		}
		return name + "_" + strconv.FormatUint(uint64(v.SSAGen), 10)
	case MemoryAddress:
		switch {
		case v.AddrOfSymbol != nil:
			return "&" + v.AddrOfSymbol.Name
		case v.AddrOfTemp != nil:
			return "&" + varName(v.AddrOfTemp)
		default:
			return "&?"
		}
	case LocalConstantVar:
		if v.LC != nil {
			return v.LC.Label()
		}
		return ".LC?"
	case FunctionAddress:
		if v.Func != nil {
			return v.Func.Name
		}
		return "func?"
	default:
		return "<invalid>"
	}
}

// VarString renders v the same way OIR mode does, independent of any
// register assignment. Exported for the concrete printer
// (internal/codegen/amd64), whose Inline/BlockHeader/InInstruction
// variable-printing modes fall back to this same rendering.
func VarString(v *Variable) string { return varName(v) }

// ConstString renders c's literal value the same way OIR mode does.
// Exported for the concrete printer's immediate-operand rendering.
func ConstString(c *Constant) string { return constName(c) }

// constName renders a Constant's literal value in OIR mode.
func constName(c *Constant) string {
	if c == nil {
		return "<nil>"
	}
	switch c.Kind {
	case CFloat, CDouble:
		return strconv.FormatFloat(c.FloatValue(), 'g', -1, 64)
	case CString:
		return strconv.Quote(c.StringValue())
	case CRelativeAddress:
		if c.RelativeTo != nil {
			return c.RelativeTo.Label()
		}
		return ".LC?"
	case CChar:
		return strconv.Quote(string(rune(c.UnsignedValue())))
	default:
		if c.Kind.isSigned() {
			return strconv.FormatInt(c.SignedValue(), 10)
		}
		return strconv.FormatUint(c.UnsignedValue(), 10)
	}
}

// paramList joins a Params vector (call arguments or phi operands) the way
// OIR mode spells them out: "t3_1, t3_2".
func paramList(params []*Variable) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = varName(p)
	}
	return strings.Join(names, ", ")
}

// op1Operand renders whichever of Op1/Op1Const is populated, for statement
// variants that may carry either (§3.4: "up to two operands (variable or
// first-operand constant)").
func op1Operand(in *Instruction) string {
	if in.Op1Const != nil {
		return constName(in.Op1Const)
	}
	return varName(in.Op1)
}

// PrintStatement renders in in OIR mode (§4.11, print_three_addr_code_stmt):
// human syntax over the abstract statement, independent of any concrete
// selection. Valid for any Instruction regardless of IsAbstract/IsConcrete,
// since the statement tag and its operand fields persist after selection.
func PrintStatement(in *Instruction) string {
	switch in.Statement {
	case StBinaryOp:
		return fmt.Sprintf("%s <- %s %s %s", varName(in.Assignee), varName(in.Op1), in.Operator.symbol(), varName(in.Op2))
	case StBinaryOpConst:
		return fmt.Sprintf("%s <- %s %s %s", varName(in.Assignee), varName(in.Op1), in.Operator.symbol(), constName(in.Op1Const))
	case StAssign:
		return fmt.Sprintf("%s <- %s", varName(in.Assignee), varName(in.Op1))
	case StAssignConst:
		return fmt.Sprintf("%s <- %s", varName(in.Assignee), constName(in.Op1Const))
	case StRet:
		if in.Op1 == nil {
			return "ret"
		}
		return "ret " + varName(in.Op1)
	case StJump:
		return "jump " + blockName(in.IfBlock)
	case StBranch:
		return fmt.Sprintf("cbranch_%s %s else %s", strings.ToLower(in.BranchType.String()), blockName(in.IfBlock), blockName(in.ElseBlock))
	case StCall:
		target := "?"
		if in.Target != nil {
			target = in.Target.Name
		}
		call := fmt.Sprintf("call %s(%s)", target, paramList(in.Params))
		if in.Assignee == nil {
			return call
		}
		return varName(in.Assignee) + " <- " + call
	case StIndirectCall:
		call := fmt.Sprintf("call *%s(%s)", varName(in.Op1), paramList(in.Params))
		if in.Assignee == nil {
			return call
		}
		return varName(in.Assignee) + " <- " + call
	case StLoad:
		return fmt.Sprintf("load %s <- %s", varName(in.Assignee), varName(in.Op1))
	case StStore:
		return fmt.Sprintf("store %s <- %s", varName(in.Op1), varName(in.Op2))
	case StLoadOff:
		return fmt.Sprintf("load %s <- %s[%s]", varName(in.Assignee), varName(in.Op1), constName(in.Offset))
	case StStoreOff:
		return fmt.Sprintf("store %s[%s] <- %s", varName(in.Op1), constName(in.Offset), varName(in.Op2))
	case StLEA:
		return fmt.Sprintf("%s <- lea %s", varName(in.Assignee), printLeaForm(in))
	case StPhi:
		return fmt.Sprintf("%s <- PHI(%s)", varName(in.Assignee), paramList(in.Params))
	case StNeg:
		return fmt.Sprintf("%s <- -%s", varName(in.Assignee), varName(in.Op1))
	case StNot:
		return fmt.Sprintf("%s <- ~%s", varName(in.Assignee), varName(in.Op1))
	case StLogicalNot:
		return fmt.Sprintf("%s <- !%s", varName(in.Assignee), varName(in.Op1))
	case StInc:
		return varName(in.Assignee) + "++"
	case StDec:
		return varName(in.Assignee) + "--"
	case StAsmInline:
		return "asm " + strconv.Quote(in.InlinedAssembly)
	case StIdle:
		return "idle"
	case StTestIfNotZero:
		return "test " + varName(in.ReliesOn)
	case StMemAccess:
		return fmt.Sprintf("memaccess %s %s", varName(in.Op1), in.MemoryAccessType)
	case StIndirJumpAddrCalc:
		return fmt.Sprintf("%s <- addr %s + %s*%d + %s", varName(in.Assignee), varName(in.Op1), varName(in.Op2), in.LeaMultiplier, constName(in.Offset))
	case StIndirectJump:
		return "jump *" + varName(in.Op1)
	case StClear:
		return "clear " + varName(in.Assignee)
	case StStackAlloc:
		return "stackalloc " + constName(in.Offset)
	case StStackDealloc:
		return "stackdealloc " + constName(in.Offset)
	case StSetNe:
		return fmt.Sprintf("%s <- setne %s", varName(in.Assignee), varName(in.ReliesOn))
	default:
		return "<none>"
	}
}

// printLeaForm renders the abstract LEA form with its concrete
// address-mode syntax (§4.11: "LEA forms render with their concrete
// address-mode syntax").
func printLeaForm(in *Instruction) string {
	switch in.LeaStatementType {
	case LeaOffsetOnly:
		return fmt.Sprintf("%s(%s)", constName(in.Offset), varName(in.Op1))
	case LeaRegistersOnly:
		return fmt.Sprintf("(%s, %s)", varName(in.Op1), varName(in.Op2))
	case LeaRegistersAndScale:
		return fmt.Sprintf("(%s, %s, %d)", varName(in.Op1), varName(in.Op2), in.LeaMultiplier)
	case LeaRegistersAndOffset:
		return fmt.Sprintf("%s(%s, %s)", constName(in.Offset), varName(in.Op1), varName(in.Op2))
	case LeaRegistersOffsetAndScale:
		return fmt.Sprintf("%s(%s, %s, %d)", constName(in.Offset), varName(in.Op1), varName(in.Op2), in.LeaMultiplier)
	case LeaRipRelative:
		return varName(in.RipOffsetVar) + "(%rip)"
	case LeaRipRelativeWithOffset:
		return fmt.Sprintf("%s + %s(%%rip)", constName(in.Offset), varName(in.RipOffsetVar))
	case LeaIndexAndScale:
		return fmt.Sprintf("(, %s, %d)", varName(in.Op2), in.LeaMultiplier)
	case LeaIndexOffsetAndScale:
		return fmt.Sprintf("%s(, %s, %d)", constName(in.Offset), varName(in.Op2), in.LeaMultiplier)
	default:
		return "<no-lea>"
	}
}

func blockName(b *BasicBlock) string {
	if b == nil {
		return "<nil>"
	}
	return b.Name()
}

// PrintBlockOIR renders every instruction in b, one per line, prefixed with
// the block's own label line — the whole-block counterpart to PrintStatement
// used when dumping a function's IR for debugging.
func PrintBlockOIR(b *BasicBlock) string {
	var sb strings.Builder
	sb.WriteString(b.Name())
	sb.WriteString(":\n")
	for _, in := range b.All() {
		sb.WriteString("  ")
		sb.WriteString(PrintStatement(in))
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintFunctionOIR renders every block of fn in layout order.
func PrintFunctionOIR(fn *Function) string {
	var sb strings.Builder
	for _, b := range fn.Blocks {
		sb.WriteString(PrintBlockOIR(b))
	}
	return sb.String()
}
