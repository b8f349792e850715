// Command olliec is a thin driver over internal/ir and internal/codegen/amd64:
// it assembles one small demonstration function, runs it through ALU-opcode
// and branch selection plus the stub register allocator, and prints the
// result at the fidelity §6 asks for — OIR, concrete selected IR, or final
// AT&T assembly.
//
// It exists only to exercise the core end to end; a real compiler front end
// builds and drives these packages directly instead of shelling out to this
// binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jackr276/ollie-language-sub001/internal/codegen/amd64"
	"github.com/jackr276/ollie-language-sub001/internal/ir"
)

// PrintMode selects which of §6's three fidelity levels olliec renders.
type PrintMode int

const (
	PrintOIR PrintMode = iota
	PrintConcrete
	PrintAssembly
)

func parsePrintMode(s string) (PrintMode, error) {
	switch s {
	case "oir":
		return PrintOIR, nil
	case "concrete":
		return PrintConcrete, nil
	case "asm":
		return PrintAssembly, nil
	default:
		return 0, fmt.Errorf("olliec: unknown -mode %q (want oir, concrete, or asm)", s)
	}
}

func main() {
	modeFlag := flag.String("mode", "asm", "output fidelity: oir, concrete, or asm")
	flag.Parse()

	mode, err := parsePrintMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := ir.NewArena()
	defer a.Teardown()

	fn := buildDemoFunction(a)

	switch mode {
	case PrintOIR:
		fmt.Print(ir.PrintFunctionOIR(fn))
	case PrintConcrete:
		amd64.NaiveAllocate(fn)
		selectFunction(a, fn)
		fmt.Print(amd64.PrintFunction(fn, amd64.LiveRanges))
	case PrintAssembly:
		amd64.NaiveAllocate(fn)
		selectFunction(a, fn)
		fmt.Print(amd64.PrintFunction(fn, amd64.Registers))
	}
}

// buildDemoFunction assembles:
//
//	entry:
//	  sum <- sum + y
//	  cbranch_g entry else exit   (sum > 0)
//	exit:
//	  ret sum
//
// sum is both source and destination of the add, matching x86's
// destination-is-also-operand ALU shape (§4.3) directly rather than
// requiring a preceding move. Enough surface to exercise a binary op and a
// branch without requiring a front end.
func buildDemoFunction(a *ir.Arena) *ir.Function {
	fn := &ir.Function{Name: "demo"}

	i32 := &ir.Type{Class: ir.TypeClassBasic, Basic: ir.I32}
	entry := &ir.BasicBlock{ID: 0, Function: fn}
	exit := &ir.BasicBlock{ID: 1, Function: fn}
	fn.Blocks = []*ir.BasicBlock{entry, exit}

	sum := a.NewTemp(i32)
	y := a.NewTemp(i32)

	entry.Append(&ir.Instruction{
		Statement: ir.StBinaryOp,
		Assignee:  sum,
		Op1:       sum,
		Operator:  ir.OpAdd,
		Op2:       y,
	})
	entry.Append(&ir.Instruction{
		Statement:  ir.StBranch,
		IfBlock:    entry,
		ElseBlock:  exit,
		ReliesOn:   sum,
		BranchType: ir.SelectBranch(ir.OpGT, ir.Normal, true),
	})
	exit.Append(&ir.Instruction{Statement: ir.StRet, Op1: sum})

	return fn
}

// selectFunction lowers every abstract instruction in fn to a concrete one,
// in place, copying each operand's allocated register into the instruction
// record. This is a minimal, demo-scale stand-in for a real selection pass:
// it only handles the statement shapes buildDemoFunction emits, and assumes
// NaiveAllocate has already run.
func selectFunction(a *ir.Arena, fn *ir.Function) {
	for _, b := range fn.Blocks {
		for _, in := range b.All() {
			if in.IsConcrete() {
				continue
			}
			switch in.Statement {
			case ir.StBinaryOp:
				in.Opcode = amd64.SelectALUOpcode(in.Operator, in.Assignee.Size, in.Assignee.Type.Signed())
				in.SourceRegister = in.Op2.Register
				in.DestinationRegister = in.Assignee.Register
			case ir.StBranch:
				amd64.SelectBranch(a, in)
				// The Jcc/JMP pair is appended after in; the abstract
				// branch record itself becomes a NOP.
				in.Opcode = ir.NOP
			case ir.StRet:
				in.Opcode = ir.RET
			}
		}
	}
}
