package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

// gpAllocPool and sseAllocPool are the registers NaiveAllocate hands out.
// RSP and RBP are reserved for the stack frame and never assigned.
var gpAllocPool = []Reg{RAX, RCX, RDX, RBX, RSI, RDI, R8, R9, R10, R11, R12, R13, R14, R15}

func sseAllocPool() []Reg {
	pool := make([]Reg, 16)
	for i := range pool {
		pool[i] = XMM(i)
	}
	return pool
}

// NaiveAllocate is a deterministic stand-in register allocator: round-robin
// over gpAllocPool (every GP register except RSP and RBP, caller- and
// callee-saved alike) and the sixteen XMM registers, one color per live range (or per
// bare variable, if it has none), with no spill heuristics and no
// interference-graph coloring. It exists only so tests and cmd/olliec can
// drive a complete function through selection and printing end to end; it
// is not a substitute for the interference-graph allocator the core
// explicitly leaves external (§1, §3.5).
func NaiveAllocate(fn *ir.Function) {
	gpPool := gpAllocPool
	ssePool := sseAllocPool()
	gpIdx, sseIdx := 0, 0
	assigned := make(map[int]ir.PhysReg)

	assign := func(v *ir.Variable) {
		if v == nil || v.Register != ir.NoPhysReg {
			return
		}
		if v.LiveRange != nil {
			if reg, ok := assigned[v.LiveRange.ID]; ok {
				v.Register = reg
				return
			}
		}

		var reg Reg
		if v.Size == ir.Single || v.Size == ir.Double {
			reg = ssePool[sseIdx%len(ssePool)]
			sseIdx++
		} else {
			reg = gpPool[gpIdx%len(gpPool)]
			gpIdx++
		}
		v.Register = reg.ToPhysReg()

		if v.LiveRange != nil {
			assigned[v.LiveRange.ID] = v.Register
			v.LiveRange.Register = v.Register
		}
	}

	for _, b := range fn.Blocks {
		for _, in := range b.All() {
			assign(in.Assignee)
			assign(in.Op1)
			assign(in.Op2)
			assign(in.ReliesOn)
			assign(in.RipOffsetVar)
			for _, p := range in.Params {
				assign(p)
			}
			if in.Assignee != nil && in.Assignee.Kind == ir.MemoryAddress {
				assign(in.Assignee.AddrOfTemp)
			}
		}
	}
}
