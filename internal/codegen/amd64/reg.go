// Package amd64 lowers the abstract OIR defined in internal/ir to concrete
// x86-64 instructions, address modes and register names, and renders the
// result as AT&T-syntax assembly (§4.6–§4.11).
package amd64

import "github.com/jackr276/ollie-language-sub001/internal/ir"

// Reg is a physical x86-64 register id. The sixteen general-purpose
// registers occupy 0-15 in their encoding order (RAX=0 ... R15=15); the
// sixteen XMM registers occupy 16-31. This lets a single ir.PhysReg value
// address either file without a separate "register class" tag — the
// class is simply which half of the range it falls in.
type Reg uint16

const (
	RAX Reg = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

const xmmBase Reg = 16

// XMM returns the Reg for XMM register n (0-15).
func XMM(n int) Reg { return xmmBase + Reg(n) }

// IsSSE reports whether r names an XMM register.
func (r Reg) IsSSE() bool { return r >= xmmBase }

// FromPhysReg converts an ir.PhysReg (opaque to the core) to a Reg.
func FromPhysReg(p ir.PhysReg) Reg { return Reg(p) }

// ToPhysReg converts a Reg back to the opaque ir.PhysReg the core stores.
func (r Reg) ToPhysReg() ir.PhysReg { return ir.PhysReg(r) }

// gpNames holds, per GP register, its {byte, word, dword, qword} names. The
// first eight registers have irregular historical names (al/ax/eax/rax);
// R8-R15 follow the regular r8b/r8w/r8d/r8 pattern (§4.11 printer
// invariant: "Register names differ by size").
var gpNames = [16][4]string{
	RAX: {"al", "ax", "eax", "rax"},
	RCX: {"cl", "cx", "ecx", "rcx"},
	RDX: {"dl", "dx", "edx", "rdx"},
	RBX: {"bl", "bx", "ebx", "rbx"},
	RSP: {"spl", "sp", "esp", "rsp"},
	RBP: {"bpl", "bp", "ebp", "rbp"},
	RSI: {"sil", "si", "esi", "rsi"},
	RDI: {"dil", "di", "edi", "rdi"},
	R8:  {"r8b", "r8w", "r8d", "r8"},
	R9:  {"r9b", "r9w", "r9d", "r9"},
	R10: {"r10b", "r10w", "r10d", "r10"},
	R11: {"r11b", "r11w", "r11d", "r11"},
	R12: {"r12b", "r12w", "r12d", "r12"},
	R13: {"r13b", "r13w", "r13d", "r13"},
	R14: {"r14b", "r14w", "r14d", "r14"},
	R15: {"r15b", "r15w", "r15d", "r15"},
}

// Name renders r's AT&T-syntax assembler name at the given VarSize. SSE
// register names are identical across Single/Double precision (§4.11).
func Name(r Reg, size ir.VarSize) string {
	if r.IsSSE() {
		return "%xmm" + itoa(int(r-xmmBase))
	}
	if int(r) >= len(gpNames) {
		ir.Abort("amd64: Name: register %d out of range", r)
	}
	switch size {
	case ir.Byte:
		return "%" + gpNames[r][0]
	case ir.Word:
		return "%" + gpNames[r][1]
	case ir.DWord:
		return "%" + gpNames[r][2]
	case ir.QWord:
		return "%" + gpNames[r][3]
	default:
		ir.Abort("amd64: Name: integer register requested at non-integer size %s", size)
		return ""
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// NameForVar renders the register assembler name appropriate to v's size
// class (§4.11: "In Registers mode, the printer consults the live-range's
// assigned register plus the variable's size class").
func NameForVar(v *ir.Variable) string {
	return Name(FromPhysReg(v.Register), v.Size)
}
