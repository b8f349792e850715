package ir

// BranchCC is the concrete condition-code family selected by §4.5's
// branch/set table: the same enumeration serves conditional branches,
// conditional sets, and conditional moves (§4.10), since all three are
// driven by the identical operator+polarity+signedness decision.
type BranchCC uint8

const (
	CCNone BranchCC = iota
	CCG             // greater (signed)
	CCL             // less (signed)
	CCGE            // greater or equal (signed)
	CCLE            // less or equal (signed)
	CCA             // above (unsigned)
	CCB             // below (unsigned)
	CCAE            // above or equal (unsigned)
	CCBE            // below or equal (unsigned)
	CCE             // equal
	CCNE            // not equal
	CCZ             // zero
	CCNZ            // not zero
)

func (c BranchCC) String() string {
	switch c {
	case CCG:
		return "g"
	case CCL:
		return "l"
	case CCGE:
		return "ge"
	case CCLE:
		return "le"
	case CCA:
		return "a"
	case CCB:
		return "b"
	case CCAE:
		return "ae"
	case CCBE:
		return "be"
	case CCE:
		return "e"
	case CCNE:
		return "ne"
	case CCZ:
		return "z"
	case CCNZ:
		return "nz"
	default:
		return "none"
	}
}

// Invert returns the logical inverse of c, used to cross-check §4.5's
// Normal/Inverse polarity pairs (§8 property 5) and to flip a branch when a
// fallthrough-layout pass swaps its target edges.
func (c BranchCC) Invert() BranchCC {
	switch c {
	case CCG:
		return CCLE
	case CCL:
		return CCGE
	case CCGE:
		return CCL
	case CCLE:
		return CCG
	case CCA:
		return CCBE
	case CCB:
		return CCAE
	case CCAE:
		return CCB
	case CCBE:
		return CCA
	case CCE:
		return CCNE
	case CCNE:
		return CCE
	case CCZ:
		return CCNZ
	case CCNZ:
		return CCZ
	default:
		return CCNone
	}
}

// SelectBranch implements §4.5's select_branch table: it maps a relational
// operator (or the logical-not / catch-all cases), a polarity, and a
// signedness flag to the concrete condition code a CMP-then-Jcc sequence
// uses. This lives in the ir package (not codegen/amd64) because the
// branch/set-selection component is core per §2's component table, and
// the same table also drives conditional-move selection (§4.10).
func SelectBranch(op SourceOperator, polarity Polarity, signed bool) BranchCC {
	inverse := polarity == Inverse
	switch op {
	case OpGT:
		switch {
		case signed && !inverse:
			return CCG
		case signed && inverse:
			return CCLE
		case !signed && !inverse:
			return CCA
		default:
			return CCBE
		}
	case OpLT:
		switch {
		case signed && !inverse:
			return CCL
		case signed && inverse:
			return CCGE
		case !signed && !inverse:
			return CCB
		default:
			return CCAE
		}
	case OpGE:
		switch {
		case signed && !inverse:
			return CCGE
		case signed && inverse:
			return CCL
		case !signed && !inverse:
			return CCAE
		default:
			return CCB
		}
	case OpLE:
		switch {
		case signed && !inverse:
			return CCLE
		case signed && inverse:
			return CCG
		case !signed && !inverse:
			return CCBE
		default:
			return CCA
		}
	case OpEQ:
		if !inverse {
			return CCE
		}
		return CCNE
	case OpNE:
		if !inverse {
			return CCNE
		}
		return CCE
	case OpLogicalNotOperator:
		if !inverse {
			return CCZ
		}
		return CCNZ
	default: // catch-all
		if !inverse {
			return CCNZ
		}
		return CCZ
	}
}

// SelectSet is the analogous table for the SETcc/CMOVcc family (§4.5,
// §4.10): identical decision, same result type, kept as a distinct entry
// point because its callers reason about "produce a boolean/selected value"
// rather than "take a branch".
func SelectSet(op SourceOperator, polarity Polarity, signed bool) BranchCC {
	return SelectBranch(op, polarity, signed)
}
