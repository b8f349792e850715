package ir

// LiveRange groups the variables that must share a register (§3.5). The
// core defines the structure and the link from Variable.LiveRange to it;
// the interference-graph build, coloring, and spill decisions themselves
// are the job of an external register allocator.
type LiveRange struct {
	ID int

	Variables []*Variable
	// Interferences is the set of LiveRange ids this range's register
	// choice must not collide with.
	Interferences map[int]struct{}

	Region *StackRegion // set once spilled

	SpillCost   float64
	UseCount    int
	AssignCount int
	Degree      int

	// InterferenceGraphIndex is this range's column/row in an external
	// interference-graph matrix.
	InterferenceGraphIndex int
	// ParamClassIndex mirrors Symbol.ParamClassIndex for ranges seeded from
	// a function parameter.
	ParamClassIndex int

	Precolored bool
	Spilled    bool
	Register   PhysReg
}

// newLiveRange allocates a fresh, empty LiveRange.
func (a *Arena) newLiveRange() *LiveRange {
	lr := a.liveRanges.allocate()
	lr.ID = a.nextLiveRangeID
	lr.Interferences = make(map[int]struct{})
	lr.Register = NoPhysReg
	a.nextLiveRangeID++
	a.allLiveRanges = append(a.allLiveRanges, lr)
	return lr
}

// addInterference records a mutual interference edge between lr and other.
func (lr *LiveRange) addInterference(other *LiveRange) {
	if lr == other {
		return
	}
	lr.Interferences[other.ID] = struct{}{}
	other.Interferences[lr.ID] = struct{}{}
}

// interferesWith reports whether lr and other interfere.
func (lr *LiveRange) interferesWith(other *LiveRange) bool {
	_, ok := lr.Interferences[other.ID]
	return ok
}
