package ir

// poolPageSize matches the teacher's ssa.pool page size: large enough that
// an average function's worth of nodes fits a handful of pages, small
// enough that an idle Arena hasn't over-allocated much.
const poolPageSize = 128

// pool is a page-backed bump allocator for a single node type T. It never
// returns individual nodes to the OS; the whole pool is released at once
// when the owning Arena is torn down. This is the arena half of the
// "arena + index vs. pointer graphs" trade-off this core makes (§9): nodes
// are still referenced by pointer, but ownership and bulk teardown are
// centralized here instead of scattered across individual allocation sites.
type pool[T any] struct {
	pages            []*[poolPageSize]T
	allocated, index int
}

func newPool[T any]() pool[T] {
	var p pool[T]
	p.index = poolPageSize
	return p
}

// allocate returns a pointer to a fresh, zero-valued T.
func (p *pool[T]) allocate() *T {
	if p.index == poolPageSize {
		p.pages = append(p.pages, new([poolPageSize]T))
		p.index = 0
	}
	ret := &p.pages[len(p.pages)-1][p.index]
	p.index++
	p.allocated++
	return ret
}

// reset releases every page. Node pointers handed out before reset must not
// be used afterward; this is only safe to call at process teardown.
//
// Unlike the teacher's ssa.pool, whose reset() zeroes each page's contents
// and whose allocate() conditionally reuses an already-capacity'd page slot
// (it is reset and refilled across many functions within one long-lived
// compilation unit, so retaining backing arrays across resets avoids
// reallocating them per function), this Arena's reset is only ever reached
// through Teardown, after which the caller is required to obtain a fresh
// Arena rather than keep using this one (see Teardown's doc comment). There
// is no reset-then-refill cycle to optimize for, so the pages slice is
// simply truncated and left for the garbage collector; keeping the teacher's
// capacity-reuse branch here would add complexity with no reachable benefit.
func (p *pool[T]) reset() {
	p.pages = p.pages[:0]
	p.index = poolPageSize
	p.allocated = 0
}
