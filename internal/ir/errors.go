package ir

import (
	"fmt"
	"os"
)

// NotFound is the sentinel returned by recoverable lookups (e.g. dynamic
// set-membership queries) that fail to find their target. Mirrors the
// -1 sentinel described for dynamic_set_contains in the source material,
// rather than threading a (T, bool) pair through every hot lookup.
const NotFound = -1

// abortHook is invoked by Abort. A test in this package can substitute a
// non-exiting hook so a structural-violation path can be asserted without
// killing the test binary; no current test does so.
var abortHook = func(msg string) {
	fmt.Fprintln(os.Stderr, "ollie: internal error:", msg)
	os.Exit(1)
}

// Abort reports a structural violation: a condition that indicates a bug in
// an earlier compiler phase rather than a malformed user program (an unknown
// LEA form, an unsupported constant-kind in a folder, an unsupported basic
// type in a literal-constant emitter). There is no recovery; the process
// terminates after the message is written.
func Abort(format string, args ...interface{}) {
	abortHook(fmt.Sprintf(format, args...))
	panic("unreachable: abortHook did not stop execution")
}

// ClassificationError is returned by input-classification routines (e.g. a
// literal too wide for its declared type) that must surface a diagnosable
// failure to the driver without aborting the process.
type ClassificationError struct {
	Msg string
}

func (e *ClassificationError) Error() string { return e.Msg }

// classificationErrorf builds a *ClassificationError with a formatted message.
func classificationErrorf(format string, args ...interface{}) *ClassificationError {
	return &ClassificationError{Msg: fmt.Sprintf(format, args...)}
}
