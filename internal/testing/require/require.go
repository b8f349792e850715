// Package require provides a minimal set of test assertions, mirroring the
// shape of the teacher's own internal/testing/require package (referenced
// from ssa/builder_test.go and ssa/opt_test.go but not itself retrieved into
// the pack): a handful of t.Helper-wrapping functions that fail the test
// immediately via t.Fatalf instead of returning a bool for the caller to
// check.
package require

import (
	"reflect"
	"testing"
)

// NoError fails the test if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Error fails the test if err is nil.
func Error(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
}

// True fails the test if v is false.
func True(t *testing.T, v bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !v {
		t.Fatalf("expected true: %v", msgAndArgs)
	}
}

// False fails the test if v is true.
func False(t *testing.T, v bool, msgAndArgs ...interface{}) {
	t.Helper()
	if v {
		t.Fatalf("expected false: %v", msgAndArgs)
	}
}

// Nil fails the test if v is a non-nil value.
func Nil(t *testing.T, v interface{}) {
	t.Helper()
	if v == nil {
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return
		}
	}
	t.Fatalf("expected nil, got %v", v)
}

// NotNil fails the test if v is nil.
func NotNil(t *testing.T, v interface{}) {
	t.Helper()
	if v == nil {
		t.Fatalf("expected non-nil value")
	}
}

// Equal fails the test if exp != actual (via reflect.DeepEqual).
func Equal(t *testing.T, exp, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, actual) {
		t.Fatalf("expected %#v, got %#v", exp, actual)
	}
}
