package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a new instance of the testing subject.
//
// When a contract needs more than the implementation itself,
// for example the values an Iterable is expected to deliver,
// the Subject should be a struct that holds every required dependency as a field.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a behavioural specification of a role interface.
//
// Any expectation a consumer has towards an implementation should be expressed in a contract,
// so every implementation, built-in or third party, can be verified with the same suite.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements against the implementation.
	Test(*testing.T)
	// Benchmark measures the aspects that matter for the consumers of the role interface.
	Benchmark(*testing.B)
}
