// Package mocks contains gomock based test doubles for the iterable interfaces.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockIterable is a mock of the iterable.Iterable interface.
type MockIterable[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIterableMockRecorder[T]
}

// MockIterableMockRecorder is the mock recorder for MockIterable.
type MockIterableMockRecorder[T any] struct {
	mock *MockIterable[T]
}

// NewMockIterable creates a new mock instance.
func NewMockIterable[T any](ctrl *gomock.Controller) *MockIterable[T] {
	mock := &MockIterable[T]{ctrl: ctrl}
	mock.recorder = &MockIterableMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIterable[T]) EXPECT() *MockIterableMockRecorder[T] {
	return m.recorder
}

// Iter mocks base method.
func (m *MockIterable[T]) Iter(yield func(T) bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Iter", yield)
}

// Iter indicates an expected call of Iter.
func (mr *MockIterableMockRecorder[T]) Iter(yield interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iter", reflect.TypeOf((*MockIterable[T])(nil).Iter), yield)
}

// YieldAll can be passed to gomock.Call#Do, to make the mocked Iter push the given values.
// It honours the stop signal of the callback.
func YieldAll[T any](vs ...T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}
