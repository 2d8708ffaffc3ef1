package provider

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockProvider is a hand-authored mock of Provider, shaped the way mockgen
// would emit it, used by heap package tests to assert extend-on-miss
// behaviour (in particular, the "no growth when a fit already exists" law)
// without exercising a real Arena.
type MockProvider struct {
	ctrl     *gomock.Controller
	recorder *MockProviderMockRecorder
}

// MockProviderMockRecorder is the EXPECT() surface for MockProvider.
type MockProviderMockRecorder struct {
	mock *MockProvider
}

// NewMockProvider returns a new mock controlled by ctrl.
func NewMockProvider(ctrl *gomock.Controller) *MockProvider {
	m := &MockProvider{ctrl: ctrl}
	m.recorder = &MockProviderMockRecorder{mock: m}
	return m
}

// EXPECT returns the object used to set expectations on this mock.
func (m *MockProvider) EXPECT() *MockProviderMockRecorder {
	return m.recorder
}

func (m *MockProvider) Extend(bytes int) (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Extend", bytes)
	offset, _ := ret[0].(int)
	ok, _ := ret[1].(bool)
	return offset, ok
}

func (mr *MockProviderMockRecorder) Extend(bytes any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Extend", reflect.TypeOf((*MockProvider)(nil).Extend), bytes)
}

func (m *MockProvider) Words() []int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Words")
	words, _ := ret[0].([]int32)
	return words
}

func (mr *MockProviderMockRecorder) Words() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Words", reflect.TypeOf((*MockProvider)(nil).Words))
}

func (m *MockProvider) Bounds() (int, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bounds")
	low, _ := ret[0].(int)
	high, _ := ret[1].(int)
	return low, high
}

func (mr *MockProviderMockRecorder) Bounds() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bounds", reflect.TypeOf((*MockProvider)(nil).Bounds))
}

var _ Provider = (*MockProvider)(nil)
