package testutil

import (
	"github.com/hupe1980/invokectx/core"
	"github.com/stretchr/testify/mock"
)

// MockDocument is a testify mock of core.Document.
type MockDocument struct {
	mock.Mock
}

// ColdStart implements core.Document.
func (m *MockDocument) ColdStart() core.ColdStart {
	args := m.Called()
	return args.Get(0).(core.ColdStart)
}

// SetColdStart implements core.Document.
func (m *MockDocument) SetColdStart(cs core.ColdStart) {
	m.Called(cs)
}
