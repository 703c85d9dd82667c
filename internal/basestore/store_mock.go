package basestore

import (
	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
	"github.com/stretchr/testify/mock"
)

// MockBaselineStore is a mock implementation of BaselineStore for testing.
type MockBaselineStore struct {
	mock.Mock
}

var _ contract.BaselineStore = &MockBaselineStore{} // Compile-time check

// SaveSnapshot implements the BaselineStore interface.
func (m *MockBaselineStore) SaveSnapshot(snap *schema.AnalysisSnapshot) error {
	args := m.Called(snap)
	return args.Error(0)
}

// ListSnapshots implements the BaselineStore interface.
func (m *MockBaselineStore) ListSnapshots(applicationName string, limit int) ([]schema.AnalysisSnapshot, error) {
	args := m.Called(applicationName, limit)
	snaps, _ := args.Get(0).([]schema.AnalysisSnapshot)
	return snaps, args.Error(1)
}

// GetStatus implements the BaselineStore interface.
func (m *MockBaselineStore) GetStatus() (contract.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(contract.StoreStatus), args.Error(1)
}

// Clear implements the BaselineStore interface.
func (m *MockBaselineStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the BaselineStore interface.
func (m *MockBaselineStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
