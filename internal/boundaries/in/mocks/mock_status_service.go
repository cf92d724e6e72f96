// Package mocks provides testify mocks for the input ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
)

// MockStatusService is a mock implementation of in.StatusService.
type MockStatusService struct {
	mock.Mock
}

// NewMockStatusService creates a mock that asserts its expectations on cleanup.
func NewMockStatusService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatusService {
	m := &MockStatusService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Collect provides a mock function with given fields: ctx
func (m *MockStatusService) Collect(ctx context.Context) domain.DeploymentInfo {
	ret := m.Called(ctx)
	if fn, ok := ret.Get(0).(func(context.Context) domain.DeploymentInfo); ok {
		return fn(ctx)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(domain.DeploymentInfo)
}
