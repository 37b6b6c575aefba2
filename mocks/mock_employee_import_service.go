package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"talentsync/internal/domain"
	"talentsync/internal/service"
)

// MockEmployeeImportService is a mock implementation of service.EmployeeImportService.
type MockEmployeeImportService struct {
	mock.Mock
}

func (m *MockEmployeeImportService) Preview(ctx context.Context, input service.PreviewInput) (*domain.PreviewResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreviewResult), args.Error(1)
}

func (m *MockEmployeeImportService) Confirm(ctx context.Context, preview *domain.PreviewResult) (*domain.ConfirmResult, error) {
	args := m.Called(ctx, preview)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmResult), args.Error(1)
}

func (m *MockEmployeeImportService) Import(ctx context.Context, input service.PreviewInput) (*domain.ConfirmResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmResult), args.Error(1)
}
