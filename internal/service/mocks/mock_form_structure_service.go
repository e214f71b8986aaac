package mocks

import (
	"context"

	"formapi/internal/model"
	"formapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFormStructureService struct {
	mock.Mock
}

func (m *MockFormStructureService) List(ctx context.Context, page, size int) (*service.Page[model.FormStructure], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.FormStructure]), args.Error(1)
}

func (m *MockFormStructureService) Get(ctx context.Context, id int64) (*model.FormStructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormStructure), args.Error(1)
}

func (m *MockFormStructureService) Create(ctx context.Context, in service.FormStructureInput) (*model.FormStructure, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormStructure), args.Error(1)
}

func (m *MockFormStructureService) Update(ctx context.Context, id int64, in service.FormStructureInput) (*model.FormStructure, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormStructure), args.Error(1)
}

func (m *MockFormStructureService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFormStructureService) SearchByName(ctx context.Context, name string, page, size int) (*service.Page[model.FormStructure], error) {
	args := m.Called(ctx, name, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.FormStructure]), args.Error(1)
}

func (m *MockFormStructureService) ListSummaries(ctx context.Context) ([]model.FormSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormSummary), args.Error(1)
}

func (m *MockFormStructureService) Export(ctx context.Context, id int64) (*service.ExportResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
