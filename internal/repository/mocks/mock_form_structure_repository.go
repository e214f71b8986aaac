package mocks

import (
	"context"

	"formapi/internal/model"
	"formapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFormStructureRepository struct {
	mock.Mock
}

func (m *MockFormStructureRepository) FindAll(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FormStructure], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.FormStructure]), args.Error(1)
}

func (m *MockFormStructureRepository) FindByID(ctx context.Context, id int64) (*model.FormStructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormStructure), args.Error(1)
}

func (m *MockFormStructureRepository) FindByNameContainingIgnoreCase(ctx context.Context, substring string, pq repository.PageQuery) (*repository.PageResult[model.FormStructure], error) {
	args := m.Called(ctx, substring, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.FormStructure]), args.Error(1)
}

func (m *MockFormStructureRepository) FindAllSummaries(ctx context.Context) ([]model.FormSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormSummary), args.Error(1)
}

func (m *MockFormStructureRepository) Save(ctx context.Context, fs *model.FormStructure) (*model.FormStructure, error) {
	args := m.Called(ctx, fs)
	if f, ok := args.Get(0).(func(context.Context, *model.FormStructure) *model.FormStructure); ok {
		return f(ctx, fs), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormStructure), args.Error(1)
}

func (m *MockFormStructureRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
