// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCategoryRepositoryInterface struct {
	mock.Mock
}

func (m *MockCategoryRepositoryInterface) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepositoryInterface) ListSubcategories(ctx context.Context, categoryID string, activeOnly bool) ([]model.Subcategory, error) {
	args := m.Called(ctx, categoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subcategory), args.Error(1)
}

func (m *MockCategoryRepositoryInterface) CreateCategory(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepositoryInterface) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCategoryRepositoryInterface) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepositoryInterface) DeleteSubcategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
