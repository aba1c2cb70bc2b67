// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductRepositoryInterface) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepositoryInterface) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepositoryInterface) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepositoryInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepositoryInterface) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockProductRepositoryInterface) SetFeatured(ctx context.Context, id string, featured bool) error {
	args := m.Called(ctx, id, featured)
	return args.Error(0)
}
