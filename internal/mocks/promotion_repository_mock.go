// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockPromotionRepositoryInterface struct {
	mock.Mock
}

func (m *MockPromotionRepositoryInterface) ListActive(ctx context.Context, promotionType model.PromotionType) ([]model.Promotion, error) {
	args := m.Called(ctx, promotionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promotion), args.Error(1)
}

func (m *MockPromotionRepositoryInterface) Create(ctx context.Context, p *model.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromotionRepositoryInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
