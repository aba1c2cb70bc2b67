// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCartRepositoryInterface struct {
	mock.Mock
}

func (m *MockCartRepositoryInterface) Load(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSnapshot), args.Error(1)
}

func (m *MockCartRepositoryInterface) Save(ctx context.Context, snapshot model.CartSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockCartRepositoryInterface) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
