package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
)

type MockSalesAPI struct {
	mock.Mock
}

func (m *MockSalesAPI) ListProducts(ctx context.Context, token string) ([]entity.Product, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockSalesAPI) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockSalesAPI) ListLeads(ctx context.Context, token, userID string) ([]entity.RawLead, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RawLead), args.Error(1)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) FindByLeadIDs(ctx context.Context, userID string, leadIDs []string) (map[string]entity.LeadSnapshot, error) {
	args := m.Called(ctx, userID, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]entity.LeadSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot entity.LeadSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Delete(ctx context.Context, userID, leadID string) error {
	args := m.Called(ctx, userID, leadID)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadStatusChanged(ctx context.Context, payload queue.LeadStatusChangedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendConversion(to, leadName, categoryName string) error {
	args := m.Called(to, leadName, categoryName)
	return args.Error(0)
}
