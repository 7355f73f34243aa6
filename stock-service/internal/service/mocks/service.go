package mocks

import (
	"context"
	"testing"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type StockService struct {
	mock.Mock
}

func NewStockService(t *testing.T) *StockService {
	m := &StockService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StockService) GetStocks(ctx context.Context, filter pkgdto.Filter) ([]domain.Stock, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]domain.Stock)
	return data, args.Error(1)
}

func (m *StockService) GetStockByKey(ctx context.Context, key string) (domain.Stock, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Stock), args.Error(1)
}

func (m *StockService) AddStock(ctx context.Context, req dto.StockRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *StockService) UpdateStock(ctx context.Context, key string, req dto.StockQuantityRequest) error {
	return m.Called(ctx, key, req).Error(0)
}

func (m *StockService) DeleteStock(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
