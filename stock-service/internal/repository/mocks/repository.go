package mocks

import (
	"context"
	"testing"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoDBStockRepository struct {
	mock.Mock
}

func NewMongoDBStockRepository(t *testing.T) *MongoDBStockRepository {
	m := &MongoDBStockRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MongoDBStockRepository) AddStock(ctx context.Context, data domain.Stock) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MongoDBStockRepository) GetStocks(ctx context.Context, param pkgdto.Filter) ([]domain.Stock, error) {
	args := m.Called(ctx, param)
	data, _ := args.Get(0).([]domain.Stock)
	return data, args.Error(1)
}

func (m *MongoDBStockRepository) GetStockByKey(ctx context.Context, key string) (domain.Stock, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Stock), args.Error(1)
}

func (m *MongoDBStockRepository) SetStockQuantity(ctx context.Context, key string, quantity int64) (domain.Stock, error) {
	args := m.Called(ctx, key, quantity)
	return args.Get(0).(domain.Stock), args.Error(1)
}

func (m *MongoDBStockRepository) DeleteStock(ctx context.Context, key string) (domain.Stock, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Stock), args.Error(1)
}
