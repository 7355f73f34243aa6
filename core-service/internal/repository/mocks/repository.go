package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/core-service/internal/repository"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t *testing.T) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) GetUserWithPerson(ctx context.Context, id int64) (domain.UserWithPerson, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserWithPerson), args.Error(1)
}

func (m *UserRepository) AddPerson(ctx context.Context, data domain.Person) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}

// ProductRepository runs HandleTrx callbacks against itself, so expectations
// set on the mock cover calls made inside the transaction too.
type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t *testing.T) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	return fn(ctx, m)
}

func (m *ProductRepository) AddProduct(ctx context.Context, data domain.Product) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *ProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]domain.Product)
	return data, args.Error(1)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	return m.Called(ctx, data).Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *ProductRepository) GetCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *ProductRepository) GetOrCreateCategory(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *ProductRepository) AddProductCategories(ctx context.Context, productID string, categoryIDs []int64) error {
	return m.Called(ctx, productID, categoryIDs).Error(0)
}

func (m *ProductRepository) DeleteProductCategories(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *ProductRepository) AddStockOutboxEvent(ctx context.Context, data domain.StockOutboxEvent) error {
	return m.Called(ctx, data).Error(0)
}

type OutboxRepository struct {
	mock.Mock
}

func NewOutboxRepository(t *testing.T) *OutboxRepository {
	m := &OutboxRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OutboxRepository) ClaimStockEvents(ctx context.Context, limit int, idleFor time.Duration) ([]domain.StockOutboxEvent, error) {
	args := m.Called(ctx, limit, idleFor)
	data, _ := args.Get(0).([]domain.StockOutboxEvent)
	return data, args.Error(1)
}

func (m *OutboxRepository) MarkStockEventSent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OutboxRepository) MarkStockEventFailed(ctx context.Context, id string, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *OutboxRepository) MarkStockEventRejected(ctx context.Context, id string, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}
