package mocks

import (
	"context"
	"testing"

	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func NewUserService(t *testing.T) *UserService {
	m := &UserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserService) AddUser(ctx context.Context, data dto.UserRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *UserService) Login(ctx context.Context, payload dto.UserRequest) (dto.LoginResponse, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

func (m *UserService) GetUserWithPerson(ctx context.Context, id int64) (dto.UserWithPersonResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.UserWithPersonResponse), args.Error(1)
}

func (m *UserService) AddPerson(ctx context.Context, data dto.PersonRequest) error {
	return m.Called(ctx, data).Error(0)
}

type ProductService struct {
	mock.Mock
}

func NewProductService(t *testing.T) *ProductService {
	m := &ProductService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductService) AddProduct(ctx context.Context, data dto.ProductRequest, token string) (dto.ProductResponse, error) {
	args := m.Called(ctx, data, token)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *ProductService) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, filter)
	resp, _ := args.Get(0).([]dto.ProductResponse)
	return resp, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id string) (dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, id, data)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductService) AddCategory(ctx context.Context, data dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(dto.CategoryResponse), args.Error(1)
}
