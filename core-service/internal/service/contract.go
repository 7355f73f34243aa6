package service

import (
	"context"

	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
)

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, payload dto.UserRequest) (resp dto.LoginResponse, err error)
	GetUserWithPerson(ctx context.Context, id int64) (resp dto.UserWithPersonResponse, err error)
	AddPerson(ctx context.Context, data dto.PersonRequest) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest, token string) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	AddCategory(ctx context.Context, data dto.CreateCategoryRequest) (resp dto.CategoryResponse, err error)
}

type OutboxService interface {
	DispatchStockEvents(ctx context.Context) (err error)
}
