package repository

import (
	"context"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	GetUserWithPerson(ctx context.Context, id int64) (data domain.UserWithPerson, err error)
	AddPerson(ctx context.Context, data domain.Person) (id int64, err error)
}

type ProductRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error

	AddProduct(ctx context.Context, data domain.Product) (id string, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	AddCategory(ctx context.Context, name string) (data domain.Category, err error)
	GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error)
	GetOrCreateCategory(ctx context.Context, name string) (data domain.Category, err error)
	AddProductCategories(ctx context.Context, productID string, categoryIDs []int64) (err error)
	DeleteProductCategories(ctx context.Context, productID string) (err error)

	AddStockOutboxEvent(ctx context.Context, data domain.StockOutboxEvent) (err error)
}

type OutboxRepository interface {
	ClaimStockEvents(ctx context.Context, limit int, idleFor time.Duration) (data []domain.StockOutboxEvent, err error)
	MarkStockEventSent(ctx context.Context, id string) (err error)
	MarkStockEventFailed(ctx context.Context, id string, reason string) (err error)
	MarkStockEventRejected(ctx context.Context, id string, reason string) (err error)
}
