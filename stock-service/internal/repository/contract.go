package repository

import (
	"context"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoDBStockRepository looks records up by key: the document id when key
// is an ObjectID hex string, the relationId otherwise.
type MongoDBStockRepository interface {
	AddStock(ctx context.Context, data domain.Stock) (id primitive.ObjectID, err error)
	GetStocks(ctx context.Context, param pkgdto.Filter) (data []domain.Stock, err error)
	GetStockByKey(ctx context.Context, key string) (data domain.Stock, err error)
	SetStockQuantity(ctx context.Context, key string, quantity int64) (data domain.Stock, err error)
	DeleteStock(ctx context.Context, key string) (data domain.Stock, err error)
}
