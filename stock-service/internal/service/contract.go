package service

import (
	"context"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
)

type StockService interface {
	GetStocks(ctx context.Context, filter pkgdto.Filter) (data []domain.Stock, err error)
	GetStockByKey(ctx context.Context, key string) (data domain.Stock, err error)
	AddStock(ctx context.Context, req dto.StockRequest) (err error)
	UpdateStock(ctx context.Context, key string, req dto.StockQuantityRequest) (err error)
	DeleteStock(ctx context.Context, key string) (err error)
}
