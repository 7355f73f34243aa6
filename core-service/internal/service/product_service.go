package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	stockservice "github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/stock-service"
	"github.com/alimikegami/pettech-microservices/core-service/internal/repository"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	repo        repository.ProductRepository
	outboxRepo  repository.OutboxRepository
	stockClient stockservice.Client
}

func CreateProductService(repo repository.ProductRepository, outboxRepo repository.OutboxRepository, stockClient stockservice.Client) ProductService {
	return &ProductServiceImpl{repo: repo, outboxRepo: outboxRepo, stockClient: stockClient}
}

// AddProduct stores the product, its categories and a stock outbox event in
// one transaction, then provisions the stock record with the caller's token.
// When provisioning fails the product stays committed and the outbox event
// stays pending for the dispatcher, unless the stock service refused the
// request, in which case the event is closed as rejected.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest, token string) (resp dto.ProductResponse, err error) {
	var product domain.Product
	var event domain.StockOutboxEvent
	var stockReq dto.StockRequest

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		product = domain.Product{
			Name:        data.Name,
			Description: data.Description,
			ImageURL:    data.Image,
			Price:       *data.Price,
		}

		id, err := repo.AddProduct(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id

		product.Categories, err = attachCategories(ctx, repo, id, data.Categories)
		if err != nil {
			return err
		}

		stockReq = dto.StockRequest{
			Name:       product.Name,
			Quantity:   0,
			RelationID: product.ID,
		}

		payload, err := json.Marshal(stockReq)
		if err != nil {
			return err
		}

		timestamp := time.Now().UnixMilli()
		event = domain.StockOutboxEvent{
			ID:        ulid.Make().String(),
			ProductID: product.ID,
			Payload:   payload,
			Status:    domain.OutboxStatusPending,
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		}

		return repo.AddStockOutboxEvent(ctx, event)
	})
	if err != nil {
		return
	}

	_, err = s.stockClient.CreateStock(ctx, stockReq, token)
	if errors.Is(err, stockservice.ErrClientStatus) {
		// The caller's request was refused; the dispatcher must not retry it with its own token.
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Str("product_id", product.ID).Msg("stock provisioning rejected")
		if markErr := s.outboxRepo.MarkStockEventRejected(ctx, event.ID, err.Error()); markErr != nil {
			log.Ctx(ctx).Error().Err(markErr).Str("component", "AddProduct").Str("event_id", event.ID).Msg("")
		}
		return resp, errs.ErrStockProvisioning
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Str("product_id", product.ID).Msg("stock provisioning failed, left for outbox dispatch")
		return resp, errs.ErrStockProvisioning
	}

	if err := s.outboxRepo.MarkStockEventSent(ctx, event.ID); err != nil {
		// The dispatcher finds the existing record and marks it sent later.
		log.Ctx(ctx).Warn().Err(err).Str("component", "AddProduct").Str("event_id", event.ID).Msg("")
	}

	return toProductResponse(product), nil
}

// attachCategories resolves each requested category (by id when given,
// otherwise by name, creating it if missing) and links it to the product.
func attachCategories(ctx context.Context, repo repository.ProductRepository, productID string, reqs []dto.CategoryRequest) ([]domain.Category, error) {
	categories := []domain.Category{}
	ids := []int64{}
	seen := map[int64]bool{}

	for _, req := range reqs {
		var category domain.Category
		var err error

		if req.ID != nil {
			category, err = repo.GetCategoryByID(ctx, *req.ID)
		} else {
			category, err = repo.GetOrCreateCategory(ctx, req.Name)
		}
		if err != nil {
			return nil, err
		}

		if seen[category.ID] {
			continue
		}
		seen[category.ID] = true

		categories = append(categories, category)
		ids = append(ids, category.ID)
	}

	if len(ids) == 0 {
		return categories, nil
	}

	if err := repo.AddProductCategories(ctx, productID, ids); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error) {
	products, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

// UpdateProduct replaces the product fields and its category set. The stock
// record is left untouched.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	product := domain.Product{
		ID:          id,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.Image,
		Price:       *data.Price,
	}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		if err := repo.UpdateProduct(ctx, product); err != nil {
			return err
		}

		if err := repo.DeleteProductCategories(ctx, id); err != nil {
			return err
		}

		var err error
		product.Categories, err = attachCategories(ctx, repo, id, data.Categories)

		return err
	})
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *ProductServiceImpl) AddCategory(ctx context.Context, data dto.CreateCategoryRequest) (resp dto.CategoryResponse, err error) {
	category, err := s.repo.AddCategory(ctx, data.Name)
	if err != nil {
		return
	}

	return toCategoryResponse(category), nil
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	categories := make([]dto.CategoryResponse, 0, len(product.Categories))
	for _, category := range product.Categories {
		categories = append(categories, toCategoryResponse(category))
	}

	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Categories:  categories,
	}
}

func toCategoryResponse(category domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
