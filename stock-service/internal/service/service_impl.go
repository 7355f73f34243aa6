package service

import (
	"context"
	"time"

	"github.com/alimikegami/pettech-microservices/stock-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/repository"
	pkgdto "github.com/alimikegami/pettech-microservices/pkg/dto"
	"github.com/rs/zerolog/log"
)

// publishTimeout bounds the time a mutation waits on the broker.
const publishTimeout = 2 * time.Second

type StockServiceImpl struct {
	mongoDBRepo    repository.MongoDBStockRepository
	publisher      kafka.EventPublisher
	publishTimeout time.Duration
}

func CreateStockService(mongoDBRepo repository.MongoDBStockRepository, publisher kafka.EventPublisher) StockService {
	return &StockServiceImpl{mongoDBRepo: mongoDBRepo, publisher: publisher, publishTimeout: publishTimeout}
}

func (s *StockServiceImpl) GetStocks(ctx context.Context, filter pkgdto.Filter) (data []domain.Stock, err error) {
	return s.mongoDBRepo.GetStocks(ctx, filter)
}

func (s *StockServiceImpl) GetStockByKey(ctx context.Context, key string) (data domain.Stock, err error) {
	return s.mongoDBRepo.GetStockByKey(ctx, key)
}

func (s *StockServiceImpl) AddStock(ctx context.Context, req dto.StockRequest) (err error) {
	stock := domain.Stock{
		Name:       req.Name,
		Quantity:   *req.Quantity,
		RelationID: req.RelationID,
	}

	id, err := s.mongoDBRepo.AddStock(ctx, stock)
	if err != nil {
		return
	}

	s.publish(ctx, dto.EventStockCreated, dto.StockEvent{
		ID:         id.Hex(),
		Name:       stock.Name,
		Quantity:   &stock.Quantity,
		RelationID: stock.RelationID,
	})

	return nil
}

func (s *StockServiceImpl) UpdateStock(ctx context.Context, key string, req dto.StockQuantityRequest) (err error) {
	stock, err := s.mongoDBRepo.SetStockQuantity(ctx, key, *req.Stock)
	if err != nil {
		return
	}

	s.publish(ctx, dto.EventStockUpdated, dto.StockEvent{
		ID:         stock.ID.Hex(),
		Name:       stock.Name,
		Quantity:   &stock.Quantity,
		RelationID: stock.RelationID,
	})

	return nil
}

func (s *StockServiceImpl) DeleteStock(ctx context.Context, key string) (err error) {
	stock, err := s.mongoDBRepo.DeleteStock(ctx, key)
	if err != nil {
		return
	}

	s.publish(ctx, dto.EventStockDeleted, dto.StockEvent{
		ID:         stock.ID.Hex(),
		RelationID: stock.RelationID,
	})

	return nil
}

// publish never fails the request: the store write has already happened.
// A slow broker only costs the request publishTimeout.
func (s *StockServiceImpl) publish(ctx context.Context, eventType string, event dto.StockEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, event.ID, dto.KafkaMessage{
		EventType: eventType,
		Data:      event,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publish").Str("event_type", eventType).Msg("")
	}
}
