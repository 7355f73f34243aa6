package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/config"
	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	stockservice "github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/stock-service"
	"github.com/alimikegami/pettech-microservices/core-service/internal/repository"
	"github.com/alimikegami/pettech-microservices/pkg/utils"
	"github.com/rs/zerolog/log"
)

const (
	serviceTokenSubject = "core-service"
	serviceTokenTTL     = time.Minute
)

type OutboxServiceImpl struct {
	outboxRepo   repository.OutboxRepository
	stockClient  stockservice.Client
	jwtConfig    config.JWTConfig
	outboxConfig config.OutboxConfig
}

func CreateOutboxService(outboxRepo repository.OutboxRepository, stockClient stockservice.Client, jwtConfig config.JWTConfig, outboxConfig config.OutboxConfig) OutboxService {
	return &OutboxServiceImpl{
		outboxRepo:   outboxRepo,
		stockClient:  stockClient,
		jwtConfig:    jwtConfig,
		outboxConfig: outboxConfig,
	}
}

// DispatchStockEvents retries provisioning for pending outbox events that
// have been idle for at least OutboxConfig.IdleFor. An event whose stock
// record already exists is only marked sent. An event the stock service
// refuses with a 4xx is marked rejected and never retried.
func (s *OutboxServiceImpl) DispatchStockEvents(ctx context.Context) (err error) {
	events, err := s.outboxRepo.ClaimStockEvents(ctx, s.outboxConfig.BatchSize, s.outboxConfig.IdleFor)
	if err != nil {
		return
	}

	if len(events) == 0 {
		return nil
	}

	token, err := utils.CreateServiceToken(serviceTokenSubject, s.jwtConfig.Secret, serviceTokenTTL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DispatchStockEvents").Msg("")
		return
	}

	for _, event := range events {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.dispatch(ctx, event, token); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DispatchStockEvents").
				Str("event_id", event.ID).Int("attempts", event.Attempts+1).Msg("")

			markFn := s.outboxRepo.MarkStockEventFailed
			if errors.Is(err, stockservice.ErrClientStatus) {
				markFn = s.outboxRepo.MarkStockEventRejected
			}

			if markErr := markFn(ctx, event.ID, err.Error()); markErr != nil {
				return markErr
			}
			continue
		}

		if err := s.outboxRepo.MarkStockEventSent(ctx, event.ID); err != nil {
			return err
		}

		log.Ctx(ctx).Info().Str("component", "DispatchStockEvents").Str("event_id", event.ID).
			Str("product_id", event.ProductID).Msg("stock provisioned")
	}

	return nil
}

func (s *OutboxServiceImpl) dispatch(ctx context.Context, event domain.StockOutboxEvent, token string) error {
	var req dto.StockRequest
	if err := json.Unmarshal(event.Payload, &req); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	exists, err := s.stockClient.StockExists(ctx, req.RelationID)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = s.stockClient.CreateStock(ctx, req, token)

	return err
}
