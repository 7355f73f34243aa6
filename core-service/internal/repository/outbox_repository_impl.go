package repository

import (
	"context"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type OutboxRepositoryImpl struct {
	db *sqlx.DB
}

func CreateOutboxRepository(db *sqlx.DB) OutboxRepository {
	return &OutboxRepositoryImpl{db: db}
}

// ClaimStockEvents returns up to limit pending rows, oldest first, whose
// updated_at is at least idleFor in the past. Claimed rows get updated_at set
// to now, so neither a concurrent dispatcher nor the next run picks them up
// again until idleFor has passed. Fresh rows stay invisible while the inline
// provisioning call that created them may still be in flight.
func (r *OutboxRepositoryImpl) ClaimStockEvents(ctx context.Context, limit int, idleFor time.Duration) (data []domain.StockOutboxEvent, err error) {
	query := `WITH claimed AS (
			UPDATE stock_outbox SET updated_at = $1
			WHERE id IN (
				SELECT id FROM stock_outbox
				WHERE status = $2 AND updated_at <= $3
				ORDER BY created_at
				LIMIT $4
				FOR UPDATE SKIP LOCKED
			)
			RETURNING id, product_id, payload, status, attempts, last_error, created_at, updated_at
		)
		SELECT * FROM claimed ORDER BY created_at`

	now := time.Now()

	data = []domain.StockOutboxEvent{}
	err = r.db.SelectContext(ctx, &data, query, now.UnixMilli(), domain.OutboxStatusPending, now.Add(-idleFor).UnixMilli(), limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ClaimStockEvents").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *OutboxRepositoryImpl) MarkStockEventSent(ctx context.Context, id string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE stock_outbox SET status = $1, last_error = NULL, updated_at = $2 WHERE id = $3",
		domain.OutboxStatusSent, time.Now().UnixMilli(), id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkStockEventSent").Msg("")
		return
	}

	return nil
}

// MarkStockEventFailed records the attempt; the row stays pending for the next run.
func (r *OutboxRepositoryImpl) MarkStockEventFailed(ctx context.Context, id string, reason string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE stock_outbox SET attempts = attempts + 1, last_error = $1, updated_at = $2 WHERE id = $3",
		reason, time.Now().UnixMilli(), id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkStockEventFailed").Msg("")
		return
	}

	return nil
}

// MarkStockEventRejected closes the event for good; the dispatcher skips it.
func (r *OutboxRepositoryImpl) MarkStockEventRejected(ctx context.Context, id string, reason string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE stock_outbox SET status = $1, attempts = attempts + 1, last_error = $2, updated_at = $3 WHERE id = $4",
		domain.OutboxStatusRejected, reason, time.Now().UnixMilli(), id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkStockEventRejected").Msg("")
		return
	}

	return nil
}
