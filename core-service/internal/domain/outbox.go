package domain

import "github.com/jmoiron/sqlx/types"

const (
	OutboxStatusPending  = "pending"
	OutboxStatusSent     = "sent"
	// OutboxStatusRejected marks an event the stock service refused. It is never retried.
	OutboxStatusRejected = "rejected"
)

// StockOutboxEvent records that a product still needs its stock record provisioned.
type StockOutboxEvent struct {
	ID        string         `db:"id"`
	ProductID string         `db:"product_id"`
	Payload   types.JSONText `db:"payload"`
	Status    string         `db:"status"`
	Attempts  int            `db:"attempts"`
	LastError *string        `db:"last_error"`
	CreatedAt int64          `db:"created_at"`
	UpdatedAt int64          `db:"updated_at"`
}
