package dto

const (
	EventStockCreated = "stock_created"
	EventStockUpdated = "stock_updated"
	EventStockDeleted = "stock_deleted"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type StockEvent struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Quantity   *int64 `json:"quantity,omitempty"`
	RelationID string `json:"relationId,omitempty"`
}
