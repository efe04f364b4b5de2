package kafka

import "time"

// Event types
const (
	EventTypeInventoryUpdated     = "inventory.updated"
	EventTypeStationConfigUpdated = "station.config.updated"
	EventTypeStockUpdated         = "stock.updated"
	EventTypeOrderCompleted       = "order.completed"
)

// Kafka topics
const (
	TopicStockEvents    = "stock-events"
	TopicOrderCompleted = "order-completed"
)

// StockEvent is the envelope for every event this service publishes:
// catalog changes, station config changes, and ledger updates.
type StockEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	StationID string    `json:"station_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderLine is one consumed item of a completed order
type OrderLine struct {
	Category string  `json:"category"`
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

// OrderCompletedEvent is published by the order-processing flow when an
// order is served; consuming it depletes the station's stock ledger.
type OrderCompletedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	StationID string      `json:"station_id"`
	Lines     []OrderLine `json:"lines"`
	Timestamp time.Time   `json:"timestamp"`
}
