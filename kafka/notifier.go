package kafka

import (
	"context"

	"github.com/cafeops/eventbrew/pkg/logger"
)

// Notifier adapts the Publisher to the change-notification interface used by
// the catalog, station, and stock write paths. Publishing is best-effort: a
// broker failure is logged, never propagated into the originating write.
type Notifier struct {
	publisher *Publisher
}

// NewNotifier creates a Kafka-backed change notifier
func NewNotifier(publisher *Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) InventoryChanged(ctx context.Context) {
	n.publish(ctx, EventTypeInventoryUpdated, "")
}

func (n *Notifier) StationConfigChanged(ctx context.Context, stationID string) {
	n.publish(ctx, EventTypeStationConfigUpdated, stationID)
}

func (n *Notifier) StockUpdated(ctx context.Context, stationID string) {
	n.publish(ctx, EventTypeStockUpdated, stationID)
}

func (n *Notifier) publish(ctx context.Context, eventType, stationID string) {
	if err := n.publisher.PublishStockEvent(ctx, eventType, stationID); err != nil {
		logger.Warn(ctx).Err(err).
			Str("event_type", eventType).
			Msg("Failed to publish change event")
	}
}
