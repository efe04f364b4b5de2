package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/station/domain"
)

var tracer = otel.Tracer("station-config-repository")

// TracedConfigRepository wraps a ConfigRepository with tracing spans
type TracedConfigRepository struct {
	inner domain.ConfigRepository
}

// NewTracedConfigRepository creates a config repository with tracing
func NewTracedConfigRepository(inner domain.ConfigRepository) *TracedConfigRepository {
	return &TracedConfigRepository{inner: inner}
}

func (r *TracedConfigRepository) GetConfig(ctx context.Context, stationID string) (domain.Config, error) {
	ctx, span := tracer.Start(ctx, "configRepository.GetConfig",
		trace.WithAttributes(attribute.String("station.id", stationID)),
	)
	defer span.End()

	config, err := r.inner.GetConfig(ctx, stationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("config.categories", len(config)))
	return config, nil
}

func (r *TracedConfigRepository) SetAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, available bool) error {
	ctx, span := tracer.Start(ctx, "configRepository.SetAvailability",
		trace.WithAttributes(
			attribute.String("station.id", stationID),
			attribute.String("item.category", string(category)),
			attribute.String("item.id", itemID),
			attribute.Bool("item.available", available),
		),
	)
	defer span.End()

	err := r.inner.SetAvailability(ctx, stationID, category, itemID, available)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracedConfigRepository) SetQuantity(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, quantity float64) error {
	ctx, span := tracer.Start(ctx, "configRepository.SetQuantity",
		trace.WithAttributes(
			attribute.String("station.id", stationID),
			attribute.String("item.category", string(category)),
			attribute.String("item.id", itemID),
			attribute.Float64("item.quantity", quantity),
		),
	)
	defer span.End()

	err := r.inner.SetQuantity(ctx, stationID, category, itemID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracedConfigRepository) SetCategoryAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemIDs []string, available bool) error {
	ctx, span := tracer.Start(ctx, "configRepository.SetCategoryAvailability",
		trace.WithAttributes(
			attribute.String("station.id", stationID),
			attribute.String("item.category", string(category)),
			attribute.Int("item.count", len(itemIDs)),
			attribute.Bool("item.available", available),
		),
	)
	defer span.End()

	err := r.inner.SetCategoryAvailability(ctx, stationID, category, itemIDs, available)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracedConfigRepository) CopyConfig(ctx context.Context, fromStationID, toStationID string) error {
	ctx, span := tracer.Start(ctx, "configRepository.CopyConfig",
		trace.WithAttributes(
			attribute.String("station.from", fromStationID),
			attribute.String("station.to", toStationID),
		),
	)
	defer span.End()

	err := r.inner.CopyConfig(ctx, fromStationID, toStationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracedConfigRepository) SumRequestedQuantities(ctx context.Context) (map[catalogdomain.Category]map[string]float64, error) {
	ctx, span := tracer.Start(ctx, "configRepository.SumRequestedQuantities")
	defer span.End()

	sums, err := r.inner.SumRequestedQuantities(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return sums, nil
}
