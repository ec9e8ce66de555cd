package adapters

import (
	"context"

	"courier-backoffice/internal/core/logger"
	"courier-backoffice/internal/features/fleet/domain"
	"courier-backoffice/internal/features/fleet/ports"

	"go.uber.org/zap"
)

// FallbackDataSource decorates a remote data source with a transparent
// sample-dataset fallback: every failed remote call is logged and answered
// from the in-memory sample store instead of propagating the failure.
type FallbackDataSource struct {
	remote ports.DataSource
	sample *SampleDataSource
}

// NewFallbackDataSource creates a new FallbackDataSource.
func NewFallbackDataSource(remote ports.DataSource, sample *SampleDataSource) *FallbackDataSource {
	return &FallbackDataSource{
		remote: remote,
		sample: sample,
	}
}

// FetchConsignments fetches from the backend, falling back to sample data.
func (f *FallbackDataSource) FetchConsignments(ctx context.Context, status string) ([]domain.Consignment, error) {
	consignments, err := f.remote.FetchConsignments(ctx, status)
	if err != nil {
		f.logFallback("fetch consignments", err)
		return f.sample.FetchConsignments(ctx, status)
	}
	return consignments, nil
}

// FetchTrucks fetches from the backend, falling back to sample data.
func (f *FallbackDataSource) FetchTrucks(ctx context.Context, status string) ([]domain.Truck, error) {
	trucks, err := f.remote.FetchTrucks(ctx, status)
	if err != nil {
		f.logFallback("fetch trucks", err)
		return f.sample.FetchTrucks(ctx, status)
	}
	return trucks, nil
}

// CreateConsignment creates in the backend, falling back to sample data.
func (f *FallbackDataSource) CreateConsignment(ctx context.Context, draft domain.ConsignmentDraft) (*domain.Consignment, error) {
	consignment, err := f.remote.CreateConsignment(ctx, draft)
	if err != nil {
		f.logFallback("create consignment", err)
		return f.sample.CreateConsignment(ctx, draft)
	}
	return consignment, nil
}

// CreateTruck creates in the backend, falling back to sample data.
func (f *FallbackDataSource) CreateTruck(ctx context.Context, draft domain.TruckDraft) (*domain.Truck, error) {
	truck, err := f.remote.CreateTruck(ctx, draft)
	if err != nil {
		f.logFallback("create truck", err)
		return f.sample.CreateTruck(ctx, draft)
	}
	return truck, nil
}

// Allocate updates the backend, falling back to sample data.
func (f *FallbackDataSource) Allocate(ctx context.Context, consignmentID, truckID string) error {
	if err := f.remote.Allocate(ctx, consignmentID, truckID); err != nil {
		f.logFallback("allocate truck", err)
		return f.sample.Allocate(ctx, consignmentID, truckID)
	}
	return nil
}

// MarkDelivered updates the backend, falling back to sample data.
func (f *FallbackDataSource) MarkDelivered(ctx context.Context, consignmentID string) error {
	if err := f.remote.MarkDelivered(ctx, consignmentID); err != nil {
		f.logFallback("mark delivered", err)
		return f.sample.MarkDelivered(ctx, consignmentID)
	}
	return nil
}

// MarkTruckAvailable updates the backend, falling back to sample data.
func (f *FallbackDataSource) MarkTruckAvailable(ctx context.Context, truckID string) error {
	if err := f.remote.MarkTruckAvailable(ctx, truckID); err != nil {
		f.logFallback("mark truck available", err)
		return f.sample.MarkTruckAvailable(ctx, truckID)
	}
	return nil
}

func (f *FallbackDataSource) logFallback(operation string, err error) {
	logger.Get().Warn("Backend call failed, serving sample dataset",
		zap.String("operation", operation),
		zap.Error(err),
	)
}
