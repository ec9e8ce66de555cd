package ports

import (
	"context"

	"courier-backoffice/internal/features/fleet/domain"
)

// FleetService defines the primary port consumed by the dashboard API.
type FleetService interface {
	// Consignments returns the current entity snapshot, optionally filtered
	// by status. The empty string means no filter.
	Consignments(status string) []domain.Consignment
	// Trucks returns the current entity snapshot, optionally filtered by status.
	Trucks(status string) []domain.Truck
	// AddConsignment creates a consignment through the data source and refreshes.
	AddConsignment(ctx context.Context, draft domain.ConsignmentDraft) error
	// AddTruck creates a truck through the data source and refreshes.
	AddTruck(ctx context.Context, draft domain.TruckDraft) error
	// AllocateTruck links an available truck to a consignment and moves both
	// to in-transit. Fails with domain.ErrConsignmentNotFound,
	// domain.ErrTruckNotFound or domain.ErrTruckNotAvailable.
	AllocateTruck(ctx context.Context, consignmentID, truckID string) error
	// MarkConsignmentDelivered moves a consignment to delivered and frees the
	// linked truck, if any. Fails with domain.ErrConsignmentNotFound.
	MarkConsignmentDelivered(ctx context.Context, consignmentID string) error
	// MarkTruckAvailable frees a truck; a linked consignment, if any, goes
	// back to pending. Fails with domain.ErrTruckNotFound.
	MarkTruckAvailable(ctx context.Context, truckID string) error
	// Refresh re-fetches raw data, re-applies the overlay and replaces the
	// entity snapshot. Re-runnable at any time; never writes to the overlay.
	Refresh(ctx context.Context) error
}

// DataSource defines the secondary port for the remote fleet backend.
// Implementations must degrade to a sample dataset on transport failure;
// callers of the mutating operations treat failures as best-effort only.
type DataSource interface {
	FetchConsignments(ctx context.Context, status string) ([]domain.Consignment, error)
	FetchTrucks(ctx context.Context, status string) ([]domain.Truck, error)
	CreateConsignment(ctx context.Context, draft domain.ConsignmentDraft) (*domain.Consignment, error)
	CreateTruck(ctx context.Context, draft domain.TruckDraft) (*domain.Truck, error)
	Allocate(ctx context.Context, consignmentID, truckID string) error
	MarkDelivered(ctx context.Context, consignmentID string) error
	MarkTruckAvailable(ctx context.Context, truckID string) error
}

// OverlayRepository defines the secondary port for the durable allocation
// ledger. Save replaces the whole ledger: two processes saving concurrently
// race with last-write-wins semantics on the persisted collections, which is
// an accepted limitation of the design.
type OverlayRepository interface {
	Load(ctx context.Context) (*domain.Overlay, error)
	Save(ctx context.Context, overlay *domain.Overlay) error
}
