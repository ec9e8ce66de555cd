package service

import (
	"context"
	"fmt"
	"sync"

	"courier-backoffice/internal/core/logger"
	"courier-backoffice/internal/features/fleet/domain"
	"courier-backoffice/internal/features/fleet/ports"

	"go.uber.org/zap"
)

// FleetServiceImpl implements ports.FleetService. It owns the entity store
// and drives the allocation state machine: every mutating operation runs
// validation, then the overlay ledger write, then a best-effort remote sync,
// then the optimistic local update, in that order. The ledger plus the local
// update are the durability and consistency boundary; the remote backend is
// treated as unreliable and its write failures never surface to the caller.
//
// Mutating operations are serialized by mu, held from validation through the
// final store update. Without it two concurrent allocations could both see
// the same truck as available before either commits.
type FleetServiceImpl struct {
	source  ports.DataSource
	overlay ports.OverlayRepository
	store   entityStore

	// mu serializes the mutating operations, including the refresh pass.
	mu sync.Mutex
}

// NewFleetService creates a new FleetServiceImpl.
func NewFleetService(source ports.DataSource, overlay ports.OverlayRepository) *FleetServiceImpl {
	return &FleetServiceImpl{
		source:  source,
		overlay: overlay,
	}
}

// Consignments returns the current snapshot, optionally filtered by status.
func (s *FleetServiceImpl) Consignments(status string) []domain.Consignment {
	return s.store.Consignments(status)
}

// Trucks returns the current snapshot, optionally filtered by status.
func (s *FleetServiceImpl) Trucks(status string) []domain.Truck {
	return s.store.Trucks(status)
}

// Refresh fetches raw collections from the data source, patches them with
// the persisted overlay and replaces the entity store contents. It is
// re-runnable at any time and never writes back to the overlay.
func (s *FleetServiceImpl) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	consignments, err := s.source.FetchConsignments(ctx, "")
	if err != nil {
		return fmt.Errorf("service: failed to fetch consignments: %w", err)
	}

	trucks, err := s.source.FetchTrucks(ctx, "")
	if err != nil {
		return fmt.Errorf("service: failed to fetch trucks: %w", err)
	}

	overlay, err := s.overlay.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load allocation ledger: %w", err)
	}

	patchedConsignments, patchedTrucks := overlay.Apply(consignments, trucks)
	s.store.Load(patchedConsignments, patchedTrucks)

	logger.Get().Debug("Fleet snapshot refreshed",
		zap.Int("consignments", len(patchedConsignments)),
		zap.Int("trucks", len(patchedTrucks)),
	)
	return nil
}

// AddConsignment creates a consignment through the data source and refreshes
// the snapshot so the new entity appears with the overlay applied.
func (s *FleetServiceImpl) AddConsignment(ctx context.Context, draft domain.ConsignmentDraft) error {
	if _, err := s.source.CreateConsignment(ctx, draft); err != nil {
		return fmt.Errorf("service: failed to create consignment: %w", err)
	}
	return s.Refresh(ctx)
}

// AddTruck creates a truck through the data source and refreshes the snapshot.
func (s *FleetServiceImpl) AddTruck(ctx context.Context, draft domain.TruckDraft) error {
	if _, err := s.source.CreateTruck(ctx, draft); err != nil {
		return fmt.Errorf("service: failed to create truck: %w", err)
	}
	return s.Refresh(ctx)
}

// AllocateTruck links an available truck to a consignment and moves both to
// in-transit.
func (s *FleetServiceImpl) AllocateTruck(ctx context.Context, consignmentID, truckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	consignment, ok := s.store.Consignment(consignmentID)
	if !ok {
		return domain.ErrConsignmentNotFound
	}
	truck, ok := s.store.Truck(truckID)
	if !ok {
		return domain.ErrTruckNotFound
	}
	if truck.Status != domain.TruckStatusAvailable {
		return domain.ErrTruckNotAvailable
	}

	if err := s.recordOverlay(ctx, func(o *domain.Overlay) {
		o.RecordAllocation(consignmentID, truckID)
	}); err != nil {
		return err
	}

	if err := s.source.Allocate(ctx, consignmentID, truckID); err != nil {
		logger.Get().Warn("Remote allocation sync failed, keeping local state",
			zap.String("consignment_id", consignmentID),
			zap.String("truck_id", truckID),
			zap.Error(err),
		)
	}

	consignment.Status = domain.ConsignmentStatusInTransit
	consignment.TruckID = &truckID
	truck.Status = domain.TruckStatusInTransit
	truck.AssignedConsignmentID = &consignmentID
	s.store.UpdateConsignment(consignment)
	s.store.UpdateTruck(truck)

	return nil
}

// MarkConsignmentDelivered moves a consignment to its terminal delivered
// state and frees the linked truck, if any.
func (s *FleetServiceImpl) MarkConsignmentDelivered(ctx context.Context, consignmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	consignment, ok := s.store.Consignment(consignmentID)
	if !ok {
		return domain.ErrConsignmentNotFound
	}

	if err := s.recordOverlay(ctx, func(o *domain.Overlay) {
		o.RecordDelivery(consignmentID)
	}); err != nil {
		return err
	}

	if err := s.source.MarkDelivered(ctx, consignmentID); err != nil {
		logger.Get().Warn("Remote delivery sync failed, keeping local state",
			zap.String("consignment_id", consignmentID),
			zap.Error(err),
		)
	}

	linkedTruck := consignment.TruckID
	consignment.Status = domain.ConsignmentStatusDelivered
	consignment.TruckID = nil
	s.store.UpdateConsignment(consignment)

	if linkedTruck != nil {
		if truck, ok := s.store.Truck(*linkedTruck); ok {
			truck.Status = domain.TruckStatusAvailable
			truck.AssignedConsignmentID = nil
			s.store.UpdateTruck(truck)
		}
	}

	return nil
}

// MarkTruckAvailable frees a truck, e.g. after maintenance; a consignment it
// was carrying goes back to pending.
func (s *FleetServiceImpl) MarkTruckAvailable(ctx context.Context, truckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	truck, ok := s.store.Truck(truckID)
	if !ok {
		return domain.ErrTruckNotFound
	}

	if err := s.recordOverlay(ctx, func(o *domain.Overlay) {
		o.RecordTruckReleased(truckID)
	}); err != nil {
		return err
	}

	if err := s.source.MarkTruckAvailable(ctx, truckID); err != nil {
		logger.Get().Warn("Remote truck release sync failed, keeping local state",
			zap.String("truck_id", truckID),
			zap.Error(err),
		)
	}

	linkedConsignment := truck.AssignedConsignmentID
	truck.Status = domain.TruckStatusAvailable
	truck.AssignedConsignmentID = nil
	s.store.UpdateTruck(truck)

	if linkedConsignment != nil {
		if consignment, ok := s.store.Consignment(*linkedConsignment); ok {
			consignment.Status = domain.ConsignmentStatusPending
			consignment.TruckID = nil
			s.store.UpdateConsignment(consignment)
		}
	}

	return nil
}

// recordOverlay loads the ledger, applies one mutation and persists it.
// Ledger failures abort the operation before any local state changes.
func (s *FleetServiceImpl) recordOverlay(ctx context.Context, mutate func(*domain.Overlay)) error {
	overlay, err := s.overlay.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load allocation ledger: %w", err)
	}
	mutate(overlay)
	if err := s.overlay.Save(ctx, overlay); err != nil {
		return fmt.Errorf("service: failed to persist allocation ledger: %w", err)
	}
	return nil
}
