package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"courier-backoffice/internal/core/cache"
	"courier-backoffice/internal/features/fleet/domain"
)

// Ledger keys, one per persisted collection.
const (
	assignmentsKey         = "courier:truck_assignments"
	consignmentStatusesKey = "courier:consignment_statuses"
	truckStatusesKey       = "courier:truck_statuses"
)

// RedisOverlayRepository implements ports.OverlayRepository on top of the
// cache port. Each of the three ledger collections lives under its own fixed
// key as a JSON-encoded list with no expiration.
type RedisOverlayRepository struct {
	cache cache.Cache
}

// NewRedisOverlayRepository creates a new RedisOverlayRepository.
func NewRedisOverlayRepository(c cache.Cache) *RedisOverlayRepository {
	return &RedisOverlayRepository{
		cache: c,
	}
}

// Load reads the persisted ledger. Missing keys yield empty collections, so
// a fresh deployment starts with an empty overlay.
func (r *RedisOverlayRepository) Load(ctx context.Context) (*domain.Overlay, error) {
	overlay := domain.NewOverlay()

	if err := r.loadCollection(ctx, assignmentsKey, &overlay.Assignments); err != nil {
		return nil, err
	}
	if err := r.loadCollection(ctx, consignmentStatusesKey, &overlay.ConsignmentOverrides); err != nil {
		return nil, err
	}
	if err := r.loadCollection(ctx, truckStatusesKey, &overlay.TruckOverrides); err != nil {
		return nil, err
	}

	return overlay, nil
}

// Save replaces all three persisted collections. Concurrent writers race
// with last-write-wins semantics on each key; the design accepts this and
// does not lock across sessions.
func (r *RedisOverlayRepository) Save(ctx context.Context, overlay *domain.Overlay) error {
	if err := r.saveCollection(ctx, assignmentsKey, overlay.Assignments); err != nil {
		return err
	}
	if err := r.saveCollection(ctx, consignmentStatusesKey, overlay.ConsignmentOverrides); err != nil {
		return err
	}
	return r.saveCollection(ctx, truckStatusesKey, overlay.TruckOverrides)
}

func (r *RedisOverlayRepository) loadCollection(ctx context.Context, key string, dest interface{}) error {
	data, err := r.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load ledger collection %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode ledger collection %s: %w", key, err)
	}
	return nil
}

func (r *RedisOverlayRepository) saveCollection(ctx context.Context, key string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode ledger collection %s: %w", key, err)
	}

	if err := r.cache.Set(ctx, key, data, 0); err != nil {
		return fmt.Errorf("failed to save ledger collection %s: %w", key, err)
	}
	return nil
}
