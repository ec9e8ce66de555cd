package adapters

import (
	"context"
	"testing"

	"courier-backoffice/internal/core/cache"
	"courier-backoffice/internal/features/fleet/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisOverlayRepository_LoadEmpty(t *testing.T) {
	repo := NewRedisOverlayRepository(newTestCache(t))

	overlay, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overlay.Assignments)
	assert.Empty(t, overlay.ConsignmentOverrides)
	assert.Empty(t, overlay.TruckOverrides)
}

func TestRedisOverlayRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewRedisOverlayRepository(newTestCache(t))
	ctx := context.Background()

	overlay := domain.NewOverlay()
	overlay.RecordAllocation("CCM1234567", "TRK-001")
	overlay.RecordDelivery("CCM7654321")

	require.NoError(t, repo.Save(ctx, overlay))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, overlay.Assignments, loaded.Assignments)
	assert.Equal(t, overlay.ConsignmentOverrides, loaded.ConsignmentOverrides)
	assert.Equal(t, overlay.TruckOverrides, loaded.TruckOverrides)
}

func TestRedisOverlayRepository_LinkFieldsRoundTrip(t *testing.T) {
	repo := NewRedisOverlayRepository(newTestCache(t))
	ctx := context.Background()

	overlay := &domain.Overlay{
		ConsignmentOverrides: []domain.ConsignmentOverride{
			{ID: "CCM1", Status: domain.ConsignmentStatusInTransit, TruckID: strPtr("TRK1")},
			{ID: "CCM2", Status: domain.ConsignmentStatusDelivered, TruckID: nil},
		},
	}
	require.NoError(t, repo.Save(ctx, overlay))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.ConsignmentOverrides, 2)
	require.NotNil(t, loaded.ConsignmentOverrides[0].TruckID)
	assert.Equal(t, "TRK1", *loaded.ConsignmentOverrides[0].TruckID)
	assert.Nil(t, loaded.ConsignmentOverrides[1].TruckID)
}

// TestRedisOverlayRepository_SharedAcrossInstances verifies two repository
// instances over the same store see each other's writes.
func TestRedisOverlayRepository_SharedAcrossInstances(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	writer := NewRedisOverlayRepository(c)
	overlay := domain.NewOverlay()
	overlay.RecordAllocation("CCM1", "TRK1")
	require.NoError(t, writer.Save(ctx, overlay))

	reader := NewRedisOverlayRepository(c)
	loaded, err := reader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Assignments, 1)
	assert.Equal(t, "TRK1", loaded.Assignments[0].TruckID)
}

// TestRedisOverlayRepository_SaveReplaces verifies a later save fully
// replaces the earlier ledger state rather than merging into it.
func TestRedisOverlayRepository_SaveReplaces(t *testing.T) {
	repo := NewRedisOverlayRepository(newTestCache(t))
	ctx := context.Background()

	first := domain.NewOverlay()
	first.RecordAllocation("CCM1", "TRK1")
	require.NoError(t, repo.Save(ctx, first))

	second := domain.NewOverlay()
	second.RecordAllocation("CCM2", "TRK2")
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Assignments, 1)
	assert.Equal(t, "CCM2", loaded.Assignments[0].ConsignmentID)
}
