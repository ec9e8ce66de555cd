package adapters

import (
	"context"
	"errors"
	"testing"

	"courier-backoffice/internal/features/fleet/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDataSource fails every call, simulating an unreachable backend.
type failingDataSource struct {
	err error
}

func (f *failingDataSource) FetchConsignments(context.Context, string) ([]domain.Consignment, error) {
	return nil, f.err
}

func (f *failingDataSource) FetchTrucks(context.Context, string) ([]domain.Truck, error) {
	return nil, f.err
}

func (f *failingDataSource) CreateConsignment(context.Context, domain.ConsignmentDraft) (*domain.Consignment, error) {
	return nil, f.err
}

func (f *failingDataSource) CreateTruck(context.Context, domain.TruckDraft) (*domain.Truck, error) {
	return nil, f.err
}

func (f *failingDataSource) Allocate(context.Context, string, string) error { return f.err }

func (f *failingDataSource) MarkDelivered(context.Context, string) error { return f.err }

func (f *failingDataSource) MarkTruckAvailable(context.Context, string) error { return f.err }

func newFailingFallback(t *testing.T) (*FallbackDataSource, *SampleDataSource) {
	t.Helper()
	sample := NewSampleDataSource()
	remote := &failingDataSource{err: errors.New("connection refused")}
	return NewFallbackDataSource(remote, sample), sample
}

func TestFallbackDataSource_FetchFallsBackToSample(t *testing.T) {
	fallback, _ := newFailingFallback(t)
	ctx := context.Background()

	consignments, err := fallback.FetchConsignments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, consignments, 5)

	trucks, err := fallback.FetchTrucks(ctx, "available")
	require.NoError(t, err)
	assert.Len(t, trucks, 3)
}

func TestFallbackDataSource_CreateFallsBackToSample(t *testing.T) {
	fallback, sample := newFailingFallback(t)
	ctx := context.Background()

	created, err := fallback.CreateConsignment(ctx, domain.ConsignmentDraft{Customer: "Alice Cooper"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", created.Customer)

	consignments, err := sample.FetchConsignments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, consignments, 6)
}

func TestFallbackDataSource_MutationsFallBackToSample(t *testing.T) {
	fallback, sample := newFailingFallback(t)
	ctx := context.Background()

	require.NoError(t, fallback.Allocate(ctx, "CCM1234567", "TRK-001"))

	trucks, err := sample.FetchTrucks(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.TruckStatusInTransit, trucks[0].Status)

	require.NoError(t, fallback.MarkDelivered(ctx, "CCM1234567"))
	require.NoError(t, fallback.MarkTruckAvailable(ctx, "TRK-003"))
}

// TestFallbackDataSource_SampleErrorsStillSurface verifies domain errors from
// the sample store are not masked by the fallback layer.
func TestFallbackDataSource_SampleErrorsStillSurface(t *testing.T) {
	fallback, _ := newFailingFallback(t)

	err := fallback.Allocate(context.Background(), "CCM-missing", "TRK-001")
	assert.ErrorIs(t, err, domain.ErrConsignmentNotFound)
}

// TestFallbackDataSource_RemoteSuccessSkipsSample verifies a healthy backend
// answer is returned as-is and the sample store stays untouched.
func TestFallbackDataSource_RemoteSuccessSkipsSample(t *testing.T) {
	sample := NewSampleDataSource()
	remote := NewSampleDataSource()
	ctx := context.Background()
	require.NoError(t, remote.Allocate(ctx, "CCM1234567", "TRK-001"))

	fallback := NewFallbackDataSource(remote, sample)

	consignments, err := fallback.FetchConsignments(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsignmentStatusInTransit, consignments[0].Status)

	sampleConsignments, err := sample.FetchConsignments(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsignmentStatusPending, sampleConsignments[0].Status)
}
