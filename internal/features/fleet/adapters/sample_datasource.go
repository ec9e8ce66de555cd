package adapters

import (
	"context"
	"strings"
	"sync"
	"time"

	"courier-backoffice/internal/features/fleet/domain"

	"github.com/google/uuid"
)

// displayDateLayout matches the dashboard's human-readable dates.
const displayDateLayout = "Jan 2, 2006"

// SampleDataSource implements ports.DataSource against a seeded in-memory
// dataset. It backs demo deployments and serves as the transparent fallback
// whenever the remote backend is unreachable.
type SampleDataSource struct {
	mu           sync.Mutex
	consignments []domain.Consignment
	trucks       []domain.Truck
}

// NewSampleDataSource creates a SampleDataSource seeded with the demo fleet.
func NewSampleDataSource() *SampleDataSource {
	trk3Consignment := "CCM8765432"
	ccm5Truck := "TRK-003"

	return &SampleDataSource{
		consignments: []domain.Consignment{
			{ID: "CCM1234567", Customer: "John Doe", Type: "Parcel", Weight: "2kg", Destination: "Chicago, IL", Status: domain.ConsignmentStatusPending, Date: "Apr 11, 2023"},
			{ID: "CCM7654321", Customer: "Jane Smith", Type: "Package", Weight: "5kg", Destination: "Los Angeles, CA", Status: domain.ConsignmentStatusPending, Date: "Apr 12, 2023"},
			{ID: "CCM9876543", Customer: "Robert Johnson", Type: "Freight", Weight: "50kg", Destination: "Miami, FL", Status: domain.ConsignmentStatusDelivered, Date: "Apr 10, 2023"},
			{ID: "CCM5432167", Customer: "Sarah Williams", Type: "Parcel", Weight: "1kg", Destination: "Boston, MA", Status: domain.ConsignmentStatusPending, Date: "Apr 12, 2023"},
			{ID: "CCM8765432", Customer: "Michael Brown", Type: "Package", Weight: "3kg", Destination: "Seattle, WA", Status: domain.ConsignmentStatusInTransit, Date: "Apr 11, 2023", TruckID: &ccm5Truck},
		},
		trucks: []domain.Truck{
			{ID: "TRK-001", Driver: "Michael Johnson", Type: "Delivery Van", Capacity: "1000kg", Location: "New York, NY", Status: domain.TruckStatusAvailable, LastMaintenance: "Apr 5, 2023"},
			{ID: "TRK-002", Driver: "Sarah Davis", Type: "Box Truck", Capacity: "3000kg", Location: "Chicago, IL", Status: domain.TruckStatusAvailable, LastMaintenance: "Mar 28, 2023"},
			{ID: "TRK-003", Driver: "Robert Wilson", Type: "Semi-Trailer", Capacity: "15000kg", Location: "Los Angeles, CA", Status: domain.TruckStatusInTransit, LastMaintenance: "Apr 2, 2023", AssignedConsignmentID: &trk3Consignment},
			{ID: "TRK-004", Driver: "Emily Brown", Type: "Delivery Van", Capacity: "800kg", Location: "Boston, MA", Status: domain.TruckStatusMaintenance, LastMaintenance: "Apr 10, 2023"},
			{ID: "TRK-005", Driver: "David Miller", Type: "Box Truck", Capacity: "2500kg", Location: "Miami, FL", Status: domain.TruckStatusAvailable, LastMaintenance: "Mar 25, 2023"},
		},
	}
}

// FetchConsignments returns the sample consignments, optionally filtered by status.
func (s *SampleDataSource) FetchConsignments(_ context.Context, status string) ([]domain.Consignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Consignment, 0, len(s.consignments))
	for _, c := range s.consignments {
		if status == "" || string(c.Status) == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// FetchTrucks returns the sample trucks, optionally filtered by status.
func (s *SampleDataSource) FetchTrucks(_ context.Context, status string) ([]domain.Truck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		if status == "" || string(t.Status) == status {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateConsignment adds a pending consignment to the sample dataset.
func (s *SampleDataSource) CreateConsignment(_ context.Context, draft domain.ConsignmentDraft) (*domain.Consignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	consignment := domain.Consignment{
		ID:          newSampleID("CCM-"),
		Customer:    draft.Customer,
		Type:        draft.Type,
		Weight:      draft.Weight,
		Destination: draft.Destination,
		Status:      domain.ConsignmentStatusPending,
		Date:        time.Now().Format(displayDateLayout),
		Contact:     draft.Contact,
		Email:       draft.Email,
	}
	s.consignments = append(s.consignments, consignment)
	return &consignment, nil
}

// CreateTruck adds an available truck to the sample dataset.
func (s *SampleDataSource) CreateTruck(_ context.Context, draft domain.TruckDraft) (*domain.Truck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	truck := domain.Truck{
		ID:              newSampleID("TRK-"),
		Driver:          draft.Driver,
		Type:            draft.Type,
		Capacity:        draft.Capacity,
		Location:        draft.Location,
		Status:          domain.TruckStatusAvailable,
		LastMaintenance: time.Now().Format(displayDateLayout),
	}
	s.trucks = append(s.trucks, truck)
	return &truck, nil
}

// Allocate links a truck to a consignment in the sample dataset.
func (s *SampleDataSource) Allocate(_ context.Context, consignmentID, truckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.consignmentIndex(consignmentID)
	if ci < 0 {
		return domain.ErrConsignmentNotFound
	}
	ti := s.truckIndex(truckID)
	if ti < 0 {
		return domain.ErrTruckNotFound
	}
	if s.trucks[ti].Status != domain.TruckStatusAvailable {
		return domain.ErrTruckNotAvailable
	}

	s.consignments[ci].Status = domain.ConsignmentStatusInTransit
	s.consignments[ci].TruckID = &truckID
	s.trucks[ti].Status = domain.TruckStatusInTransit
	s.trucks[ti].AssignedConsignmentID = &consignmentID
	return nil
}

// MarkDelivered completes a consignment and frees its truck in the sample dataset.
func (s *SampleDataSource) MarkDelivered(_ context.Context, consignmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.consignmentIndex(consignmentID)
	if ci < 0 {
		return domain.ErrConsignmentNotFound
	}

	truckID := s.consignments[ci].TruckID
	s.consignments[ci].Status = domain.ConsignmentStatusDelivered
	s.consignments[ci].TruckID = nil

	if truckID != nil {
		if ti := s.truckIndex(*truckID); ti >= 0 {
			s.trucks[ti].Status = domain.TruckStatusAvailable
			s.trucks[ti].AssignedConsignmentID = nil
		}
	}
	return nil
}

// MarkTruckAvailable frees a truck and re-queues its consignment in the sample dataset.
func (s *SampleDataSource) MarkTruckAvailable(_ context.Context, truckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.truckIndex(truckID)
	if ti < 0 {
		return domain.ErrTruckNotFound
	}

	consignmentID := s.trucks[ti].AssignedConsignmentID
	s.trucks[ti].Status = domain.TruckStatusAvailable
	s.trucks[ti].AssignedConsignmentID = nil

	if consignmentID != nil {
		if ci := s.consignmentIndex(*consignmentID); ci >= 0 {
			s.consignments[ci].Status = domain.ConsignmentStatusPending
			s.consignments[ci].TruckID = nil
		}
	}
	return nil
}

func (s *SampleDataSource) consignmentIndex(id string) int {
	for i := range s.consignments {
		if s.consignments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *SampleDataSource) truckIndex(id string) int {
	for i := range s.trucks {
		if s.trucks[i].ID == id {
			return i
		}
	}
	return -1
}

func newSampleID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}
