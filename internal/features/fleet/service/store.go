package service

import (
	"sync"

	"courier-backoffice/internal/features/fleet/domain"
)

// entityStore holds the last-fetched consignment and truck collections.
// It is the read surface for the dashboard; mutations replace whole entries.
// Lookups return ok=false rather than failing: a truck referenced by a stale
// assignment may have been removed upstream, and that is a normal outcome.
type entityStore struct {
	mu           sync.RWMutex
	consignments []domain.Consignment
	trucks       []domain.Truck
}

// Load replaces the held collections. Callers are expected to pass the
// output of the overlay patch pass, never raw fetched data.
func (s *entityStore) Load(consignments []domain.Consignment, trucks []domain.Truck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consignments = consignments
	s.trucks = trucks
}

// Consignments returns a copy of the held consignments, optionally filtered
// by status. The empty string means no filter. Entries are cloned so callers
// cannot write back into the store through shared link pointers.
func (s *entityStore) Consignments(status string) []domain.Consignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Consignment, 0, len(s.consignments))
	for _, c := range s.consignments {
		if status == "" || string(c.Status) == status {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Trucks returns a copy of the held trucks, optionally filtered by status.
func (s *entityStore) Trucks(status string) []domain.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		if status == "" || string(t.Status) == status {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Consignment looks up a consignment by id.
func (s *entityStore) Consignment(id string) (domain.Consignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.consignments {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return domain.Consignment{}, false
}

// Truck looks up a truck by id.
func (s *entityStore) Truck(id string) (domain.Truck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.trucks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return domain.Truck{}, false
}

// UpdateConsignment replaces the stored consignment with the same id.
// Unknown ids are ignored.
func (s *entityStore) UpdateConsignment(c domain.Consignment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.consignments {
		if s.consignments[i].ID == c.ID {
			s.consignments[i] = c
			return
		}
	}
}

// UpdateTruck replaces the stored truck with the same id. Unknown ids are ignored.
func (s *entityStore) UpdateTruck(t domain.Truck) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trucks {
		if s.trucks[i].ID == t.ID {
			s.trucks[i] = t
			return
		}
	}
}
