package domain

// TruckAssignment is the active link between a consignment and a truck.
// At most one assignment exists per consignment and per truck.
type TruckAssignment struct {
	ConsignmentID string `json:"consignment_id"`
	TruckID       string `json:"truck_id"`
}

// ConsignmentOverride is the last status the allocation engine recorded for a
// consignment, used to correct stale data re-fetched from the backend.
type ConsignmentOverride struct {
	ID      string            `json:"id"`
	Status  ConsignmentStatus `json:"status"`
	TruckID *string           `json:"truck_id"`
}

// TruckOverride is the last status the allocation engine recorded for a truck.
type TruckOverride struct {
	ID                    string      `json:"id"`
	Status                TruckStatus `json:"status"`
	AssignedConsignmentID *string     `json:"assigned_consignment_id"`
}

// Overlay is the in-memory image of the persisted allocation ledger. It is
// written only by the allocation engine's three operations and outlives
// fetches: when the backend reports stale state, the overlay wins.
type Overlay struct {
	Assignments          []TruckAssignment     `json:"assignments"`
	ConsignmentOverrides []ConsignmentOverride `json:"consignment_overrides"`
	TruckOverrides       []TruckOverride       `json:"truck_overrides"`
}

// NewOverlay returns an empty overlay ledger.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// RecordAllocation upserts the assignment for consignmentID, replacing any
// prior truck link, and writes in-transit overrides for both entities.
func (o *Overlay) RecordAllocation(consignmentID, truckID string) {
	found := false
	for i := range o.Assignments {
		if o.Assignments[i].ConsignmentID == consignmentID {
			o.Assignments[i].TruckID = truckID
			found = true
			break
		}
	}
	if !found {
		o.Assignments = append(o.Assignments, TruckAssignment{ConsignmentID: consignmentID, TruckID: truckID})
	}

	o.setConsignmentOverride(consignmentID, ConsignmentStatusInTransit, &truckID)
	o.setTruckOverride(truckID, TruckStatusInTransit, &consignmentID)
}

// RecordDelivery removes the consignment's assignment (if any) and writes a
// delivered override for the consignment and an available override for the
// truck it was linked to.
func (o *Overlay) RecordDelivery(consignmentID string) {
	var truckID *string
	kept := o.Assignments[:0]
	for _, a := range o.Assignments {
		if a.ConsignmentID == consignmentID {
			id := a.TruckID
			truckID = &id
			continue
		}
		kept = append(kept, a)
	}
	o.Assignments = kept

	o.setConsignmentOverride(consignmentID, ConsignmentStatusDelivered, nil)
	if truckID != nil {
		o.setTruckOverride(*truckID, TruckStatusAvailable, nil)
	}
}

// RecordTruckReleased removes the truck's assignment (if any) and writes an
// available override for the truck; the consignment it was linked to, if
// found, goes back to pending.
func (o *Overlay) RecordTruckReleased(truckID string) {
	var consignmentID *string
	kept := o.Assignments[:0]
	for _, a := range o.Assignments {
		if a.TruckID == truckID {
			id := a.ConsignmentID
			consignmentID = &id
			continue
		}
		kept = append(kept, a)
	}
	o.Assignments = kept

	o.setTruckOverride(truckID, TruckStatusAvailable, nil)
	if consignmentID != nil {
		o.setConsignmentOverride(*consignmentID, ConsignmentStatusPending, nil)
	}
}

// Apply patches freshly fetched collections with the ledger state and returns
// the patched copies. For each entity an override record wins; failing that,
// an assignment record implies an in-transit state with the matching link;
// otherwise the entity passes through as fetched. Apply is pure and
// idempotent: applying it to its own output changes nothing. The returned
// entities are cloned, so they alias neither the inputs nor the ledger's
// override records.
func (o *Overlay) Apply(consignments []Consignment, trucks []Truck) ([]Consignment, []Truck) {
	patchedConsignments := make([]Consignment, len(consignments))
	for i, c := range consignments {
		if ov, ok := o.consignmentOverride(c.ID); ok {
			c.Status = ov.Status
			c.TruckID = ov.TruckID
		} else if a, ok := o.assignmentByConsignment(c.ID); ok {
			c.Status = ConsignmentStatusInTransit
			truckID := a.TruckID
			c.TruckID = &truckID
		}
		patchedConsignments[i] = c.Clone()
	}

	patchedTrucks := make([]Truck, len(trucks))
	for i, t := range trucks {
		if ov, ok := o.truckOverride(t.ID); ok {
			t.Status = ov.Status
			t.AssignedConsignmentID = ov.AssignedConsignmentID
		} else if a, ok := o.assignmentByTruck(t.ID); ok {
			t.Status = TruckStatusInTransit
			consignmentID := a.ConsignmentID
			t.AssignedConsignmentID = &consignmentID
		}
		patchedTrucks[i] = t.Clone()
	}

	return patchedConsignments, patchedTrucks
}

func (o *Overlay) setConsignmentOverride(id string, status ConsignmentStatus, truckID *string) {
	for i := range o.ConsignmentOverrides {
		if o.ConsignmentOverrides[i].ID == id {
			o.ConsignmentOverrides[i].Status = status
			o.ConsignmentOverrides[i].TruckID = truckID
			return
		}
	}
	o.ConsignmentOverrides = append(o.ConsignmentOverrides, ConsignmentOverride{ID: id, Status: status, TruckID: truckID})
}

func (o *Overlay) setTruckOverride(id string, status TruckStatus, consignmentID *string) {
	for i := range o.TruckOverrides {
		if o.TruckOverrides[i].ID == id {
			o.TruckOverrides[i].Status = status
			o.TruckOverrides[i].AssignedConsignmentID = consignmentID
			return
		}
	}
	o.TruckOverrides = append(o.TruckOverrides, TruckOverride{ID: id, Status: status, AssignedConsignmentID: consignmentID})
}

func (o *Overlay) consignmentOverride(id string) (ConsignmentOverride, bool) {
	for _, ov := range o.ConsignmentOverrides {
		if ov.ID == id {
			return ov, true
		}
	}
	return ConsignmentOverride{}, false
}

func (o *Overlay) truckOverride(id string) (TruckOverride, bool) {
	for _, ov := range o.TruckOverrides {
		if ov.ID == id {
			return ov, true
		}
	}
	return TruckOverride{}, false
}

func (o *Overlay) assignmentByConsignment(id string) (TruckAssignment, bool) {
	for _, a := range o.Assignments {
		if a.ConsignmentID == id {
			return a, true
		}
	}
	return TruckAssignment{}, false
}

func (o *Overlay) assignmentByTruck(id string) (TruckAssignment, bool) {
	for _, a := range o.Assignments {
		if a.TruckID == id {
			return a, true
		}
	}
	return TruckAssignment{}, false
}
