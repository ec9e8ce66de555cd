package domain

// TruckStatus represents the operational state of a truck.
type TruckStatus string

const (
	// TruckStatusAvailable indicates the truck can take a consignment.
	TruckStatusAvailable TruckStatus = "available"
	// TruckStatusInTransit indicates the truck is carrying a consignment.
	TruckStatusInTransit TruckStatus = "in-transit"
	// TruckStatusMaintenance indicates the truck is out of service.
	// Set externally; the allocation engine only observes it.
	TruckStatusMaintenance TruckStatus = "maintenance"
)

// Truck represents a fleet vehicle.
// AssignedConsignmentID is non-nil exactly when Status is in-transit.
type Truck struct {
	// ID is the unique truck identifier, immutable once created.
	ID string `json:"id"`
	// Driver is the assigned driver's name.
	Driver string `json:"driver"`
	// Type is the vehicle type (e.g., Delivery Van, Box Truck).
	Type string `json:"type"`
	// Capacity is the display capacity (e.g., "1000kg").
	Capacity string `json:"capacity"`
	// Location is the truck's last known location.
	Location string `json:"location"`
	// Status is the current operational state.
	Status TruckStatus `json:"status"`
	// LastMaintenance is the last maintenance date as displayed.
	LastMaintenance string `json:"last_maintenance"`
	// AssignedConsignmentID references the carried consignment, nil unless in-transit.
	AssignedConsignmentID *string `json:"assigned_consignment_id"`
}

// Clone returns a copy whose consignment link pointer does not alias the
// receiver, so writes through the copy cannot reach shared state.
func (t Truck) Clone() Truck {
	if t.AssignedConsignmentID != nil {
		id := *t.AssignedConsignmentID
		t.AssignedConsignmentID = &id
	}
	return t
}

// TruckDraft carries the caller-supplied fields for a new truck.
// The data source assigns id, last maintenance date and the initial available status.
type TruckDraft struct {
	Driver   string `json:"driver"`
	Type     string `json:"type"`
	Capacity string `json:"capacity"`
	Location string `json:"location"`
}
