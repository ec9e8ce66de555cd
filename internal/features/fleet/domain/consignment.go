package domain

// ConsignmentStatus represents the lifecycle state of a consignment.
type ConsignmentStatus string

const (
	// ConsignmentStatusPending indicates the consignment is waiting for a truck.
	ConsignmentStatusPending ConsignmentStatus = "pending"
	// ConsignmentStatusInTransit indicates the consignment is on a truck.
	ConsignmentStatusInTransit ConsignmentStatus = "in-transit"
	// ConsignmentStatusDelivered indicates the consignment reached its destination. Terminal.
	ConsignmentStatusDelivered ConsignmentStatus = "delivered"
)

// Consignment represents a shipment booking.
// TruckID is non-nil exactly when Status is in-transit.
type Consignment struct {
	// ID is the unique consignment identifier, immutable once created.
	ID string `json:"id"`
	// Customer is the name of the booking customer.
	Customer string `json:"customer"`
	// Type is the shipment type (e.g., Parcel, Package, Freight).
	Type string `json:"type"`
	// Weight is the display weight (e.g., "2kg").
	Weight string `json:"weight"`
	// Destination is the delivery destination.
	Destination string `json:"destination"`
	// Status is the current lifecycle state.
	Status ConsignmentStatus `json:"status"`
	// Date is the booking date as displayed in the dashboard.
	Date string `json:"date"`
	// TruckID references the allocated truck, nil unless in-transit.
	TruckID *string `json:"truck_id"`
	// Contact is an optional phone contact.
	Contact string `json:"contact,omitempty"`
	// Email is an optional contact email.
	Email string `json:"email,omitempty"`
}

// Clone returns a copy whose truck link pointer does not alias the receiver,
// so writes through the copy cannot reach shared state.
func (c Consignment) Clone() Consignment {
	if c.TruckID != nil {
		id := *c.TruckID
		c.TruckID = &id
	}
	return c
}

// ConsignmentDraft carries the caller-supplied fields for a new consignment.
// The data source assigns id, date and the initial pending status.
type ConsignmentDraft struct {
	Customer    string `json:"customer"`
	Type        string `json:"type"`
	Weight      string `json:"weight"`
	Destination string `json:"destination"`
	Contact     string `json:"contact,omitempty"`
	Email       string `json:"email,omitempty"`
}
