package domain

import "errors"

var (
	// ErrConsignmentNotFound is returned when a referenced consignment id is
	// absent from the current entity snapshot.
	ErrConsignmentNotFound = errors.New("consignment not found")
	// ErrTruckNotFound is returned when a referenced truck id is absent from
	// the current entity snapshot.
	ErrTruckNotFound = errors.New("truck not found")
	// ErrTruckNotAvailable is returned when allocation is attempted against a
	// truck that is not in the available state.
	ErrTruckNotAvailable = errors.New("truck is not available")
)
