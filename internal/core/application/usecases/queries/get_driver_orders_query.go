package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveryQueryIsNotConstructed = errors.New(
		"GetActiveDeliveryQuery must be created via NewGetActiveDeliveryQuery constructor",
	)
	ErrGetDriverHistoryQueryIsNotConstructed = errors.New(
		"GetDriverHistoryQuery must be created via NewGetDriverHistoryQuery constructor",
	)
)

// GetActiveDeliveryQuery finds the driver's current picked_up order, if any.
type GetActiveDeliveryQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveDeliveryQuery creates a query for the driver's active delivery.
func NewGetActiveDeliveryQuery(driverID kernel.UUID) (GetActiveDeliveryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetActiveDeliveryQuery{}, err
	}

	return GetActiveDeliveryQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveryQueryIsNotConstructed)
}

// DriverID returns the driver.
func (q GetActiveDeliveryQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverHistoryQuery lists the driver's completed deliveries.
type GetDriverHistoryQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverHistoryQuery creates a query for the driver's delivery history.
func NewGetDriverHistoryQuery(driverID kernel.UUID) (GetDriverHistoryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverHistoryQuery{}, err
	}

	return GetDriverHistoryQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverHistoryQueryIsNotConstructed)
}

// DriverID returns the driver.
func (q GetDriverHistoryQuery) DriverID() kernel.UUID {
	return q.driverID
}
