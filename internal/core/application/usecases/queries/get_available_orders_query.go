package queries

import (
	"errors"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
	// ErrCityIsRequired unwraps to errs.ErrValueIsRequired so the transport
	// layer classifies a missing city as a validation failure.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
)

// GetAvailableOrdersQuery lists ready orders in the driver's city, waiting
// for a driver to accept them.
type GetAvailableOrdersQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for ready orders in a city.
func NewGetAvailableOrdersQuery(city string) (GetAvailableOrdersQuery, error) {
	if city == "" {
		return GetAvailableOrdersQuery{}, ErrCityIsRequired
	}

	return GetAvailableOrdersQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// City returns the driver's city.
func (q GetAvailableOrdersQuery) City() string {
	return q.city
}
