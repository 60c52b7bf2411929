package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists ready orders a driver could accept.
// City matching is case-insensitive: drivers register "lahore", restaurants
// deliver to "Lahore".
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the driver's
// available-orders feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle lists orders in ready status in the driver's city, oldest ready
// orders surfacing with the rest of the listing's newest-first order.
func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectOrderSummaries(ctx, h.db,
		"o.status = 'ready' AND o.delivery_city ILIKE ?", query.City())
}
