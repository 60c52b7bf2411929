package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists a restaurant's orders from the database.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetRestaurantOrdersQueryHandler) Handle(ctx context.Context, query GetRestaurantOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Status() != nil {
		return selectOrderSummaries(ctx, h.db,
			"o.restaurant_id = ? AND o.status = ?",
			query.RestaurantID().String(), query.Status().String())
	}

	return selectOrderSummaries(ctx, h.db,
		"o.restaurant_id = ?", query.RestaurantID().String())
}
