package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders from the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Status() != nil {
		return selectOrderSummaries(ctx, h.db,
			"o.customer_id = ? AND o.status = ?",
			query.CustomerID().String(), query.Status().String())
	}

	return selectOrderSummaries(ctx, h.db,
		"o.customer_id = ?", query.CustomerID().String())
}
