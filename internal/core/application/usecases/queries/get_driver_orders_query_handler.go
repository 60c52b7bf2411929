package queries

import (
	"context"

	"gorm.io/gorm"

	"foodcourt/internal/pkg/errs"
)

// GetActiveDeliveryQueryHandler finds the driver's in-flight delivery.
// The accept guard keeps at most one order in picked_up per driver, so the
// query expects zero or one row.
type GetActiveDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveryQueryHandler creates a handler for the active-delivery lookup.
func NewGetActiveDeliveryQueryHandler(db *gorm.DB) GetActiveDeliveryQueryHandler {
	return GetActiveDeliveryQueryHandler{db: db}
}

// Handle returns the driver's picked_up order, or errs.ErrObjectNotFound
// when the driver has no active delivery.
func (h GetActiveDeliveryQueryHandler) Handle(ctx context.Context, query GetActiveDeliveryQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}

	summaries, err := selectOrderSummaries(ctx, h.db,
		"o.driver_id = ? AND o.status = 'picked_up'", query.DriverID().String())
	if err != nil {
		return OrderSummary{}, err
	}
	if len(summaries) == 0 {
		return OrderSummary{}, errs.NewObjectNotFoundError("driverId", query.DriverID())
	}

	return summaries[0], nil
}

// GetDriverHistoryQueryHandler lists the driver's delivered orders.
type GetDriverHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverHistoryQueryHandler creates a handler for the driver's history.
func NewGetDriverHistoryQueryHandler(db *gorm.DB) GetDriverHistoryQueryHandler {
	return GetDriverHistoryQueryHandler{db: db}
}

// Handle lists delivered orders assigned to the driver, newest first.
func (h GetDriverHistoryQueryHandler) Handle(ctx context.Context, query GetDriverHistoryQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectOrderSummaries(ctx, h.db,
		"o.driver_id = ? AND o.status = 'delivered'", query.DriverID().String())
}
