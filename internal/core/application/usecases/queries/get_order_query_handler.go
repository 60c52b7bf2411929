package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order's full detail for its customer.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the order
// does not exist or belongs to another customer.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	var detail OrderDetail
	var restaurantID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`,
			o.subtotal,
			o.delivery_fee,
			o.tax,
			o.instructions
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.number = ? AND o.customer_id = ?
	`, query.OrderNumber(), query.CustomerID().String()).Row()

	err := row.Scan(
		&detail.Number,
		&restaurantID,
		&detail.RestaurantName,
		&detail.Status,
		&detail.PaymentMethod,
		&detail.PaymentState,
		&detail.GrandTotal,
		&detail.DeliveryAddress,
		&detail.DeliveryCity,
		&detail.CreatedAt,
		&detail.Subtotal,
		&detail.DeliveryFee,
		&detail.Tax,
		&detail.Instructions,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetail{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
	}
	if err != nil {
		return OrderDetail{}, err
	}

	if detail.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderDetail{}, err
	}

	if detail.Lines, err = h.loadLines(ctx, query.OrderNumber()); err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderNumber string) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.menu_item_id,
			mi.name,
			ol.quantity,
			ol.unit_price,
			ol.instructions
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		JOIN menu_items mi ON mi.id = ol.menu_item_id
		WHERE o.number = ?
		ORDER BY ol.created_at
	`, orderNumber).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var line OrderLineView
		var menuItemID uuid.UUID

		err = rows.Scan(
			&menuItemID,
			&line.ItemName,
			&line.Quantity,
			&line.UnitPrice,
			&line.Instructions,
		)
		if err != nil {
			return nil, err
		}

		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
