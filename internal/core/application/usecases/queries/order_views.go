package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
)

// OrderSummary is the list-item read model shared by every order listing:
// customer history, restaurant board, and the driver surfaces.
type OrderSummary struct {
	Number          string
	RestaurantID    kernel.UUID
	RestaurantName  string
	Status          string
	PaymentMethod   string
	PaymentState    string
	GrandTotal      decimal.Decimal
	DeliveryAddress string
	DeliveryCity    string
	CreatedAt       time.Time
}

// OrderLineView is a frozen order line as stored at checkout.
type OrderLineView struct {
	MenuItemID   kernel.UUID
	ItemName     string
	Quantity     int
	UnitPrice    decimal.Decimal
	Instructions string
}

// OrderDetail is the full order view: the summary plus the monetary
// breakdown and the frozen lines.
type OrderDetail struct {
	OrderSummary
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	Tax          decimal.Decimal
	Instructions string
	Lines        []OrderLineView
}

// orderSummaryColumns is the select list every order listing shares; it must
// stay in step with scanOrderSummaries.
const orderSummaryColumns = `
	o.number,
	o.restaurant_id,
	r.name,
	o.status,
	o.payment_method,
	o.payment_state,
	o.grand_total,
	o.delivery_address,
	o.delivery_city,
	o.created_at
`

// selectOrderSummaries runs an order listing and scans it into summaries.
// condition is appended after WHERE and may reference o (orders) and
// r (restaurants).
func selectOrderSummaries(ctx context.Context, db *gorm.DB, condition string, args ...any) ([]OrderSummary, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE `+condition+`
		ORDER BY o.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		summary, err := scanOrderSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// scanOrderSummary reads one orderSummaryColumns row.
func scanOrderSummary(scan func(...any) error) (OrderSummary, error) {
	var summary OrderSummary
	var restaurantID uuid.UUID

	err := scan(
		&summary.Number,
		&restaurantID,
		&summary.RestaurantName,
		&summary.Status,
		&summary.PaymentMethod,
		&summary.PaymentState,
		&summary.GrandTotal,
		&summary.DeliveryAddress,
		&summary.DeliveryCity,
		&summary.CreatedAt,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if summary.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderSummary{}, err
	}

	return summary, nil
}
