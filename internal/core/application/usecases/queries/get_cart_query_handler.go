package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
)

// GetCartQueryHandler builds the cart view straight from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// effective price (discounted if set and non-zero, else list) is resolved in
// the query itself.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart view queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. A customer without a cart gets the zero-value
// view with no lines, never an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var response GetCartQueryResponse
	response.Lines = make([]CartLineView, 0)
	response.Total = decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.restaurant_id,
			r.name,
			cl.id,
			cl.menu_item_id,
			mi.name,
			cl.quantity,
			COALESCE(NULLIF(mi.discounted_price, 0), mi.price) AS unit_price,
			cl.instructions
		FROM carts c
		JOIN restaurants r ON r.id = c.restaurant_id
		JOIN cart_lines cl ON cl.cart_id = c.id
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		WHERE c.customer_id = ?
		ORDER BY cl.created_at
	`, query.CustomerID().String()).Rows()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, nil
		}
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineView
		var restaurantID, lineID, menuItemID uuid.UUID

		err = rows.Scan(
			&restaurantID,
			&response.RestaurantName,
			&lineID,
			&menuItemID,
			&line.ItemName,
			&line.Quantity,
			&line.UnitPrice,
			&line.Instructions,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		if response.RestaurantID == nil {
			id, idErr := kernel.UUIDFromBytes(restaurantID[:])
			if idErr != nil {
				return GetCartQueryResponse{}, idErr
			}
			response.RestaurantID = &id
		}

		if line.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}

		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		response.Total = response.Total.Add(line.Subtotal)
		response.ItemCount += line.Quantity
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
