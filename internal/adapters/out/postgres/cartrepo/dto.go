// Package cartrepo provides data transfer objects and mapping functions for cart
// persistence. This package implements the repository pattern for the cart domain
// aggregate, handling the conversion between domain entities and database rows.
package cartrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Each customer holds at most one cart, enforced by the unique index on
// customer_id. UpdatedAt feeds the stale-cart purge cutoff.
type CartDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one cart line. CreatedAt preserves insertion order so
// the cart renders in the sequence items were added.
type CartLineDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID       uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	Instructions string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, []CartLineDTO) {
	dto := CartDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
	}

	lines := make([]CartLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, CartLineDTO{
			ID:           line.ID().Bytes(),
			CartID:       dto.ID,
			MenuItemID:   line.MenuItemID().Bytes(),
			Quantity:     line.Quantity(),
			Instructions: line.Instructions(),
		})
	}

	return dto, lines
}

// toDomain converts database rows to a cart domain aggregate using RestoreCart.
func toDomain(dto CartDTO, lineDTOs []CartLineDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := cart.NewLine(lineID, menuItemID, lineDTO.Quantity, lineDTO.Instructions)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return cart.RestoreCart(id, customerID, restaurantID, lines)
}
