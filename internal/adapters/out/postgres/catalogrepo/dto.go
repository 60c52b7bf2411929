// Package catalogrepo provides the read-side access to the catalog tables the
// ordering engine consumes: menu items and restaurants. The engine does not
// own these tables; the only write it performs is the review-driven rating
// aggregate update.
package catalogrepo

import (
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the catalog's menu item row as the engine reads it.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Price           decimal.Decimal  `gorm:"type:numeric(10,2)"`
	DiscountedPrice *decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsAvailable     bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// RestaurantDTO represents the catalog's restaurant row as the engine reads it.
type RestaurantDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	City          string
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(10,2)"`
	MinimumOrder  decimal.Decimal `gorm:"type:numeric(10,2)"`
	AverageRating decimal.Decimal `gorm:"type:numeric(3,2)"`
	TotalReviews  int64
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// menuItemToDomain converts a menu item row to its domain snapshot.
func menuItemToDomain(dto MenuItemDTO) (catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.MenuItem{}, err
	}

	var discounted *kernel.Money
	if dto.DiscountedPrice != nil {
		d, discountErr := kernel.NewMoney(*dto.DiscountedPrice)
		if discountErr != nil {
			return catalog.MenuItem{}, discountErr
		}

		discounted = &d
	}

	return catalog.MenuItem{
		ID:              id,
		RestaurantID:    restaurantID,
		Name:            dto.Name,
		Price:           price,
		DiscountedPrice: discounted,
		IsAvailable:     dto.IsAvailable,
	}, nil
}

// restaurantToDomain converts a restaurant row to its domain snapshot.
func restaurantToDomain(dto RestaurantDTO) (catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Restaurant{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return catalog.Restaurant{}, err
	}

	minimumOrder, err := kernel.NewMoney(dto.MinimumOrder)
	if err != nil {
		return catalog.Restaurant{}, err
	}

	return catalog.Restaurant{
		ID:            id,
		Name:          dto.Name,
		City:          dto.City,
		DeliveryFee:   deliveryFee,
		MinimumOrder:  minimumOrder,
		AverageRating: dto.AverageRating,
		TotalReviews:  dto.TotalReviews,
	}, nil
}
