package catalogrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// GormCatalogRepository implements CatalogRepository using GORM. The catalog
// is a read model for the ordering engine, so no aggregate tracking happens
// here.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetMenuItem retrieves a menu item snapshot by its identifier.
func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return catalog.MenuItem{}, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id)
		}
		return catalog.MenuItem{}, err
	}

	return menuItemToDomain(dto)
}

// GetMenuItems retrieves several menu item snapshots at once, keyed by item ID.
// Items absent from the result were not found; the caller decides whether that
// is an error.
func (r *GormCatalogRepository) GetMenuItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.MenuItem, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]catalog.MenuItem, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID] = item
	}

	return items, nil
}

// GetRestaurant retrieves a restaurant snapshot by its identifier.
func (r *GormCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return catalog.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Restaurant{}, errs.NewObjectNotFoundError("restaurantId", id)
		}
		return catalog.Restaurant{}, err
	}

	return restaurantToDomain(dto)
}

// UpdateRestaurantRating writes the recomputed rating aggregates after a
// review is stored. Runs in the same transaction as the review insert.
func (r *GormCatalogRepository) UpdateRestaurantRating(ctx context.Context, restaurantID kernel.UUID, averageRating decimal.Decimal, totalReviews int64) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", restaurantID.Bytes()).
		Updates(map[string]any{
			"average_rating": averageRating,
			"total_reviews":  totalReviews,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurantId", restaurantID)
	}

	return nil
}
