package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
)

// CatalogRepository reads the catalog collaborator's data the ordering engine
// needs at checkout time. It is read-only except for the review-driven rating
// aggregates.
type CatalogRepository interface {
	// GetMenuItem retrieves a menu item snapshot by its identifier.
	// Returns errs.ErrObjectNotFound for unknown items.
	GetMenuItem(ctx context.Context, id kernel.UUID) (catalog.MenuItem, error)

	// GetMenuItems retrieves several menu item snapshots at once, keyed by
	// item ID. Items absent from the result were not found.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.MenuItem, error)

	// GetRestaurant retrieves a restaurant snapshot by its identifier.
	// Returns errs.ErrObjectNotFound for unknown restaurants.
	GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error)

	// UpdateRestaurantRating writes the recomputed rating aggregates after
	// a review is stored.
	UpdateRestaurantRating(ctx context.Context, restaurantID kernel.UUID, averageRating decimal.Decimal, totalReviews int64) error
}
