package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart and its lines to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("customerId", aggregate.CustomerID(), err)
		}
		return err
	}

	if len(lineDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cart, replacing its full set of lines.
// The cart row is touched even when only lines changed so that UpdatedAt
// reflects the last modification for the stale-cart purge.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CartDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"restaurant_id": dto.RestaurantID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartId", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "cart_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(lineDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a cart and its lines. Deleting an absent cart is a no-op.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "cart_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartDTO{}, "id = ?", id.Bytes()).Error
}

// GetByCustomer retrieves the customer's cart.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	return r.getByCustomer(ctx, customerID, false)
}

// GetByCustomerForUpdate retrieves the customer's cart holding a row-level
// write lock for the rest of the transaction.
func (r *GormCartRepository) GetByCustomerForUpdate(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	return r.getByCustomer(ctx, customerID, true)
}

func (r *GormCartRepository) getByCustomer(ctx context.Context, customerID kernel.UUID, forUpdate bool) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto CartDTO
	if err := query.First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID)
		}
		return nil, err
	}

	var lineDTOs []CartLineDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&lineDTOs, "cart_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}

// DeleteStale removes carts whose last modification is older than the cutoff,
// lines first. Returns the number of carts removed.
func (r *GormCartRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "cart_id IN (?)",
			r.db.Model(&CartDTO{}).Select("id").Where("updated_at < ?", cutoff),
		).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&CartDTO{}, "updated_at < ?", cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
