package orderrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", aggregate.Number(), err)
		}
		return err
	}

	if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Lines and pricing are frozen at checkout; only the mutable columns (status,
// driver assignment, payment state) are written back.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"driver_id":     dto.DriverID,
			"payment_state": dto.PaymentState,
		})
	if result.Error != nil {
		// The only unique constraint these columns can violate is the
		// partial index on active deliveries.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return order.ErrDriverBusy
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves an order by its order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.getByNumber(ctx, number, false)
}

// GetByNumberForUpdate retrieves an order by number holding a row-level write
// lock for the rest of the transaction. Only the order row is locked; lines
// are immutable and need no lock.
func (r *GormOrderRepository) GetByNumberForUpdate(ctx context.Context, number string) (*order.Order, error) {
	return r.getByNumber(ctx, number, true)
}

func (r *GormOrderRepository) getByNumber(ctx context.Context, number string, forUpdate bool) (*order.Order, error) {
	if err := order.ValidateNumber(number); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number)
		}
		return nil, err
	}

	var lineDTOs []OrderLineDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&lineDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}

// CountActiveDeliveries returns how many orders the driver currently has in
// picked_up status. Callers invoke this under the order row lock to enforce
// one active delivery per driver.
func (r *GormOrderRepository) CountActiveDeliveries(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), order.StatusPickedUp.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
