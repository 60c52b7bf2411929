// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. This package implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their string names so the rows stay readable and the
// read-side queries can filter on them directly. Monetary amounts are numeric
// columns; the pricing breakdown is frozen at checkout and never updated.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number          string     `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	// The partial unique index keeps a driver on at most one picked_up order,
	// backstopping the in-transaction active-delivery re-check under
	// concurrent accepts.
	DriverID        *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uniq_orders_active_driver,where:status = 'picked_up'"`
	Status          string     `gorm:"index"`
	PaymentState    string
	PaymentMethod   string
	Subtotal        decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Tax             decimal.Decimal `gorm:"type:numeric(10,2)"`
	GrandTotal      decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryAddress string
	DeliveryCity    string `gorm:"index"`
	Instructions    string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line with its price frozen at checkout.
type OrderLineDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2)"`
	Instructions string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	pricing := aggregate.Pricing()
	destination := aggregate.Destination()

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DriverID:        driverID,
		Status:          aggregate.Status().String(),
		PaymentState:    aggregate.PaymentState().String(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		Subtotal:        pricing.Subtotal.Decimal(),
		DeliveryFee:     pricing.DeliveryFee.Decimal(),
		Tax:             pricing.Tax.Decimal(),
		GrandTotal:      pricing.GrandTotal.Decimal(),
		DeliveryAddress: destination.Address,
		DeliveryCity:    destination.City,
		Instructions:    aggregate.Instructions(),
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:           line.ID().Bytes(),
			OrderID:      dto.ID,
			MenuItemID:   line.MenuItemID().Bytes(),
			Quantity:     line.Quantity(),
			UnitPrice:    line.UnitPrice().Decimal(),
			Instructions: line.Instructions(),
		})
	}

	return dto, lines
}

// toDomain converts database rows to an order domain aggregate.
// Reconstructs the complete aggregate including status, payment state and
// driver assignment using RestoreOrder.
func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
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

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentState, err := order.PaymentStateFromString(dto.PaymentState)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingFromDTO(dto)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := lineFromDTO(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		restaurantID,
		driverID,
		status,
		paymentState,
		method,
		lines,
		pricing,
		order.Destination{Address: dto.DeliveryAddress, City: dto.DeliveryCity},
		dto.Instructions,
	)
}

func pricingFromDTO(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Pricing{}, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Pricing{}, err
	}

	grandTotal, err := kernel.NewMoney(dto.GrandTotal)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.Pricing{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		GrandTotal:  grandTotal,
	}, nil
}

func lineFromDTO(dto OrderLineDTO) (order.Line, error) {
	lineID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(lineID, menuItemID, dto.Quantity, unitPrice, dto.Instructions)
}
