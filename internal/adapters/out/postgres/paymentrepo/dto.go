// Package paymentrepo provides data transfer objects and mapping functions for
// payment persistence. Every settlement attempt against an order gets its own
// row; failed attempts are kept for traceability.
package paymentrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment attempts.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2)"`
	Method        string
	Status        string
	TransactionID string `gorm:"uniqueIndex"`
	PhoneNumber   string
	CardLastFour  string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	meta := aggregate.Meta()

	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Amount:        aggregate.Amount().Decimal(),
		Method:        aggregate.Method().String(),
		Status:        aggregate.Status().String(),
		TransactionID: aggregate.TransactionID(),
		PhoneNumber:   meta.PhoneNumber,
		CardLastFour:  meta.CardLastFour,
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		customerID,
		amount,
		method,
		status,
		dto.TransactionID,
		payment.Meta{PhoneNumber: dto.PhoneNumber, CardLastFour: dto.CardLastFour},
	)
}
