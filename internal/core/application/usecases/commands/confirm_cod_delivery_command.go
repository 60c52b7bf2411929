package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrConfirmCODDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmCODDeliveryCommand must be created via NewConfirmCODDeliveryCommand constructor",
	)

	// ErrOrderIsNotCOD is returned when COD confirmation is attempted on an
	// order paid electronically.
	ErrOrderIsNotCOD = errors.New("order is not cash on delivery")

	// ErrOrderIsNotDelivered is returned when COD confirmation is attempted
	// before the order reaches delivered status.
	ErrOrderIsNotDelivered = errors.New("order has not been delivered yet")
)

// ConfirmCODDeliveryCommand represents the assigned driver confirming that
// cash changed hands on a delivered COD order: the pending payment completes
// and the order becomes paid.
type ConfirmCODDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	driverID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCODDeliveryCommand creates a command to settle a delivered COD order.
func NewConfirmCODDeliveryCommand(orderNumber string, driverID kernel.UUID) (ConfirmCODDeliveryCommand, error) {
	cmd := ConfirmCODDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDriverID(driverID),
	); err != nil {
		return ConfirmCODDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCODDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCODDeliveryCommandIsNotConstructed)
}

// OrderNumber returns the order being settled.
func (c ConfirmCODDeliveryCommand) OrderNumber() string {
	return c.orderNumber
}

// DriverID returns the confirming driver.
func (c ConfirmCODDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ConfirmCODDeliveryCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ConfirmCODDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
