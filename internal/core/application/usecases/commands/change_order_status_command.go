package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status on behalf of an acting role: a restaurant owner walking the order
// through the kitchen, or the assigned driver marking it delivered.
//
// Customer cancellation and driver acceptance have their own commands; this
// one covers every transition with no extra side effects.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	actorID     kernel.UUID
	role        order.Role
	target      order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// actorID identifies the caller: the owned restaurant for restaurant owners,
// the driver for drivers. Ownership is re-checked by the handler against the
// stored order.
func NewChangeOrderStatusCommand(
	orderNumber string,
	actorID kernel.UUID,
	role order.Role,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setActorID(actorID),
		cmd.setRole(role),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the order being transitioned.
func (c ChangeOrderStatusCommand) OrderNumber() string {
	return c.orderNumber
}

// ActorID returns the caller's identity for the ownership check.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the acting role.
func (c ChangeOrderStatusCommand) Role() order.Role {
	return c.role
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
