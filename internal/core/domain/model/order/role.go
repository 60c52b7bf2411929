package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Role identifies the kind of actor requesting an order mutation. Transition
// authority is scoped per role: each role owns its own table of permitted
// status moves and nothing outside it.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer placed the order and may cancel it early.
	RoleCustomer

	// RoleRestaurantOwner runs the kitchen side of the lifecycle.
	RoleRestaurantOwner

	// RoleDeliveryDriver runs the delivery side of the lifecycle.
	RoleDeliveryDriver

	// RoleAdmin is recognized for identification purposes but holds no
	// transition table; admins observe, they do not drive the lifecycle.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleCustomer:        "customer",
		RoleRestaurantOwner: "restaurant_owner",
		RoleDeliveryDriver:  "delivery_driver",
		RoleAdmin:           "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "customer",
		RoleRestaurantOwner: "restaurant_owner",
		RoleDeliveryDriver:  "delivery_driver",
		RoleAdmin:           "admin",
	}
}

// RoleFromString parses a wire representation of a role.
// Returns an error for unrecognized input.
func RoleFromString(s string) (Role, error) {
	for r, str := range getValidRoleStrings() {
		if str == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
