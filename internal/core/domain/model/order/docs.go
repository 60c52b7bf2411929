// Package order provides domain entities and business logic for order management
// in the foodcourt system. It implements the Order aggregate root with lifecycle
// management and role-scoped state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the immutable checkout snapshot and the mutable lifecycle fields
//   - Status: A closed enumeration of lifecycle states
//   - Role: The actor kinds allowed to drive transitions
//   - CanTransition: A pure function over static role-keyed transition tables
//
// Key business rules:
//   - Line prices are frozen at creation and never follow later menu changes
//   - grand total = subtotal + delivery fee + tax, fixed at creation
//   - Restaurant owners move orders pending -> confirmed -> preparing -> ready
//   - Drivers move orders ready -> picked_up -> delivered and hold at most one
//     active delivery at a time
//   - Customers may cancel only from pending or confirmed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
