// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering engine. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutCalculator: A domain service turning priced order lines into the
//     frozen monetary breakdown of an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
