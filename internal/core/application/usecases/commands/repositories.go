// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler names the narrowest unit of work it can run on.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CatalogRepoFactory provides access to the catalog read model within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// CartUoW manages transactions for cart mutations, which also read the
	// catalog to price and validate items.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the cart-to-order transaction: the cart is read
	// and deleted, the order created, and the catalog consulted for prices,
	// fees and minimums, all atomically.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations
	// (status transitions, driver acceptance, cancellation).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions that write payment attempts and
	// synchronize the order's payment state.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ReviewUoW manages the review transaction: the order is checked, the
	// review stored, and the restaurant's rating aggregates recomputed.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
		CatalogRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// MaintenanceUoW manages transactions for background maintenance that
	// touches only carts.
	MaintenanceUoW interface {
		TxManager
		CartRepoFactory
	}

	// MaintenanceUoWFactory creates new maintenance unit of work instances.
	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}
)
