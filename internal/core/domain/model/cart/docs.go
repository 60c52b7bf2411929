// Package cart implements the cart aggregate: the transient, per-customer
// staging area for a single restaurant's items before checkout.
//
// The aggregate enforces the single-restaurant invariant (every line belongs
// to the cart's restaurant), merges quantities when the same item is added
// twice, and treats a quantity of zero as line removal. Carts intentionally
// store no prices; amounts are always derived from the live catalog.
package cart
