// Package kernel provides the shared domain primitives used by every
// aggregate in the foodcourt system:
//
//   - UUID: identity value object with validation and comparison
//   - Money: monetary amounts backed by arbitrary-precision decimals
//
// Both are immutable value objects constructed through factory functions;
// their zero values fail validation, which lets aggregates detect fields
// that bypassed construction.
package kernel
