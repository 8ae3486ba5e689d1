// Package kernel provides the shared value objects of the restaurant domain.
//
// The package includes:
//   - UUID: identifier value object for every entity and aggregate
//   - Money: fixed-point currency amount backed by shopspring/decimal
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate, so domain constructors can detect values that
// bypassed the factory functions.
package kernel
