// Package services provides domain services that work across aggregates of the
// restaurant domain and do not belong to a single one.
//
// The package includes:
//   - TableStatusProjector: derives a table's status from its order's item statuses
//   - KitchenBoard: partitions orders into the kitchen display groups
//   - KitchenTimers: per-order elapsed-time records for the kitchen display
//   - TableResolver: matches table/floor labels of external orders to tables
//
// Everything except KitchenTimers is stateless.
package services
