// Package order implements the Order aggregate of the restaurant domain.
//
// An Order is one active transaction at a table or for a delivery/pickup
// customer. It owns its line items (Item entities); items are only added,
// removed or advanced through the aggregate so that the running total and
// the status invariants always hold.
//
// Order lifecycle:
//
//	saved ──> sent_to_kitchen ──> billed ──> paid
//	  │              │               │
//	  └──────────────┴───────────────┴──> completed (delivery/pickup only)
//
// Billing and kitchen dispatch are independent: an order may be billed before
// its items were dispatched and sending a billed order to the kitchen keeps it
// billed. paid and completed are terminal.
//
// Item lifecycle:
//
//	new ──> preparing ──> ready ──> served
//
// Item statuses only move forward. Orders imported from the digital menu are
// created directly in sent_to_kitchen and carry the foreign document id as
// their external reference.
package order
