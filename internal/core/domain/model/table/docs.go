// Package table models the seating layout: floors and the tables on them.
//
// A table's status is mostly a projection of its current order's item
// statuses (preparing, ready, served). Only free and reserved are set
// directly, by the order lifecycle and by reservations.
package table
