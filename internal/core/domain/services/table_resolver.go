package services

import (
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableResolution is the outcome of matching an external table label.
type TableResolution struct {
	// Table is nil when nothing matched.
	Table *table.Table

	// FloorMatched is true when the floor name matched a floor.
	FloorMatched bool

	// Ambiguous is true when the fallback search found the number on several
	// floors; Table is then the first match.
	Ambiguous bool

	// Candidates is the number of tables that carried the number.
	Candidates int
}

// TableResolver matches the (table number, floor name) pair of an order placed
// elsewhere to a table of the floor plan.
type TableResolver struct{}

func NewTableResolver() TableResolver {
	return TableResolver{}
}

// Resolve looks for the floor by name (case-insensitive) and the table by
// number on that floor. When the floor is empty or unknown, or the number is
// not on it, every floor is searched and the first table with the number
// wins.
//
// tables must be in a stable order (floor display order, then number) for
// "first match" to be deterministic.
func (TableResolver) Resolve(tables []*table.Table, floors []*table.Floor, tableNumber, floorName string) TableResolution {
	number := strings.TrimSpace(tableNumber)
	if number == "" {
		return TableResolution{}
	}

	var floorID *kernel.UUID
	if strings.TrimSpace(floorName) != "" {
		for _, f := range floors {
			if f.HasName(floorName) {
				id := f.ID()
				floorID = &id
				break
			}
		}
	}

	var res TableResolution
	res.FloorMatched = floorID != nil

	var matches []*table.Table
	for _, t := range tables {
		if !strings.EqualFold(t.Number(), number) {
			continue
		}
		if floorID != nil && t.FloorID() != nil && t.FloorID().IsEqual(*floorID) {
			res.Table = t
			res.Candidates = 1
			return res
		}
		matches = append(matches, t)
	}

	res.Candidates = len(matches)
	if len(matches) == 0 {
		return res
	}
	res.Table = matches[0]
	res.Ambiguous = len(matches) > 1
	return res
}
