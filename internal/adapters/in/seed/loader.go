// Package seed loads a restaurant layout (floors, tables and menu) from YAML.
//
//	floors:
//	  - name: Ground
//	    displayOrder: 1
//	    tables:
//	      - number: T1
//	        seats: 4
//	tables:            # tables without a floor
//	  - number: B1
//	    seats: 2
//	menu:
//	  - name: Paneer Tikka
//	    category: Starters
//	    price: "150.00"
//	    isVeg: true
//
// Loading is idempotent: floors are matched by name, tables by number within
// their floor and menu items by name, and existing entries are left alone.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type File struct {
	Floors []Floor     `yaml:"floors"`
	Tables []Table     `yaml:"tables"`
	Menu   []MenuEntry `yaml:"menu"`
}

type Floor struct {
	Name         string  `yaml:"name"`
	DisplayOrder int     `yaml:"displayOrder"`
	Tables       []Table `yaml:"tables"`
}

type Table struct {
	Number string `yaml:"number"`
	Seats  int    `yaml:"seats"`
}

type MenuEntry struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Price     string `yaml:"price"`
	IsVeg     bool   `yaml:"isVeg"`
	Available *bool  `yaml:"available"`
}

// Report counts what a load created.
type Report struct {
	Floors    int
	Tables    int
	MenuItems int
}

type Loader struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *zap.Logger
}

func NewLoader(uowFactory ports.UnitOfWorkFactory, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{uowFactory: uowFactory, logger: logger.With(zap.String("component", "seed"))}
}

// LoadFile seeds from the YAML file at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return l.Load(ctx, f)
}

// Load seeds from r in a single unit of work.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Report, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Report{}, fmt.Errorf("decode seed file: %w", err)
	}

	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Report{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var report Report
	for _, f := range file.Floors {
		floor, created, err := l.ensureFloor(ctx, uow, f)
		if err != nil {
			return Report{}, err
		}
		if created {
			report.Floors++
		}
		floorID := floor.ID()
		for _, t := range f.Tables {
			added, err := l.ensureTable(ctx, uow, &floorID, t)
			if err != nil {
				return Report{}, err
			}
			if added {
				report.Tables++
			}
		}
	}
	for _, t := range file.Tables {
		added, err := l.ensureTable(ctx, uow, nil, t)
		if err != nil {
			return Report{}, err
		}
		if added {
			report.Tables++
		}
	}
	for _, m := range file.Menu {
		added, err := l.ensureMenuItem(ctx, uow, m)
		if err != nil {
			return Report{}, err
		}
		if added {
			report.MenuItems++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return Report{}, err
	}

	l.logger.Info("Seed loaded",
		zap.Int("floors", report.Floors),
		zap.Int("tables", report.Tables),
		zap.Int("menu_items", report.MenuItems),
	)
	return report, nil
}

func (l *Loader) ensureFloor(ctx context.Context, uow ports.UnitOfWork, f Floor) (*table.Floor, bool, error) {
	existing, err := uow.FloorRepository().GetByName(ctx, f.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	floor, err := table.NewFloor(kernel.NewUUID(), f.Name, f.DisplayOrder)
	if err != nil {
		return nil, false, fmt.Errorf("floor %q: %w", f.Name, err)
	}
	if err = uow.FloorRepository().Add(ctx, floor); err != nil {
		return nil, false, err
	}
	return floor, true, nil
}

func (l *Loader) ensureTable(ctx context.Context, uow ports.UnitOfWork, floorID *kernel.UUID, t Table) (bool, error) {
	same, err := uow.TableRepository().GetByNumber(ctx, t.Number)
	if err != nil {
		return false, err
	}
	for _, existing := range same {
		if sameFloor(existing.FloorID(), floorID) {
			return false, nil
		}
	}

	created, err := table.NewTable(kernel.NewUUID(), floorID, t.Number, t.Seats)
	if err != nil {
		return false, fmt.Errorf("table %q: %w", t.Number, err)
	}
	if err = uow.TableRepository().Add(ctx, created); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Loader) ensureMenuItem(ctx context.Context, uow ports.UnitOfWork, m MenuEntry) (bool, error) {
	_, err := uow.MenuItemRepository().GetByName(ctx, m.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	price, err := kernel.NewMoneyFromString(m.Price)
	if err != nil {
		return false, fmt.Errorf("menu item %q: %w", m.Name, err)
	}
	item, err := menu.NewMenuItem(kernel.NewUUID(), m.Name, m.Category, price, m.IsVeg)
	if err != nil {
		return false, fmt.Errorf("menu item %q: %w", m.Name, err)
	}
	if m.Available != nil && !*m.Available {
		item = menu.RestoreMenuItem(item.ID(), item.Name(), item.Category(), item.Price(), item.IsVeg(), false)
	}
	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

func sameFloor(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}
