package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Repositories obtained
// after Begin read and write inside the transaction; without Begin each call
// stands alone, which is how queries use it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin. It fails when no
	// transaction is open, so calling it after Commit is harmless.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	TableRepository() TableRepository
	FloorRepository() FloorRepository
	InvoiceRepository() InvoiceRepository
	ReservationRepository() ReservationRepository
	MenuItemRepository() MenuItemRepository
	SettingRepository() SettingRepository
}
