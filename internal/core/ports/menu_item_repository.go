package ports

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

type MenuItemRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// GetByName matches case-insensitively; ObjectNotFoundError when absent.
	GetByName(ctx context.Context, name string) (*menu.MenuItem, error)
}
