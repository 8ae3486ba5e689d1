package queries

import (
	"context"
	"errors"
	"strings"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetSettingQueryIsNotConstructed = errors.New(
	"GetSettingQuery must be created via NewGetSettingQuery constructor",
)

type GetSettingQuery struct {
	key string

	guard guard.ConstructorGuard
}

func NewGetSettingQuery(key string) (GetSettingQuery, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return GetSettingQuery{}, errs.NewValueIsRequiredError("key")
	}
	return GetSettingQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettingQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingQueryIsNotConstructed)
}

// SettingView is a stored key/value pair.
type SettingView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type GetSettingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetSettingQueryHandler(uowFactory ports.UnitOfWorkFactory) GetSettingQueryHandler {
	return GetSettingQueryHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for keys never set.
func (h GetSettingQueryHandler) Handle(ctx context.Context, query GetSettingQuery) (SettingView, error) {
	if err := query.Validate(); err != nil {
		return SettingView{}, err
	}
	value, err := h.uowFactory.Create().SettingRepository().Get(ctx, query.key)
	if err != nil {
		return SettingView{}, err
	}
	return SettingView{Key: query.key, Value: value}, nil
}
