package commands

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSetSettingCommandIsNotConstructed = errors.New(
	"SetSettingCommand must be created via NewSetSettingCommand constructor",
)

// SetSettingCommand stores one key/value setting, e.g. the digital-menu
// connection string.
type SetSettingCommand struct { //nolint:recvcheck //using for validation
	key   string
	value string

	guard guard.ConstructorGuard
}

func NewSetSettingCommand(key, value string) (SetSettingCommand, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return SetSettingCommand{}, errs.NewValueIsRequiredError("key")
	}
	return SetSettingCommand{key: key, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c SetSettingCommand) Validate() error {
	return c.guard.Validate(ErrSetSettingCommandIsNotConstructed)
}

func (c SetSettingCommand) Key() string {
	return c.key
}

func (c SetSettingCommand) Value() string {
	return c.value
}
