// Package dbconv holds the conversions shared by the GORM repositories:
// identifiers, money and driver errors.
package dbconv

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func KernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func KernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func Decimal(m kernel.Money) decimal.Decimal {
	return m.Decimal()
}

func Money(d decimal.Decimal) kernel.Money {
	return kernel.NewMoneyFromDecimal(d)
}

// NotFound turns gorm.ErrRecordNotFound into an ObjectNotFoundError.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(paramName, id, err)
	}
	return err
}

// Conflict turns a unique violation into a ConflictError. The connection must
// be opened with gorm.Config{TranslateError: true}.
func Conflict(err error, resource, reason string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(resource, reason, err)
	}
	return err
}
