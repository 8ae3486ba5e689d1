package http

import (

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathUUID binds a uuid path parameter the way generated servers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromGoogle(raw)
}

// queryInt binds an optional integer query parameter, returning def when absent.
func queryInt(ctx echo.Context, name string, def int) (int, error) {
	var value *int
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return def, nil
	}
	return *value, nil
}

func optionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

