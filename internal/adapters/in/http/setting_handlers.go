package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type settingRequest struct {
	Value string `json:"value"`
}

// GetSetting handles GET /api/settings/:key.
func (s *Server) GetSetting(ctx echo.Context) error {
	query, err := queries.NewGetSettingQuery(ctx.Param("key"))
	if err != nil {
		return s.fail(ctx, err)
	}
	setting, err := s.queries.Setting.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, setting)
}

// SetSetting handles PUT /api/settings/:key.
func (s *Server) SetSetting(ctx echo.Context) error {
	var req settingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	cmd, err := commands.NewSetSettingCommand(ctx.Param("key"), req.Value)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.SetSetting.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.SettingView{Key: cmd.Key(), Value: cmd.Value()})
}
