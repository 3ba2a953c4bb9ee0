package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"itask.com/itask/internal/constants"
	dto "itask.com/itask/internal/data_models"
	middleware "itask.com/itask/internal/http/middlewares"
)

// ListProgramadores serves both team roster routes.
func (h *Handler) ListProgramadores(c echo.Context) error {
	programadores, err := h.team.ListProgramadores(c.Request().Context(), middleware.Account(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, programadores)
}

func (h *Handler) UpdateProgramador(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.ProgramadorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	err = h.team.UpdateProgramador(
		c.Request().Context(),
		id,
		req.Nome,
		constants.Nivel(req.NivelExperiencia),
		middleware.Account(c),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Dados atualizados."})
}

func (h *Handler) DeleteProgramador(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.team.DeleteProgramador(c.Request().Context(), id, middleware.Account(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Programador eliminado."})
}
