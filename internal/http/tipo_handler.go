package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "itask.com/itask/internal/data_models"
)

func (h *Handler) ListTipos(c echo.Context) error {
	tipos, err := h.tipos.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tipos)
}

func (h *Handler) CreateTipo(c echo.Context) error {
	var req dto.TipoTarefaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	tipo, err := h.tipos.Create(c.Request().Context(), req.Nome)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, tipo)
}

func (h *Handler) UpdateTipo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.TipoTarefaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	tipo, err := h.tipos.Update(c.Request().Context(), id, req.Nome)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tipo)
}

func (h *Handler) DeleteTipo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.tipos.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tipo de tarefa eliminado."})
}
