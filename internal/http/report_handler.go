package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "itask.com/itask/internal/http/middlewares"
)

func (h *Handler) HistoricoProgramador(c echo.Context) error {
	account := middleware.Account(c)
	historico, err := h.reports.HistoricoProgramador(c.Request().Context(), account.Id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, historico)
}

func (h *Handler) HistoricoGestor(c echo.Context) error {
	account := middleware.Account(c)
	historico, err := h.reports.HistoricoGestor(c.Request().Context(), account.Id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, historico)
}

func (h *Handler) TarefasEmCurso(c echo.Context) error {
	account := middleware.Account(c)
	tarefas, err := h.reports.EmCurso(c.Request().Context(), account.Id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tarefas)
}

func (h *Handler) PrevisaoToDo(c echo.Context) error {
	account := middleware.Account(c)
	previsao, err := h.reports.PrevisaoToDo(c.Request().Context(), account.Id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, previsao)
}

func (h *Handler) ExportarCSV(c echo.Context) error {
	account := middleware.Account(c)
	data, err := h.reports.ExportCSV(c.Request().Context(), account.Id)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tarefas_concluidas.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
