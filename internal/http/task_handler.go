package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"itask.com/itask/internal/constants"
	dto "itask.com/itask/internal/data_models"
	middleware "itask.com/itask/internal/http/middlewares"
	"itask.com/itask/internal/http/validators"
	"itask.com/itask/internal/services"
)

func (h *Handler) ListTarefas(c echo.Context) error {
	tasks, err := h.tasks.List(c.Request().Context(), middleware.Account(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTarefa(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	task, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTarefa(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.tasks.Create(c.Request().Context(), taskInput(&req), middleware.Account(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTarefa(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.tasks.UpdateDescritivo(c.Request().Context(), id, taskInput(&req), middleware.Account(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateEstado(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req dto.EstadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.lifecycle.Transition(
		c.Request().Context(),
		id,
		constants.Estado(req.NovoEstado),
		middleware.Account(c),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Estado atualizado com sucesso.",
		"tarefa":  task,
	})
}

func (h *Handler) DeleteTarefa(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), id, middleware.Account(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Tarefa eliminada."})
}

func taskInput(req *dto.TaskRequest) services.TaskInput {
	return services.TaskInput{
		Descricao:          req.Descricao,
		StoryPoints:        req.StoryPoints,
		OrdemExecucao:      req.OrdemExecucao,
		DataPrevistaInicio: req.DataPrevistaInicio,
		DataPrevistaFim:    req.DataPrevistaFim,
		IdTipoTarefa:       req.IdTipoTarefa,
		IdProgramador:      req.IdProgramador,
		DataRealInicio:     req.DataRealInicio,
		DataRealFim:        req.DataRealFim,
	}
}
