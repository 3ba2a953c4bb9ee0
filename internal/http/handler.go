package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "itask.com/itask/internal/errors"
	"itask.com/itask/internal/services"
)

type Handler struct {
	auth      *services.AuthService
	tasks     *services.TaskService
	lifecycle *services.LifecycleService
	team      *services.TeamService
	reports   *services.ReportService
	tipos     *services.TipoTarefaService

	cookieName string
	cookieTTL  time.Duration
}

func NewHandler(
	auth *services.AuthService,
	tasks *services.TaskService,
	lifecycle *services.LifecycleService,
	team *services.TeamService,
	reports *services.ReportService,
	tipos *services.TipoTarefaService,
	cookieName string,
	cookieTTL time.Duration,
) *Handler {
	return &Handler{
		auth:       auth,
		tasks:      tasks,
		lifecycle:  lifecycle,
		team:       team,
		reports:    reports,
		tipos:      tipos,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

// httpError maps domain exceptions onto echo's error envelope; anything
// outside the catalog is a store failure and stays opaque to the caller.
func httpError(err error) error {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		return echo.NewHTTPError(code, "Erro interno do servidor.")
	}
	return echo.NewHTTPError(code, err.Error())
}

func paramID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Id inválido.")
	}
	return uint(id), nil
}
