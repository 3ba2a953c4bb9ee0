package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "itask.com/itask/internal/http/middlewares"
	"itask.com/itask/internal/sessions"
)

type RouteConfig struct {
	SessionCookie      string
	CORSOrigin         string
	RateLimitPerMinute int
}

func Register(e *echo.Echo, h *Handler, store sessions.Store, cfg RouteConfig) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	resolve := middleware.ResolveSession(store, cfg.SessionCookie)
	auth := middleware.RequireSession(store, cfg.SessionCookie)

	// Registration resolves the session without requiring one: managers
	// self-register, developers are provisioned by a logged-in manager.
	e.POST("/register", h.Register, resolve)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout, auth)
	e.GET("/loginStatus", h.LoginStatus, auth)

	e.GET("/tarefas", h.ListTarefas, auth)
	e.POST("/tarefas", h.CreateTarefa, auth, middleware.RequireGestor)
	e.GET("/tarefas/:id", h.GetTarefa, auth)
	e.PUT("/tarefas/:id", h.UpdateTarefa, auth, middleware.RequireGestor)
	e.PUT("/tarefas/:id/estado", h.UpdateEstado, auth)
	e.DELETE("/tarefas/:id", h.DeleteTarefa, auth, middleware.RequireGestor)

	e.GET("/tipos-tarefa", h.ListTipos, auth)
	e.POST("/tipos-tarefa", h.CreateTipo, auth, middleware.RequireGestor)
	e.PUT("/tipos-tarefa/:id", h.UpdateTipo, auth, middleware.RequireGestor)
	e.DELETE("/tipos-tarefa/:id", h.DeleteTipo, auth, middleware.RequireGestor)

	e.GET("/meus-programadores", h.ListProgramadores, auth, middleware.RequireGestor)
	e.GET("/gerir-programadores", h.ListProgramadores, auth, middleware.RequireGestor)
	e.PUT("/programadores/:id", h.UpdateProgramador, auth, middleware.RequireGestor)
	e.DELETE("/programadores/:id", h.DeleteProgramador, auth, middleware.RequireGestor)

	e.GET("/tarefas-concluidas", h.HistoricoProgramador, auth)
	e.GET("/gestor/tarefas-concluidas", h.HistoricoGestor, auth, middleware.RequireGestor)
	e.GET("/gestor/tarefas-em-curso", h.TarefasEmCurso, auth, middleware.RequireGestor)
	e.GET("/gestor/previsao-todo", h.PrevisaoToDo, auth, middleware.RequireGestor)
	e.GET("/gestor/exportar-tarefas-csv", h.ExportarCSV, auth, middleware.RequireGestor)
}
