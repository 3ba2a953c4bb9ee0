package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"itask.com/itask/internal/constants"
	dto "itask.com/itask/internal/data_models"
	middleware "itask.com/itask/internal/http/middlewares"
	"itask.com/itask/internal/http/validators"
	"itask.com/itask/internal/services"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return httpError(err)
	}

	input := services.RegisterInput{
		Nome:             req.Nome,
		Username:         req.Username,
		Password:         req.Password,
		Papel:            constants.Papel(req.Papel),
		Departamento:     req.Departamento,
		NivelExperiencia: constants.Nivel(req.NivelExperiencia),
	}

	account, err := h.auth.Register(c.Request().Context(), input, middleware.Account(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Utilizador registado com sucesso como %s.", account.Papel),
		"user":    account,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return httpError(err)
	}

	account, token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, account)
}

func (h *Handler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			return httpError(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Sessão terminada."})
}

func (h *Handler) LoginStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"loggedIn": true,
		"user":     middleware.Account(c),
	})
}
