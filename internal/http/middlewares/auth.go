package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "itask.com/itask/internal/errors"
	model "itask.com/itask/internal/models"
	"itask.com/itask/internal/sessions"
)

const (
	accountKey = "itask.account"
	tokenKey   = "itask.session_token"
)

// ResolveSession loads the account behind the session cookie into the request
// context when present. It never rejects; routes that allow anonymous callers
// (registration) use it directly.
func ResolveSession(store sessions.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				account, err := store.Get(c.Request().Context(), cookie.Value)
				if err == nil {
					c.Set(accountKey, account)
					c.Set(tokenKey, cookie.Value)
				}
			}
			return next(c)
		}
	}
}

// RequireSession rejects callers without a live session.
func RequireSession(store sessions.Store, cookieName string) echo.MiddlewareFunc {
	resolve := ResolveSession(store, cookieName)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return resolve(func(c echo.Context) error {
			if Account(c) == nil {
				return echo.NewHTTPError(apperrors.ErrNaoAutenticado.StatusCode, apperrors.ErrNaoAutenticado.Message)
			}
			return next(c)
		})
	}
}

// RequireGestor rejects authenticated callers whose role is not Gestor. It
// must run after RequireSession.
func RequireGestor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !Account(c).IsGestor() {
			return echo.NewHTTPError(apperrors.ErrAcessoNegado.StatusCode, apperrors.ErrAcessoNegado.Message)
		}
		return next(c)
	}
}

// Account returns the resolved caller, or nil for anonymous requests.
func Account(c echo.Context) *model.Account {
	account, _ := c.Get(accountKey).(*model.Account)
	return account
}

// SessionToken returns the raw session token for logout.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}
