package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"todo-lists.com/todo-lists/internal/constants"
)

// Session gives every browser a stable id for its flash messages. A missing
// or malformed cookie is replaced with a fresh one.
func Session(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(constants.SessionIDContextKey, sessionID)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	id, _ := c.Get(constants.SessionIDContextKey).(string)
	return id
}
