package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-lists.com/todo-lists/internal/constants"
	apperrors "todo-lists.com/todo-lists/internal/errors"
	model "todo-lists.com/todo-lists/internal/models"
)

type UserResolver interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// Identity resolves the caller from the given request header. Authentication
// happens upstream; this only checks that the user exists.
func Identity(header string, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := strings.TrimSpace(c.Request().Header.Get(header))
			if ownerID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing caller identity")
			}

			user, err := users.GetUser(c.Request().Context(), ownerID)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown caller")
				}
				return err
			}

			c.Set(constants.OwnerIDContextKey, user.ID)
			return next(c)
		}
	}
}

func OwnerID(c echo.Context) string {
	id, _ := c.Get(constants.OwnerIDContextKey).(string)
	return id
}
