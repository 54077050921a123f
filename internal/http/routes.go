package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	middleware "todo-lists.com/todo-lists/internal/http/middlewares"
)

type RouteConfig struct {
	IdentityHeader     string
	SessionCookie      string
	RateLimitPerMinute int
	Users              middleware.UserResolver
	Logger             *zap.Logger
}

func Register(e *echo.Echo, h *Handler, cfg RouteConfig) {
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	// HTML forms can only POST; _method carries PUT and DELETE.
	e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
		Getter: echomw.MethodFromForm("_method"),
	}))
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomw.Recover())

	e.GET("/health", h.Health)

	app := []echo.MiddlewareFunc{
		middleware.Session(cfg.SessionCookie),
		middleware.Identity(cfg.IdentityHeader, cfg.Users),
		middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute, middleware.OwnerOrIP),
	}

	e.GET(listsPath, h.ListLists, app...)
	e.GET(listsPath+"/:id", h.GetList, app...)
	e.POST(listsPath, h.CreateList, app...)
	e.PUT(listsPath+"/:id", h.UpdateList, app...)
	e.DELETE(listsPath+"/:id", h.DeleteList, app...)

	e.GET(tasksPath, h.ListTasks, app...)
	e.GET(tasksPath+"/:id", h.GetTask, app...)
	e.POST(tasksPath, h.CreateTask, app...)
	e.PUT(tasksPath+"/:id", h.UpdateTask, app...)
	e.DELETE(tasksPath+"/:id", h.DeleteTask, app...)
}
