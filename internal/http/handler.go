package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "todo-lists.com/todo-lists/internal/data_models"
	apperrors "todo-lists.com/todo-lists/internal/errors"
	"todo-lists.com/todo-lists/internal/flash"
	middleware "todo-lists.com/todo-lists/internal/http/middlewares"
	"todo-lists.com/todo-lists/internal/services"
	"todo-lists.com/todo-lists/internal/validators"
)

const (
	listsPath = "/lists"
	tasksPath = "/tasks"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	listService *services.ListService
	taskService *services.TaskService
	flashes     flash.Store
	health      HealthCheck
	logger      *zap.Logger
}

func NewHandler(
	listService *services.ListService,
	taskService *services.TaskService,
	flashes flash.Store,
	health HealthCheck,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		listService: listService,
		taskService: taskService,
		flashes:     flashes,
		health:      health,
		logger:      logger.Named("http"),
	}
}

func (h *Handler) Health(c echo.Context) error {
	if h.health != nil {
		if err := h.health(c.Request().Context()); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// redirectWithOutcome stores the result of a mutation as a flash and sends
// the browser back to target. Errors outside the user-facing taxonomy are
// returned so the error handler answers 500.
func (h *Handler) redirectWithOutcome(c echo.Context, target string, err error, success string) error {
	kind, message := flash.KindSuccess, success
	if err != nil {
		if !apperrors.IsUserFacing(err) {
			return err
		}
		h.logger.Warn("mutation rejected",
			zap.String("path", c.Request().URL.Path),
			zap.String("owner_id", middleware.OwnerID(c)),
			zap.Error(err),
		)
		kind, message = flash.KindError, err.Error()
	}

	h.putFlash(c, kind, message)
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) putFlash(c echo.Context, kind flash.Kind, message string) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		return
	}
	if err := h.flashes.Put(c.Request().Context(), sessionID, kind, message); err != nil {
		h.logger.Warn("failed to store flash", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// pullFlash never fails the page: a broken flash store only loses the message.
func (h *Handler) pullFlash(c echo.Context) flash.Flash {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		return flash.Flash{}
	}
	f, err := h.flashes.Pull(c.Request().Context(), sessionID)
	if err != nil {
		h.logger.Warn("failed to read flash", zap.String("session_id", sessionID), zap.Error(err))
		return flash.Flash{}
	}
	if !f.IsEmpty() {
		h.logger.Debug("flash delivered", zap.String("session_id", sessionID))
	}
	return f
}

// bindError maps binder failures onto the validation taxonomy.
func bindError(err error) error {
	if errors.Is(err, dto.ErrInvalidBoolean) {
		return apperrors.NewValidation(map[string]string{
			"is_completed": validators.Message("is_completed", "boolean", ""),
		}, []string{"is_completed"})
	}
	return apperrors.ErrInvalidPayload
}
