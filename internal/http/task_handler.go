package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todo-lists.com/todo-lists/internal/data_models"
	middleware "todo-lists.com/todo-lists/internal/http/middlewares"
	repository "todo-lists.com/todo-lists/internal/repositories"
)

func (h *Handler) ListTasks(c echo.Context) error {
	var query dto.TaskIndexQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	ctx := c.Request().Context()
	ownerID := middleware.OwnerID(c)

	page, err := h.taskService.ListTasks(ctx, repository.TaskFilter{
		OwnerID: ownerID,
		Search:  query.Search,
		Status:  query.Filter,
		Page:    parsePage(query.Page),
	})
	if err != nil {
		return err
	}

	lists, err := h.listService.ListsForOwner(ctx, ownerID, false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TasksIndexResponse{
		Tasks: page,
		Lists: lists,
		Filters: dto.Filters{
			Search: query.Search,
			Filter: query.Filter,
		},
		Flash: h.pullFlash(c),
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return h.redirectWithOutcome(c, tasksPath, bindError(err), "")
	}

	_, err := h.taskService.CreateTask(c.Request().Context(), middleware.OwnerID(c), req.Input())
	return h.redirectWithOutcome(c, tasksPath, err, "Task created successfully.")
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return h.redirectWithOutcome(c, tasksPath, bindError(err), "")
	}

	_, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), middleware.OwnerID(c), req.Input())
	return h.redirectWithOutcome(c, tasksPath, err, "Task updated successfully.")
}

func (h *Handler) DeleteTask(c echo.Context) error {
	err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	return h.redirectWithOutcome(c, tasksPath, err, "Task deleted successfully.")
}

// parsePage treats anything that is not a positive number as the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
