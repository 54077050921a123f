package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-lists.com/todo-lists/internal/data_models"
	middleware "todo-lists.com/todo-lists/internal/http/middlewares"
)

func (h *Handler) ListLists(c echo.Context) error {
	lists, err := h.listService.ListsForOwner(c.Request().Context(), middleware.OwnerID(c), true)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ListsIndexResponse{
		Lists: lists,
		Flash: h.pullFlash(c),
	})
}

func (h *Handler) GetList(c echo.Context) error {
	list, err := h.listService.GetList(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateList(c echo.Context) error {
	var req dto.ListRequest
	if err := c.Bind(&req); err != nil {
		return h.redirectWithOutcome(c, listsPath, bindError(err), "")
	}

	_, err := h.listService.CreateList(c.Request().Context(), middleware.OwnerID(c), req.Input())
	return h.redirectWithOutcome(c, listsPath, err, "List created successfully.")
}

func (h *Handler) UpdateList(c echo.Context) error {
	var req dto.ListRequest
	if err := c.Bind(&req); err != nil {
		return h.redirectWithOutcome(c, listsPath, bindError(err), "")
	}

	_, err := h.listService.UpdateList(c.Request().Context(), c.Param("id"), middleware.OwnerID(c), req.Input())
	return h.redirectWithOutcome(c, listsPath, err, "List updated successfully.")
}

func (h *Handler) DeleteList(c echo.Context) error {
	err := h.listService.DeleteList(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	return h.redirectWithOutcome(c, listsPath, err, "List deleted successfully.")
}
