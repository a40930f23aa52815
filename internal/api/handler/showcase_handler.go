package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/adminboard/internal/core/ports"
)

// ShowcaseHandler serves the showcase CRUD surface.
type ShowcaseHandler struct {
	service ports.ShowcaseService
}

func NewShowcaseHandler(service ports.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{service: service}
}

// Create handles POST /showcase.
//
// @Summary      Create a showcase item
// @Tags         showcase
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "Item fields"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /showcase [post]
func (h *ShowcaseHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// List handles GET /showcase. Items come back newest-created-first,
// optionally filtered by ?status=. An empty result is 200 with an empty array.
//
// @Summary      List showcase items
// @Tags         showcase
// @Produce      json
// @Param        status  query     string  false  "Filter by status"  Enums(active, archived, draft)
// @Success      200     {array}   itemResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /showcase [get]
func (h *ShowcaseHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.ListItemsFilter{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemListResponse(items))
}

// Update handles PUT /showcase/:id, a partial merge that refreshes
// updated_at. PUT /showcase with the id in the body ("id" or the older
// "_id") is kept for existing clients.
//
// @Summary      Update a showcase item
// @Tags         showcase
// @Accept       json
// @Produce      json
// @Param        id    path      string             false  "Item id"
// @Param        body  body      updateItemRequest  true   "Fields to change"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /showcase/{id} [put]
func (h *ShowcaseHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if id := c.Param("id"); id != "" {
		req.ID = id
	} else if req.ID == "" {
		req.ID = req.LegacyID
	}
	if req.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), req.ID, toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /showcase?id=... as a hard delete.
//
// @Summary      Delete a showcase item
// @Tags         showcase
// @Produce      json
// @Param        id  query     string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /showcase [delete]
func (h *ShowcaseHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}
