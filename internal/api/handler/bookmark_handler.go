package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for bookmark operations. All routes
// require an authenticated identity.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

type bookmarkRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

type toggleResponse struct {
	Message      string `json:"message"`
	IsBookmarked bool   `json:"isBookmarked"`
}

type checkResponse struct {
	IsBookmarked bool `json:"isBookmarked"`
}

// List handles GET /bookmarks — the caller's bookmarked listings.
//
// @Summary      List bookmarked properties
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   propertyResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListBookmarked(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Toggle handles POST /bookmarks — flips bookmark membership.
//
// @Summary      Toggle a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookmarkRequest  true  "Property to toggle"
// @Success      200   {object}  toggleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Toggle(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req bookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Toggle(c.Request().Context(), userID, req.PropertyID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toggleResponse{
		Message:      result.Message,
		IsBookmarked: result.IsBookmarked,
	})
}

// Check handles POST /bookmarks/check — membership query without mutation.
//
// @Summary      Check bookmark membership
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookmarkRequest  true  "Property to check"
// @Success      200   {object}  checkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookmarks/check [post]
func (h *BookmarkHandler) Check(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req bookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookmarked, err := h.service.IsBookmarked(c.Request().Context(), userID, req.PropertyID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkResponse{IsBookmarked: bookmarked})
}
