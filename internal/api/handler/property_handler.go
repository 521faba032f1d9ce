package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// PropertyHandler handles HTTP requests for listing operations.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /properties — all listings, publicly readable.
//
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}   propertyResponse
// @Failure      500  {object}  errorResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// ListFeatured handles GET /properties/featured.
//
// @Summary      List featured properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}   propertyResponse
// @Failure      500  {object}  errorResponse
// @Router       /properties/featured [get]
func (h *PropertyHandler) ListFeatured(c echo.Context) error {
	properties, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// ListByOwner handles GET /properties/user/:userId.
//
// @Summary      List properties owned by a user
// @Tags         properties
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   propertyResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /properties/user/{userId} [get]
func (h *PropertyHandler) ListByOwner(c echo.Context) error {
	ownerID := c.Param("userId")
	if ownerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	properties, err := h.service.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Create handles POST /properties — multipart form, authenticated. On
// success the client is redirected to the new listing.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       mpfd
// @Security     BearerAuth
// @Success      303
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	req, images, err := decodePropertyForm(c)
	if err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		OwnerID: userID,
		Fields:  toPropertyFields(req),
		Images:  images,
	})
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/properties/"+property.ID)
}

// Update handles PUT /properties/:id — owner only.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	req, images, err := decodePropertyForm(c)
	if err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, ports.UpdatePropertyInput{
		Fields: toPropertyFields(req),
		Images: images,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Delete handles DELETE /properties/:id — owner only.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      203  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusNonAuthoritativeInfo, messageResponse{Message: "Property deleted"})
}
