package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// ShopHandler handles HTTP requests for shops.
type ShopHandler struct {
	service ports.ShopService
}

func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// List handles GET /api/shops.
//
// @Summary      List shops
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Shop
// @Failure      401  {object}  errorResponse
// @Router       /shops [get]
func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shops)
}

// Get handles GET /api/shops/:id.
//
// @Summary      Get a shop
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Shop ID"
// @Success      200  {object}  domain.Shop
// @Failure      404  {object}  errorResponse
// @Router       /shops/{id} [get]
func (h *ShopHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	shop, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shop)
}

// Create handles POST /api/shops.
//
// @Summary      Create a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Replays the original response for a repeated key"
// @Param        body             body      shopRequest  true   "Shop details"
// @Success      201              {object}  domain.Shop
// @Failure      400              {object}  errorResponse
// @Router       /shops [post]
func (h *ShopHandler) Create(c echo.Context) error {
	var req shopRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	in := shopInput(req)
	in.IdempotencyKey = idempotencyKey(c)
	shop, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	countMutation(domain.EntityShop, domain.AuditCreate)
	return c.JSON(http.StatusCreated, shop)
}

// Update handles PUT /api/shops/:id.
//
// @Summary      Replace a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Shop ID"
// @Param        body  body      shopRequest  true  "Shop details"
// @Success      200   {object}  domain.Shop
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shops/{id} [put]
func (h *ShopHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req shopRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	shop, err := h.service.Update(c.Request().Context(), id, shopInput(req))
	if err != nil {
		return err
	}
	countMutation(domain.EntityShop, domain.AuditUpdate)
	return c.JSON(http.StatusOK, shop)
}

// Delete handles DELETE /api/shops/:id. Shops with employees or documents
// are refused.
//
// @Summary      Delete a shop
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Shop ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /shops/{id} [delete]
func (h *ShopHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	countMutation(domain.EntityShop, domain.AuditDelete)
	return c.JSON(http.StatusOK, messageResponse{Message: "shop deleted successfully"})
}

func shopInput(req shopRequest) ports.ShopInput {
	return ports.ShopInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
}
