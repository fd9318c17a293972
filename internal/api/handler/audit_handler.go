package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// List handles GET /api/audit, newest entries first.
//
// @Summary      List audit entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        entity     query     string  false  "shop, employee, document or user"
// @Param        entity_id  query     int     false  "Entity ID"
// @Param        limit      query     int     false  "Page size (default 50, max 200)"
// @Success      200        {array}   domain.AuditEntry
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	var filter domain.AuditFilter
	err := echo.QueryParamsBinder(c).
		String("entity", &filter.Entity).
		Int64("entity_id", &filter.EntityID).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return invalidQuery(err)
	}

	entries, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
