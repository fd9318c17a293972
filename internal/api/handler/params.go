package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/api/metrics"
	"github.com/shoprecords/records-api/internal/core/domain"
)

// IdempotencyKeyHeader is read on create endpoints.
const IdempotencyKeyHeader = "Idempotency-Key"

// bindRequest decodes the body into req and runs struct validation.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	return c.Validate(req)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid id")
	}
	return id, nil
}

// optionalDate parses s; blank means "no date".
func optionalDate(field, s string) (*domain.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, domain.NewValidationError(field + ": " + err.Error())
	}
	return &d, nil
}

func idempotencyKey(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(IdempotencyKeyHeader))
}

func invalidQuery(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameter").SetInternal(err)
}

func countMutation(entity string, action domain.AuditAction) {
	metrics.MutationsTotal.WithLabelValues(entity, string(action)).Inc()
}
