package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/shoprecords/records-api/internal/infrastructure/db/postgres"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /api/health, the liveness check.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "OK",
	})
}

// dependency is one readiness check. A nil ping marks an optional
// dependency that is switched off by configuration.
type dependency struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// ReadinessHandler handles GET /api/health/ready.
// PostgreSQL must answer or the check fails with 503. A configured MongoDB or
// Redis that stops answering only degrades the report.
type ReadinessHandler struct {
	deps []dependency
}

// NewReadinessHandler wires the dependency checks. mdb and rdb may be nil.
func NewReadinessHandler(db *gorm.DB, mdb *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	deps := []dependency{{
		name:     "postgres",
		required: true,
		ping:     func(ctx context.Context) error { return postgres.Ping(ctx, db) },
	}}

	mongoDep := dependency{name: "mongodb"}
	if mdb != nil {
		mongoDep.ping = func(ctx context.Context) error {
			return mdb.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}
	}
	redisDep := dependency{name: "redis"}
	if rdb != nil {
		redisDep.ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	return &ReadinessHandler{deps: append(deps, mongoDep, redisDep)}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness pings every configured dependency.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.deps))
	status, httpStatus := "ok", http.StatusOK

	for _, d := range h.deps {
		if d.ping == nil {
			deps[d.name] = dependencyStatus{Status: "disabled"}
			continue
		}
		if err := d.ping(ctx); err != nil {
			deps[d.name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			if d.required {
				status, httpStatus = "unavailable", http.StatusServiceUnavailable
			} else if httpStatus == http.StatusOK {
				status = "degraded"
			}
			continue
		}
		deps[d.name] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
