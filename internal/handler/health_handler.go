package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/response"
)

// HealthHandler reports liveness plus the state of the loaded catalog.
type HealthHandler struct {
	catalog   *registry.Catalog
	rdb       *redis.Client
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. rdb may be nil.
func NewHealthHandler(catalog *registry.Catalog, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{catalog: catalog, rdb: rdb, startTime: time.Now()}
}

type healthStatus struct {
	Status         string `json:"status"`
	CatalogVersion string `json:"catalog_version"`
	Schools        int    `json:"schools"`
	Redis          string `json:"redis"`
	Uptime         string `json:"uptime"`
	GoVersion      string `json:"go_version"`
	Goroutines     int    `json:"goroutines"`
}

// Health godoc
// GET /health
// Redis being down degrades caching and the shared feed but not the API.
func (h *HealthHandler) Health(c *gin.Context) {
	redisState := "disabled"
	if h.rdb != nil {
		redisState = "ok"
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			redisState = "down"
		}
	}

	response.Success(c, http.StatusOK, healthStatus{
		Status:         "ok",
		CatalogVersion: h.catalog.Version(),
		Schools:        h.catalog.Len(),
		Redis:          redisState,
		Uptime:         time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:      runtime.Version(),
		Goroutines:     runtime.NumGoroutine(),
	})
}
