package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwedu/schoolverify-backend/internal/response"
	"github.com/rwedu/schoolverify-backend/internal/service"
)

// DashboardHandler handles the overview and analytics pages.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	analyticsService *service.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, analyticsService: analyticsService}
}

// GetDashboard godoc
// GET /api/v1/dashboard
// Returns stat cards, the top districts and the most recently updated schools.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, h.dashboardService.GetDashboard(c.Request.Context()))
}

// GetAnalytics godoc
// GET /api/v1/analytics
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	response.Success(c, http.StatusOK, h.analyticsService.GetAnalytics(c.Request.Context()))
}
