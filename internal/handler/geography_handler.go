package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/response"
)

// GeographyHandler serves Rwanda's provinces and districts.
type GeographyHandler struct{}

func NewGeographyHandler() *GeographyHandler {
	return &GeographyHandler{}
}

// ListProvinces godoc
// GET /api/v1/geography/provinces
func (h *GeographyHandler) ListProvinces(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"provinces": registry.Provinces()})
}

// ListDistricts godoc
// GET /api/v1/geography/districts
// Returns every district sorted by name.
func (h *GeographyHandler) ListDistricts(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"districts": registry.AllDistricts()})
}
