package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/response"
	"github.com/rwedu/schoolverify-backend/internal/service"
	"github.com/rwedu/schoolverify-backend/internal/validator"
)

// SchoolHandler serves the registry, the map and filtered statistics.
type SchoolHandler struct {
	registryService *service.RegistryService
	mapService      *service.MapService
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(registryService *service.RegistryService, mapService *service.MapService) *SchoolHandler {
	return &SchoolHandler{registryService: registryService, mapService: mapService}
}

// ListSchools godoc
// GET /api/v1/schools?status=&district=&school_type=&education_level=&search=&page=&per_page=
// Search matches name, id and district.
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	var q model.RegistryListQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	page, pagination := h.registryService.ListSchools(c.Request.Context(), q)
	response.SuccessWithPagination(c, http.StatusOK, page, pagination)
}

// GetSchool godoc
// GET /api/v1/schools/:id
// Returns the record and its verification history.
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	detail, err := h.registryService.GetSchool(c.Request.Context(), c.Param("id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// GetStats godoc
// GET /api/v1/stats
// Aggregates the schools matching the same filters as the registry.
func (h *SchoolHandler) GetStats(c *gin.Context) {
	var q model.SchoolFilterQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}
	response.Success(c, http.StatusOK, h.registryService.Stats(c.Request.Context(), q))
}

// ListMarkers godoc
// GET /api/v1/map/schools?status=&district=&school_type=&education_level=&search=
// Search matches the school name only.
func (h *SchoolHandler) ListMarkers(c *gin.Context) {
	var q model.SchoolFilterQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	markers := h.mapService.Markers(c.Request.Context(), q)
	response.Success(c, http.StatusOK, gin.H{"markers": markers, "count": len(markers)})
}
