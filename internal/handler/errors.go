package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwedu/schoolverify-backend/internal/response"
	"github.com/rwedu/schoolverify-backend/internal/service"
)

// failFromError maps service errors onto the API error envelope.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSchoolNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSchoolNotFound)
	case errors.Is(err, service.ErrNotPending):
		response.Fail(c, http.StatusConflict, response.ErrNotPending)
	case errors.Is(err, service.ErrRejectionReasonRequired):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRejectionReasonRequired,
			map[string]string{"reason": response.GetMessage(response.ErrRejectionReasonRequired)})
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
