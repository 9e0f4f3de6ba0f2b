package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/response"
	"github.com/rwedu/schoolverify-backend/internal/service"
	"github.com/rwedu/schoolverify-backend/internal/validator"
)

// VerificationHandler handles the verification queue.
type VerificationHandler struct {
	verificationService *service.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

type queueResponse struct {
	model.VerificationQueue
	Counts map[model.VerificationStatus]int `json:"counts"`
}

// GetQueue godoc
// GET /api/v1/verification/queue
func (h *VerificationHandler) GetQueue(c *gin.Context) {
	q := h.verificationService.Queue(c.Request.Context())
	response.Success(c, http.StatusOK, queueResponse{VerificationQueue: q, Counts: q.Counts()})
}

// Approve godoc
// POST /api/v1/verification/schools/:id/approve
// Body is optional: {"actor": "..."}.
func (h *VerificationHandler) Approve(c *gin.Context) {
	var req model.ApproveRequest
	if errs := bindOptional(c, &req); errs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	n, err := h.verificationService.Approve(c.Request.Context(), c.Param("id"), req.Actor)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, n)
}

// Reject godoc
// POST /api/v1/verification/schools/:id/reject
// Body: {"reason": "...", "actor": "..."}.
func (h *VerificationHandler) Reject(c *gin.Context) {
	var req model.RejectRequest
	if errs := bindOptional(c, &req); errs != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	n, err := h.verificationService.Reject(c.Request.Context(), c.Param("id"), req.Actor, req.Reason)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, n)
}

// bindOptional binds a JSON body, treating an empty body as the zero value.
func bindOptional(c *gin.Context, dst interface{}) map[string]string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	errs := validator.Bind(c, dst)
	if errs != nil && errs["detail"] == io.EOF.Error() {
		return nil
	}
	return errs
}
