package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/domain/models"
	"github.com/eliksir/quote-service/internal/service/inquiry"
)

// InquiryService accepts contact form submissions.
type InquiryService interface {
	Submit(ctx context.Context, req models.InquiryRequest) (models.Inquiry, error)
}

// InquiryHandler handles the landing page contact form.
type InquiryHandler struct {
	svc    InquiryService
	logger *zap.Logger
}

func NewInquiryHandler(svc InquiryService, logger *zap.Logger) *InquiryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryHandler{svc: svc, logger: logger}
}

// Submit ingests a contact request.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	saved, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, inquiry.ErrInvalidInquiry) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.logger.Error("failed handling inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": saved.ID})
}
