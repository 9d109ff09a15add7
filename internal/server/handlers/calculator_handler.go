package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eliksir/quote-service/internal/domain/models"
	"github.com/eliksir/quote-service/internal/service/policy"
	"github.com/eliksir/quote-service/internal/service/quote"
)

// QuoteService prices calculator selections.
type QuoteService interface {
	Offers() []models.PackageOffer
	Quote(req models.QuoteRequest) (models.QuoteResult, error)
}

// PolicyView exposes the pricing policy currently in force.
type PolicyView interface {
	Current() (models.PricingPolicy, bool)
	Status() policy.Status
}

// CalculatorHandler serves the pricing calculator endpoints.
type CalculatorHandler struct {
	quotes   QuoteService
	policies PolicyView
	logger   *zap.Logger
}

// NewCalculatorHandler constructs the calculator HTTP adapter.
func NewCalculatorHandler(quotes QuoteService, policies PolicyView, logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{quotes: quotes, policies: policies, logger: logger}
}

// Offers lists the package tiers.
func (h *CalculatorHandler) Offers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "offers": h.quotes.Offers()})
}

// Config returns the pricing policy in force, or a pending state before the first load.
func (h *CalculatorHandler) Config(c *gin.Context) {
	current, ok := h.policies.Current()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "pending"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"config":  current,
		"status":  h.policies.Status(),
	})
}

// Quote computes a quote for the posted calculator selection.
func (h *CalculatorHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quote payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	result, err := h.quotes.Quote(req)
	switch {
	case errors.Is(err, quote.ErrPolicyPending):
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "pending"})
		return
	case errors.Is(err, quote.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		h.logger.Error("failed computing quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to compute quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quote": result})
}
