package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchplan_backend/internal/middleware"
	"pitchplan_backend/internal/services"
)

type BillingHandler struct {
	*BaseHandler
	billingService services.BillingService
}

func NewBillingHandler(base *BaseHandler, billingService services.BillingService) *BillingHandler {
	return &BillingHandler{
		BaseHandler:    base,
		billingService: billingService,
	}
}

func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billing := rg.Group("/billing")
	billing.Use(middleware.AuthMiddleware())
	{
		billing.POST("/subscription", h.CreateSubscription)
	}
}

// CreateSubscription starts (or resumes) a Pro subscription and returns the
// client secret needed to complete payment.
// @Summary  Create a Pro subscription
// @Tags     billing
// @Produce  json
// @Success  200 {object} dto.SubscriptionResponse
// @Failure  400 {object} apperrors.ErrorResponse
// @Router   /api/v1/billing/subscription [post]
func (h *BillingHandler) CreateSubscription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.billingService.CreateSubscription(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
