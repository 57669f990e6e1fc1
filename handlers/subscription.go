package handlers

import (
	"net/http"
	"strings"

	"bookmyservice/middleware"
	"bookmyservice/models"

	"github.com/gin-gonic/gin"
)

func respondSubscriptionError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "Forbidden"):
		c.JSON(http.StatusForbidden, gin.H{"message": msg})
	case msg == "Subscription not found":
		c.JSON(http.StatusNotFound, gin.H{"message": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}

// CreateSubscriptionHandler records a subscription for a provider.
func (h *HandlerBundle) CreateSubscriptionHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input struct {
		ProviderID string `json:"provider_id" binding:"required"`
		models.SubscriptionInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	sub, err := h.Subscriptions.Create(c.Request.Context(), caller, input.ProviderID, input.SubscriptionInput)
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription created successfully", "subscription": sub})
}

// EditSubscriptionHandler updates a subscription.
func (h *HandlerBundle) EditSubscriptionHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input models.SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	sub, err := h.Subscriptions.Edit(c.Request.Context(), caller, c.Param("subscriptionId"), input)
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription updated successfully", "subscription": sub})
}

// DeleteSubscriptionHandler removes a subscription.
func (h *HandlerBundle) DeleteSubscriptionHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := h.Subscriptions.Delete(c.Request.Context(), caller, c.Param("subscriptionId")); err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}

// GetProviderSubscriptionsHandler lists a provider's subscriptions.
func (h *HandlerBundle) GetProviderSubscriptionsHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	subs, err := h.Subscriptions.ListByProvider(c.Request.Context(), caller, c.Param("providerId"))
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}
