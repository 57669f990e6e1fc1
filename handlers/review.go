package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"bookmyservice/middleware"
	"bookmyservice/models"

	"github.com/gin-gonic/gin"
)

func respondReviewError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "Forbidden"):
		c.JSON(http.StatusForbidden, gin.H{"message": msg})
	case msg == "Review not found":
		c.JSON(http.StatusNotFound, gin.H{"message": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}

// CreateReviewHandler records a review of a service.
func (h *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if _, err := h.Reviews.Create(c.Request.Context(), caller, input); err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review created successfully"})
}

// EditReviewHandler updates an existing review.
func (h *HandlerBundle) EditReviewHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if _, err := h.Reviews.Edit(c.Request.Context(), caller, c.Param("reviewId"), input); err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// DeleteReviewHandler removes a review.
func (h *HandlerBundle) DeleteReviewHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := h.Reviews.Delete(c.Request.Context(), caller, c.Param("reviewId")); err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// GetReviewHandler returns one review.
func (h *HandlerBundle) GetReviewHandler(c *gin.Context) {
	rev, err := h.Reviews.Get(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// GetAllReviewsHandler lists reviews, optionally floored by min_rating.
func (h *HandlerBundle) GetAllReviewsHandler(c *gin.Context) {
	minRating := 0.0
	if v := c.Query("min_rating"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			minRating = r
		}
	}

	reviews, err := h.Reviews.ListByMinRating(c.Request.Context(), minRating)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
