package handlers

import (
	"errors"
	"net/http"

	"bookmyservice/middleware"
	"bookmyservice/models"
	"bookmyservice/services/booking"
	"bookmyservice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingStatus maps a booking rejection code to its HTTP status.
func bookingStatus(code string) int {
	switch code {
	case booking.CodeForbidden:
		return http.StatusForbidden
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeStoreFailure:
		return http.StatusInternalServerError
	default:
		// invalidWindow, invalidDate, invalidTime, slotTaken
		return http.StatusBadRequest
	}
}

func respondBookingError(c *gin.Context, err error) {
	var be *booking.Error
	if errors.As(err, &be) {
		if be.Code == booking.CodeStoreFailure {
			utils.GetLogger().Error("booking store failure", zap.Error(be.Unwrap()))
		}
		c.JSON(bookingStatus(be.Code), gin.H{"message": be.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
}

// CreateBookingHandler places a booking in an availability window.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: You need to be authenticated to create a booking"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Bookings.Create(c.Request.Context(), caller, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// EditBookingHandler rebinds a booking to a different window.
func (h *HandlerBundle) EditBookingHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: You need to be authenticated to edit a booking"})
		return
	}

	var input struct {
		WindowID string `json:"window_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Bookings.Edit(c.Request.Context(), caller, c.Param("bookingId"), input.WindowID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": updated,
	})
}

// DeleteBookingHandler removes a booking.
func (h *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: You need to be authenticated to delete a booking"})
		return
	}

	if err := h.Bookings.Delete(c.Request.Context(), caller, c.Param("bookingId")); err != nil {
		var be *booking.Error
		if errors.As(err, &be) && be.Code == booking.CodeNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Booking to delete doesn't exist or an error occurred"})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// GetUserBookingsHandler lists the bookings of one consumer.
func (h *HandlerBundle) GetUserBookingsHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: You need to be authenticated to view bookings"})
		return
	}

	consumerID := c.Param("consumerId")
	if !caller.IsAdmin() && caller.ID != consumerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only view your own bookings"})
		return
	}

	bookings, err := h.Bookings.ListForConsumer(c.Request.Context(), consumerID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookingsHandler lists every booking.
func (h *HandlerBundle) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListAll(c.Request.Context())
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
