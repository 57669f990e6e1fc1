package handlers

import (
	"net/http"
	"strconv"
	"strings"

	serviceRepo "bookmyservice/database/repository/service"
	"bookmyservice/middleware"
	"bookmyservice/services/catalog"

	"github.com/gin-gonic/gin"
)

func respondCatalogError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "Forbidden"):
		c.JSON(http.StatusForbidden, gin.H{"message": msg})
	case msg == "Service not found":
		c.JSON(http.StatusNotFound, gin.H{"message": msg})
	case strings.HasPrefix(msg, "Invalid"):
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}

// CreateServiceHandler publishes a service with availability windows.
func (h *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Catalog.Create(c.Request.Context(), caller, input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service created successfully", "service": created})
}

// EditServiceHandler updates a service and its windows.
func (h *HandlerBundle) EditServiceHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Catalog.Edit(c.Request.Context(), caller, c.Param("serviceId"), input)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully", "service": updated})
}

// DeleteServiceHandler removes a service and its windows.
func (h *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := h.Catalog.Delete(c.Request.Context(), caller, c.Param("serviceId")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GetServiceHandler returns one service with its windows.
func (h *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServiceWindowsHandler returns only the availability windows of a
// service.
func (h *HandlerBundle) GetServiceWindowsHandler(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Windows)
}

// ListMyServicesHandler returns the caller's own published services.
func (h *HandlerBundle) ListMyServicesHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	services, err := h.Catalog.List(c.Request.Context(), serviceRepo.Filter{ProviderID: caller.ID})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListServicesHandler returns services matching optional query filters.
func (h *HandlerBundle) ListServicesHandler(c *gin.Context) {
	filter := serviceRepo.Filter{
		Category: c.Query("category"),
		Title:    c.Query("title"),
	}
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}

	services, err := h.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
