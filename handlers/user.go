package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"bookmyservice/middleware"

	"github.com/gin-gonic/gin"
)

// GetUserHandler returns one account profile. Callers may fetch their
// own profile; admins may fetch anyone's.
func (h *HandlerBundle) GetUserHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	userID := c.Param("userId")
	if !caller.IsAdmin() && caller.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only view your own profile"})
		return
	}

	rec, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetAllUsersHandler lists every account; admin only by route setup.
func (h *HandlerBundle) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserHandler modifies mutable profile fields.
func (h *HandlerBundle) UpdateUserHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	userID := c.Param("userId")
	if !caller.IsAdmin() && caller.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only edit your own profile"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	rec, err := h.Users.Update(c.Request.Context(), userID, fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": rec})
}

// DeleteUserHandler removes an account.
func (h *HandlerBundle) DeleteUserHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	userID := c.Param("userId")
	if !caller.IsAdmin() && caller.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only delete your own account"})
		return
	}

	if err := h.Users.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// UploadProfilePictureHandler stores the uploaded image and records its
// URL on the caller's account.
func (h *HandlerBundle) UploadProfilePictureHandler(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tempFilePath, "profile_pictures")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to upload file"})
		return
	}
	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve picture URL"})
		return
	}

	if err := h.Users.SetProfilePicture(c.Request.Context(), caller.ID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile picture uploaded successfully",
		"profile_picture": url,
	})
}
