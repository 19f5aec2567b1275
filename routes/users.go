package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-pickup-server/database"
	"waste-pickup-server/middleware"
	"waste-pickup-server/models"
	"waste-pickup-server/services"
	"waste-pickup-server/utils"
)

// UpdateProfileRequest represents the profile update request. Email is the
// identity key and cannot be changed here.
type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address"`
}

// ChangePasswordRequest represents the password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// RegisterUserRoutes registers profile routes under the protected group
func RegisterUserRoutes(router *gin.RouterGroup) {
	router.GET("/me", getCurrentUser)
	router.PUT("/me", updateProfile)
	router.POST("/change-password", changePassword)
}

// getCurrentUser returns the authenticated user's profile
func getCurrentUser(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// updateProfile updates the caller's own profile fields
func updateProfile(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if req.Name != nil {
		user.Name = middleware.SanitizeInput(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Update failed",
			"message": "Failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// changePassword requires old-password confirmation and a new password that
// passes the strength policy. All refresh tokens are revoked afterwards.
func changePassword(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Wrong password",
			"message": "Old password is incorrect",
		})
		return
	}

	isStrong, problems := middleware.ValidatePasswordStrength(req.NewPassword)
	if !isStrong {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Weak password",
			"message": "New password does not meet security requirements",
			"details": problems,
		})
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	user.PasswordHash = hashedPassword
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Update failed",
			"message": "Failed to change password",
		})
		return
	}

	// Existing sessions must re-authenticate
	services.NewJWTService().RevokeAllUserTokens(user.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}
