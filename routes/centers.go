package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
	"waste-pickup-server/utils"
)

// NearestCenterRequest represents the nearest-center lookup request
type NearestCenterRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// RegisterCenterRoutes registers the public center routes
func RegisterCenterRoutes(router *gin.RouterGroup) {
	router.GET("/centers", listCenters)
	router.POST("/centers/nearest", nearestCenter)
}

// listCenters returns all drop-off centers
func listCenters(c *gin.Context) {
	var centers []models.Center
	if err := database.DB.Order("name").Find(&centers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Query failed",
			"message": "Failed to fetch centers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    centers,
	})
}

// nearestCenter finds the drop-off center closest to the given coordinates
func nearestCenter(c *gin.Context) {
	var req NearestCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": "Latitude and longitude are required",
		})
		return
	}

	if !utils.IsLocationValid(*req.Latitude, *req.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid location",
			"message": "Coordinates are out of range",
		})
		return
	}

	var centers []models.Center
	if err := database.DB.Find(&centers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Query failed",
			"message": "Failed to fetch centers",
		})
		return
	}

	nearest, distance, err := utils.NearestCenter(*req.Latitude, *req.Longitude, centers)
	if err != nil {
		if errors.Is(err, utils.ErrNoCenters) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "No centers found",
				"message": "No drop-off centers are registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Lookup failed",
			"message": "Failed to find nearest center",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"center":      nearest,
			"distance_km": distance,
		},
	})
}
