package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
)

// RegisterWasteTypeRoutes registers the public catalog routes
func RegisterWasteTypeRoutes(router *gin.RouterGroup) {
	router.GET("/waste-types", listWasteTypes)
}

// listWasteTypes returns the full waste-type catalog
func listWasteTypes(c *gin.Context) {
	var wasteTypes []models.WasteType
	if err := database.DB.Order("name").Find(&wasteTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Query failed",
			"message": "Failed to fetch waste types",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    wasteTypes,
	})
}
