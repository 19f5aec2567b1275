package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
)

// EntityProjection declares which fields the admin console shows and which
// of them may be edited. Read-only fields (derived values, timestamps) are a
// contract observed by administrators and are never accepted in updates.
type EntityProjection struct {
	ListFields     []string `json:"list_fields"`
	EditableFields []string `json:"editable_fields"`
	ReadOnlyFields []string `json:"read_only_fields"`
}

// adminProjections is the statically declared per-entity field projection
var adminProjections = map[string]EntityProjection{
	"users": {
		ListFields:     []string{"id", "email", "name", "is_active", "is_staff", "is_superuser"},
		EditableFields: []string{"name", "phone", "address", "is_active", "is_staff"},
		ReadOnlyFields: []string{"email", "created_at", "updated_at"},
	},
	"waste_types": {
		ListFields:     []string{"id", "name", "price_per_kg", "description"},
		EditableFields: []string{"name", "description", "price_per_kg"},
		ReadOnlyFields: []string{"created_at", "updated_at"},
	},
	"centers": {
		ListFields:     []string{"id", "name", "address", "latitude", "longitude", "contact_info"},
		EditableFields: []string{"name", "address", "latitude", "longitude", "contact_info"},
		ReadOnlyFields: []string{"created_at"},
	},
	"bookings": {
		ListFields:     []string{"id", "user_id", "waste_type_id", "quantity_kg", "total_price", "status", "payment_status", "pickup_date", "created_at"},
		EditableFields: []string{"status"},
		ReadOnlyFields: []string{"created_at", "updated_at", "total_price"},
	},
	"payments": {
		ListFields:     []string{"id", "booking_id", "amount", "status", "razorpay_order_id", "created_at", "paid_at"},
		EditableFields: []string{},
		ReadOnlyFields: []string{"created_at", "paid_at"},
	},
}

// WasteTypeRequest represents the admin create/update payload for waste types
type WasteTypeRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description"`
	PricePerKg  *float64 `json:"price_per_kg" binding:"required,gte=0"`
}

// CenterRequest represents the admin create/update payload for centers
type CenterRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Address     string   `json:"address" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	ContactInfo *string  `json:"contact_info" binding:"omitempty,max=100"`
}

// RegisterAdminRoutes registers the staff-only console routes
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/schema", getAdminSchema)

	router.GET("/users", adminListUsers)
	router.GET("/users/:id", adminGetUser)
	router.PATCH("/users/:id/status", adminUpdateUserStatus)

	router.GET("/waste-types", adminListWasteTypes)
	router.POST("/waste-types", adminCreateWasteType)
	router.PUT("/waste-types/:id", adminUpdateWasteType)
	router.DELETE("/waste-types/:id", adminDeleteWasteType)

	router.GET("/centers", adminListCenters)
	router.POST("/centers", adminCreateCenter)
	router.PUT("/centers/:id", adminUpdateCenter)
	router.DELETE("/centers/:id", adminDeleteCenter)

	router.GET("/bookings", adminListBookings)
	router.GET("/bookings/:id", adminGetBooking)
	router.PATCH("/bookings/:id/status", adminUpdateBookingStatus)

	router.GET("/payments", adminListPayments)
	router.GET("/payments/:id", adminGetPayment)
}

// getAdminSchema exposes the declared field projections
func getAdminSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    adminProjections,
	})
}

func adminListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("email").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed", "message": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func adminGetUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "message": "No user matches the given identifier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// adminUpdateUserStatus activates or deactivates an account. Accounts are
// never hard-deleted.
func adminUpdateUserStatus(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "message": "No user matches the given identifier"})
		return
	}

	if err := database.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed", "message": "Failed to update user status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User status updated", "data": user})
}

func adminListWasteTypes(c *gin.Context) {
	var wasteTypes []models.WasteType
	if err := database.DB.Order("name").Find(&wasteTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed", "message": "Failed to fetch waste types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": wasteTypes})
}

func adminCreateWasteType(c *gin.Context) {
	var req WasteTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	wasteType := models.WasteType{
		Name:        req.Name,
		Description: req.Description,
		PricePerKg:  *req.PricePerKg,
	}
	if err := database.DB.Create(&wasteType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Creation failed", "message": "Failed to create waste type"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Waste type created", "data": wasteType})
}

func adminUpdateWasteType(c *gin.Context) {
	var req WasteTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var wasteType models.WasteType
	if err := database.DB.First(&wasteType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waste type not found", "message": "No waste type matches the given identifier"})
		return
	}

	wasteType.Name = req.Name
	wasteType.Description = req.Description
	wasteType.PricePerKg = *req.PricePerKg
	if err := database.DB.Save(&wasteType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed", "message": "Failed to update waste type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Waste type updated", "data": wasteType})
}

func adminDeleteWasteType(c *gin.Context) {
	result := database.DB.Delete(&models.WasteType{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Deletion failed", "message": "Failed to delete waste type"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waste type not found", "message": "No waste type matches the given identifier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Waste type deleted"})
}

func adminListCenters(c *gin.Context) {
	var centers []models.Center
	if err := database.DB.Order("name").Find(&centers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed", "message": "Failed to fetch centers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": centers})
}

func adminCreateCenter(c *gin.Context) {
	var req CenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	center := models.Center{
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		ContactInfo: req.ContactInfo,
	}
	if err := database.DB.Create(&center).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Creation failed", "message": "Failed to create center"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Center created", "data": center})
}

func adminUpdateCenter(c *gin.Context) {
	var req CenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var center models.Center
	if err := database.DB.First(&center, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Center not found", "message": "No center matches the given identifier"})
		return
	}

	center.Name = req.Name
	center.Address = req.Address
	center.Latitude = *req.Latitude
	center.Longitude = *req.Longitude
	center.ContactInfo = req.ContactInfo
	if err := database.DB.Save(&center).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed", "message": "Failed to update center"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Center updated", "data": center})
}

func adminDeleteCenter(c *gin.Context) {
	result := database.DB.Delete(&models.Center{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Deletion failed", "message": "Failed to delete center"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Center not found", "message": "No center matches the given identifier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Center deleted"})
}

func adminListBookings(c *gin.Context) {
	query := database.DB.Preload("User").Preload("WasteType").Preload("Center").Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed", "message": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

func adminGetBooking(c *gin.Context) {
	var booking models.Booking
	if err := database.DB.
		Preload("User").Preload("WasteType").Preload("Center").
		First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found", "message": "No booking matches the given identifier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

// adminUpdateBookingStatus drives the administrative booking lifecycle
// (accepted, in_progress, completed, cancelled)
func adminUpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required,oneof=pending accepted in_progress completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "message": err.Error()})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found", "message": "No booking matches the given identifier"})
		return
	}

	if err := database.DB.Model(&booking).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed", "message": "Failed to update booking status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking status updated", "data": booking})
}

func adminListPayments(c *gin.Context) {
	query := database.DB.Preload("Booking").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed", "message": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payments})
}

func adminGetPayment(c *gin.Context) {
	var payment models.Payment
	if err := database.DB.Preload("Booking").First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found", "message": "No payment matches the given identifier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}
