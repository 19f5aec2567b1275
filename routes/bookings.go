package routes

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
)

// CreateBookingRequest represents the booking creation request. It binds
// from JSON or from a multipart form when a waste image is attached.
type CreateBookingRequest struct {
	WasteTypeID uint    `json:"waste_type_id" form:"waste_type_id" binding:"required"`
	CenterID    *uint   `json:"center_id" form:"center_id"`
	QuantityKg  float64 `json:"quantity_kg" form:"quantity_kg" binding:"required,gt=0.01"`
	PickupDate  string  `json:"pickup_date" form:"pickup_date" binding:"required"`
	PickupTime  string  `json:"pickup_time" form:"pickup_time" binding:"required"`
	Address     string  `json:"address" form:"address" binding:"required"`
}

// RegisterBookingRoutes registers booking routes under the protected group
func RegisterBookingRoutes(router *gin.RouterGroup) {
	router.POST("/bookings", createBooking)
	router.GET("/bookings", listBookings)
	router.GET("/bookings/:id", getBooking)
}

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// uploadWasteImage pushes the attached image to Cloudinary and returns the
// secure URL
func uploadWasteImage(c *gin.Context, header *multipart.FileHeader) (string, error) {
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "waste_images",
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}

// createBooking validates the request, attaches the optional waste image and
// creates a pending booking owned by the caller. The total price is derived
// at first save by the model hook.
func createBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid pickup date",
			"message": "Pickup date must be in YYYY-MM-DD format",
		})
		return
	}

	// Validate waste type exists
	var wasteType models.WasteType
	if err := database.DB.First(&wasteType, req.WasteTypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid waste type",
			"message": "The selected waste type does not exist",
		})
		return
	}

	// Validate optional center
	if req.CenterID != nil {
		var center models.Center
		if err := database.DB.First(&center, *req.CenterID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid center",
				"message": "The selected center does not exist",
			})
			return
		}
	}

	// Optional waste image (multipart only)
	var imageURL *string
	if header, err := c.FormFile("waste_image"); err == nil && header != nil {
		if !validateImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid image",
				"message": "Waste image must be jpg, png or webp and at most 5MB",
			})
			return
		}
		url, err := uploadWasteImage(c, header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Image upload failed",
				"message": "Failed to store waste image",
			})
			return
		}
		imageURL = &url
	}

	booking := models.Booking{
		UserID:        userID,
		WasteTypeID:   wasteType.ID,
		WasteType:     wasteType,
		CenterID:      req.CenterID,
		QuantityKg:    req.QuantityKg,
		PickupDate:    pickupDate,
		PickupTime:    req.PickupTime,
		Address:       req.Address,
		WasteImageURL: imageURL,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := database.DB.Omit(clause.Associations).Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking creation failed",
			"message": "Failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

// listBookings returns the caller's bookings, most recent first
func listBookings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var bookings []models.Booking
	if err := database.DB.
		Preload("WasteType").
		Preload("Center").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Query failed",
			"message": "Failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}

// getBooking returns a single booking. The owner filter is part of the
// lookup itself, so a booking owned by someone else is indistinguishable
// from a missing one.
func getBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	var booking models.Booking
	if err := database.DB.
		Preload("WasteType").
		Preload("Center").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Booking not found",
			"message": "No booking matches the given identifier",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}
