package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"waste-pickup-server/models"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	staff := models.User{ID: 1, Email: "admin@x.com", IsActive: true, IsStaff: true}
	group := router.Group("/admin", authStub(staff))
	RegisterAdminRoutes(group)
	return router
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// Derived values and timestamps are a read-only contract for administrators
func TestAdminProjectionsDeclareReadOnlyFields(t *testing.T) {
	booking := adminProjections["bookings"]
	if !contains(booking.ReadOnlyFields, "total_price") {
		t.Fatalf("booking total_price must be read-only")
	}
	if contains(booking.EditableFields, "total_price") {
		t.Fatalf("booking total_price must not be editable")
	}

	payment := adminProjections["payments"]
	if len(payment.EditableFields) != 0 {
		t.Fatalf("payments must not be editable from the console")
	}
	if !contains(payment.ReadOnlyFields, "paid_at") {
		t.Fatalf("payment paid_at must be read-only")
	}

	for entity, projection := range adminProjections {
		for _, field := range projection.EditableFields {
			if contains(projection.ReadOnlyFields, field) {
				t.Fatalf("%s.%s is declared both editable and read-only", entity, field)
			}
		}
	}
}

func TestAdminUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	router := newAdminRouter()

	body := `{"status":"shipped"}`
	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/1/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAdminCreateWasteTypeRequiresPrice(t *testing.T) {
	router := newAdminRouter()

	body := `{"name":"Plastic"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/waste-types", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
