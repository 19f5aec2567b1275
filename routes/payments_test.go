package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"waste-pickup-server/config"
	"waste-pickup-server/models"
	"waste-pickup-server/services"
)

func newPaymentRouter(user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("", authStub(user))
	RegisterPaymentRoutes(group)
	return router
}

func TestCreatePaymentReturnsExistingPaymentForBooking(t *testing.T) {
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	// Owner-scoped booking lookup
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_price"}).
			AddRow(5, 1, 25.00))

	// A payment already exists for the booking; the get-or-create returns it
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE booking_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "razorpay_order_id", "status"}).
			AddRow(9, 5, 25.00, "order_9_5", "pending"))
	mock.ExpectCommit()

	body := `{"booking_id":5}`
	req := httptest.NewRequest(http.MethodPost, "/payments/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order_9_5") {
		t.Fatalf("expected existing order reference in response, got %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePaymentCreatesPaymentAndOrderReference(t *testing.T) {
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_price"}).
			AddRow(5, 1, 25.00))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE booking_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"booking_id":5}`
	req := httptest.NewRequest(http.MethodPost, "/payments/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order_9_5") {
		t.Fatalf("expected new order reference in response, got %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// When a concurrent initiate wins the unique-index race the insert is a
// no-op and the winner's row is returned
func TestCreatePaymentFallsBackToRaceWinner(t *testing.T) {
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_price"}).
			AddRow(5, 1, 25.00))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE booking_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// ON CONFLICT DO NOTHING returns no id
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE booking_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "razorpay_order_id", "status"}).
			AddRow(9, 5, 25.00, "order_9_5", "pending"))
	mock.ExpectCommit()

	body := `{"booking_id":5}`
	req := httptest.NewRequest(http.MethodPost, "/payments/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order_9_5") {
		t.Fatalf("expected winner's order reference in response, got %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePaymentForeignBookingIsNotFound(t *testing.T) {
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 2})

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	body := `{"booking_id":5}`
	req := httptest.NewRequest(http.MethodPost, "/payments/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestVerifyPaymentMarksPaidOnValidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test-secret")
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	mock.ExpectQuery(`SELECT .* FROM "payments" JOIN bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "razorpay_order_id", "status"}).
			AddRow(9, 5, 25.00, "order_9_5", "pending"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	signature := services.NewRazorpayServiceWithSecret("test-secret").Sign("order_9_5", "pay_abc")
	body := `{"razorpay_order_id":"order_9_5","razorpay_payment_id":"pay_abc","razorpay_signature":"` + signature + `"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyPaymentMarksFailedOnBadSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test-secret")
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	mock.ExpectQuery(`SELECT .* FROM "payments" JOIN bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "razorpay_order_id", "status"}).
			AddRow(9, 5, 25.00, "order_9_5", "pending"))

	// The failed state is persisted on both the payment and the booking
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"razorpay_order_id":"order_9_5","razorpay_payment_id":"pay_abc","razorpay_signature":"bogus"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Signature verification failed") {
		t.Fatalf("expected signature failure message, got %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyPaymentRejectsSettledPayment(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test-secret")
	config.Load()
	mock := setupMockDB(t)
	router := newPaymentRouter(models.User{ID: 1})

	mock.ExpectQuery(`SELECT .* FROM "payments" JOIN bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "razorpay_order_id", "status"}).
			AddRow(9, 5, 25.00, "order_9_5", "paid"))

	body := `{"razorpay_order_id":"order_9_5","razorpay_payment_id":"pay_abc","razorpay_signature":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already settled") {
		t.Fatalf("expected settled error, got %s", w.Body.String())
	}
}
