package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestComputeTotalPrice(t *testing.T) {
	if got := ComputeTotalPrice(2.5, 10); got != 25.00 {
		t.Fatalf("expected 25.00, got %f", got)
	}
	if got := ComputeTotalPrice(0.333, 10); got != 3.33 {
		t.Fatalf("expected 3.33, got %f", got)
	}
	if got := ComputeTotalPrice(3, 5.555); got != 16.67 {
		t.Fatalf("expected 16.67, got %f", got)
	}
}

func TestBookingHookComputesPriceFromLoadedWasteType(t *testing.T) {
	booking := Booking{
		QuantityKg:  2.5,
		WasteTypeID: 1,
		WasteType:   WasteType{ID: 1, PricePerKg: 10},
	}

	if err := booking.BeforeSave(nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.TotalPrice != 25.00 {
		t.Fatalf("expected total price 25.00, got %f", booking.TotalPrice)
	}
}

func TestBookingHookDoesNotOverwriteExistingPrice(t *testing.T) {
	booking := Booking{
		QuantityKg:  2.5,
		WasteTypeID: 1,
		WasteType:   WasteType{ID: 1, PricePerKg: 10},
		TotalPrice:  99.99,
	}

	if err := booking.BeforeSave(nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.TotalPrice != 99.99 {
		t.Fatalf("total price should not be recomputed once set, got %f", booking.TotalPrice)
	}
}

// Column updates go through the hook with a zero-value model; it must not
// try to resolve a waste type that isn't there
func TestBookingHookIgnoresZeroValueModel(t *testing.T) {
	booking := Booking{}

	if err := booking.BeforeSave(nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.TotalPrice != 0 {
		t.Fatalf("expected total price to stay 0, got %f", booking.TotalPrice)
	}
}

func TestBookingHookLoadsWasteTypeWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm init error: %v", err)
	}

	mock.ExpectQuery(`SELECT \* FROM "waste_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price_per_kg"}).AddRow(1, "Plastic", 10.0))

	booking := Booking{QuantityKg: 2.5, WasteTypeID: 1}
	if err := booking.BeforeSave(gdb); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.TotalPrice != 25.00 {
		t.Fatalf("expected total price 25.00, got %f", booking.TotalPrice)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
