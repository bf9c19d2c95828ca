package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/repositories"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{Bookings: repositories.BookingRepository{DB: db}}
	return svc, mock, func() { _ = db.Close() }
}

func serviceBookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "van_id", "status", "pickup_location", "dropoff_location",
		"scheduled_time", "van_size", "time_slot", "distance", "duration_minutes", "toll", "fare",
	})
}

func TestBookingServiceCreateComputesFareBeforePersist(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	// 20 + 2*10.5 + 0.5*30 + 15 = 71.00, expected as an INSERT argument.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(3), int64(9), "pending", "Warehouse A", "Dock B",
			"2025-06-01T09:00", "large", "morning", "10.5", 30, 15.0, 71.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, user_id, van_id").
		WithArgs(int64(1)).
		WillReturnRows(serviceBookingRows().AddRow(
			int64(1), int64(3), int64(9), "pending", "Warehouse A", "Dock B",
			"2025-06-01T09:00", "large", "morning", "10.5", 30, 15.0, 71.0))
	mock.ExpectCommit()

	created, err := svc.Create(CreateBookingInput{
		UserID:          3,
		VanID:           9,
		PickupLocation:  "Warehouse A",
		DropoffLocation: "Dock B",
		ScheduledTime:   "2025-06-01T09:00",
		VanSize:         "large",
		TimeSlot:        "morning",
		Distance:        "10.5",
		DurationMinutes: 30,
		Toll:            15.0,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("created id = %d, want 1", created.ID)
	}
	if created.Fare == nil || *created.Fare != 71.0 {
		t.Fatalf("created fare = %v, want 71.0", created.Fare)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("empty status should default to pending, got %s", created.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateWithUnitSuffixAndDefaults(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	// 20 + 2*6.3 = 32.60 with duration and toll absent.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(1), "pending", "A", "B", "t", "small", "am",
			"6.3 miles", 0, 0.0, 32.6).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery("SELECT id, user_id, van_id").
		WithArgs(int64(2)).
		WillReturnRows(serviceBookingRows().AddRow(
			int64(2), int64(1), int64(1), "pending", "A", "B", "t", "small", "am",
			"6.3 miles", 0, 0.0, 32.6))
	mock.ExpectCommit()

	created, err := svc.Create(CreateBookingInput{
		UserID:          1,
		VanID:           1,
		Status:          "pending",
		PickupLocation:  "A",
		DropoffLocation: "B",
		ScheduledTime:   "t",
		VanSize:         "small",
		TimeSlot:        "am",
		Distance:        "6.3 miles",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Fare == nil || *created.Fare != 32.6 {
		t.Fatalf("created fare = %v, want 32.6", created.Fare)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateRejectsUnknownStatus(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	_, err := svc.Create(CreateBookingInput{
		UserID:          1,
		VanID:           1,
		Status:          "teleported",
		PickupLocation:  "A",
		DropoffLocation: "B",
		ScheduledTime:   "t",
		VanSize:         "small",
		TimeSlot:        "am",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run for a rejected status: %v", err)
	}
}

func TestBookingServiceListBackfillsMissingFare(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, user_id, van_id").
		WillReturnRows(serviceBookingRows().
			AddRow(int64(1), int64(1), int64(1), "pending", "A", "B", "t", "small", "am", "10 km", 20, 5.0, nil).
			AddRow(int64(2), int64(1), int64(1), "accepted", "A", "B", "t", "small", "am", "1", 0, 0.0, 99.0))

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	// 20 + 2*10 + 0.5*20 + 5 = 55.00, computed on the fly.
	if list[0].Fare == nil || *list[0].Fare != 55.0 {
		t.Fatalf("backfilled fare = %v, want 55.0", list[0].Fare)
	}
	// Persisted fares are returned as stored, never recomputed.
	if list[1].Fare == nil || *list[1].Fare != 99.0 {
		t.Fatalf("stored fare = %v, want 99.0 untouched", list[1].Fare)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	_, err := svc.UpdateStatus(1, "lost")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run for a rejected status: %v", err)
	}
}

func TestBookingServiceUpdateStatusNotFound(t *testing.T) {
	svc, mock, closeDB := newBookingService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM bookings WHERE id=\\? FOR UPDATE").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.UpdateStatus(42, "completed")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
