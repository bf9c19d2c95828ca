package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "van_id", "status", "pickup_location", "dropoff_location",
		"scheduled_time", "van_size", "time_slot", "distance", "duration_minutes", "toll", "fare",
	})
}

func TestBookingRepositoryInsertReturnsStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	fare := 71.0
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(2), "pending", "Warehouse A", "Dock B",
			"2025-06-01T09:00", "large", "morning", "10.5", 30, 15.0, 71.0).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT id, user_id, van_id").
		WithArgs(int64(7)).
		WillReturnRows(bookingRows().AddRow(
			int64(7), int64(1), int64(2), "pending", "Warehouse A", "Dock B",
			"2025-06-01T09:00", "large", "morning", "10.5", 30, 15.0, 71.0))
	mock.ExpectCommit()

	repo := BookingRepository{DB: db}
	stored, err := repo.Insert(models.Booking{
		UserID:          1,
		VanID:           2,
		Status:          domain.StatusPending,
		PickupLocation:  "Warehouse A",
		DropoffLocation: "Dock B",
		ScheduledTime:   "2025-06-01T09:00",
		VanSize:         "large",
		TimeSlot:        "morning",
		Distance:        "10.5",
		DurationMinutes: 30,
		Toll:            15.0,
		Fare:            &fare,
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if stored.ID != 7 {
		t.Fatalf("stored id = %d, want 7", stored.ID)
	}
	if stored.Fare == nil || *stored.Fare != 71.0 {
		t.Fatalf("stored fare = %v, want 71.0", stored.Fare)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryListKeepsNullFare(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, van_id").
		WillReturnRows(bookingRows().
			AddRow(int64(1), int64(1), int64(1), "completed", "A", "B", "t", "small", "am", "10 km", 20, 5.0, nil).
			AddRow(int64(2), int64(1), int64(1), "pending", "A", "B", "t", "small", "am", nil, nil, nil, 20.0))

	repo := BookingRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Fare != nil {
		t.Fatalf("legacy row fare should stay nil at repository level, got %v", *list[0].Fare)
	}
	if list[0].Distance != "10 km" || list[0].DurationMinutes != 20 || list[0].Toll != 5.0 {
		t.Fatalf("fare inputs scanned wrong: %+v", list[0])
	}
	if list[1].Distance != "" || list[1].DurationMinutes != 0 || list[1].Toll != 0 {
		t.Fatalf("null fare inputs should default to zero values: %+v", list[1])
	}
	if list[1].Fare == nil || *list[1].Fare != 20.0 {
		t.Fatalf("persisted fare lost in scan: %+v", list[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM bookings WHERE id=\\? FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	repo := BookingRepository{DB: db}
	if _, err := repo.UpdateStatus(99, domain.StatusAccepted); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryUpdateStatusTouchesOnlyStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM bookings WHERE id=\\? FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("UPDATE bookings SET status=\\?, updated_at=NOW\\(\\) WHERE id=\\?").
		WithArgs("completed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, user_id, van_id").
		WithArgs(int64(5)).
		WillReturnRows(bookingRows().AddRow(
			int64(5), int64(1), int64(2), "completed", "A", "B", "t", "small", "am", "6.3 miles", 0, 0.0, 32.6))
	mock.ExpectCommit()

	repo := BookingRepository{DB: db}
	updated, err := repo.UpdateStatus(5, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want completed", updated.Status)
	}
	if updated.Fare == nil || *updated.Fare != 32.6 {
		t.Fatalf("other fields must survive the update untouched: %+v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
