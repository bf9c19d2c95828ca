package services

import (
	"strconv"
	"strings"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/repositories"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/utils"
)

// BookingService owns the fare lifecycle: the fare is computed once before a
// booking is persisted, and recomputed on read only for rows where it is
// absent. The backfill is response-only; it is never written back.
type BookingService struct {
	Bookings  repositories.BookingRepository
	RequestID string
}

// CreateBookingInput carries the caller-supplied booking fields. Distance,
// duration and toll are optional and default to their zero contribution.
type CreateBookingInput struct {
	UserID          int64
	VanID           int64
	Status          string
	PickupLocation  string
	DropoffLocation string
	ScheduledTime   string
	VanSize         string
	TimeSlot        string
	Distance        string
	DurationMinutes int
	Toll            float64
}

func (in CreateBookingInput) validate() error {
	switch {
	case in.UserID <= 0:
		return domain.ValidationError{Field: "user_id", Msg: "must be a positive id"}
	case in.VanID <= 0:
		return domain.ValidationError{Field: "van_id", Msg: "must be a positive id"}
	case strings.TrimSpace(in.PickupLocation) == "":
		return domain.ValidationError{Field: "pickup_location", Msg: "required"}
	case strings.TrimSpace(in.DropoffLocation) == "":
		return domain.ValidationError{Field: "dropoff_location", Msg: "required"}
	case strings.TrimSpace(in.ScheduledTime) == "":
		return domain.ValidationError{Field: "scheduled_time", Msg: "required"}
	case strings.TrimSpace(in.VanSize) == "":
		return domain.ValidationError{Field: "van_size", Msg: "required"}
	case strings.TrimSpace(in.TimeSlot) == "":
		return domain.ValidationError{Field: "time_slot", Msg: "required"}
	case in.DurationMinutes < 0:
		return domain.ValidationError{Field: "duration_minutes", Msg: "must not be negative"}
	case in.Toll < 0:
		return domain.ValidationError{Field: "toll", Msg: "must not be negative"}
	}
	return nil
}

// Create computes the fare from the supplied inputs and persists the booking
// including it. Malformed distance text degrades to a 0.0 contribution and
// never fails the creation.
func (s BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	if err := in.validate(); err != nil {
		return models.Booking{}, err
	}

	status := domain.StatusPending
	if strings.TrimSpace(in.Status) != "" {
		parsed, err := domain.ParseBookingStatus(in.Status)
		if err != nil {
			return models.Booking{}, err
		}
		status = parsed
	}

	fare := utils.ComputeFare(in.Distance, in.DurationMinutes, in.Toll)

	booking := models.Booking{
		UserID:          in.UserID,
		VanID:           in.VanID,
		Status:          status,
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		DropoffLocation: strings.TrimSpace(in.DropoffLocation),
		ScheduledTime:   strings.TrimSpace(in.ScheduledTime),
		VanSize:         strings.TrimSpace(in.VanSize),
		TimeSlot:        strings.TrimSpace(in.TimeSlot),
		Distance:        strings.TrimSpace(in.Distance),
		DurationMinutes: in.DurationMinutes,
		Toll:            in.Toll,
		Fare:            &fare,
	}

	stored, err := s.Bookings.Insert(booking)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		"id="+strconv.FormatInt(stored.ID, 10)+" fare="+utils.FormatMoney(fare))
	return stored, nil
}

// List returns every booking. Rows written before the fare column existed
// come back with the fare computed on the fly from their stored inputs.
func (s BookingService) List() ([]models.Booking, error) {
	list, err := s.Bookings.List()
	if err != nil {
		return nil, err
	}
	for i := range list {
		backfillFare(&list[i])
	}
	return list, nil
}

// Get returns one booking with the same lazy fare backfill as List.
func (s BookingService) Get(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must be a positive id"}
	}
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	backfillFare(&b)
	return b, nil
}

// UpdateStatus replaces the status with a recognized lifecycle value. There
// is deliberately no transition graph; any known status may follow any other.
func (s BookingService) UpdateStatus(id int64, rawStatus string) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must be a positive id"}
	}
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return models.Booking{}, err
	}

	updated, err := s.Bookings.UpdateStatus(id, status)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "update_status",
		"id="+strconv.FormatInt(id, 10)+" status="+status.String())
	return updated, nil
}

func backfillFare(b *models.Booking) {
	if b.Fare != nil {
		return
	}
	fare := utils.ComputeFare(b.Distance, b.DurationMinutes, b.Toll)
	b.Fare = &fare
}
