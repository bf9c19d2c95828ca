package models

import "github.com/hasnain-sayyid/CargoVan-Connect/internal/domain"

// Booking is a single transportation request linking a user, a van and trip
// parameters. Distance is deliberately free text ("6.3 miles", "10 km"); the
// fare calculator parses it defensively. Fare is nil for rows written before
// the fare column existed and gets backfilled on read.
type Booking struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	VanID           int64                `json:"van_id"`
	Status          domain.BookingStatus `json:"status"`
	PickupLocation  string               `json:"pickup_location"`
	DropoffLocation string               `json:"dropoff_location"`
	ScheduledTime   string               `json:"scheduled_time"`
	VanSize         string               `json:"van_size"`
	TimeSlot        string               `json:"time_slot"`
	Distance        string               `json:"distance"`
	DurationMinutes int                  `json:"duration_minutes"`
	Toll            float64              `json:"toll"`
	Fare            *float64             `json:"fare"`
}
