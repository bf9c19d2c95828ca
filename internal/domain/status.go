package domain

import (
	"fmt"
	"strings"
)

// BookingStatus is the booking lifecycle state. The wire format is the plain
// lowercase string; unknown values are rejected at the boundary instead of
// being stored verbatim.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus converts a wire string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return st, nil
	default:
		return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", s)}
	}
}

func (s BookingStatus) String() string { return string(s) }
