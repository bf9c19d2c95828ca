package utils

import (
	"math"
	"strconv"
	"strings"
)

// Fare formula constants, in dollars.
const (
	FareBase      = 20.0
	FarePerMile   = 2.0
	FarePerMinute = 0.50
)

// ParseDistance extracts the leading number from loosely formatted distance
// text ("6.3 miles" -> 6.3, "10 km" -> 10). Empty or malformed input yields
// 0.0; a bad distance must never fail a booking.
func ParseDistance(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0.0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0.0
	}
	return v
}

// ComputeFare derives the total charge from raw booking inputs:
// base + per-mile * distance + per-minute * duration + toll, rounded to two
// decimal places. Pure and idempotent.
func ComputeFare(distance string, durationMinutes int, toll float64) float64 {
	fare := FareBase + FarePerMile*ParseDistance(distance) + FarePerMinute*float64(durationMinutes) + toll
	return RoundMoney(fare)
}

// RoundMoney rounds half-up at two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
