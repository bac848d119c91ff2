package services

import "time"

// startOfDay truncates t to midnight UTC. Date ranges in the engine are
// calendar days, so every range boundary goes through these two helpers.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay returns the last representable instant of t's calendar day, making
// "to" and "asOf" parameters inclusive of the whole day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
