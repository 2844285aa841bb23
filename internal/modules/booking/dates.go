package booking

import "time"

// dateOnly truncates to a UTC calendar date. All range math in this package
// works on midnight-UTC dates.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

func today() time.Time {
	return dateOnly(time.Now().UTC())
}
