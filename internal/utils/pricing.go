package utils

import "time"

const day = 24 * time.Hour

// RentalDays returns the number of billable days between start and end.
// Both endpoints count, so a same-day rental is one day. The whole-day
// difference is floored, which means an end before start yields zero or a
// negative count; callers are not protected from that.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := diff / day
	if diff%day != 0 && diff < 0 {
		days--
	}
	return int(days) + 1
}

// RentalTotal returns days * pricePerDay for the given range.
func RentalTotal(start, end time.Time, pricePerDay float64) (int, float64) {
	days := RentalDays(start, end)
	return days, float64(days) * pricePerDay
}
