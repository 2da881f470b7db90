package appointment

import "github.com/lanavaja/barberia-api/internal/domain/schedule"

// Interval is a half-open [Start, End) slice of a barber's day.
type Interval struct {
	Start schedule.ClockTime `json:"start"`
	End   schedule.ClockTime `json:"end"`
}

// Overlaps reports whether [start, end) conflicts with any existing
// interval. Both comparisons are strict, so intervals that merely touch
// do not conflict — back-to-back bookings are fine.
func Overlaps(start, end schedule.ClockTime, existing []Interval) bool {
	for _, iv := range existing {
		if start < iv.End && end > iv.Start {
			return true
		}
	}
	return false
}
