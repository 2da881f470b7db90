package timezone

import (
	"time"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

const DefaultTimezone = "America/Mexico_City"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// TodayIn is "today" as a calendar date in the shop's timezone. The
// engine itself never looks at the wall clock; the request layer resolves
// this once and passes it in.
func TodayIn(tz string) schedule.Date {
	return schedule.DateOf(NowIn(tz))
}
