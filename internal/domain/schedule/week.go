package schedule

import (
	"fmt"
	"time"
)

// weekdayNames is indexed by time.Weekday (0 = Sunday).
var weekdayNames = [7]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// WeekdaySchedule is one weekday's working window.
type WeekdaySchedule struct {
	Enabled bool      `json:"enabled"`
	Open    ClockTime `json:"open"`
	Close   ClockTime `json:"close"`
}

// WeeklySchedule maps weekday names ("monday" … "sunday") to their windows.
// Days with no entry count as disabled.
type WeeklySchedule map[string]WeekdaySchedule

func (w WeeklySchedule) DayFor(date Date) (WeekdaySchedule, bool) {
	day, ok := w[WeekdayName(date.Weekday())]
	return day, ok
}

// Validate checks weekday keys and the open < close invariant on enabled days.
func (w WeeklySchedule) Validate() error {
	for key, day := range w {
		known := false
		for _, name := range weekdayNames {
			if key == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown weekday %q", key)
		}

		if day.Enabled {
			if !day.Open.Valid() || !day.Close.Valid() {
				return fmt.Errorf("%s: invalid working window", key)
			}
			if day.Open >= day.Close {
				return fmt.Errorf("%s: open must be before close", key)
			}
		}
	}
	return nil
}

// Availability is a barber's recurring weekly schedule plus one-off days off.
type Availability struct {
	Week    WeeklySchedule `json:"availability"`
	Blocked DateSet        `json:"blocked_dates"`
}

// IsWorkingDay reports whether the barber takes appointments on the given
// date: the weekday must be enabled and the date must not be blocked.
func (a Availability) IsWorkingDay(date Date) bool {
	if a.Blocked.Contains(date) {
		return false
	}
	day, ok := a.Week.DayFor(date)
	return ok && day.Enabled
}

// WorkingWindow returns the open/close pair for the date, if working that day.
func (a Availability) WorkingWindow(date Date) (open, close ClockTime, ok bool) {
	if !a.IsWorkingDay(date) {
		return 0, 0, false
	}
	day, _ := a.Week.DayFor(date)
	return day.Open, day.Close, true
}
