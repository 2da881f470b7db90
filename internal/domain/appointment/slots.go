package appointment

import "github.com/lanavaja/barberia-api/internal/domain/schedule"

// SlotStepMinutes is the probing granularity of the slot grid. Candidate
// starts advance by this fixed step regardless of the service duration,
// so a long service still yields quarter-hour-aligned options.
const SlotStepMinutes = 15

// GenerateSlots lists the bookable start times for one barber, date and
// service duration. Shop-wide closures override everything; a non-working
// day (disabled weekday or blocked date) yields no slots.
func GenerateSlots(
	date schedule.Date,
	avail schedule.Availability,
	durationMin int,
	existing []Interval,
	shopBlocked schedule.DateSet,
) []schedule.ClockTime {

	slots := make([]schedule.ClockTime, 0)

	if durationMin <= 0 {
		return slots
	}
	if shopBlocked.Contains(date) {
		return slots
	}

	open, close, ok := avail.WorkingWindow(date)
	if !ok {
		return slots
	}

	for cursor := open; cursor.AddMinutes(durationMin) <= close; cursor = cursor.AddMinutes(SlotStepMinutes) {
		if !Overlaps(cursor, cursor.AddMinutes(durationMin), existing) {
			slots = append(slots, cursor)
		}
	}

	return slots
}
