package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

// 2025-03-10 is a Monday.
func monday() schedule.Date { return schedule.NewDate(2025, time.March, 10) }

func mondayNineToFive(t *testing.T) schedule.Availability {
	t.Helper()
	return schedule.Availability{
		Week: schedule.WeeklySchedule{
			"monday": {Enabled: true, Open: clock(t, "09:00"), Close: clock(t, "17:00")},
		},
	}
}

func TestGenerateSlotsFullGrid(t *testing.T) {
	slots := GenerateSlots(monday(), mondayNineToFive(t), 30, nil, nil)

	// Every 15 minutes from 09:00 while a 30-minute block still fits
	// before 17:00, i.e. 09:00 … 16:30.
	require.Len(t, slots, 31)
	assert.Equal(t, "09:00:00", slots[0].String())
	assert.Equal(t, "09:15:00", slots[1].String())
	assert.Equal(t, "16:30:00", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 15, slots[i-1].MinutesUntil(slots[i]), "grid is 15-minute spaced")
	}
}

func TestGenerateSlotsSkipsConflicts(t *testing.T) {
	existing := []Interval{interval(t, "10:00", "10:30")}

	slots := GenerateSlots(monday(), mondayNineToFive(t), 30, existing, nil)

	got := make(map[string]bool, len(slots))
	for _, s := range slots {
		got[s.String()] = true
	}

	// 09:45, 10:00 and 10:15 would all overlap the booking; 09:30 and
	// 10:30 merely touch it and stay available.
	assert.True(t, got["09:30:00"])
	assert.False(t, got["09:45:00"])
	assert.False(t, got["10:00:00"])
	assert.False(t, got["10:15:00"])
	assert.True(t, got["10:30:00"])
}

func TestGenerateSlotsShopClosureDominates(t *testing.T) {
	shopBlocked := schedule.DateSet{monday()}

	slots := GenerateSlots(monday(), mondayNineToFive(t), 30, nil, shopBlocked)
	assert.Empty(t, slots)
}

func TestGenerateSlotsNonWorkingDay(t *testing.T) {
	tuesday := monday().AddDays(1)

	slots := GenerateSlots(tuesday, mondayNineToFive(t), 30, nil, nil)
	assert.Empty(t, slots, "no weekly entry for tuesday")

	av := mondayNineToFive(t)
	av.Blocked = schedule.DateSet{monday()}
	slots = GenerateSlots(monday(), av, 30, nil, nil)
	assert.Empty(t, slots, "barber day off")
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	av := schedule.Availability{
		Week: schedule.WeeklySchedule{
			"monday": {Enabled: true, Open: clock(t, "09:00"), Close: clock(t, "10:00")},
		},
	}

	assert.Empty(t, GenerateSlots(monday(), av, 90, nil, nil))
	assert.Empty(t, GenerateSlots(monday(), av, 0, nil, nil))
}

func TestGenerateSlotsFixedStepUnderfillsWindow(t *testing.T) {
	av := schedule.Availability{
		Week: schedule.WeeklySchedule{
			"monday": {Enabled: true, Open: clock(t, "09:00"), Close: clock(t, "10:00")},
		},
	}

	// A 40-minute service in a 60-minute window: candidates at 09:00 and
	// 09:15; 09:30 no longer fits. The grid probes every 15 minutes, it
	// does not pack back-to-back.
	slots := GenerateSlots(monday(), av, 40, nil, nil)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00:00", slots[0].String())
	assert.Equal(t, "09:15:00", slots[1].String())
}
