package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

func clock(t *testing.T, s string) schedule.ClockTime {
	t.Helper()
	c, err := schedule.ParseClock(s)
	require.NoError(t, err)
	return c
}

func interval(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: clock(t, start), End: clock(t, end)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		existing []Interval
		want     bool
	}{
		{
			name:  "touching end-to-start is not a conflict",
			start: "10:00", end: "11:00",
			existing: []Interval{interval(t, "11:00", "12:00")},
			want:     false,
		},
		{
			name:  "touching start-to-end is not a conflict",
			start: "10:00", end: "11:00",
			existing: []Interval{interval(t, "09:00", "10:00")},
			want:     false,
		},
		{
			name:  "partial overlap conflicts",
			start: "10:00", end: "11:00",
			existing: []Interval{interval(t, "10:30", "11:30")},
			want:     true,
		},
		{
			name:  "identical interval conflicts",
			start: "10:00", end: "11:00",
			existing: []Interval{interval(t, "10:00", "11:00")},
			want:     true,
		},
		{
			name:  "containment conflicts",
			start: "10:00", end: "11:00",
			existing: []Interval{interval(t, "10:15", "10:45")},
			want:     true,
		},
		{
			name:  "no existing intervals",
			start: "10:00", end: "11:00",
			want:  false,
		},
		{
			name:  "candidate before 10:00-10:30 booking",
			start: "09:45", end: "10:15",
			existing: []Interval{interval(t, "10:00", "10:30")},
			want:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(clock(t, tc.start), clock(t, tc.end), tc.existing)
			assert.Equal(t, tc.want, got)
		})
	}
}
