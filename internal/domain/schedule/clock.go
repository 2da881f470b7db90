package schedule

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ClockTime is a time of day, stored as seconds since midnight.
// It maps to a Postgres `time` column and serializes as "HH:MM:SS".
type ClockTime int

const secondsPerDay = 24 * 60 * 60

// ParseClock accepts "HH:MM" and "HH:MM:SS". The whole string must be a
// clock time; trailing garbage is rejected, never truncated away.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	return ClockTime(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

func (t ClockTime) AddMinutes(m int) ClockTime {
	return t + ClockTime(m*60)
}

// MinutesUntil returns the whole minutes between t and end.
func (t ClockTime) MinutesUntil(end ClockTime) int {
	return int(end-t) / 60
}

func (t ClockTime) Valid() bool {
	return t >= 0 && t < secondsPerDay
}

// --------------------------------------------------
// JSON
// --------------------------------------------------

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid clock time %s", b)
	}
	parsed, err := ParseClock(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// --------------------------------------------------
// database/sql
// --------------------------------------------------

func (t ClockTime) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = 0
		return nil
	case time.Time:
		*t = ClockTime(v.Hour()*3600 + v.Minute()*60 + v.Second())
		return nil
	case string:
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseClock(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}
