package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and comparison format for calendar dates.
// Keys in this layout order correctly as plain strings.
const DateLayout = "2006-01-02"

// ParseDateKey validates a YYYY-MM-DD key and returns it as a UTC midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// DateKey returns the calendar date of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole number of calendar days from a to b
// (negative when b is before a). Both keys must be valid.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDateKey(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDateKey(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// DateRange returns every date key from start to end inclusive.
func DateRange(start, end string) ([]string, error) {
	ts, err := ParseDateKey(start)
	if err != nil {
		return nil, err
	}
	te, err := ParseDateKey(end)
	if err != nil {
		return nil, err
	}
	if te.Before(ts) {
		return nil, fmt.Errorf("date range end %s is before start %s", end, start)
	}
	var keys []string
	for d := ts; !d.After(te); d = d.AddDate(0, 0, 1) {
		keys = append(keys, DateKey(d))
	}
	return keys, nil
}
