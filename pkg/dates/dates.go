// Package dates parses the date strings returned by the backend API.
package dates

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Parse accepts RFC 3339 timestamps, naive ISO timestamps and plain dates.
// Naive values are read as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("dates: empty value")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("dates: unsupported format %q", s)
}

// DaysBetween returns ceil(|to-from| / 24h), or 0 when either value does not
// parse.
func DaysBetween(from, to string) int {
	a, err := Parse(from)
	if err != nil {
		return 0
	}
	b, err := Parse(to)
	if err != nil {
		return 0
	}
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}
