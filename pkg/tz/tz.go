package tz

import (
	"log/slog"
	"time"
)

// Load returns the named location, or UTC when the zone database does not
// know it.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("tz: unknown location, using UTC", "name", name, "error", err)
		return time.UTC
	}
	return loc
}

// Today formats the current date in loc as YYYY-MM-DD.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(time.DateOnly)
}
