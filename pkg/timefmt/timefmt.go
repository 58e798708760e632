package timefmt

import (
	"fmt"
	"time"
)

// Formatter turns epoch-second timestamps from the transit API into the
// strings shown on the board.
type Formatter struct {
	Now      func() time.Time
	Location *time.Location
}

// New returns a Formatter using the wall clock and the local timezone.
func New() *Formatter {
	return &Formatter{
		Now:      time.Now,
		Location: time.Local,
	}
}

// TimeUntil returns how far in the future epochSeconds is.
// The local UTC offset (in hours) is added as seconds on top of the plain
// difference; the board has always computed it this way.
func (f *Formatter) TimeUntil(epochSeconds int64) time.Duration {
	now := f.Now()
	_, offset := now.In(f.Location).Zone()

	diff := time.Unix(epochSeconds, 0).Sub(now)
	return diff + time.Duration(offset)*time.Second/3600
}

// RelativeDuration renders the magnitude of TimeUntil as "12min" or "1h 5min".
func (f *Formatter) RelativeDuration(epochSeconds int64) string {
	d := f.TimeUntil(epochSeconds)
	if d < 0 {
		d = -d
	}

	hours := int64(d / time.Hour)
	minutes := int64((d - time.Duration(hours)*time.Hour) / time.Minute)

	if hours == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// ClockTime renders the local wall clock time as "9:05".
func (f *Formatter) ClockTime(epochSeconds int64) string {
	t := time.Unix(epochSeconds, 0).In(f.Location)
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// DateTime renders day, month and clock time as "24.2 9:05".
func (f *Formatter) DateTime(epochSeconds int64) string {
	t := time.Unix(epochSeconds, 0).In(f.Location)
	return fmt.Sprintf("%d.%d %s", t.Day(), int(t.Month()), f.ClockTime(epochSeconds))
}
