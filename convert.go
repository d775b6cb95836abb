// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"time"

	"cloudeng.io/datetime"
)

// NewDateTime returns the date-time for the given time, to second
// resolution. The offset is rendered as 'Z' when the time's zone offset
// is zero and as ±HH:MM otherwise.
func NewDateTime(t time.Time) (DateTime, error) {
	date, err := NewDateComplete(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return DateTime{}, err
	}
	tod, err := NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
	if err != nil {
		return DateTime{}, err
	}
	_, secs := t.Zone()
	if secs == 0 {
		tod.offset = Offset{kind: OffsetUTC}
	} else {
		tod.offset = Offset{kind: OffsetHoursMinutes, minutes: int16(secs / 60)}
	}
	return DateTime{date: date, time: tod}, nil
}

// Time returns the date-time as a time.Time. The location applies only
// when the date-time carries no offset; a nil location means UTC. A leap
// second normalizes to the following minute.
func (dt DateTime) Time(loc *time.Location) time.Time {
	switch dt.time.offset.kind {
	case OffsetUnspecified:
		if loc == nil {
			loc = time.UTC
		}
	case OffsetUTC:
		loc = time.UTC
	default:
		loc = time.FixedZone(dt.time.offset.String(), int(dt.time.offset.minutes)*60)
	}
	return time.Date(dt.date.Year(), time.Month(dt.date.Month()), dt.date.Day(),
		dt.time.Hour(), dt.time.Minute(), dt.time.Second(), 0, loc)
}

// CalendarDate returns the date as a datetime.CalendarDate.
func (d DateComplete) CalendarDate() datetime.CalendarDate {
	return datetime.NewCalendarDate(int(d.year), datetime.Month(d.month), int(d.day))
}

// DateCompleteFromCalendar returns the calendar date as a DateComplete.
func DateCompleteFromCalendar(cd datetime.CalendarDate) (DateComplete, error) {
	return NewDateComplete(cd.Year(), int(cd.Month()), cd.Day())
}

// CalendarRange returns the range of calendar days the date can denote:
// a masked year spans the first day of its first year through the last
// day of its last year, a month or masked day spans its month, and a
// masked month spans the whole year. Seasons and negative years have no
// calendar range.
func (d Date) CalendarRange() (datetime.CalendarDateRange, bool) {
	if _, ok := d.Season(); ok {
		return 0, false
	}
	lo, hi := d.yearSpan()
	if lo < 0 {
		return 0, false
	}
	var from, to datetime.CalendarDate
	switch d.Precision() {
	case PrecisionDay:
		from = datetime.NewCalendarDate(d.year, datetime.Month(d.month), int(d.day))
		to = from
	case PrecisionMonth, PrecisionDayOfMonth:
		from = datetime.NewCalendarDate(d.year, datetime.Month(d.month), 1)
		to = datetime.NewCalendarDate(d.year, datetime.Month(d.month), DaysInMonth(d.year, int(d.month)))
	default:
		from = datetime.NewCalendarDate(lo, 1, 1)
		to = datetime.NewCalendarDate(hi, 12, 31)
	}
	return datetime.NewCalendarDateRange(from, to), true
}
