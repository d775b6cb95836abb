// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"fmt"

	"cloudeng.io/edtf/internal/scan"
)

// DateComplete is a fully concrete calendar date with an unsigned four
// digit year. Values are always calendar-valid.
type DateComplete struct {
	year  uint16
	month uint8
	day   uint8
}

// NewDateComplete returns the given calendar date. The year must lie in
// 0 to 9999 and the month and day must name a real calendar date.
func NewDateComplete(year, month, day int) (DateComplete, error) {
	if year < 0 || year > 9999 {
		return DateComplete{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if !IsValidMonth(month) {
		return DateComplete{}, fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}
	if !IsValidDate(year, month, day) {
		return DateComplete{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrOutOfRange, day, year, month)
	}
	return DateComplete{year: uint16(year), month: uint8(month), day: uint8(day)}, nil
}

func (d DateComplete) Year() int  { return int(d.year) }
func (d DateComplete) Month() int { return int(d.month) }
func (d DateComplete) Day() int   { return int(d.day) }

// Date returns the equivalent single date.
func (d DateComplete) Date() Date {
	return Date{year: int(d.year), month: d.month, monthSet: true, day: d.day}
}

// String renders the date as YYYY-MM-DD.
func (d DateComplete) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// OffsetKind distinguishes the written forms of a UTC offset.
type OffsetKind uint8

const (
	OffsetUnspecified OffsetKind = iota
	OffsetUTC                    // Z
	OffsetHours                  // ±HH
	OffsetHoursMinutes           // ±HH:MM
)

// Offset is the UTC offset of a time of day, retaining the form it was
// written in so it can be re-rendered unchanged. A zero offset always
// renders with a '+' sign.
type Offset struct {
	kind    OffsetKind
	minutes int16 // east of UTC
}

// Kind returns the written form of the offset.
func (o Offset) Kind() OffsetKind { return o.kind }

// Minutes returns the offset in minutes east of UTC. Unspecified and UTC
// offsets return 0.
func (o Offset) Minutes() int { return int(o.minutes) }

// String renders the offset in the form it was written.
func (o Offset) String() string {
	mag, sign := int(o.minutes), "+"
	if mag < 0 {
		mag, sign = -mag, "-"
	}
	switch o.kind {
	case OffsetUTC:
		return "Z"
	case OffsetHours:
		return fmt.Sprintf("%s%02d", sign, mag/60)
	case OffsetHoursMinutes:
		return fmt.Sprintf("%s%02d:%02d", sign, mag/60, mag%60)
	}
	return ""
}

// TimeOfDay is a time with second resolution and an optional UTC offset.
// A second of 60 is the leap second and is only valid at 23:59.
type TimeOfDay struct {
	hour   uint8
	minute uint8
	second uint8
	offset Offset
}

// NewTimeOfDay returns the given time with no offset specified.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	t := TimeOfDay{hour: uint8(hour), minute: uint8(minute), second: uint8(second)}
	if hour < 0 || minute < 0 || second < 0 || hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: time %02d:%02d:%02d", ErrOutOfRange, hour, minute, second)
	}
	if second > 60 || (second == 60 && (hour != 23 || minute != 59)) {
		return TimeOfDay{}, fmt.Errorf("%w: second %d at %02d:%02d", ErrOutOfRange, second, hour, minute)
	}
	return t, nil
}

func (t TimeOfDay) Hour() int      { return int(t.hour) }
func (t TimeOfDay) Minute() int    { return int(t.minute) }
func (t TimeOfDay) Second() int    { return int(t.second) }
func (t TimeOfDay) Offset() Offset { return t.offset }

// String renders the time as HH:MM:SS followed by its offset, if any.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hour, t.minute, t.second, t.offset)
}

// DateTime is a complete date with a time of day, such as
// 2019-07-15T16:47:03-08:00. Its components are always concrete; masks,
// seasons and qualifiers never appear in a date-time.
type DateTime struct {
	date DateComplete
	time TimeOfDay
}

// Date returns the date component.
func (dt DateTime) Date() DateComplete { return dt.date }

// TimeOfDay returns the time component.
func (dt DateTime) TimeOfDay() TimeOfDay { return dt.time }

// String renders the date-time with a 'T' separator.
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// ParseDateTime parses a complete date-time such as
// 2019-07-15T16:47:03Z. The offset may be omitted, 'Z', ±HH or ±HH:MM.
func ParseDateTime(val string) (DateTime, error) {
	var dt DateTime
	if err := dt.Parse(val); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Parse implements the same parsing as ParseDateTime.
func (dt *DateTime) Parse(val string) error {
	ymd, rest, ok := scan.DateComplete(val)
	if !ok || len(rest) == 0 || rest[0] != 'T' {
		return fmt.Errorf("invalid date-time %q: %w", val, ErrInvalid)
	}
	clock, rest, ok := scan.Clock(rest[1:])
	if !ok || rest != "" {
		return fmt.Errorf("invalid date-time %q: %w", val, ErrInvalid)
	}
	date, err := NewDateComplete(ymd.Year, ymd.Month, ymd.Day)
	if err != nil {
		return fmt.Errorf("invalid date-time %q: %w", val, err)
	}
	tod, err := timeOfDay(clock)
	if err != nil {
		return fmt.Errorf("invalid date-time %q: %w", val, err)
	}
	dt.date, dt.time = date, tod
	return nil
}

// timeOfDay validates a scanned clock reading and its offset.
func timeOfDay(c scan.Time) (TimeOfDay, error) {
	tod, err := NewTimeOfDay(c.Hour, c.Minute, c.Second)
	if err != nil {
		return TimeOfDay{}, err
	}
	switch c.Offset.Form {
	case scan.OffsetUTC:
		tod.offset = Offset{kind: OffsetUTC}
	case scan.OffsetHours:
		if c.Offset.Hours > 23 {
			return TimeOfDay{}, fmt.Errorf("%w: offset hour %d", ErrOutOfRange, c.Offset.Hours)
		}
		tod.offset = Offset{kind: OffsetHours, minutes: offsetMinutes(c.Offset)}
	case scan.OffsetHoursMinutes:
		if c.Offset.Hours > 23 || c.Offset.Minutes > 59 {
			return TimeOfDay{}, fmt.Errorf("%w: offset %02d:%02d", ErrOutOfRange, c.Offset.Hours, c.Offset.Minutes)
		}
		tod.offset = Offset{kind: OffsetHoursMinutes, minutes: offsetMinutes(c.Offset)}
	}
	return tod, nil
}

func offsetMinutes(o scan.Offset) int16 {
	m := int16(o.Hours)*60 + int16(o.Minutes)
	if o.Negative {
		return -m
	}
	return m
}

// utc returns the date and second of the day that the date-time reads
// once its offset is removed, carrying into the neighbouring day when
// the offset crosses midnight.
func (dt DateTime) utc() (Date, int) {
	d := dt.date.Date()
	s := int(dt.time.hour)*3600 + int(dt.time.minute)*60 + int(dt.time.second) - int(dt.time.offset.minutes)*60
	for s < 0 {
		s += 24 * 3600
		d = d.prevDay()
	}
	for s >= 24*3600 {
		s -= 24 * 3600
		d = d.nextDay()
	}
	return d, s
}
