// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package level0 implements the strict level 0 subset of EDTF: complete
// calendar dates with unsigned four digit years, closed intervals
// between two such dates, and date-times. The level 1 extensions,
// signed years, masks, qualifiers, seasons, letter prefixed years and
// open or unknown interval ends, are invalid at this level.
package level0

import (
	"fmt"
	"strings"

	"cloudeng.io/edtf"
	"cloudeng.io/edtf/internal/scan"
)

// Date is a level 0 date: a four digit year with an optional month and
// an optional day, always calendar-valid.
type Date struct {
	year  uint16
	month uint8 // 0 when absent
	day   uint8 // 0 when absent
}

// NewDate returns a date with the given components; a month or day of 0
// means the component is absent and a day requires a month.
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", edtf.ErrOutOfRange, year)
	}
	d := Date{year: uint16(year)}
	if month == 0 {
		if day != 0 {
			return Date{}, fmt.Errorf("%w: day %d without a month", edtf.ErrOutOfRange, day)
		}
		return d, nil
	}
	if !edtf.IsValidMonth(month) {
		return Date{}, fmt.Errorf("%w: month %d", edtf.ErrOutOfRange, month)
	}
	d.month = uint8(month)
	if day == 0 {
		return d, nil
	}
	if !edtf.IsValidDate(year, month, day) {
		return Date{}, fmt.Errorf("%w: day %d of %04d-%02d", edtf.ErrOutOfRange, day, year, month)
	}
	d.day = uint8(day)
	return d, nil
}

// Year returns the year.
func (d Date) Year() int { return int(d.year) }

// Month returns the month, or 0 if the date has year precision.
func (d Date) Month() int { return int(d.month) }

// Day returns the day, or 0 if the date has year or month precision.
func (d Date) Day() int { return int(d.day) }

// String renders the date with zero padded components.
func (d Date) String() string {
	switch {
	case d.day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	case d.month != 0:
		return fmt.Sprintf("%04d-%02d", d.year, d.month)
	}
	return fmt.Sprintf("%04d", d.year)
}

// rawDate is a lexed date whose present components may still be out of
// range, such as a month of 00.
type rawDate struct {
	year, month, day int
	hasMonth, hasDay bool
}

// lexDate matches year[-month[-day]] with no signs or masks.
func lexDate(s string) (d rawDate, rest string, ok bool) {
	if d.year, s, ok = scan.Year4(s); !ok {
		return rawDate{}, s, false
	}
	if rest, ok := scan.Hyphen(s); ok {
		if v, rest, ok := scan.TwoDigits(rest); ok {
			d.month, d.hasMonth, s = v, true, rest
			if rest, ok := scan.Hyphen(s); ok {
				if v, rest, ok := scan.TwoDigits(rest); ok {
					d.day, d.hasDay, s = v, true, rest
				}
			}
		}
	}
	return d, s, true
}

// newDate validates a lexed date, rejecting the zero month and day that
// NewDate reads as absence.
func newDate(d rawDate) (Date, error) {
	if d.hasMonth && d.month == 0 {
		return Date{}, fmt.Errorf("%w: month 0", edtf.ErrOutOfRange)
	}
	if d.hasDay && d.day == 0 {
		return Date{}, fmt.Errorf("%w: day 0", edtf.ErrOutOfRange)
	}
	return NewDate(d.year, d.month, d.day)
}

// ParseDate parses a level 0 date such as 2019, 2019-07 or 2019-07-05.
func ParseDate(val string) (Date, error) {
	var d Date
	if err := d.Parse(val); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Parse implements the same parsing as ParseDate.
func (d *Date) Parse(val string) error {
	raw, rest, ok := lexDate(val)
	if !ok || rest != "" {
		return fmt.Errorf("invalid date %q: %w", val, edtf.ErrInvalid)
	}
	nd, err := newDate(raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, err)
	}
	*d = nd
	return nil
}

// Kind identifies which form a level 0 Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDate
	KindInterval
	KindDateTime
)

// Value is a parsed level 0 value: a date, a closed interval, or a
// date-time. The zero value has KindInvalid, which no successful parse
// produces.
type Value struct {
	kind Kind
	from Date // KindDate and the start of KindInterval
	to   Date
	dt   edtf.DateTime
}

// Kind returns the form the value holds.
func (v Value) Kind() Kind { return v.kind }

// Date returns the single date, if the value is one.
func (v Value) Date() (Date, bool) {
	return v.from, v.kind == KindDate
}

// Interval returns the interval bounds, if the value is an interval.
func (v Value) Interval() (from, to Date, ok bool) {
	return v.from, v.to, v.kind == KindInterval
}

// DateTime returns the date-time, if the value is one.
func (v Value) DateTime() (edtf.DateTime, bool) {
	return v.dt, v.kind == KindDateTime
}

// String renders the value in its EDTF form. A KindInvalid value renders
// as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindDate:
		return v.from.String()
	case KindInterval:
		return v.from.String() + "/" + v.to.String()
	case KindDateTime:
		return v.dt.String()
	}
	return ""
}

// Parse parses any level 0 value: a date-time, a closed interval, or a
// single date. Errors wrap edtf.ErrInvalid and edtf.ErrOutOfRange as in
// the level 1 parser.
func Parse(val string) (Value, error) {
	var v Value
	if err := v.Parse(val); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Parse implements the same parsing as the package level Parse.
func (v *Value) Parse(val string) error {
	if strings.ContainsRune(val, 'T') {
		dt, err := edtf.ParseDateTime(val)
		if err != nil {
			return err
		}
		*v = Value{kind: KindDateTime, dt: dt}
		return nil
	}
	if i := strings.IndexByte(val, '/'); i >= 0 {
		left, right := val[:i], val[i+1:]
		if strings.IndexByte(right, '/') >= 0 {
			return fmt.Errorf("%w: %q", edtf.ErrInvalid, val)
		}
		from, err := parseSide(val, left)
		if err != nil {
			return err
		}
		to, err := parseSide(val, right)
		if err != nil {
			return err
		}
		*v = Value{kind: KindInterval, from: from, to: to}
		return nil
	}
	var d Date
	if err := d.Parse(val); err != nil {
		return err
	}
	*v = Value{kind: KindDate, from: d}
	return nil
}

func parseSide(val, side string) (Date, error) {
	raw, rest, ok := lexDate(side)
	if !ok || rest != "" {
		return Date{}, fmt.Errorf("invalid interval %q: %w", val, edtf.ErrInvalid)
	}
	d, err := newDate(raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid interval %q: %w", val, err)
	}
	return d, nil
}
