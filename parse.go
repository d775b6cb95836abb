// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"fmt"
	"strings"

	"cloudeng.io/edtf/internal/scan"
)

// rawDate is a lexed but not yet validated date.
type rawDate struct {
	year      int
	yearMask  int
	monthSet  bool
	month     int
	monthMask bool
	daySet    bool
	day       int
	dayMask   bool
	certainty Certainty
}

// lexDate matches year[-month[-day]][qualifier] where the year may carry
// a sign and a trailing mask and the month and day positions may be
// masked. Callers check that the remainder is empty.
func lexDate(s string) (rawDate, string, bool) {
	var r rawDate
	var ok bool
	r.year, r.yearMask, s, ok = scan.Year(s)
	if !ok {
		return rawDate{}, s, false
	}
	if rest, ok := scan.Hyphen(s); ok {
		if v, masked, rest, ok := scan.TwoDigitsOrMask(rest); ok {
			r.monthSet, r.month, r.monthMask = true, v, masked
			s = rest
			if rest, ok := scan.Hyphen(s); ok {
				if v, masked, rest, ok := scan.TwoDigitsOrMask(rest); ok {
					r.daySet, r.day, r.dayMask = true, v, masked
					s = rest
				}
			}
		}
	}
	if q, rest, ok := scan.Qualifier(s); ok {
		switch q {
		case '?':
			r.certainty = Uncertain
		case '~':
			r.certainty = Approximate
		case '%':
			r.certainty = ApproximateUncertain
		}
		s = rest
	}
	return r, s, true
}

// validate applies the structural and range rules to a lexed date. Masks
// may only cover the trailing end of a date: a masked year excludes any
// month position and a masked month excludes a concrete day. Seasons
// exclude any day position.
func (r rawDate) validate() (Date, error) {
	if r.yearMask > 0 && r.monthSet {
		return Date{}, fmt.Errorf("%w: masked year with a month position", ErrInvalid)
	}
	if r.monthMask && r.daySet && !r.dayMask {
		return Date{}, fmt.Errorf("%w: masked month with a concrete day", ErrInvalid)
	}
	d := Date{year: r.year, yearMask: uint8(r.yearMask), certainty: r.certainty}
	if !r.monthSet {
		return d, nil
	}
	d.monthSet = true
	if r.monthMask {
		d.monthMask, d.dayMask = true, r.dayMask
		return d, nil
	}
	switch {
	case r.month >= 1 && r.month <= 12:
	case r.month >= int(Spring) && r.month <= int(Winter):
		if r.daySet {
			return Date{}, fmt.Errorf("%w: season with a day position", ErrInvalid)
		}
	default:
		return Date{}, fmt.Errorf("%w: month %d", ErrOutOfRange, r.month)
	}
	d.month = uint8(r.month)
	if !r.daySet {
		return d, nil
	}
	if r.dayMask {
		d.dayMask = true
		return d, nil
	}
	if !IsValidDate(r.year, r.month, r.day) {
		return Date{}, fmt.Errorf("%w: day %d of %s-%02d", ErrOutOfRange, r.day, formatYear(r.year, 0), r.month)
	}
	d.day = uint8(r.day)
	return d, nil
}

// ParseDate parses a single level 1 date such as 2019-07-05, -0100-21,
// 201X or 2019-XX-XX~.
func ParseDate(val string) (Date, error) {
	var d Date
	if err := d.Parse(val); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Parse implements the same parsing as ParseDate.
func (d *Date) Parse(val string) error {
	r, rest, ok := lexDate(val)
	if !ok || rest != "" {
		return fmt.Errorf("invalid date %q: %w", val, ErrInvalid)
	}
	nd, err := r.validate()
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, err)
	}
	*d = nd
	return nil
}

// Parse parses any level 1 EDTF value: a letter-prefixed year, a
// date-time, a single date, or an interval whose sides are dates, '..'
// for open, or empty for unknown. At most one side of an interval may be
// open or unknown. Errors wrap ErrInvalid for malformed or structurally
// conflicting input and ErrOutOfRange for values that read correctly but
// name no real date or time.
func Parse(val string) (Value, error) {
	var v Value
	if err := v.Parse(val); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Parse implements the same parsing as the package level Parse.
func (v *Value) Parse(val string) error {
	if y, rest, ok := scan.YDigits(val); ok && rest == "" {
		*v = Value{kind: KindYYear, yy: YYear{year: y}}
		return nil
	}
	if strings.ContainsRune(val, 'T') {
		var dt DateTime
		if err := dt.Parse(val); err != nil {
			return err
		}
		*v = Value{kind: KindDateTime, dt: dt}
		return nil
	}
	if i := strings.IndexByte(val, '/'); i >= 0 {
		return v.parseInterval(val, i)
	}
	if r, rest, ok := lexDate(val); ok && rest == "" {
		d, err := r.validate()
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", val, err)
		}
		*v = Value{kind: KindDate, date: d}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalid, val)
}

// terminalFor classifies an interval side that is not a date, returning
// 0 for sides that must parse as dates.
func terminalFor(side string) Terminal {
	switch side {
	case "":
		return Unknown
	case "..":
		return Open
	}
	return 0
}

func (v *Value) parseInterval(val string, slash int) error {
	left, right := val[:slash], val[slash+1:]
	if strings.IndexByte(right, '/') >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalid, val)
	}
	lterm, rterm := terminalFor(left), terminalFor(right)
	if lterm != 0 && rterm != 0 {
		return fmt.Errorf("%w: %q", ErrInvalid, val)
	}
	switch {
	case lterm == 0 && rterm == 0:
		from, err := parseSide(val, left)
		if err != nil {
			return err
		}
		to, err := parseSide(val, right)
		if err != nil {
			return err
		}
		*v = Value{kind: KindInterval, date: from, to: to}
	case lterm == 0:
		from, err := parseSide(val, left)
		if err != nil {
			return err
		}
		*v = Value{kind: KindIntervalFrom, date: from, term: rterm}
	default:
		to, err := parseSide(val, right)
		if err != nil {
			return err
		}
		*v = Value{kind: KindIntervalTo, to: to, term: lterm}
	}
	return nil
}

// parseSide parses one side of an interval, which may be any single
// date. Date-times and letter-prefixed years cannot bound an interval.
func parseSide(val, side string) (Date, error) {
	r, rest, ok := lexDate(side)
	if !ok || rest != "" {
		return Date{}, fmt.Errorf("invalid interval %q: %w", val, ErrInvalid)
	}
	d, err := r.validate()
	if err != nil {
		return Date{}, fmt.Errorf("invalid interval %q: %w", val, err)
	}
	return d, nil
}
