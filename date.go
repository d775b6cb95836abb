// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"fmt"
	"strings"
)

// Certainty qualifies a whole date. It is written as a single trailing
// character and applies to every component of the date it follows.
type Certainty uint8

const (
	Certain              Certainty = iota
	Uncertain                      // ?
	Approximate                    // ~
	ApproximateUncertain           // %
)

// String returns a readable name for the certainty.
func (c Certainty) String() string {
	switch c {
	case Certain:
		return "certain"
	case Uncertain:
		return "uncertain"
	case Approximate:
		return "approximate"
	case ApproximateUncertain:
		return "approximate and uncertain"
	}
	return fmt.Sprintf("certainty(%d)", uint8(c))
}

// suffix returns the qualification character appended to a rendered date.
func (c Certainty) suffix() string {
	switch c {
	case Uncertain:
		return "?"
	case Approximate:
		return "~"
	case ApproximateUncertain:
		return "%"
	}
	return ""
}

// Season is a named quarter of a year, written in the month position
// using the EDTF code points 21 through 24.
type Season uint8

const (
	Spring Season = iota + 21
	Summer
	Autumn
	Winter
)

// String returns the name of the season.
func (s Season) String() string {
	switch s {
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Autumn:
		return "Autumn"
	case Winter:
		return "Winter"
	}
	return fmt.Sprintf("season(%d)", uint8(s))
}

// Precision classifies how much of a date is concrete and where its
// masked positions, if any, sit.
type Precision uint8

const (
	PrecisionCentury     Precision = iota // 20XX
	PrecisionDecade                       // 201X
	PrecisionYear                         // 2019
	PrecisionSeason                       // 2019-21
	PrecisionMonth                        // 2019-07
	PrecisionDay                          // 2019-07-05
	PrecisionMonthOfYear                  // 2019-XX
	PrecisionDayOfMonth                   // 2019-07-XX
	PrecisionDayOfYear                    // 2019-XX-XX
)

// String returns a readable name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionCentury:
		return "century"
	case PrecisionDecade:
		return "decade"
	case PrecisionYear:
		return "year"
	case PrecisionSeason:
		return "season"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionMonthOfYear:
		return "month of year"
	case PrecisionDayOfMonth:
		return "day of month"
	case PrecisionDayOfYear:
		return "day of year"
	}
	return fmt.Sprintf("precision(%d)", uint8(p))
}

// Date is a single EDTF date: a year with an optional month position and
// an optional day position, any of which may be masked, qualified as a
// whole by a trailing certainty. The month position holds either a
// calendar month or a season. Date is a comparable value type; the zero
// value is the year 0000.
type Date struct {
	year      int
	yearMask  uint8 // trailing 'X' count, 0, 1 or 2
	month     uint8 // 1-12 month, 21-24 season, 0 absent or masked
	monthSet  bool
	monthMask bool
	day       uint8 // 0 absent or masked
	dayMask   bool
	certainty Certainty
}

// NewDate returns a date with the given concrete components. A month or
// day of 0 means the component is absent; a day requires a month. The
// year must lie in -9999 to 9999 and the components must name a real
// calendar date.
func NewDate(year, month, day int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if month == 0 {
		if day != 0 {
			return Date{}, fmt.Errorf("%w: day %d without a month", ErrOutOfRange, day)
		}
		return Date{year: year}, nil
	}
	if !IsValidMonth(month) {
		return Date{}, fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}
	if day == 0 {
		return Date{year: year, month: uint8(month), monthSet: true}, nil
	}
	if !IsValidDate(year, month, day) {
		return Date{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrOutOfRange, day, year, month)
	}
	return Date{year: year, month: uint8(month), monthSet: true, day: uint8(day)}, nil
}

// NewSeason returns a date with a season in its month position.
func NewSeason(year int, season Season) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if season < Spring || season > Winter {
		return Date{}, fmt.Errorf("%w: season %d", ErrOutOfRange, season)
	}
	return Date{year: year, month: uint8(season), monthSet: true}, nil
}

// NewDecade returns a year with its final digit masked, anchored at the
// smallest magnitude year of the span, so 2015 yields the date written
// 201X. Decades reaching year zero from below cannot be written and are
// out of range.
func NewDecade(year int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	anchor := year / 10 * 10
	if anchor == 0 && year < 0 {
		return Date{}, fmt.Errorf("%w: decade of year %d", ErrOutOfRange, year)
	}
	return Date{year: anchor, yearMask: 1}, nil
}

// NewCentury returns a year with its final two digits masked, so 2015
// yields the date written 20XX.
func NewCentury(year int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	anchor := year / 100 * 100
	if anchor == 0 && year < 0 {
		return Date{}, fmt.Errorf("%w: century of year %d", ErrOutOfRange, year)
	}
	return Date{year: anchor, yearMask: 2}, nil
}

// NewMaskedMonth returns a date with a masked month position, written
// like 2019-XX.
func NewMaskedMonth(year int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	return Date{year: year, monthSet: true, monthMask: true}, nil
}

// NewMaskedMonthDay returns a date with masked month and day positions,
// written like 2019-XX-XX.
func NewMaskedMonthDay(year int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	return Date{year: year, monthSet: true, monthMask: true, dayMask: true}, nil
}

// NewMaskedDay returns a date with a concrete month and a masked day
// position, written like 2019-07-XX. Seasons cannot carry a day position.
func NewMaskedDay(year, month int) (Date, error) {
	if year < -9999 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if !IsValidMonth(month) {
		return Date{}, fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}
	return Date{year: year, month: uint8(month), monthSet: true, dayMask: true}, nil
}

// WithCertainty returns a copy of the date carrying the given certainty.
func (d Date) WithCertainty(c Certainty) Date {
	d.certainty = c
	return d
}

// Year returns the anchor year: for masked years the first year of the
// decade or century span.
func (d Date) Year() int {
	return d.year
}

// Month returns the calendar month, if the month position holds one.
func (d Date) Month() (int, bool) {
	if d.monthSet && !d.monthMask && d.month <= 12 {
		return int(d.month), true
	}
	return 0, false
}

// Season returns the season, if the month position holds one.
func (d Date) Season() (Season, bool) {
	if d.monthSet && !d.monthMask && d.month >= uint8(Spring) {
		return Season(d.month), true
	}
	return 0, false
}

// Day returns the day of the month, if a concrete one is present.
func (d Date) Day() (int, bool) {
	if d.day != 0 {
		return int(d.day), true
	}
	return 0, false
}

// Certainty returns the qualification applied to the date.
func (d Date) Certainty() Certainty {
	return d.certainty
}

// Precision classifies the date.
func (d Date) Precision() Precision {
	switch {
	case d.yearMask == 2:
		return PrecisionCentury
	case d.yearMask == 1:
		return PrecisionDecade
	case !d.monthSet:
		return PrecisionYear
	case d.monthMask && d.dayMask:
		return PrecisionDayOfYear
	case d.monthMask:
		return PrecisionMonthOfYear
	case d.dayMask:
		return PrecisionDayOfMonth
	case d.month >= uint8(Spring):
		return PrecisionSeason
	case d.day != 0:
		return PrecisionDay
	}
	return PrecisionMonth
}

// Complete returns the date as a DateComplete if its year, month and day
// are all concrete and the year is not negative.
func (d Date) Complete() (DateComplete, bool) {
	if d.Precision() != PrecisionDay || d.year < 0 {
		return DateComplete{}, false
	}
	return DateComplete{year: uint16(d.year), month: d.month, day: d.day}, true
}

// formatYear renders a possibly signed, possibly masked year.
func formatYear(year int, mask uint8) string {
	mag, sign := year, ""
	if mag < 0 {
		mag, sign = -mag, "-"
	}
	switch mask {
	case 1:
		return fmt.Sprintf("%s%03dX", sign, mag/10)
	case 2:
		return fmt.Sprintf("%s%02dXX", sign, mag/100)
	}
	return fmt.Sprintf("%s%04d", sign, mag)
}

// String renders the date in its EDTF form.
func (d Date) String() string {
	var sb strings.Builder
	sb.WriteString(formatYear(d.year, d.yearMask))
	if d.monthSet {
		if d.monthMask {
			sb.WriteString("-XX")
		} else {
			fmt.Fprintf(&sb, "-%02d", d.month)
		}
		if d.dayMask {
			sb.WriteString("-XX")
		} else if d.day != 0 {
			fmt.Fprintf(&sb, "-%02d", d.day)
		}
	}
	sb.WriteString(d.certainty.suffix())
	return sb.String()
}
