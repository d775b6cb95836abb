// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import "iter"

// Iteration reads intervals as widely as their masked positions allow: a
// masked year, month or day contributes the first day of its span on the
// from side and the last day on the to side. Iteration is forward only;
// an interval whose start lies after its end yields nothing.

// yearSpan returns the first and last years the possibly masked year can
// denote.
func (d Date) yearSpan() (lo, hi int) {
	span := 0
	switch d.yearMask {
	case 1:
		span = 9
	case 2:
		span = 99
	}
	if d.year < 0 {
		return d.year - span, d.year
	}
	return d.year, d.year + span
}

// monthSpan returns the first and last calendar months the month
// position can denote, if it holds one. Seasons do not span calendar
// months.
func (d Date) monthSpan() (lo, hi int, ok bool) {
	if !d.monthSet || (!d.monthMask && d.month >= uint8(Spring)) {
		return 0, 0, false
	}
	if d.monthMask {
		return 1, 12, true
	}
	return int(d.month), int(d.month), true
}

// daySpan returns the first and last concrete days the date can denote,
// if it has a day position.
func (d Date) daySpan() (lo, hi Date, ok bool) {
	switch d.Precision() {
	case PrecisionDay:
		c := Date{year: d.year, month: d.month, monthSet: true, day: d.day}
		return c, c, true
	case PrecisionDayOfMonth:
		lo = Date{year: d.year, month: d.month, monthSet: true, day: 1}
		hi = Date{year: d.year, month: d.month, monthSet: true, day: uint8(DaysInMonth(d.year, int(d.month)))}
		return lo, hi, true
	case PrecisionDayOfYear:
		lo = Date{year: d.year, month: 1, monthSet: true, day: 1}
		hi = Date{year: d.year, month: 12, monthSet: true, day: 31}
		return lo, hi, true
	}
	return Date{}, Date{}, false
}

// before orders concrete dates by year, month and day.
func (d Date) before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// nextDay returns the following concrete day.
func (d Date) nextDay() Date {
	d.day++
	if int(d.day) > DaysInMonth(d.year, int(d.month)) {
		d.day, d.month = 1, d.month+1
		if d.month > 12 {
			d.month, d.year = 1, d.year+1
		}
	}
	return d
}

// prevDay returns the preceding concrete day.
func (d Date) prevDay() Date {
	if d.day > 1 {
		d.day--
		return d
	}
	d.month--
	if d.month == 0 {
		d.month, d.year = 12, d.year-1
	}
	d.day = uint8(DaysInMonth(d.year, int(d.month)))
	return d
}

func daysBetween(lo, hi Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := lo; !hi.before(d); d = d.nextDay() {
			if !yield(d) {
				return
			}
		}
	}
}

// Years returns each year touched by the interval.
func (i Interval) Years() iter.Seq[int] {
	lo, _ := i.from.yearSpan()
	_, hi := i.to.yearSpan()
	return func(yield func(int) bool) {
		for y := lo; y <= hi; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

// Decades returns the starting year of each decade touched by the
// interval, so 1899/1923 yields 1890, 1900, 1910 and 1920.
func (i Interval) Decades() iter.Seq[int] {
	return i.multiples(10)
}

// Centuries returns the starting year of each century touched by the
// interval, so 1899/2000 yields 1800, 1900 and 2000.
func (i Interval) Centuries() iter.Seq[int] {
	return i.multiples(100)
}

func (i Interval) multiples(n int) iter.Seq[int] {
	lo, _ := i.from.yearSpan()
	_, hi := i.to.yearSpan()
	lo, hi = floorTo(lo, n), floorTo(hi, n)
	return func(yield func(int) bool) {
		for y := lo; y <= hi; y += n {
			if !yield(y) {
				return
			}
		}
	}
}

// floorTo rounds y down to a multiple of n, toward negative infinity.
func floorTo(y, n int) int {
	r := y % n
	if r < 0 {
		r += n
	}
	return y - r
}

// Months returns each (year, month) pair touched by the interval, or
// false if either side lacks a calendar month position.
func (i Interval) Months() (iter.Seq2[int, int], bool) {
	flo, _, ok := i.from.monthSpan()
	if !ok {
		return nil, false
	}
	_, thi, ok := i.to.monthSpan()
	if !ok {
		return nil, false
	}
	fy, ty := i.from.year, i.to.year
	return func(yield func(int, int) bool) {
		y, m := fy, flo
		for y < ty || (y == ty && m <= thi) {
			if !yield(y, m) {
				return
			}
			m++
			if m > 12 {
				y, m = y+1, 1
			}
		}
	}, true
}

// Days returns each concrete day touched by the interval, or false if
// either side lacks a day position.
func (i Interval) Days() (iter.Seq[Date], bool) {
	lo, _, ok := i.from.daySpan()
	if !ok {
		return nil, false
	}
	_, hi, ok := i.to.daySpan()
	if !ok {
		return nil, false
	}
	return daysBetween(lo, hi), true
}

// PossibleDays returns each concrete day a date with a day position can
// denote: a masked day covers its month and a masked month and day cover
// the whole year. The yielded dates are unqualified.
func (d Date) PossibleDays() (iter.Seq[Date], bool) {
	lo, hi, ok := d.daySpan()
	if !ok {
		return nil, false
	}
	return daysBetween(lo, hi), true
}

// ForwardDays returns an unbounded sequence of concrete days beginning
// at the earliest day the date can denote, or false if the date lacks a
// day position. The caller must bound the iteration.
func (d Date) ForwardDays() (iter.Seq[Date], bool) {
	lo, _, ok := d.daySpan()
	if !ok {
		return nil, false
	}
	return func(yield func(Date) bool) {
		for c := lo; yield(c); c = c.nextDay() {
		}
	}, true
}

// ForwardMonths returns an unbounded sequence of (year, month) pairs
// beginning at the earliest month a month precision date can denote, or
// false for any other precision. The caller must bound the iteration.
func (d Date) ForwardMonths() (iter.Seq2[int, int], bool) {
	switch d.Precision() {
	case PrecisionMonth, PrecisionMonthOfYear:
	default:
		return nil, false
	}
	lo, _, ok := d.monthSpan()
	if !ok {
		return nil, false
	}
	year := d.year
	return func(yield func(int, int) bool) {
		for y, m := year, lo; yield(y, m); {
			m++
			if m > 12 {
				y, m = y+1, 1
			}
		}
	}, true
}

// PossibleMonths returns each month a month precision date can denote: a
// concrete month is itself and a masked month covers the whole year. The
// yielded dates are unqualified.
func (d Date) PossibleMonths() (iter.Seq[Date], bool) {
	switch d.Precision() {
	case PrecisionMonth, PrecisionMonthOfYear:
	default:
		return nil, false
	}
	lo, hi, ok := d.monthSpan()
	if !ok {
		return nil, false
	}
	year := d.year
	return func(yield func(Date) bool) {
		for m := lo; m <= hi; m++ {
			if !yield(Date{year: year, month: uint8(m), monthSet: true}) {
				return
			}
		}
	}, true
}
