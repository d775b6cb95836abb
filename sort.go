// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

import (
	"cmp"
	"slices"
)

// sortKey is the position of one bound of a value on the time line. rail
// separates the forms that always sort before or after every plain date;
// the remaining fields only order bounds on the same rail. Masked and
// absent positions hold zero, so a masked month sorts before any
// concrete month of its year.
type sortKey struct {
	rail  int8 // -2 open/unknown start, -1 negative Y-year, 0 date, 1 positive Y-year, 2 open/unknown end
	year  int64
	month int8
	day   int8
	sec   int32 // second of the UTC day
}

func (k sortKey) compare(o sortKey) int {
	if c := cmp.Compare(k.rail, o.rail); c != 0 {
		return c
	}
	if c := cmp.Compare(k.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(k.month, o.month); c != 0 {
		return c
	}
	if c := cmp.Compare(k.day, o.day); c != 0 {
		return c
	}
	return cmp.Compare(k.sec, o.sec)
}

func dateKey(d Date) sortKey {
	k := sortKey{year: int64(d.year)}
	if d.monthSet && !d.monthMask {
		k.month = int8(d.month)
	}
	k.day = int8(d.day)
	return k
}

func dateTimeKey(dt DateTime) sortKey {
	d, sec := dt.utc()
	k := dateKey(d)
	k.sec = int32(sec)
	return k
}

func yyearKey(y YYear) sortKey {
	k := sortKey{rail: 1, year: y.year}
	if y.year < 0 {
		k.rail = -1
	}
	return k
}

// startKey returns the position of the value's earliest bound.
func (v Value) startKey() sortKey {
	switch v.kind {
	case KindIntervalTo:
		return sortKey{rail: -2}
	case KindYYear:
		return yyearKey(v.yy)
	case KindDateTime:
		return dateTimeKey(v.dt)
	case KindInvalid:
		return sortKey{rail: -2, year: -1 << 62}
	}
	return dateKey(v.date)
}

// endKey returns the position of the value's latest bound.
func (v Value) endKey() sortKey {
	switch v.kind {
	case KindIntervalFrom:
		return sortKey{rail: 2}
	case KindYYear:
		return yyearKey(v.yy)
	case KindDateTime:
		return dateTimeKey(v.dt)
	case KindInterval, KindIntervalTo:
		return dateKey(v.to)
	case KindInvalid:
		return sortKey{rail: -2, year: -1 << 62}
	}
	return dateKey(v.date)
}

// Compare orders two values by their start bound and then by their end
// bound. Open and unknown starts sort before everything else, and open
// and unknown ends sort after everything else. Y-years sort with
// negative years before all four digit dates and positive years after
// them. Dates and date-times share the time line, with a date treated as
// the first instant of its span, so 2010-08-12T00:00:00Z ties
// 2010-08-12. Certainty does not participate in the order.
func Compare(a, b Value) int {
	if c := a.startKey().compare(b.startKey()); c != 0 {
		return c
	}
	return a.endKey().compare(b.endKey())
}

// Sort sorts values into Compare order.
func Sort(vals []Value) {
	slices.SortFunc(vals, Compare)
}

// Ordered reports whether the start of the interval does not sort after
// its end, comparing the sides the way Compare does.
func (i Interval) Ordered() bool {
	return dateKey(i.from).compare(dateKey(i.to)) <= 0
}
