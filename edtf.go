// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package edtf provides parsing, validation, formatting, comparison and
// iteration for the Extended Date/Time Format (EDTF) defined by ISO
// 8601-2019, at levels 0 and 1. Level 1 covers signed years, seasons,
// masked ('X') year, month and day positions, whole-date qualification
// (uncertain '?', approximate '~', both '%'), letter prefixed years
// beyond four digits such as Y170000, date-times with UTC offsets, and
// intervals with open ('..') or unknown (empty) ends. Values render back
// to the exact string they were parsed from. The stricter level 0
// subset is provided by the level0 package.
package edtf

// Kind identifies which form a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDate
	KindDateTime
	KindYYear
	KindInterval
	KindIntervalFrom // known start, open or unknown end
	KindIntervalTo   // open or unknown start, known end
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	case KindYYear:
		return "year"
	case KindInterval:
		return "interval"
	case KindIntervalFrom:
		return "interval from"
	case KindIntervalTo:
		return "interval to"
	}
	return "unknown"
}

// Terminal is the endpoint of a half bounded interval: Open is written
// as '..' and Unknown as an empty side.
type Terminal uint8

const (
	Open Terminal = iota + 1
	Unknown
)

// String renders the terminal as it is written in an interval.
func (t Terminal) String() string {
	if t == Open {
		return ".."
	}
	return ""
}

// Interval is a closed interval between two dates. Either side may be
// masked, a season, or qualified. The sides are not required to be
// ordered; see Ordered.
type Interval struct {
	from, to Date
}

// NewClosedInterval returns the closed interval between two dates.
func NewClosedInterval(from, to Date) Interval {
	return Interval{from: from, to: to}
}

// From returns the start of the interval.
func (i Interval) From() Date { return i.from }

// To returns the end of the interval.
func (i Interval) To() Date { return i.to }

// String renders the interval as from/to.
func (i Interval) String() string {
	return i.from.String() + "/" + i.to.String()
}

// Value is a parsed EDTF value of any form: a single date, a date-time,
// a letter-prefixed year, or an interval. Value is comparable and usable
// as a map key. The zero value has KindInvalid, which no successful
// parse produces.
type Value struct {
	kind Kind
	date Date // KindDate, or the start of an interval
	to   Date // the end of KindInterval and KindIntervalTo
	dt   DateTime
	yy   YYear
	term Terminal // KindIntervalFrom and KindIntervalTo
}

// Kind returns the form the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Date returns the single date, if the value is one.
func (v Value) Date() (Date, bool) {
	return v.date, v.kind == KindDate
}

// DateTime returns the date-time, if the value is one.
func (v Value) DateTime() (DateTime, bool) {
	return v.dt, v.kind == KindDateTime
}

// YYear returns the letter-prefixed year, if the value is one.
func (v Value) YYear() (YYear, bool) {
	return v.yy, v.kind == KindYYear
}

// Interval returns the closed interval, if the value is one.
func (v Value) Interval() (Interval, bool) {
	if v.kind != KindInterval {
		return Interval{}, false
	}
	return Interval{from: v.date, to: v.to}, true
}

// IntervalFrom returns the start date and end terminal of an interval
// with an open or unknown end, if the value is one.
func (v Value) IntervalFrom() (Date, Terminal, bool) {
	if v.kind != KindIntervalFrom {
		return Date{}, 0, false
	}
	return v.date, v.term, true
}

// IntervalTo returns the start terminal and end date of an interval with
// an open or unknown start, if the value is one.
func (v Value) IntervalTo() (Terminal, Date, bool) {
	if v.kind != KindIntervalTo {
		return 0, Date{}, false
	}
	return v.term, v.to, true
}

// NewDateValue returns the date as a Value.
func NewDateValue(d Date) Value {
	return Value{kind: KindDate, date: d}
}

// NewDateTimeValue returns the date-time as a Value.
func NewDateTimeValue(dt DateTime) Value {
	return Value{kind: KindDateTime, dt: dt}
}

// NewYYearValue returns the letter-prefixed year as a Value.
func NewYYearValue(y YYear) Value {
	return Value{kind: KindYYear, yy: y}
}

// NewInterval returns the closed interval between two dates as a Value.
func NewInterval(from, to Date) Value {
	return Value{kind: KindInterval, date: from, to: to}
}

// NewIntervalFrom returns an interval from a date to an open or unknown
// end. An invalid terminal yields a KindInvalid value.
func NewIntervalFrom(from Date, t Terminal) Value {
	if t != Open && t != Unknown {
		return Value{}
	}
	return Value{kind: KindIntervalFrom, date: from, term: t}
}

// NewIntervalTo returns an interval from an open or unknown start to a
// date. An invalid terminal yields a KindInvalid value.
func NewIntervalTo(t Terminal, to Date) Value {
	if t != Open && t != Unknown {
		return Value{}
	}
	return Value{kind: KindIntervalTo, to: to, term: t}
}

// String renders the value in its EDTF form. A KindInvalid value renders
// as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindDate:
		return v.date.String()
	case KindDateTime:
		return v.dt.String()
	case KindYYear:
		return v.yy.String()
	case KindInterval:
		return v.date.String() + "/" + v.to.String()
	case KindIntervalFrom:
		return v.date.String() + "/" + v.term.String()
	case KindIntervalTo:
		return v.term.String() + "/" + v.to.String()
	}
	return ""
}
