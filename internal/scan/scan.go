// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scan implements the lexical productions shared by the level 0
// and level 1 EDTF parsers. Each function consumes from the front of its
// input and returns the unconsumed remainder; on a failed match the input
// is left unconsumed and ok is false, so callers can try sibling
// productions. Only digit shape is checked here; calendar and clock
// validation belong to the callers.
package scan

import "strconv"

// Digits matches exactly n ASCII digits and returns their numeric value.
func Digits(s string, n int) (int, string, bool) {
	if len(s) < n {
		return 0, s, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, s, false
		}
		v = v*10 + int(c-'0')
	}
	return v, s[n:], true
}

// Hyphen matches a single '-'.
func Hyphen(s string) (string, bool) {
	if len(s) > 0 && s[0] == '-' {
		return s[1:], true
	}
	return s, false
}

// Year4 matches exactly four digits with no sign.
func Year4(s string) (int, string, bool) {
	return Digits(s, 4)
}

// Year matches a four character year with an optional leading '-' and an
// optional mask of one or two trailing 'X' characters. The returned year
// is the first year of the masked span ("201X" yields 2010 with mask 1,
// "20XX" yields 2000 with mask 2). A negative zero year ("-0000", "-000X",
// "-00XX") fails the match.
func Year(s string) (year, mask int, rest string, ok bool) {
	rest, neg := Hyphen(s)
	var v int
	switch {
	case hasMask(rest, 2, 2):
		v, rest, _ = Digits(rest, 2)
		v, mask, rest = v*100, 2, rest[2:]
	case hasMask(rest, 3, 1):
		v, rest, _ = Digits(rest, 3)
		v, mask, rest = v*10, 1, rest[1:]
	default:
		if v, rest, ok = Digits(rest, 4); !ok {
			return 0, 0, s, false
		}
	}
	if neg {
		if v == 0 {
			return 0, 0, s, false
		}
		v = -v
	}
	return v, mask, rest, true
}

// hasMask reports whether s starts with nd digits followed by nx 'X's.
func hasMask(s string, nd, nx int) bool {
	if len(s) < nd+nx {
		return false
	}
	for i := 0; i < nd; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	for i := nd; i < nd+nx; i++ {
		if s[i] != 'X' {
			return false
		}
	}
	return true
}

// TwoDigits matches exactly two digits.
func TwoDigits(s string) (int, string, bool) {
	return Digits(s, 2)
}

// TwoDigitsOrMask matches either two digits or the mask "XX" in a month or
// day position.
func TwoDigitsOrMask(s string) (v int, masked bool, rest string, ok bool) {
	if len(s) >= 2 && s[0] == 'X' && s[1] == 'X' {
		return 0, true, s[2:], true
	}
	v, rest, ok = TwoDigits(s)
	return v, false, rest, ok
}

// Qualifier matches a single trailing qualification character.
func Qualifier(s string) (byte, string, bool) {
	if len(s) > 0 && (s[0] == '?' || s[0] == '~' || s[0] == '%') {
		return s[0], s[1:], true
	}
	return 0, s, false
}

// YDigits matches a letter-prefixed year: 'Y', an optional '-', then an
// unbounded run of at least five digits starting with a nonzero digit.
func YDigits(s string) (int64, string, bool) {
	if len(s) == 0 || s[0] != 'Y' {
		return 0, s, false
	}
	rest := s[1:]
	digits := rest
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	n := 0
	for n < len(digits) && digits[n] >= '0' && digits[n] <= '9' {
		n++
	}
	if n < 5 || digits[0] == '0' {
		return 0, s, false
	}
	end := len(rest) - len(digits) + n
	v, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return 0, s, false
	}
	return v, rest[end:], true
}

// YMD is an unvalidated complete date as written: four year digits and
// nonzero two digit month and day.
type YMD struct {
	Year, Month, Day int
}

// DateComplete matches dddd-dd-dd with nonzero month and day digits.
func DateComplete(s string) (YMD, string, bool) {
	var d YMD
	var ok bool
	rest := s
	if d.Year, rest, ok = Year4(rest); !ok {
		return YMD{}, s, false
	}
	if rest, ok = Hyphen(rest); !ok {
		return YMD{}, s, false
	}
	if d.Month, rest, ok = TwoDigits(rest); !ok || d.Month == 0 {
		return YMD{}, s, false
	}
	if rest, ok = Hyphen(rest); !ok {
		return YMD{}, s, false
	}
	if d.Day, rest, ok = TwoDigits(rest); !ok || d.Day == 0 {
		return YMD{}, s, false
	}
	return d, rest, true
}

// OffsetForm distinguishes how a UTC offset was written, which the
// formatter must reproduce.
type OffsetForm uint8

const (
	OffsetNone OffsetForm = iota
	OffsetUTC             // 'Z'
	OffsetHours           // ±HH
	OffsetHoursMinutes    // ±HH:MM
)

// Offset is an unvalidated UTC offset as written.
type Offset struct {
	Form     OffsetForm
	Negative bool
	Hours    int
	Minutes  int
}

// Time is an unvalidated time of day as written.
type Time struct {
	Hour, Minute, Second int
	Offset               Offset
}

// Clock matches HH:MM:SS with an optional trailing offset of 'Z', ±HH or
// ±HH:MM. Field ranges are not checked.
func Clock(s string) (Time, string, bool) {
	var t Time
	var ok bool
	rest := s
	if t.Hour, rest, ok = TwoDigits(rest); !ok {
		return Time{}, s, false
	}
	if len(rest) == 0 || rest[0] != ':' {
		return Time{}, s, false
	}
	if t.Minute, rest, ok = TwoDigits(rest[1:]); !ok {
		return Time{}, s, false
	}
	if len(rest) == 0 || rest[0] != ':' {
		return Time{}, s, false
	}
	if t.Second, rest, ok = TwoDigits(rest[1:]); !ok {
		return Time{}, s, false
	}
	t.Offset, rest = offset(rest)
	return t, rest, true
}

func offset(s string) (Offset, string) {
	if len(s) == 0 {
		return Offset{}, s
	}
	if s[0] == 'Z' {
		return Offset{Form: OffsetUTC}, s[1:]
	}
	if s[0] != '+' && s[0] != '-' {
		return Offset{}, s
	}
	neg := s[0] == '-'
	hh, rest, ok := TwoDigits(s[1:])
	if !ok {
		return Offset{}, s
	}
	if len(rest) > 0 && rest[0] == ':' {
		if mm, r2, ok := TwoDigits(rest[1:]); ok {
			return Offset{Form: OffsetHoursMinutes, Negative: neg, Hours: hh, Minutes: mm}, r2
		}
	}
	return Offset{Form: OffsetHours, Negative: neg, Hours: hh}, rest
}
