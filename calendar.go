// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear implements the proleptic Gregorian leap year rule: divisible
// by 4, but not by 100 unless also by 400. The rule extends unchanged to
// year zero and negative years.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return true
}

// IsValidMonth returns true for months 1 through 12.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if the month is not 1-12.
func DaysInMonth(year, month int) int {
	if !IsValidMonth(month) {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// IsValidDate returns true if year, month and day name a real day on the
// proleptic Gregorian calendar.
func IsValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}
