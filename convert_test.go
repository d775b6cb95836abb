// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edtf_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/edtf"
)

func TestNewDateTime(t *testing.T) {
	for _, tc := range []struct {
		when time.Time
		want string
	}{
		{time.Date(2010, 8, 12, 23, 24, 26, 0, time.UTC), "2010-08-12T23:24:26Z"},
		{time.Date(2010, 8, 12, 23, 24, 26, 0, time.FixedZone("IST", 5*3600+1800)), "2010-08-12T23:24:26+05:30"},
		{time.Date(2010, 8, 12, 23, 24, 26, 500, time.FixedZone("PDT", -7*3600)), "2010-08-12T23:24:26-07:00"},
	} {
		dt, err := edtf.NewDateTime(tc.when)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.when, err)
			continue
		}
		if got, want := dt.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for _, when := range []time.Time{
		time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(-1, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		if _, err := edtf.NewDateTime(when); !errors.Is(err, edtf.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", when, err, edtf.ErrOutOfRange)
		}
	}
}

func TestDateTimeTime(t *testing.T) {
	zone := time.FixedZone("test", 3600)
	for _, tc := range []struct {
		val  string
		loc  *time.Location
		want time.Time
	}{
		{"2019-07-15T16:47:03Z", nil, time.Date(2019, 7, 15, 16, 47, 3, 0, time.UTC)},
		{"2019-07-15T16:47:03", nil, time.Date(2019, 7, 15, 16, 47, 3, 0, time.UTC)},
		{"2019-07-15T16:47:03", zone, time.Date(2019, 7, 15, 16, 47, 3, 0, zone)},
		// An explicit offset wins over the supplied location.
		{"2019-07-15T16:47:03+05:30", zone, time.Date(2019, 7, 15, 11, 17, 3, 0, time.UTC)},
		{"2019-07-15T16:47:03-04", nil, time.Date(2019, 7, 15, 20, 47, 3, 0, time.UTC)},
		// A leap second rolls over to the next minute.
		{"2019-12-31T23:59:60Z", nil, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	} {
		dt, err := edtf.ParseDateTime(tc.val)
		if err != nil {
			t.Fatalf("failed: %v: %v", tc.val, err)
		}
		if got, want := dt.Time(tc.loc), tc.want; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	// A UTC date-time survives the round trip unchanged.
	dt, err := edtf.ParseDateTime("2019-07-15T16:47:03Z")
	if err != nil {
		t.Fatal(err)
	}
	back, err := edtf.NewDateTime(dt.Time(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back.String(), dt.String(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDate(t *testing.T) {
	dc, err := edtf.NewDateComplete(2020, 2, 29)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dc.CalendarDate(), datetime.NewCalendarDate(2020, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	back, err := edtf.DateCompleteFromCalendar(dc.CalendarDate())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back, dc; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarRange(t *testing.T) {
	for _, tc := range []struct {
		val      string
		from, to datetime.CalendarDate
	}{
		{"2020-08-12", datetime.NewCalendarDate(2020, 8, 12), datetime.NewCalendarDate(2020, 8, 12)},
		{"2020-08", datetime.NewCalendarDate(2020, 8, 1), datetime.NewCalendarDate(2020, 8, 31)},
		{"2020-08-XX", datetime.NewCalendarDate(2020, 8, 1), datetime.NewCalendarDate(2020, 8, 31)},
		{"2021-02-XX", datetime.NewCalendarDate(2021, 2, 1), datetime.NewCalendarDate(2021, 2, 28)},
		{"2019-XX", datetime.NewCalendarDate(2019, 1, 1), datetime.NewCalendarDate(2019, 12, 31)},
		{"2019-XX-XX", datetime.NewCalendarDate(2019, 1, 1), datetime.NewCalendarDate(2019, 12, 31)},
		{"2019", datetime.NewCalendarDate(2019, 1, 1), datetime.NewCalendarDate(2019, 12, 31)},
		{"201X", datetime.NewCalendarDate(2010, 1, 1), datetime.NewCalendarDate(2019, 12, 31)},
		{"19XX", datetime.NewCalendarDate(1900, 1, 1), datetime.NewCalendarDate(1999, 12, 31)},
	} {
		d, err := edtf.ParseDate(tc.val)
		if err != nil {
			t.Fatalf("failed: %v: %v", tc.val, err)
		}
		cdr, ok := d.CalendarRange()
		if !ok {
			t.Errorf("%v: no range", tc.val)
			continue
		}
		if got, want := cdr.From(), tc.from; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := cdr.To(), tc.to; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	d, err := edtf.ParseDate("2020-02-XX")
	if err != nil {
		t.Fatal(err)
	}
	cdr, ok := d.CalendarRange()
	if !ok {
		t.Fatal("no range")
	}
	days := 0
	for range cdr.Dates() {
		days++
	}
	if got, want := days, 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Seasons and negative years have no calendar range.
	for _, tc := range []string{"2019-21", "-0100", "-201X", "-2020-08-12"} {
		d, err := edtf.ParseDate(tc)
		if err != nil {
			t.Fatalf("failed: %v: %v", tc, err)
		}
		if _, ok := d.CalendarRange(); ok {
			t.Errorf("%v: unexpected range", tc)
		}
	}
}
