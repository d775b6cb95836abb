// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package level0_test

import (
	"errors"
	"testing"

	"cloudeng.io/edtf"
	"cloudeng.io/edtf/level0"
)

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		val              string
		year, month, day int
	}{
		{"2019", 2019, 0, 0},
		{"2019-07", 2019, 7, 0},
		{"2019-07-05", 2019, 7, 5},
		{"0000", 0, 0, 0},
		{"9999-12-31", 9999, 12, 31},
		{"2020-02-29", 2020, 2, 29},
	} {
		d, err := level0.ParseDate(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := d.Year(), tc.year; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Month(), tc.month; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Day(), tc.day; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestNewDate(t *testing.T) {
	d, err := level0.NewDate(1985, 4, 0)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := d.String(), "1985-04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct{ year, month, day int }{
		{-1, 0, 0},
		{10000, 0, 0},
		{2019, 13, 0},
		{2019, 0, 5},
		{2019, 2, 30},
		{2021, 2, 29},
	} {
		if _, err := level0.NewDate(tc.year, tc.month, tc.day); !errors.Is(err, edtf.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", tc, err, edtf.ErrOutOfRange)
		}
	}
}

func TestParse(t *testing.T) {
	v, err := level0.Parse("2019-07-05")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := v.Kind(), level0.KindDate; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if d, ok := v.Date(); !ok || d.Year() != 2019 {
		t.Errorf("got %v, %v, want a date in 2019", d, ok)
	}

	v, err = level0.Parse("1964-06-02/2008-08-01")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := v.Kind(), level0.KindInterval; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	from, to, ok := v.Interval()
	if !ok {
		t.Fatal("not an interval")
	}
	if got, want := from.String(), "1964-06-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := to.String(), "2008-08-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Interval sides may differ in precision.
	if v, err = level0.Parse("1964/2008-08"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := v.String(), "1964/2008-08"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	v, err = level0.Parse("2019-07-15T16:47:03Z")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := v.Kind(), level0.KindDateTime; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	dt, ok := v.DateTime()
	if !ok {
		t.Fatal("not a date-time")
	}
	if got, want := dt.String(), "2019-07-15T16:47:03Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tc := range []string{
		"2019",
		"2019-07",
		"2019-07-05",
		"1964-06-02/2008-08-01",
		"0000/9999",
		"2019-07-15T16:47:03",
		"2019-07-15T16:47:03Z",
		"2019-07-15T16:47:03-08:30",
	} {
		v, err := level0.Parse(tc)
		if err != nil {
			t.Errorf("failed: %v: %v", tc, err)
			continue
		}
		if got, want := v.String(), tc; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	// The level 1 extensions are all invalid here.
	for _, tc := range []string{
		"",
		"19",
		"2019-7",
		"2019-07-5",
		"-0001",
		"-2019-07-05",
		"201X",
		"20XX",
		"2019-XX",
		"2019-07-XX",
		"2019-XX-XX",
		"2019?",
		"2019~",
		"2019%",
		"2019-07-05?",
		"Y10000",
		"Y170000002",
		"../1985",
		"1985/..",
		"1985/",
		"/1985",
		"2019/2020/2021",
		"2019-07-05x",
	} {
		if _, err := level0.Parse(tc); !errors.Is(err, edtf.ErrInvalid) {
			t.Errorf("%q: got %v, want %v", tc, err, edtf.ErrInvalid)
		}
	}

	for _, tc := range []string{
		"2019-00",
		"2019-13",
		"2019-21",
		"2019-07-00",
		"2019-02-29",
		"2019-04-31",
		"2019-13/2020",
		"2019/2020-00",
		"2019-07-15T24:00:00",
	} {
		if _, err := level0.Parse(tc); !errors.Is(err, edtf.ErrOutOfRange) {
			t.Errorf("%q: got %v, want %v", tc, err, edtf.ErrOutOfRange)
		}
	}
}
