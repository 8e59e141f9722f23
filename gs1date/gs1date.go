/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1date validates and converts the 6 digit YYMMDD dates carried by
// GS1 Application Identifiers such as (11) production date and (17) expiration
// date.
package gs1date

import (
	"github.com/pkg/errors"
	"time"
)

// Format selects how the day field is interpreted.
type Format int

const (
	// Strict requires DD to be a real day of the month.
	Strict = Format(iota)
	// Lenient additionally accepts DD == "00", meaning the last day of the month.
	Lenient
)

func (f Format) String() string {
	switch f {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return "unknown date format"
}

// Length is the number of characters in a GS1 date.
const Length = 6

// Valid returns true if s is a GS1 date in the given format, resolving its
// century relative to the current time.
func Valid(f Format, s string) bool {
	_, err := Parse(f, s, time.Now())
	return err == nil
}

// Parse converts a YYMMDD string to midnight UTC of the date it represents.
//
// The century is resolved against now using ResolveYear. In the Lenient
// format, a day of "00" yields the last day of the month, accounting for
// leap years.
func Parse(f Format, s string, now time.Time) (time.Time, error) {
	if len(s) != Length {
		return time.Time{}, errors.Errorf("dates must have %d digits, "+
			"but %q has %d characters", Length, s, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, errors.Errorf("dates must only "+
				"contain digits 0-9, but %q has %q at %d", s, s[i], i)
		}
	}

	yy := twoDigits(s[0:2])
	month := twoDigits(s[2:4])
	day := twoDigits(s[4:6])

	if month < 1 || month > 12 {
		return time.Time{}, errors.Errorf("month must be in [1,12], "+
			"but %q has month %d", s, month)
	}

	year := ResolveYear(yy, now)
	last := DaysIn(year, time.Month(month))
	switch {
	case day == 0 && f == Lenient:
		day = last
	case day == 0:
		return time.Time{}, errors.Errorf("day must be in [1,%d], but %q "+
			"has day 0 (only permitted in the %s format)", last, s, Lenient)
	case day > last:
		return time.Time{}, errors.Errorf("day must be in [1,%d] for "+
			"%04d-%02d, but %q has day %d", last, year, month, s, day)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ResolveYear expands a 2 digit year to 4 digits by choosing the century that
// places it closest to the year of now, per the GS1 General Specifications:
// if yy is 51 or more years ahead of now's 2 digit year, it belongs to the
// previous century; if it's 50 or more years behind, it belongs to the next.
func ResolveYear(yy int, now time.Time) int {
	current := now.Year() % 100
	century := now.Year() - current

	switch diff := yy - current; {
	case diff >= 51:
		return century - 100 + yy
	case diff <= -50:
		return century + 100 + yy
	}
	return century + yy
}

// DaysIn returns the number of days in the month of the given year.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
