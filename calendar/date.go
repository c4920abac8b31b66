// Package calendar holds the civil date used throughout the loader.
//
// Date is a plain year/month/day triple rather than a time.Time so that an
// impossible value such as 2021-02-29 survives parsing. time.Date would
// silently normalize it to March 1, hiding the data-quality problem.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stay_loader/errs"
)

// Layout is the only accepted textual form.
const Layout = "2006-01-02"

// Date is a civil calendar date with no time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year/month/day without validating it.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime returns the date portion of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a YYYY-MM-DD string. February 29 is accepted in any year so
// callers can decide how to treat it; every other out-of-range day is a
// validation error.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, errs.Validationf("malformed date %q: want %s", s, Layout)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, errs.Validationf("malformed date %q: bad year", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Date{}, errs.Validationf("malformed date %q: bad month", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 {
		return Date{}, errs.Validationf("malformed date %q: bad day", s)
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	if d.IsLeapDay() {
		return d, nil
	}
	if day > DaysIn(d.Month, year) {
		return Date{}, errs.Validationf("malformed date %q: day out of range", s)
	}
	return d, nil
}

// MustParse is Parse for literals in tests and defaults.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysIn returns the number of days in month m of year.
func DaysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapDay reports whether d is February 29, valid or not.
func (d Date) IsLeapDay() bool {
	return d.Month == time.February && d.Day == 29
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	return d.Day <= DaysIn(d.Month, d.Year)
}

// Time returns midnight UTC of d. Only meaningful when d is Valid.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days. d must be Valid.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Quarter returns 1..4.
func (d Date) Quarter() int {
	return (int(d.Month)-1)/3 + 1
}

// QuarterLabel returns e.g. "Q3 2021".
func (d Date) QuarterLabel() string {
	return fmt.Sprintf("Q%d %d", d.Quarter(), d.Year)
}

// Weekday returns the day of the week. d must be Valid.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
