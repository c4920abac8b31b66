package dimension

import "stay_loader/calendar"

// DateRow is a row of the date dimension.
type DateRow struct {
	Date         calendar.Date
	Year         int
	Quarter      int
	Month        int
	Day          int
	MonthName    string
	QuarterLabel string
	WeekdayName  string
}

// NewDateRow derives the calendar attributes of d, which must be valid.
func NewDateRow(d calendar.Date) DateRow {
	return DateRow{
		Date:         d,
		Year:         d.Year,
		Quarter:      d.Quarter(),
		Month:        int(d.Month),
		Day:          d.Day,
		MonthName:    d.Month.String(),
		QuarterLabel: d.QuarterLabel(),
		WeekdayName:  d.Weekday().String(),
	}
}

// DateRows returns the date dimension in first-appearance order.
func (s *Set) DateRows() []DateRow {
	rows := make([]DateRow, 0, s.Dates.Len())
	for _, d := range s.Dates.Keys() {
		rows = append(rows, NewDateRow(d))
	}
	return rows
}
