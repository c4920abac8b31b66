package db

import (
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"

	"stay_loader/calendar"
)

// DateValue converts a valid civil date to a DATE parameter.
func DateValue(d calendar.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

// CalendarDate converts a DATE column back to a civil date.
func CalendarDate(d pgtype.Date) calendar.Date {
	return calendar.FromTime(d.Time)
}

// CentsValue converts an amount in cents to a NUMERIC(·,2) parameter.
func CentsValue(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}
