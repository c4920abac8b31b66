package dimension

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay_loader/calendar"
	"stay_loader/errs"
	"stay_loader/source"
	"stay_loader/synth"
)

func stay(row int, name, doctor, admit, discharge, birth string) synth.Enriched {
	return synth.Enriched{
		Record: source.Record{
			Row:               row,
			Name:              name,
			Gender:            "Female",
			BloodType:         "A+",
			MedicalCondition:  "Asthma",
			AdmissionDate:     calendar.MustParse(admit),
			Doctor:            doctor,
			Hospital:          "Edward Hospital",
			InsuranceProvider: "Medicare",
			BillingAmount:     100,
			RoomNumber:        101,
			AdmissionType:     "Urgent",
			DischargeDate:     calendar.MustParse(discharge),
			Medication:        "Aspirin",
			TestResults:       "Normal",
		},
		BirthDate: calendar.MustParse(birth),
	}
}

func TestIndex(t *testing.T) {
	ix := NewIndex[string]()
	assert.Equal(t, int32(1), ix.Add("b"))
	assert.Equal(t, int32(2), ix.Add("a"))
	assert.Equal(t, int32(1), ix.Add("b"))
	assert.Equal(t, int32(3), ix.Add("c"))

	assert.Equal(t, []string{"b", "a", "c"}, ix.Keys())
	assert.Equal(t, 3, ix.Len())

	id, ok := ix.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, int32(2), id)
	_, ok = ix.Lookup("z")
	assert.False(t, ok)
}

func TestBuild_Deduplicates(t *testing.T) {
	rows := []synth.Enriched{
		stay(1, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04"),
		stay(2, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04"),
		stay(3, "Bob Ray", "Dr. Two", "2024-02-02", "2024-02-10", "1975-11-30"),
	}
	rows[2].Hospital = "Palos Hospital"

	s, err := Build(rows)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"date":           5,
		"patient":        2,
		"doctor":         2,
		"hospital":       2,
		"insurance":      1,
		"admission_type": 1,
		"medication":     1,
		"test_results":   1,
	}, s.Sizes())

	id, ok := s.Patients.Lookup(PatientKeyOf(rows[1]))
	require.True(t, ok)
	assert.Equal(t, int32(1), id)

	id, ok = s.Hospitals.Lookup(HospitalKey{Name: "Palos Hospital", Room: 101})
	require.True(t, ok)
	assert.Equal(t, int32(2), id)
}

func TestBuild_HospitalKeyIncludesRoom(t *testing.T) {
	a := stay(1, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04")
	b := a
	b.Row, b.RoomNumber = 2, 102

	s, err := Build([]synth.Enriched{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Hospitals.Len())
}

func TestBuild_DateUnion(t *testing.T) {
	rows := []synth.Enriched{
		stay(1, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04"),
		stay(2, "Bob Ray", "Dr. Two", "2024-02-02", "2024-02-29", "2024-01-31"),
	}
	s, err := Build(rows)
	require.NoError(t, err)

	want := map[calendar.Date]bool{}
	for _, r := range rows {
		want[r.BirthDate] = true
		want[r.AdmissionDate] = true
		want[r.DischargeDate] = true
	}
	got := map[calendar.Date]bool{}
	for _, d := range s.Dates.Keys() {
		assert.False(t, got[d], "duplicate date %s", d)
		got[d] = true
	}
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"1980-05-04", "2024-01-31", "2024-02-02", "2024-02-29"}, dateStrings(s.Dates.Keys()))
}

func dateStrings(ds []calendar.Date) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func TestBuild_InvalidDate(t *testing.T) {
	row := stay(4, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04")
	row.AdmissionDate = calendar.New(2021, time.February, 29)

	_, err := Build([]synth.Enriched{row})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), "2021-02-29")
}

func TestBuild_Stable(t *testing.T) {
	rows := []synth.Enriched{
		stay(1, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04"),
		stay(2, "Bob Ray", "Dr. Two", "2023-03-02", "2023-03-09", "1975-11-30"),
		stay(3, "Cy Dow", "Dr. One", "2022-08-14", "2022-08-15", "1999-12-31"),
	}
	a, err := Build(rows)
	require.NoError(t, err)
	b, err := Build(rows)
	require.NoError(t, err)
	assert.Equal(t, a.Patients.Keys(), b.Patients.Keys())
	assert.Equal(t, a.Dates.Keys(), b.Dates.Keys())
	assert.Equal(t, a.Doctors.Keys(), b.Doctors.Keys())
}

func TestNewDateRow(t *testing.T) {
	tests := []struct {
		date string
		want DateRow
	}{
		{"2021-07-04", DateRow{Year: 2021, Quarter: 3, Month: 7, Day: 4, MonthName: "July", QuarterLabel: "Q3 2021", WeekdayName: "Sunday"}},
		{"2024-02-29", DateRow{Year: 2024, Quarter: 1, Month: 2, Day: 29, MonthName: "February", QuarterLabel: "Q1 2024", WeekdayName: "Thursday"}},
		{"1999-12-31", DateRow{Year: 1999, Quarter: 4, Month: 12, Day: 31, MonthName: "December", QuarterLabel: "Q4 1999", WeekdayName: "Friday"}},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d := calendar.MustParse(tt.date)
			tt.want.Date = d
			assert.Equal(t, tt.want, NewDateRow(d))
		})
	}
}

func TestDateRows(t *testing.T) {
	s, err := Build([]synth.Enriched{stay(1, "Ann Lee", "Dr. One", "2024-01-31", "2024-02-02", "1980-05-04")})
	require.NoError(t, err)
	rows := s.DateRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Q2 1980", rows[0].QuarterLabel)
	assert.Equal(t, "Wednesday", rows[1].WeekdayName)
}
