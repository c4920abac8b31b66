package calendar

import (
	"errors"
	"testing"
	"time"

	"stay_loader/errs"
)

func TestParse(t *testing.T) {
	d, err := Parse("2021-02-28")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != New(2021, time.February, 28) {
		t.Errorf("Parse = %v, want 2021-02-28", d)
	}
	if d.String() != "2021-02-28" {
		t.Errorf("String = %q", d.String())
	}
}

func TestParseKeepsImpossibleLeapDay(t *testing.T) {
	d, err := Parse("2021-02-29")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Valid() {
		t.Error("2021-02-29 reported valid")
	}
	if !d.IsLeapDay() {
		t.Error("2021-02-29 not reported as leap day")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2021/02/03", "21-02-03", "2021-13-01", "2021-04-31", "2021-02-30", "abcd-ef-gh"} {
		if _, err := Parse(s); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("Parse(%q) err = %v, want validation error", s, err)
		}
	}
}

func TestIsLeap(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2024: true, 2023: false, 2100: false, 1996: true}
	for year, want := range cases {
		if got := IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDerivedFields(t *testing.T) {
	d := MustParse("2021-08-14")
	if d.Quarter() != 3 {
		t.Errorf("Quarter = %d, want 3", d.Quarter())
	}
	if d.QuarterLabel() != "Q3 2021" {
		t.Errorf("QuarterLabel = %q, want %q", d.QuarterLabel(), "Q3 2021")
	}
	if d.Weekday() != time.Saturday {
		t.Errorf("Weekday = %v, want Saturday", d.Weekday())
	}
}

func TestAddDaysAcrossLeapDay(t *testing.T) {
	got := MustParse("2020-03-01").AddDays(-1)
	if got != MustParse("2020-02-29") {
		t.Errorf("AddDays = %v, want 2020-02-29", got)
	}
	got = MustParse("2021-03-01").AddDays(-364)
	if got != MustParse("2020-03-02") {
		t.Errorf("AddDays = %v, want 2020-03-02", got)
	}
}

func TestBefore(t *testing.T) {
	a, b := MustParse("2020-12-31"), MustParse("2021-01-01")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before ordering wrong")
	}
}
