// Package dimension deduplicates the descriptive values of enriched stays
// into the eight star dimensions and assigns their surrogate keys.
package dimension

import (
	"context"
	"fmt"

	"stay_loader/calendar"
	"stay_loader/db"
	"stay_loader/errs"
	"stay_loader/synth"
)

// PatientKey is the natural key of the patient dimension.
type PatientKey struct {
	Name             string
	BirthDate        calendar.Date
	Gender           string
	BloodType        string
	MedicalCondition string
}

// HospitalKey is the natural key of the hospital dimension.
type HospitalKey struct {
	Name string
	Room int
}

func PatientKeyOf(e synth.Enriched) PatientKey {
	return PatientKey{
		Name:             e.Name,
		BirthDate:        e.BirthDate,
		Gender:           e.Gender,
		BloodType:        e.BloodType,
		MedicalCondition: e.MedicalCondition,
	}
}

func HospitalKeyOf(e synth.Enriched) HospitalKey {
	return HospitalKey{Name: e.Hospital, Room: e.RoomNumber}
}

// Set holds one index per dimension. The date index is only used for its
// ordering; dates are their own key in the store.
type Set struct {
	Dates          *Index[calendar.Date]
	Patients       *Index[PatientKey]
	Doctors        *Index[string]
	Hospitals      *Index[HospitalKey]
	Insurers       *Index[string]
	AdmissionTypes *Index[string]
	Medications    *Index[string]
	TestResults    *Index[string]
}

func NewSet() *Set {
	return &Set{
		Dates:          NewIndex[calendar.Date](),
		Patients:       NewIndex[PatientKey](),
		Doctors:        NewIndex[string](),
		Hospitals:      NewIndex[HospitalKey](),
		Insurers:       NewIndex[string](),
		AdmissionTypes: NewIndex[string](),
		Medications:    NewIndex[string](),
		TestResults:    NewIndex[string](),
	}
}

// Build indexes every dimension value of rows in row order.
func Build(rows []synth.Enriched) (*Set, error) {
	s := NewSet()
	for _, e := range rows {
		if err := s.Add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add indexes the dimension values of one row. A date that is not a real
// calendar day cannot be stored and fails with a validation error.
func (s *Set) Add(e synth.Enriched) error {
	dates := []struct {
		field string
		d     calendar.Date
	}{
		{"birth date", e.BirthDate},
		{"admission date", e.AdmissionDate},
		{"discharge date", e.DischargeDate},
	}
	for _, fd := range dates {
		if !fd.d.Valid() {
			return errs.Validationf("row %d: %s %s is not a calendar date", e.Row, fd.field, fd.d)
		}
	}
	for _, fd := range dates {
		s.Dates.Add(fd.d)
	}

	s.Patients.Add(PatientKeyOf(e))
	s.Doctors.Add(e.Doctor)
	s.Hospitals.Add(HospitalKeyOf(e))
	s.Insurers.Add(e.InsuranceProvider)
	s.AdmissionTypes.Add(e.AdmissionType)
	s.Medications.Add(e.Medication)
	s.TestResults.Add(e.TestResults)
	return nil
}

// Sizes returns the row count of each dimension table.
func (s *Set) Sizes() map[string]int {
	return map[string]int{
		"date":           s.Dates.Len(),
		"patient":        s.Patients.Len(),
		"doctor":         s.Doctors.Len(),
		"hospital":       s.Hospitals.Len(),
		"insurance":      s.Insurers.Len(),
		"admission_type": s.AdmissionTypes.Len(),
		"medication":     s.Medications.Len(),
		"test_results":   s.TestResults.Len(),
	}
}

// Write copies every dimension into the store, dates first so patient
// birth dates resolve. q is expected to run inside the build transaction.
func (s *Set) Write(ctx context.Context, q *db.Queries) error {
	steps := []struct {
		table string
		copy  func() (int64, error)
	}{
		{"date", func() (int64, error) { return q.InsertDates(ctx, s.dateParams()) }},
		{"patient", func() (int64, error) { return q.InsertPatients(ctx, s.patientParams()) }},
		{"doctor", func() (int64, error) {
			return q.InsertDoctors(ctx, mapKeys(s.Doctors, func(id int32, name string) db.InsertDoctorsParams {
				return db.InsertDoctorsParams{DoctorID: id, Name: name}
			}))
		}},
		{"hospital", func() (int64, error) {
			return q.InsertHospitals(ctx, mapKeys(s.Hospitals, func(id int32, k HospitalKey) db.InsertHospitalsParams {
				return db.InsertHospitalsParams{HospitalID: id, Name: k.Name, Room: int32(k.Room)}
			}))
		}},
		{"insurance", func() (int64, error) {
			return q.InsertInsurance(ctx, mapKeys(s.Insurers, func(id int32, name string) db.InsertInsuranceParams {
				return db.InsertInsuranceParams{ProviderID: id, Name: name}
			}))
		}},
		{"admission_type", func() (int64, error) {
			return q.InsertAdmissionTypes(ctx, mapKeys(s.AdmissionTypes, func(id int32, label string) db.InsertAdmissionTypesParams {
				return db.InsertAdmissionTypesParams{TypeID: id, Label: label}
			}))
		}},
		{"medication", func() (int64, error) {
			return q.InsertMedications(ctx, mapKeys(s.Medications, func(id int32, name string) db.InsertMedicationsParams {
				return db.InsertMedicationsParams{MedicationID: id, Name: name}
			}))
		}},
		{"test_results", func() (int64, error) {
			return q.InsertTestResults(ctx, mapKeys(s.TestResults, func(id int32, label string) db.InsertTestResultsParams {
				return db.InsertTestResultsParams{ResultID: id, Label: label}
			}))
		}},
	}

	for _, step := range steps {
		if _, err := step.copy(); err != nil {
			return db.ClassifyError(fmt.Errorf("copy %s: %w", step.table, err))
		}
	}
	return nil
}

func (s *Set) dateParams() []db.InsertDatesParams {
	return mapKeys(s.Dates, func(_ int32, d calendar.Date) db.InsertDatesParams {
		r := NewDateRow(d)
		return db.InsertDatesParams{
			DateID:       db.DateValue(d),
			Year:         int32(r.Year),
			Quarter:      int32(r.Quarter),
			Month:        int32(r.Month),
			Day:          int32(r.Day),
			MonthName:    r.MonthName,
			QuarterLabel: r.QuarterLabel,
			WeekdayName:  r.WeekdayName,
		}
	})
}

func (s *Set) patientParams() []db.InsertPatientsParams {
	return mapKeys(s.Patients, func(id int32, k PatientKey) db.InsertPatientsParams {
		return db.InsertPatientsParams{
			PatientID:        id,
			Name:             k.Name,
			BirthDate:        db.DateValue(k.BirthDate),
			Gender:           k.Gender,
			BloodType:        k.BloodType,
			MedicalCondition: k.MedicalCondition,
		}
	})
}

func mapKeys[K comparable, P any](ix *Index[K], fn func(id int32, k K) P) []P {
	out := make([]P, 0, ix.Len())
	for i, k := range ix.Keys() {
		out = append(out, fn(int32(i+1), k))
	}
	return out
}
