// Package fact resolves enriched stays into hospital_stay rows keyed by
// the surrogate keys of the dimension set.
package fact

import (
	"context"
	"fmt"
	"math"

	"stay_loader/calendar"
	"stay_loader/db"
	"stay_loader/dimension"
	"stay_loader/errs"
	"stay_loader/synth"
)

// UniqueConstraint names the store constraint over all ten stay columns.
const UniqueConstraint = "hospital_stay_record_key"

// Stay is one row of the fact table.
type Stay struct {
	StayID        int32
	PatientID     int32
	DoctorID      int32
	HospitalID    int32
	ProviderID    int32
	TypeID        int32
	MedicationID  int32
	ResultID      int32
	AdmissionDate calendar.Date
	DischargeDate calendar.Date
	BillingCents  int64
}

// recordKey is every column of Stay except StayID.
type recordKey struct {
	PatientID     int32
	DoctorID      int32
	HospitalID    int32
	ProviderID    int32
	TypeID        int32
	MedicationID  int32
	ResultID      int32
	AdmissionDate calendar.Date
	DischargeDate calendar.Date
	BillingCents  int64
}

func (s Stay) key() recordKey {
	return recordKey{
		PatientID:     s.PatientID,
		DoctorID:      s.DoctorID,
		HospitalID:    s.HospitalID,
		ProviderID:    s.ProviderID,
		TypeID:        s.TypeID,
		MedicationID:  s.MedicationID,
		ResultID:      s.ResultID,
		AdmissionDate: s.AdmissionDate,
		DischargeDate: s.DischargeDate,
		BillingCents:  s.BillingCents,
	}
}

// BillingAmount returns the billed amount in currency units.
func (s Stay) BillingAmount() float64 {
	return float64(s.BillingCents) / 100
}

// Cents rounds amount to two decimal places, half away from zero.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Resolve builds one Stay per row, in row order. StayID is the row's
// 1-based position. A dimension value missing from dims is a referential
// integrity error; two rows equal in every stay column are a constraint
// violation.
func Resolve(rows []synth.Enriched, dims *dimension.Set) ([]Stay, error) {
	stays := make([]Stay, 0, len(rows))
	for i, e := range rows {
		s, err := resolveRow(int32(i+1), e, dims)
		if err != nil {
			return nil, err
		}
		stays = append(stays, s)
	}
	if err := CheckDuplicates(stays); err != nil {
		return nil, err
	}
	return stays, nil
}

func resolveRow(stayID int32, e synth.Enriched, dims *dimension.Set) (Stay, error) {
	s := Stay{
		StayID:        stayID,
		AdmissionDate: e.AdmissionDate,
		DischargeDate: e.DischargeDate,
		BillingCents:  Cents(e.BillingAmount),
	}

	var discard int32
	if err := lookup(dims.Dates, "date", e.AdmissionDate, stayID, &discard); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Dates, "date", e.DischargeDate, stayID, &discard); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Patients, "patient", dimension.PatientKeyOf(e), stayID, &s.PatientID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Doctors, "doctor", e.Doctor, stayID, &s.DoctorID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Hospitals, "hospital", dimension.HospitalKeyOf(e), stayID, &s.HospitalID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Insurers, "insurance", e.InsuranceProvider, stayID, &s.ProviderID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.AdmissionTypes, "admission_type", e.AdmissionType, stayID, &s.TypeID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.Medications, "medication", e.Medication, stayID, &s.MedicationID); err != nil {
		return Stay{}, err
	}
	if err := lookup(dims.TestResults, "test_results", e.TestResults, stayID, &s.ResultID); err != nil {
		return Stay{}, err
	}
	return s, nil
}

func lookup[K comparable](ix *dimension.Index[K], dim string, k K, stayID int32, dst *int32) error {
	id, ok := ix.Lookup(k)
	if !ok {
		return &errs.ReferentialIntegrityError{Dimension: dim, Key: fmt.Sprintf("%+v", k), Row: int(stayID)}
	}
	*dst = id
	return nil
}

// CheckDuplicates rejects two stays that agree on every column but the
// stay id, naming both.
func CheckDuplicates(stays []Stay) error {
	seen := make(map[recordKey]int32, len(stays))
	for _, s := range stays {
		k := s.key()
		if first, ok := seen[k]; ok {
			return &errs.ConstraintViolationError{
				Table:      "hospital_stay",
				Constraint: UniqueConstraint,
				Detail:     fmt.Sprintf("stay %d duplicates stay %d", s.StayID, first),
			}
		}
		seen[k] = s.StayID
	}
	return nil
}

// Params converts s to its COPY parameters.
func (s Stay) Params() db.InsertHospitalStaysParams {
	return db.InsertHospitalStaysParams{
		StayID:        s.StayID,
		PatientID:     s.PatientID,
		DoctorID:      s.DoctorID,
		HospitalID:    s.HospitalID,
		ProviderID:    s.ProviderID,
		TypeID:        s.TypeID,
		MedicationID:  s.MedicationID,
		ResultID:      s.ResultID,
		AdmissionDate: db.DateValue(s.AdmissionDate),
		DischargeDate: db.DateValue(s.DischargeDate),
		BillingAmount: db.CentsValue(s.BillingCents),
	}
}

// Write copies stays into hospital_stay. q is expected to run inside the
// build transaction, after the dimensions have been written.
func Write(ctx context.Context, q *db.Queries, stays []Stay) (int64, error) {
	params := make([]db.InsertHospitalStaysParams, len(stays))
	for i, s := range stays {
		params[i] = s.Params()
	}
	n, err := q.InsertHospitalStays(ctx, params)
	if err != nil {
		return 0, db.ClassifyError(fmt.Errorf("copy hospital_stay: %w", err))
	}
	return n, nil
}
