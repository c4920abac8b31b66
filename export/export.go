// Package export writes the de-identified stay dataset for analysts, as
// CSV or Parquet depending on the output file extension.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"stay_loader/fact"
	"stay_loader/synth"
)

// Header is the CSV header. Age is dropped and Date of Birth follows Name.
var Header = []string{
	"Name", "Date of Birth", "Gender", "Blood Type", "Medical Condition", "Date of Admission",
	"Doctor", "Hospital", "Insurance Provider", "Billing Amount", "Room Number",
	"Admission Type", "Discharge Date", "Medication", "Test Results",
}

// Row is one exported stay. Dates use YYYY-MM-DD.
type Row struct {
	Name              string  `parquet:"name"`
	DateOfBirth       string  `parquet:"date_of_birth"`
	Gender            string  `parquet:"gender"`
	BloodType         string  `parquet:"blood_type"`
	MedicalCondition  string  `parquet:"medical_condition"`
	DateOfAdmission   string  `parquet:"date_of_admission"`
	Doctor            string  `parquet:"doctor"`
	Hospital          string  `parquet:"hospital"`
	InsuranceProvider string  `parquet:"insurance_provider"`
	BillingAmount     float64 `parquet:"billing_amount"`
	RoomNumber        int32   `parquet:"room_number"`
	AdmissionType     string  `parquet:"admission_type"`
	DischargeDate     string  `parquet:"discharge_date"`
	Medication        string  `parquet:"medication"`
	TestResults       string  `parquet:"test_results"`
}

// RowOf flattens an enriched stay. The billing amount is rounded to cents
// the same way the fact table stores it.
func RowOf(e synth.Enriched) Row {
	return Row{
		Name:              e.Name,
		DateOfBirth:       e.BirthDate.String(),
		Gender:            e.Gender,
		BloodType:         e.BloodType,
		MedicalCondition:  e.MedicalCondition,
		DateOfAdmission:   e.AdmissionDate.String(),
		Doctor:            e.Doctor,
		Hospital:          e.Hospital,
		InsuranceProvider: e.InsuranceProvider,
		BillingAmount:     float64(fact.Cents(e.BillingAmount)) / 100,
		RoomNumber:        int32(e.RoomNumber),
		AdmissionType:     e.AdmissionType,
		DischargeDate:     e.DischargeDate.String(),
		Medication:        e.Medication,
		TestResults:       e.TestResults,
	}
}

// batchSize is the number of rows handed to a writer per call.
const batchSize = 10_000

// Writer is implemented by the CSV and Parquet writers.
type Writer interface {
	Write(rows []Row) (int, error)
	Close() error
	Count() int
}

// Create opens a writer for path: Parquet for a .parquet extension,
// CSV otherwise.
func Create(path string) (Writer, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return NewParquetWriter(path, DefaultRowGroupRows)
	}
	return NewCSVWriter(path)
}

// WriteAll exports rows to path and returns the number of rows written.
func WriteAll(path string, rows []synth.Enriched) (int, error) {
	w, err := Create(path)
	if err != nil {
		return 0, err
	}

	buf := make([]Row, 0, min(batchSize, len(rows)))
	for i, e := range rows {
		buf = append(buf, RowOf(e))
		if len(buf) == batchSize || i == len(rows)-1 {
			if _, err := w.Write(buf); err != nil {
				w.Close()
				return 0, fmt.Errorf("export %s: %w", path, err)
			}
			buf = buf[:0]
		}
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("export %s: %w", path, err)
	}
	return w.Count(), nil
}
