package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVWriter writes Row records with Header as the first line.
type CSVWriter struct {
	file   *os.File
	buf    *bufio.Writer
	csv    *csv.Writer
	count  int
	header bool
}

func NewCSVWriter(filename string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create csv file: %w", err)
	}
	buf := bufio.NewWriterSize(file, 256*1024)
	return &CSVWriter{file: file, buf: buf, csv: csv.NewWriter(buf)}, nil
}

func (w *CSVWriter) Write(rows []Row) (int, error) {
	if !w.header {
		if err := w.csv.Write(Header); err != nil {
			return 0, fmt.Errorf("write csv header: %w", err)
		}
		w.header = true
	}
	for i, r := range rows {
		if err := w.csv.Write(r.fields()); err != nil {
			return i, fmt.Errorf("write csv row: %w", err)
		}
		w.count++
	}
	return len(rows), nil
}

func (r Row) fields() []string {
	return []string{
		r.Name,
		r.DateOfBirth,
		r.Gender,
		r.BloodType,
		r.MedicalCondition,
		r.DateOfAdmission,
		r.Doctor,
		r.Hospital,
		r.InsuranceProvider,
		strconv.FormatFloat(r.BillingAmount, 'f', 2, 64),
		strconv.Itoa(int(r.RoomNumber)),
		r.AdmissionType,
		r.DischargeDate,
		r.Medication,
		r.TestResults,
	}
}

// Close writes the header if nothing was written, flushes and closes the
// file.
func (w *CSVWriter) Close() error {
	if !w.header {
		if err := w.csv.Write(Header); err != nil {
			w.file.Close()
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return w.file.Close()
}

func (w *CSVWriter) Count() int {
	return w.count
}
