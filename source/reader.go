package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"stay_loader/calendar"
	"stay_loader/errs"
)

// MaxBillingAmount is the largest magnitude a NUMERIC(12,2) column holds.
const MaxBillingAmount = 9_999_999_999.99

// Column headers of the partially cleaned stay dataset. Lookup is
// case-insensitive on trimmed headers.
const (
	ColName              = "name"
	ColAge               = "age"
	ColGender            = "gender"
	ColBloodType         = "blood type"
	ColMedicalCondition  = "medical condition"
	ColAdmissionDate     = "date of admission"
	ColDoctor            = "doctor"
	ColHospital          = "hospital"
	ColInsuranceProvider = "insurance provider"
	ColBillingAmount     = "billing amount"
	ColRoomNumber        = "room number"
	ColAdmissionType     = "admission type"
	ColDischargeDate     = "discharge date"
	ColMedication        = "medication"
	ColTestResults       = "test results"
)

var requiredCols = []string{
	ColName, ColAge, ColGender, ColBloodType, ColMedicalCondition, ColAdmissionDate,
	ColDoctor, ColHospital, ColInsuranceProvider, ColBillingAmount, ColRoomNumber,
	ColAdmissionType, ColDischargeDate, ColMedication, ColTestResults,
}

// Record is one hospital stay as read from the input file.
type Record struct {
	Row               int // 1-based position among data rows
	Name              string
	Age               int
	Gender            string
	BloodType         string
	MedicalCondition  string
	AdmissionDate     calendar.Date
	Doctor            string
	Hospital          string
	InsuranceProvider string
	BillingAmount     float64
	RoomNumber        int
	AdmissionType     string
	DischargeDate     calendar.Date
	Medication        string
	TestResults       string
}

// Reader streams stay records from a CSV file one row at a time.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	colIdx map[string]int // lowercase header → column index
	lineNo int64
	row    int
}

// NewReader opens path and reads its header row. A missing file or a
// missing required column is a configuration error.
func NewReader(path string) (*Reader, error) {
	file, err := openInput(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		file:   file,
		csv:    newCSV(file),
		colIdx: make(map[string]int),
	}

	if err := r.readHeader(path); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Configurationf("input file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, nil
}

func newCSV(file *os.File) *csv.Reader {
	bufReader := bufio.NewReaderSize(file, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

func (r *Reader) readHeader(path string) error {
	headers, err := r.csv.Read()
	if err == io.EOF {
		return errs.Configurationf("input file %s is empty", path)
	}
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}
	r.lineNo++

	for i, h := range headers {
		r.colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, col := range requiredCols {
		if _, ok := r.colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errs.Configurationf("input file %s is missing columns: %s", path, strings.Join(missing, ", "))
	}
	return nil
}

// Next returns the next record, or io.EOF when the file is exhausted.
// Blank lines are skipped and do not advance the row position.
func (r *Reader) Next() (Record, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			return Record{}, err
		}
		r.lineNo++

		if len(fields) == 0 || (len(fields) == 1 && strings.TrimSpace(fields[0]) == "") {
			continue
		}

		r.row++
		rec, err := r.parse(fields)
		if err != nil {
			return Record{}, fmt.Errorf("row %d (line %d): %w", r.row, r.lineNo, err)
		}
		return rec, nil
	}
}

func (r *Reader) parse(fields []string) (Record, error) {
	rec := Record{
		Row:               r.row,
		Name:              valAt(fields, r.colIdx, ColName),
		Gender:            valAt(fields, r.colIdx, ColGender),
		BloodType:         valAt(fields, r.colIdx, ColBloodType),
		MedicalCondition:  valAt(fields, r.colIdx, ColMedicalCondition),
		Doctor:            valAt(fields, r.colIdx, ColDoctor),
		Hospital:          valAt(fields, r.colIdx, ColHospital),
		InsuranceProvider: valAt(fields, r.colIdx, ColInsuranceProvider),
		AdmissionType:     valAt(fields, r.colIdx, ColAdmissionType),
		Medication:        valAt(fields, r.colIdx, ColMedication),
		TestResults:       valAt(fields, r.colIdx, ColTestResults),
	}

	var err error
	if rec.Age, err = parseInt(valAt(fields, r.colIdx, ColAge), "age"); err != nil {
		return Record{}, err
	}
	if rec.Age < 0 {
		return Record{}, errs.Validationf("age %d is negative", rec.Age)
	}
	if rec.RoomNumber, err = parseInt(valAt(fields, r.colIdx, ColRoomNumber), "room number"); err != nil {
		return Record{}, err
	}
	if rec.RoomNumber < 0 || rec.RoomNumber > math.MaxInt32 {
		return Record{}, errs.Validationf("room number %d is out of range", rec.RoomNumber)
	}
	if rec.BillingAmount, err = parseAmount(valAt(fields, r.colIdx, ColBillingAmount)); err != nil {
		return Record{}, err
	}
	if rec.AdmissionDate, err = calendar.Parse(valAt(fields, r.colIdx, ColAdmissionDate)); err != nil {
		return Record{}, fmt.Errorf("admission date: %w", err)
	}
	if rec.DischargeDate, err = calendar.Parse(valAt(fields, r.colIdx, ColDischargeDate)); err != nil {
		return Record{}, fmt.Errorf("discharge date: %w", err)
	}
	return rec, nil
}

// RowNum returns the number of data rows returned so far.
func (r *Reader) RowNum() int {
	return r.row
}

func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadAll loads every record of path in file order.
func ReadAll(path string) ([]Record, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, errs.Configurationf("input file %s has no data rows", path)
	}
	return records, nil
}

func valAt(row []string, idx map[string]int, col string) string {
	if i, ok := idx[col]; ok && i < len(row) {
		return strings.ToValidUTF8(strings.TrimSpace(row[i]), "�")
	}
	return ""
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some exports write integral columns as floats ("45.0").
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, errs.Validationf("%s %q is not an integer", field, s)
		}
		n = int(f)
	}
	return n, nil
}

func parseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errs.Validationf("billing amount %q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(math.Round(f*100)/100) > MaxBillingAmount {
		return 0, errs.Validationf("billing amount %q is out of range", s)
	}
	return f, nil
}
