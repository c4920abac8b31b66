package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"stay_loader/calendar"
	"stay_loader/errs"
)

const staysHeader = "Name,Age,Gender,Blood Type,Medical Condition,Date of Admission,Doctor,Hospital,Insurance Provider,Billing Amount,Room Number,Admission Type,Discharge Date,Medication,Test Results\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReader(t *testing.T) {
	content := "\ufeff" + staysHeader +
		"Bobby Jackson,30,Male,B-,Cancer,2024-01-31,Matthew Smith,Sons and Miller,Blue Cross,18856.281305978155,328,Urgent,2024-02-02,Paracetamol,Normal\n" +
		"\n" +
		`"O'Brien, Leslie",62,Female,A+,Obesity,2019-08-20,Samantha Davies,Kim Inc,Medicare,"$33,643.33",265,Emergency,2019-08-26,Ibuprofen,Inconclusive` + "\n"
	path := writeFile(t, "stays.csv", content)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if first.Row != 1 || first.Name != "Bobby Jackson" || first.Age != 30 || first.RoomNumber != 328 {
		t.Errorf("first = %+v", first)
	}
	if first.AdmissionDate != calendar.MustParse("2024-01-31") || first.DischargeDate != calendar.MustParse("2024-02-02") {
		t.Errorf("dates = %v / %v", first.AdmissionDate, first.DischargeDate)
	}
	if first.TestResults != "Normal" || first.Medication != "Paracetamol" {
		t.Errorf("first = %+v", first)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if second.Row != 2 {
		t.Errorf("blank line advanced row: Row = %d, want 2", second.Row)
	}
	if second.Name != "O'Brien, Leslie" {
		t.Errorf("name = %q", second.Name)
	}
	if second.BillingAmount != 33643.33 {
		t.Errorf("billing = %f, want 33643.33", second.BillingAmount)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next at end = %v, want io.EOF", err)
	}
	if r.RowNum() != 2 {
		t.Errorf("RowNum = %d, want 2", r.RowNum())
	}
}

func TestReaderMissingColumn(t *testing.T) {
	path := writeFile(t, "bad.csv", "Name,Age\nA,1\n")
	_, err := NewReader(path)
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader("/nonexistent/stays.csv")
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestReaderValidation(t *testing.T) {
	cases := map[string]string{
		"negative age":    "A,-3,Male,A+,Flu,2024-01-01,D,H,I,10,1,Urgent,2024-01-02,M,Normal\n",
		"bad date":        "A,3,Male,A+,Flu,2024-13-01,D,H,I,10,1,Urgent,2024-01-02,M,Normal\n",
		"bad amount":      "A,3,Male,A+,Flu,2024-01-01,D,H,I,ten,1,Urgent,2024-01-02,M,Normal\n",
		"bad room":        "A,3,Male,A+,Flu,2024-01-01,D,H,I,10,1a,Urgent,2024-01-02,M,Normal\n",
		"room overflow":   "A,3,Male,A+,Flu,2024-01-01,D,H,I,10,2147483648,Urgent,2024-01-02,M,Normal\n",
		"room wraps to 1": "A,3,Male,A+,Flu,2024-01-01,D,H,I,10,4294967297,Urgent,2024-01-02,M,Normal\n",
		"negative room":   "A,3,Male,A+,Flu,2024-01-01,D,H,I,10,-1,Urgent,2024-01-02,M,Normal\n",
		"NaN amount":      "A,3,Male,A+,Flu,2024-01-01,D,H,I,NaN,1,Urgent,2024-01-02,M,Normal\n",
		"Inf amount":      "A,3,Male,A+,Flu,2024-01-01,D,H,I,Inf,1,Urgent,2024-01-02,M,Normal\n",
		"amount too wide": "A,3,Male,A+,Flu,2024-01-01,D,H,I,\"$10,000,000,000.00\",1,Urgent,2024-01-02,M,Normal\n",
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadAll(writeFile(t, "stays.csv", staysHeader+row))
			if !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestReaderAmountBounds(t *testing.T) {
	row := "A,3,Male,A+,Flu,2024-01-01,D,H,I,\"$9,999,999,999.99\",2147483647,Urgent,2024-01-02,M,Normal\n"
	records, err := ReadAll(writeFile(t, "stays.csv", staysHeader+row))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if records[0].BillingAmount != MaxBillingAmount {
		t.Errorf("billing amount = %v, want %v", records[0].BillingAmount, MaxBillingAmount)
	}
	if records[0].RoomNumber != 2147483647 {
		t.Errorf("room number = %d, want 2147483647", records[0].RoomNumber)
	}
}

func TestReaderKeepsImpossibleLeapDay(t *testing.T) {
	row := "A,3,Male,A+,Flu,2021-02-29,D,H,I,10,1,Urgent,2021-03-02,M,Normal\n"
	records, err := ReadAll(writeFile(t, "stays.csv", staysHeader+row))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if records[0].AdmissionDate.Valid() {
		t.Error("2021-02-29 reported valid")
	}
}

func TestReadAllEmpty(t *testing.T) {
	_, err := ReadAll(writeFile(t, "stays.csv", staysHeader))
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestReadNamePool(t *testing.T) {
	path := writeFile(t, "names.csv", "First Name,Last Name,Gender\nAlice,Walker,Female\nBrian,Ng,Male\n,,\n")
	pool, err := ReadNamePool(path)
	if err != nil {
		t.Fatalf("ReadNamePool: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("pool size = %d, want 2", len(pool))
	}
	if pool[1] != (NameEntry{First: "Brian", Last: "Ng", Gender: "Male"}) {
		t.Errorf("pool[1] = %+v", pool[1])
	}
}

func TestReadNamePoolMissingColumn(t *testing.T) {
	path := writeFile(t, "names.csv", "First Name,Gender\nAlice,Female\n")
	if _, err := ReadNamePool(path); !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestWriteNamePool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.csv")
	want := []NameEntry{{First: "Ann", Last: "O'Lee", Gender: "Female"}, {First: "Bo", Last: "Ray, Jr", Gender: "Male"}}
	if err := WriteNamePool(path, want); err != nil {
		t.Fatalf("WriteNamePool: %v", err)
	}
	got, err := ReadNamePool(path)
	if err != nil {
		t.Fatalf("ReadNamePool: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("pool = %+v, want %+v", got, want)
	}
}
