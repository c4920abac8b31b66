package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stay_loader/errs"
)

// NameEntry is one row of the name pool. First name and gender belong
// together; the last name is unrelated to them.
type NameEntry struct {
	First  string
	Last   string
	Gender string
}

// Name pool headers.
const (
	ColFirstName = "first name"
	ColLastName  = "last name"
)

// ReadNamePool loads a First Name, Last Name, Gender CSV. An empty pool is
// returned as-is; the synthesizer decides that it is unusable.
func ReadNamePool(path string) ([]NameEntry, error) {
	file, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := newCSV(file)
	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read name pool header: %w", err)
	}

	colIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{ColFirstName, ColLastName, ColGender} {
		if _, ok := colIdx[col]; !ok {
			return nil, errs.Configurationf("name pool %s is missing column %q", path, col)
		}
	}

	var pool []NameEntry
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read name pool line %d: %w", line, err)
		}
		e := NameEntry{
			First:  valAt(fields, colIdx, ColFirstName),
			Last:   valAt(fields, colIdx, ColLastName),
			Gender: valAt(fields, colIdx, ColGender),
		}
		if e.First == "" && e.Last == "" && e.Gender == "" {
			continue
		}
		pool = append(pool, e)
	}
	return pool, nil
}

// WriteNamePool writes pool as a First Name, Last Name, Gender CSV.
func WriteNamePool(path string, pool []NameEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create name pool: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write([]string{"First Name", "Last Name", "Gender"}); err != nil {
		file.Close()
		return fmt.Errorf("write name pool header: %w", err)
	}
	for _, e := range pool {
		if err := w.Write([]string{e.First, e.Last, e.Gender}); err != nil {
			file.Close()
			return fmt.Errorf("write name pool: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush name pool: %w", err)
	}
	return file.Close()
}
