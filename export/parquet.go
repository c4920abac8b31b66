package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// DefaultRowGroupRows closes a row group every five export batches.
const DefaultRowGroupRows = 5 * batchSize

// ParquetWriter writes Row records to a zstd-compressed Parquet file,
// cutting a new row group every rowGroupRows rows.
type ParquetWriter struct {
	file         *os.File
	writer       *parquet.GenericWriter[Row]
	rowGroupRows int
	pending      int // rows in the open row group
	groups       int
	count        int
}

func NewParquetWriter(filename string, rowGroupRows int) (*ParquetWriter, error) {
	if rowGroupRows < 1 {
		rowGroupRows = DefaultRowGroupRows
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[Row](file,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedDefault}),
		parquet.PageBufferSize(8*1024),
		parquet.DataPageStatistics(true),
		parquet.CreatedBy("stay_loader", "1.0", ""),
	)

	return &ParquetWriter{
		file:         file,
		writer:       writer,
		rowGroupRows: rowGroupRows,
	}, nil
}

// Write appends rows, flushing a row group each time one fills up.
func (w *ParquetWriter) Write(rows []Row) (int, error) {
	written := 0
	for len(rows) > 0 {
		chunk := rows[:min(len(rows), w.rowGroupRows-w.pending)]
		n, err := w.writer.Write(chunk)
		written += n
		w.count += n
		w.pending += n
		if err != nil {
			return written, fmt.Errorf("write parquet rows: %w", err)
		}
		if w.pending == w.rowGroupRows {
			if err := w.flush(); err != nil {
				return written, err
			}
		}
		rows = rows[len(chunk):]
	}
	return written, nil
}

func (w *ParquetWriter) flush() error {
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flush row group %d: %w", w.groups+1, err)
	}
	w.groups++
	w.pending = 0
	return nil
}

// Close flushes the final partial row group and closes the file.
func (w *ParquetWriter) Close() error {
	if w.pending > 0 {
		if err := w.flush(); err != nil {
			w.file.Close()
			return err
		}
	}
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return w.file.Close()
}

func (w *ParquetWriter) Count() int {
	return w.count
}

// RowGroups returns the number of row groups flushed so far.
func (w *ParquetWriter) RowGroups() int {
	return w.groups
}
