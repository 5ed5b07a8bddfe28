package rowlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// CSVLog is a Log backed by a single CSV file with a header row. The file is
// only ever appended to; rewriting history is not part of the contract.
type CSVLog struct {
	path string
}

// OpenCSV opens (or prepares to create) a CSV row log at path. The file is
// created lazily on the first append so a fresh dataset reads as empty.
func OpenCSV(path string) (*CSVLog, error) {
	if path == "" {
		return nil, errors.New("rowlog: csv path is required")
	}
	return &CSVLog{path: path}, nil
}

// AppendRow appends one row, writing the header first if the file is new.
// The write is flushed and synced before returning so an acknowledged row
// is durable.
func (l *CSVLog) AppendRow(row []string) error {
	if len(row) != len(Columns) {
		return fmt.Errorf("rowlog: row has %d fields, want %d", len(row), len(Columns))
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Columns); err != nil {
			return err
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

// ReadAllRows reads every data row in file order. A missing file is an empty
// log; a present file must carry the expected header.
func (l *CSVLog) ReadAllRows() ([][]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Columns)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rowlog: read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rowlog: read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Close is a no-op; the file is opened per operation.
func (l *CSVLog) Close() error {
	return nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("rowlog: header has %d columns, want %d", len(header), len(Columns))
	}
	for i, col := range Columns {
		if header[i] != col {
			return fmt.Errorf("rowlog: header column %d is %q, want %q", i, header[i], col)
		}
	}
	return nil
}
