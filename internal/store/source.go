package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"holocron/internal/domain"
)

// ErrNoHeader is returned when a CSV file has no header row.
var ErrNoHeader = errors.New("csv has no header row")

const utf8BOM = "\ufeff"

// FileSource reads input files relative to a data directory.
type FileSource struct {
	dir string
}

// NewFileSource returns a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// CSVRecords reads name as a header row followed by data rows.
func (s *FileSource) CSVRecords(name string) ([]domain.Record, error) {
	return ReadCSVRecords(s.path(name))
}

// JSONRecords reads name as a JSON array of objects.
func (s *FileSource) JSONRecords(name string) ([]domain.Record, error) {
	return ReadJSONRecords(s.path(name))
}

// ReadCSVRows returns every row of the CSV file at path, header included.
// Rows may have differing lengths.
func ReadCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// ReadCSVRecords reads the CSV file at path into records keyed by the
// header row. Short rows leave the trailing columns absent; cells beyond
// the header are ignored.
func ReadCSVRecords(path string) ([]domain.Record, error) {
	rows, err := ReadCSVRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}
	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	out := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(domain.Record, len(header))
		for i, key := range header {
			if i < len(row) {
				rec[key] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ReadJSONRecords reads the JSON array of objects at path. Numbers are kept
// as json.Number so integers survive unchanged.
func ReadJSONRecords(path string) ([]domain.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var out []domain.Record
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json %s: %w", path, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json %s: trailing data", path)
	}
	return out, nil
}

// Compile-time assertion that FileSource implements domain.DataSource.
var _ domain.DataSource = (*FileSource)(nil)
