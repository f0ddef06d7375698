package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// csvTable manages one flat CSV file with a fixed header row. Every mutation
// is a full read-modify-write cycle: the table is read entirely, changed in
// memory, written to a temp file and atomically renamed over the original.
// A per-table mutex serializes writers; the file is never left half-written.
type csvTable struct {
	mu     sync.Mutex
	path   string
	header []string
}

// newCSVTable opens or creates the table at path. The returned bool reports
// whether a fresh file was created (callers may seed it).
func newCSVTable(path string, header []string) (*csvTable, bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, fmt.Errorf("create table dir: %w", err)
	}

	t := &csvTable{path: path, header: header}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := t.flush(nil); err != nil {
			return nil, false, err
		}
		return t, true, nil
	}
	return t, false, nil
}

// rows returns all data rows (header excluded) under the table lock.
func (t *csvTable) rows() ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

// replace runs mutate over the current rows and persists the result
// atomically. The lock is held for the whole read-modify-write cycle.
func (t *csvTable) replace(mutate func(rows [][]string) ([][]string, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.load()
	if err != nil {
		return err
	}
	next, err := mutate(rows)
	if err != nil {
		return err
	}
	return t.flush(next)
}

func (t *csvTable) load() ([][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", t.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", t.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func (t *csvTable) flush(rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(t.path), filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp table: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.header); err != nil {
		tmp.Close()
		return fmt.Errorf("write table header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write table rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp table: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("replace table %s: %w", t.path, err)
	}
	return nil
}
