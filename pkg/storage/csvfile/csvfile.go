// Package csvfile reads and writes availability rows as CSV files with a
// date,start,end,timezone header. Each party has its own file.
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"meetbuddy/pkg/storage"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// Column names of a slot file.
const (
	ColumnDate     = "date"
	ColumnStart    = "start"
	ColumnEnd      = "end"
	ColumnTimezone = "timezone"
)

// Header is the header row written by Write. Files may order the columns
// differently and carry extra ones.
var Header = []string{ColumnDate, ColumnStart, ColumnEnd, ColumnTimezone} //nolint: gochecknoglobals

var _ storage.SlotSource = (*Source)(nil)

// Source is a storage.SlotSource backed by one CSV file per party.
type Source struct {
	paths map[domain.PartyID]string
}

// New creates a Source reading the given party files.
func New(paths map[domain.PartyID]string) *Source {
	return &Source{paths: paths}
}

// PartySlots reads the file configured for party. The whole file is read on
// every call so edits are picked up without a restart.
func (s *Source) PartySlots(ctx context.Context, party domain.PartyID) ([]domain.RawSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "read slots")
	}

	path, ok := s.paths[party]
	if !ok || path == "" {
		return nil, serrors.With(serrors.ErrNotFound, "no slot file configured for party %s", party)
	}

	slots, err := ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "party %s", party)
	}

	return slots, nil
}

// ReadFile reads the slot file at path.
func ReadFile(path string) ([]domain.RawSlot, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "slot file %s", path)
		}

		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	slots, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, filepath.Base(path))
	}

	return slots, nil
}

// Read parses CSV rows from r. The first record must be a header naming at
// least the date, start, end and timezone columns. Cell values are trimmed but
// otherwise returned as is.
func Read(r io.Reader) ([]domain.RawSlot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, serrors.With(serrors.ErrBadRequest, "missing header")
		}

		return nil, errors.Wrap(err, "read header")
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var slots []domain.RawSlot
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "read record")
		}
		if isBlank(record) {
			continue
		}

		slots = append(slots, domain.RawSlot{
			Date:     cell(record, index[ColumnDate]),
			Start:    cell(record, index[ColumnStart]),
			End:      cell(record, index[ColumnEnd]),
			Timezone: cell(record, index[ColumnTimezone]),
		})
	}

	return slots, nil
}

// Write writes slots to w, header first.
func Write(w io.Writer, slots []domain.RawSlot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, slot := range slots {
		if err := cw.Write([]string{slot.Date, slot.Start, slot.End, slot.Timezone}); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flush")
	}

	return nil
}

// WriteFile writes slots to path, creating parent directories as needed.
func WriteFile(path string, slots []domain.RawSlot) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint: mnd
		return errors.Wrapf(err, "create directory for %s", path)
	}

	f, err := os.Create(path) //nolint: gosec
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return Write(f, slots)
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(Header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	for _, name := range Header {
		if _, ok := index[name]; !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "missing column %q", name)
		}
	}

	return index, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
