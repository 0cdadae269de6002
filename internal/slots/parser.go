// Package slots turns raw free-time records into zone-aware intervals and
// intersects the intervals of two parties.
package slots

import (
	"fmt"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"meetbuddy/pkg/zones"
	"time"
)

// Layout is the combined date and 24-hour clock layout of a raw slot.
const Layout = "2006-01-02 15:04"

// Field names reported by MalformedSlotError.
const (
	FieldStart    = "start"
	FieldEnd      = "end"
	FieldTimezone = "timezone"
)

// MalformedSlotError reports a raw slot whose date, time or zone could not be parsed.
type MalformedSlotError struct {
	// Row is the zero-based position of the record in its input.
	Row int
	// Field names the offending column.
	Field string
	// Value is the text that failed to parse.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *MalformedSlotError) Error() string {
	return fmt.Sprintf("malformed slot at row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedSlotError) Unwrap() error { return e.Err }

// Is makes malformed slots match serrors.ErrBadRequest.
func (e *MalformedSlotError) Is(target error) bool {
	return target == serrors.ErrBadRequest //nolint: errorlint
}

// Parser converts RawSlot records into intervals.
type Parser struct {
	zones *zones.Cache
}

// NewParser creates a Parser resolving zones through the given cache. A nil
// cache selects the process-wide one.
func NewParser(cache *zones.Cache) *Parser {
	if cache == nil {
		cache = zones.Default()
	}

	return &Parser{zones: cache}
}

// Parse converts every row into an interval. The first malformed row aborts the
// whole parse with a *MalformedSlotError. Rows ending at or before their start
// are dropped without error. Output keeps input order.
func (p *Parser) Parse(rows []domain.RawSlot) ([]domain.Interval, error) {
	out := make([]domain.Interval, 0, len(rows))
	for i, row := range rows {
		iv, err := p.parseRow(i, row)
		if err != nil {
			return nil, err
		}
		if iv.Valid() {
			out = append(out, iv)
		}
	}

	return out, nil
}

// ParseLenient behaves like Parse but skips malformed rows, returning them
// alongside the intervals of the rows that parsed.
func (p *Parser) ParseLenient(rows []domain.RawSlot) ([]domain.Interval, []*MalformedSlotError) {
	out := make([]domain.Interval, 0, len(rows))
	var bad []*MalformedSlotError
	for i, row := range rows {
		iv, err := p.parseRow(i, row)
		if err != nil {
			bad = append(bad, err)

			continue
		}
		if iv.Valid() {
			out = append(out, iv)
		}
	}

	return out, bad
}

func (p *Parser) parseRow(i int, row domain.RawSlot) (domain.Interval, *MalformedSlotError) {
	loc, err := p.zones.Load(row.Timezone)
	if err != nil {
		return domain.Interval{}, &MalformedSlotError{Row: i, Field: FieldTimezone, Value: row.Timezone, Err: err}
	}

	start, err := time.ParseInLocation(Layout, row.Date+" "+row.Start, loc)
	if err != nil {
		return domain.Interval{}, &MalformedSlotError{Row: i, Field: FieldStart, Value: row.Date + " " + row.Start, Err: err}
	}

	end, err := time.ParseInLocation(Layout, row.Date+" "+row.End, loc)
	if err != nil {
		return domain.Interval{}, &MalformedSlotError{Row: i, Field: FieldEnd, Value: row.Date + " " + row.End, Err: err}
	}

	return domain.Interval{Start: start, End: end}, nil
}
