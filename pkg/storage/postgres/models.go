package postgres

import (
	"meetbuddy/pkg/domain"
	"time"
)

// PgSlot is a row of the availability_slots table. Date and times are kept as
// text so that rows reach the slot parser exactly as they were imported.
type PgSlot struct {
	ID       int64  `db:"id"         goqu:"skipinsert"`
	Party    string `db:"party"`
	Position int    `db:"position"`

	Date      string `db:"date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Timezone  string `db:"timezone"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSlot) ToDomain() domain.RawSlot {
	return domain.RawSlot{
		Date:     p.Date,
		Start:    p.StartTime,
		End:      p.EndTime,
		Timezone: p.Timezone,
	}
}

func (p *PgSlot) FromDomain(party domain.PartyID, position int, slot domain.RawSlot) {
	*p = PgSlot{
		Party:     string(party),
		Position:  position,
		Date:      slot.Date,
		StartTime: slot.Start,
		EndTime:   slot.End,
		Timezone:  slot.Timezone,
	}
}

// PgFairness is a row of the fairness table.
type PgFairness struct {
	Party     string    `db:"party"`
	Burden    int       `db:"burden"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func domainSlotsToPg(party domain.PartyID, slots []domain.RawSlot) []PgSlot {
	out := make([]PgSlot, len(slots))
	for i := range out {
		out[i].FromDomain(party, i, slots[i])
	}

	return out
}

func pgSlotsToDomain(slots []PgSlot) []domain.RawSlot {
	out := make([]domain.RawSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.ToDomain())
	}

	return out
}
