package csvfile

import (
	"meetbuddy/pkg/domain"
	"time"
)

// Window is a daily free window in local wall-clock time (15:04).
type Window struct {
	Start string
	End   string
}

// SampleWindows is a realistic working-day pattern used for demo data.
var SampleWindows = []Window{ //nolint: gochecknoglobals
	{"09:00", "10:30"},
	{"11:00", "12:30"},
	{"13:00", "14:00"},
	{"14:30", "15:30"},
	{"16:00", "17:00"},
	{"17:30", "18:30"},
}

// SampleStart is the first day of generated sample data.
var SampleStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

// SampleDays is the number of generated days, roughly three months.
const SampleDays = 90

// Generate returns days consecutive days of rows starting at from, one row per
// window per day, all in the given zone. Weekends are included.
func Generate(from time.Time, days int, timezone string, windows []Window) []domain.RawSlot {
	if days <= 0 {
		return nil
	}

	y, m, d := from.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	slots := make([]domain.RawSlot, 0, days*len(windows))
	for i := range days {
		date := first.AddDate(0, 0, i).Format(time.DateOnly)
		for _, w := range windows {
			slots = append(slots, domain.RawSlot{Date: date, Start: w.Start, End: w.End, Timezone: timezone})
		}
	}

	return slots
}
