package slots_test

import (
	"meetbuddy/internal/slots"
	"meetbuddy/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func iv(start time.Time, minutes int) domain.Interval {
	return domain.Interval{Start: start, End: start.Add(time.Duration(minutes) * time.Minute)}
}

func TestFindOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    []domain.Interval
		b    []domain.Interval
		want []domain.Interval
	}{
		{
			name: "partial overlap",
			a:    []domain.Interval{iv(base, 90)},
			b:    []domain.Interval{iv(base.Add(time.Hour), 60)},
			want: []domain.Interval{iv(base.Add(time.Hour), 30)},
		},
		{
			name: "containment",
			a:    []domain.Interval{iv(base, 240)},
			b:    []domain.Interval{iv(base.Add(time.Hour), 30)},
			want: []domain.Interval{iv(base.Add(time.Hour), 30)},
		},
		{
			name: "touching endpoints are not an overlap",
			a:    []domain.Interval{iv(base, 60)},
			b:    []domain.Interval{iv(base.Add(time.Hour), 60)},
			want: nil,
		},
		{
			name: "disjoint",
			a:    []domain.Interval{iv(base, 30)},
			b:    []domain.Interval{iv(base.Add(3*time.Hour), 30)},
			want: nil,
		},
		{
			name: "empty input",
			a:    nil,
			b:    []domain.Interval{iv(base, 30)},
			want: nil,
		},
		{
			name: "nested loop order",
			a:    []domain.Interval{iv(base, 120), iv(base.Add(4*time.Hour), 120)},
			b:    []domain.Interval{iv(base.Add(5*time.Hour), 30), iv(base.Add(30*time.Minute), 30)},
			want: []domain.Interval{
				iv(base.Add(30*time.Minute), 30),
				iv(base.Add(5*time.Hour), 30),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slots.FindOverlaps(tt.a, tt.b)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.True(t, tt.want[i].Equal(got[i]), "overlap %d: want %v, got %v", i, tt.want[i], got[i])
			}
		})
	}
}

func TestFindOverlaps_Properties(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	var a, b []domain.Interval
	for d := 0; d < 5; d++ {
		day := time.Date(2025, 1, 1+d, 0, 0, 0, 0, time.UTC)
		for _, w := range [][2]int{{9 * 60, 90}, {11 * 60, 90}, {13 * 60, 60}, {14*60 + 30, 60}, {16 * 60, 60}, {17*60 + 30, 60}} {
			a = append(a, iv(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, kolkata).Add(time.Duration(w[0])*time.Minute), w[1]))
			b = append(b, iv(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, berlin).Add(time.Duration(w[0])*time.Minute), w[1]))
		}
	}

	ab := slots.FindOverlaps(a, b)
	ba := slots.FindOverlaps(b, a)
	require.NotEmpty(t, ab)
	require.Len(t, ba, len(ab))

	for _, o := range ab {
		require.True(t, o.Start.Before(o.End))

		inA, inB := false, false
		for _, x := range a {
			inA = inA || x.Contains(o)
		}
		for _, y := range b {
			inB = inB || y.Contains(o)
		}
		require.True(t, inA && inB, "overlap %v must be inside one interval of each party", o)

		found := false
		for _, other := range ba {
			found = found || other.Equal(o)
		}
		require.True(t, found, "overlap %v missing when inputs are swapped", o)
	}
}

func TestFindOverlaps_KeepsSourceLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 07:30-09:30 UTC and 07:00-08:00 UTC
	a := []domain.Interval{iv(time.Date(2025, 6, 11, 13, 0, 0, 0, kolkata), 120)}
	b := []domain.Interval{iv(time.Date(2025, 6, 11, 9, 0, 0, 0, berlin), 60)}

	got := slots.FindOverlaps(a, b)
	require.Len(t, got, 1)
	require.Equal(t, kolkata, got[0].Start.Location())
	require.Equal(t, berlin, got[0].End.Location())
}
