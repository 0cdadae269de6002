package v1handler

import (
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// SuggestRequest is the body of POST /v1/suggestions.
type SuggestRequest struct {
	PartyA   []domain.RawSlot
	PartyB   []domain.RawSlot
	Fairness *domain.FairnessState
}

// DecodeSuggestRequest parses a SuggestRequest. Unknown fields are rejected.
func DecodeSuggestRequest(data []byte) (SuggestRequest, error) {
	var req SuggestRequest
	seenA, seenB := false, false

	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "partyA":
			seenA = true
			req.PartyA, err = decodeSlots(d)
		case "partyB":
			seenB = true
			req.PartyB, err = decodeSlots(d)
		case "fairness":
			if d.Next() == jx.Null {
				return d.Null()
			}
			var state domain.FairnessState
			state, err = decodeFairness(d)
			req.Fairness = &state
		default:
			return errors.Errorf("unknown field %q", key)
		}

		return field(err, key)
	})
	if err != nil {
		return SuggestRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if !seenA || !seenB {
		return SuggestRequest{}, serrors.With(serrors.ErrBadRequest, "partyA and partyB are required")
	}

	return req, nil
}

// field annotates a decoding error with the JSON key it occurred in.
func field(err error, key string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, key)
}

func decodeSlots(d *jx.Decoder) ([]domain.RawSlot, error) {
	out := make([]domain.RawSlot, 0)
	err := d.Arr(func(d *jx.Decoder) error {
		var slot domain.RawSlot
		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "date":
				slot.Date, err = d.Str()
			case "start":
				slot.Start, err = d.Str()
			case "end":
				slot.End, err = d.Str()
			case "timezone":
				slot.Timezone, err = d.Str()
			default:
				return errors.Errorf("unknown field %q", key)
			}

			return field(err, key)
		})
		if err != nil {
			return errors.Wrapf(err, "slot %d", len(out))
		}
		out = append(out, slot)

		return nil
	})

	return out, err //nolint: wrapcheck
}

func decodeFairness(d *jx.Decoder) (domain.FairnessState, error) {
	var state domain.FairnessState
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "partyA":
			state.PartyA, err = d.Int()
		case "partyB":
			state.PartyB, err = d.Int()
		default:
			return errors.Errorf("unknown field %q", key)
		}

		return field(err, key)
	})

	return state, err //nolint: wrapcheck
}

// EncodeResult renders a ranking result. Breakdowns are included when explain
// is set.
func EncodeResult(res *ranking.Result, a, b domain.Party, explain bool) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("message")
	e.Str(res.Message)
	e.FieldStart("noCommonSlots")
	e.Bool(res.NoCommonSlots)
	e.FieldStart("candidates")
	e.Int(res.Candidates)
	e.FieldStart("skipped")
	e.Int(res.Skipped)
	e.FieldStart("suggestions")
	e.ArrStart()
	for _, entry := range res.Entries {
		encodeEntry(&e, entry, a, b, explain)
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

func encodeEntry(e *jx.Encoder, entry ranking.Entry, a, b domain.Party, explain bool) {
	e.ObjStart()
	e.FieldStart("rank")
	e.Int(entry.Rank)
	e.FieldStart("score")
	e.Int(entry.Score)
	e.FieldStart("reasons")
	e.ArrStart()
	for _, r := range entry.Reasons {
		e.Str(r)
	}
	e.ArrEnd()
	e.FieldStart("partyA")
	encodeLocal(e, a, entry.PartyATime)
	e.FieldStart("partyB")
	encodeLocal(e, b, entry.PartyBTime)
	e.FieldStart("start")
	e.Str(entry.Interval.Start.Format(time.RFC3339))
	e.FieldStart("end")
	e.Str(entry.Interval.End.Format(time.RFC3339))
	if explain {
		e.FieldStart("breakdown")
		e.ArrStart()
		for _, c := range entry.Breakdown {
			e.ObjStart()
			e.FieldStart("criterion")
			e.Str(c.Criterion)
			e.FieldStart("points")
			e.Int(c.Points)
			if c.Reason != "" {
				e.FieldStart("reason")
				e.Str(c.Reason)
			}
			e.ObjEnd()
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func encodeLocal(e *jx.Encoder, p domain.Party, formatted string) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("timezone")
	e.Str(p.Location.String())
	e.FieldStart("time")
	e.Str(formatted)
	e.ObjEnd()
}

func encodeError(res ErrorResponse) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	return e.Bytes()
}
