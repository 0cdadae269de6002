package fairness

import (
	"bytes"
	"context"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"os"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// File reads the counters from a YAML document such as
//
//	partyA: 12
//	partyB: 19
//
// The file is read on every snapshot.
type File struct {
	Path string
}

// Snapshot implements Tracker.
func (f File) Snapshot(ctx context.Context) (domain.FairnessState, error) {
	if err := ctx.Err(); err != nil {
		return domain.FairnessState{}, errors.Wrap(err, "read fairness file")
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FairnessState{}, serrors.Wrap(serrors.ErrNotFound, err, "fairness file %s", f.Path)
		}

		return domain.FairnessState{}, errors.Wrapf(err, "read %s", f.Path)
	}

	return Decode(data)
}

// Decode parses a YAML fairness document. Unknown keys are rejected so that a
// typo cannot silently zero a counter.
func Decode(data []byte) (domain.FairnessState, error) {
	var state domain.FairnessState

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil {
		return domain.FairnessState{}, serrors.Wrap(serrors.ErrBadRequest, err, "decode fairness document")
	}
	if err := Validate(state); err != nil {
		return domain.FairnessState{}, err
	}

	return state, nil
}

// Encode renders state as a YAML fairness document.
func Encode(state domain.FairnessState) ([]byte, error) {
	data, err := yaml.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "encode fairness document")
	}

	return data, nil
}
