package fairness_test

import (
	"context"
	"errors"
	"meetbuddy/internal/fairness"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	mockstorage "meetbuddy/pkg/storage/mock"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatic_Snapshot(t *testing.T) {
	ctx := context.Background()

	state, err := fairness.Default().Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.FairnessState{PartyA: 12, PartyB: 19}, state)
	require.Equal(t, domain.PartyB, state.Heavier())

	state, err = fairness.Static{}.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.FairnessState{}, state)

	_, err = fairness.Static{PartyA: -1}.Snapshot(ctx)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestStored_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("passes counters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockFairnessStorage(ctrl)
		strg.EXPECT().FairnessSnapshot(gomock.Any()).Return(domain.FairnessState{PartyA: 3, PartyB: 1}, nil)

		state, err := fairness.Stored{Storage: strg}.Snapshot(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.FairnessState{PartyA: 3, PartyB: 1}, state)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockFairnessStorage(ctrl)
		boom := errors.New("connection reset")
		strg.EXPECT().FairnessSnapshot(gomock.Any()).Return(domain.FairnessState{}, boom)

		_, err := fairness.Stored{Storage: strg}.Snapshot(ctx)
		require.ErrorIs(t, err, boom)
	})

	t.Run("negative counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strg := mockstorage.NewMockFairnessStorage(ctrl)
		strg.EXPECT().FairnessSnapshot(gomock.Any()).Return(domain.FairnessState{PartyB: -4}, nil)

		_, err := fairness.Stored{Storage: strg}.Snapshot(ctx)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestFile_Snapshot(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		path    string
		want    domain.FairnessState
		wantErr error
	}{
		{name: "both counters", path: write("both.yml", "partyA: 12\npartyB: 19\n"), want: domain.FairnessState{PartyA: 12, PartyB: 19}},
		{name: "missing counter is zero", path: write("one.yml", "partyB: 4\n"), want: domain.FairnessState{PartyB: 4}},
		{name: "unknown key", path: write("typo.yml", "partyA: 1\npartyC: 2\n"), wantErr: serrors.ErrBadRequest},
		{name: "negative", path: write("negative.yml", "partyA: -2\npartyB: 1\n"), wantErr: serrors.ErrBadRequest},
		{name: "not a number", path: write("nan.yml", "partyA: many\n"), wantErr: serrors.ErrBadRequest},
		{name: "missing file", path: filepath.Join(dir, "nope.yml"), wantErr: serrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := fairness.File{Path: tt.path}.Snapshot(ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, state)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	data, err := fairness.Encode(domain.FairnessState{PartyA: 7, PartyB: 2})
	require.NoError(t, err)
	require.Equal(t, "partyA: 7\npartyB: 2\n", string(data))

	state, err := fairness.Decode(data)
	require.NoError(t, err)
	require.Equal(t, domain.FairnessState{PartyA: 7, PartyB: 2}, state)
}
