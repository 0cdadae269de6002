package v1handler_test

import (
	"meetbuddy/internal/api/handler/v1handler"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSuggestRequest(t *testing.T) {
	req, err := v1handler.DecodeSuggestRequest([]byte(`{
		"partyB": [{"timezone": "Europe/Berlin", "date": "2025-06-11", "start": "10:00", "end": "11:00"}],
		"partyA": []
	}`))
	require.NoError(t, err)
	require.Empty(t, req.PartyA)
	require.NotNil(t, req.PartyA)
	require.Equal(t, []domain.RawSlot{
		{Date: "2025-06-11", Start: "10:00", End: "11:00", Timezone: "Europe/Berlin"},
	}, req.PartyB)
	require.Nil(t, req.Fairness)

	req, err = v1handler.DecodeSuggestRequest([]byte(`{"partyA": [], "partyB": [], "fairness": {"partyA": 1}}`))
	require.NoError(t, err)
	require.Equal(t, &domain.FairnessState{PartyA: 1}, req.Fairness)
}

func TestDecodeSuggestRequest_Invalid(t *testing.T) {
	_, err := v1handler.DecodeSuggestRequest([]byte(`{"partyA": [{"date": "2025-06-11", "room": "7"}], "partyB": []}`))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "room")
}
