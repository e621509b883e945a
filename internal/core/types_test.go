package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalWireForm(t *testing.T) {
	require.Equal(t, "exists", SignalExists.String())
	require.Equal(t, "absent", SignalDoesNotExist.String())
	require.Equal(t, "unknown", SignalUnknown.String())
}

func TestParseSignalRejectsGarbage(t *testing.T) {
	_, err := ParseSignal("maybe")
	require.Error(t, err)
}

func TestSignalJSONRoundTrip(t *testing.T) {
	result := SignalResult{Kind: SignalKindDNS, Signal: SignalDoesNotExist, Reason: "nxdomain"}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	require.Contains(t, string(data), `"absent"`)

	var decoded SignalResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, SignalDoesNotExist, decoded.Signal)
}

func TestAssessmentNilLikelyAvailableSerializesAsNull(t *testing.T) {
	a := &Assessment{Domain: "example.com", Confidence: ConfidenceUnknown}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.Contains(t, string(data), `"likely_available":null`)
}

func TestAssessmentSignalLookup(t *testing.T) {
	a := &Assessment{Signals: signalsOf(SignalExists, SignalUnknown, SignalDoesNotExist)}

	result, ok := a.Signal(SignalKindHTTP)
	require.True(t, ok)
	require.Equal(t, SignalDoesNotExist, result.Signal)

	_, ok = (*Assessment)(nil).Signal(SignalKindDNS)
	require.False(t, ok)
}
