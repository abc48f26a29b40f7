package mice_test

import (
	"testing"

	"github.com/kc2g/aprscore/mice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAllDigitDestination(t *testing.T) {
	// An all-digit destination base carries no message-bit encoding beyond
	// the default row and places the station in the southern hemisphere.
	info := []byte{100, 29, 103, 31, 34, 45, '>', '/', 'T', 'e', 's', 't'}

	r, err := mice.Decode("490350", info)
	require.NoError(t, err)

	assert.InDelta(t, -49.05833, r.Position.Latitude, 1e-4)
	assert.InDelta(t, 72.02917, r.Position.Longitude, 1e-4)
	assert.Equal(t, 0, r.Position.Ambiguity)
	assert.Equal(t, byte('>'), r.Position.SymbolCode)
	assert.Equal(t, byte('/'), r.Position.SymbolTable)
	assert.Equal(t, mice.MsgEmergency, r.MessageType)
	assert.False(t, r.CustomFormat)
	assert.Equal(t, 30.0, r.SpeedKnots)
	assert.Equal(t, 217, r.Course)
	assert.Equal(t, "Test", r.Comment)
}

func TestDecodeAmbiguousDestination(t *testing.T) {
	info := []byte{100, 29, 103, 31, 34, 45, '>', '/'}

	r, err := mice.Decode("49035L", info)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Position.Ambiguity)
}

func TestDecodeLongitudeFlagsFromDestIndex4And5(t *testing.T) {
	// destBase[3] ('5') is already consumed for the N/S sign; the
	// >=100 degree offset and E/W sign must come from destBase[4] and
	// destBase[5], not destBase[3] and destBase[4]. Here destBase[4] is
	// an ordinary digit (no offset) and destBase[5] ('R', in the P-Y
	// range) selects west — a destination base where index 4 and index
	// 5 diverge, which the old off-by-one read would get wrong.
	info := []byte{100, 29, 103, 31, 34, 45, '>', '/'}

	r, err := mice.Decode("49035R", info)
	require.NoError(t, err)

	assert.Less(t, r.Position.Longitude, 0.0)
	assert.InDelta(t, -72.02917, r.Position.Longitude, 1e-4)
}

func TestDecodeRejectsShortDestination(t *testing.T) {
	_, err := mice.Decode("4903", []byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.Error(t, err)
}

func TestDecodeRejectsShortInfo(t *testing.T) {
	_, err := mice.Decode("490350", []byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeRejectsInvalidDestinationChar(t *testing.T) {
	_, err := mice.Decode("49035!", []byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.Error(t, err)
}
