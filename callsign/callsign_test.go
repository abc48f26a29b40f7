package callsign_test

import (
	"testing"

	"github.com/kc2g/aprscore/callsign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesBaseAndSSID(t *testing.T) {
	c, err := callsign.New("kf7hvm", 2, false)
	require.NoError(t, err)
	assert.Equal(t, "KF7HVM", c.Base)
	assert.Equal(t, 2, c.SSID)
	assert.Equal(t, "KF7HVM-2", c.String())

	_, err = callsign.New("TOOLONGCALL", 0, false)
	assert.Error(t, err)

	_, err = callsign.New("KF7HVM", 16, false)
	assert.Error(t, err)
}

func TestParseTNC2RoundTrip(t *testing.T) {
	for _, s := range []string{"APRS", "KF7HVM-2", "WIDE1-1*"} {
		c, err := callsign.ParseTNC2(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.TNC2())
	}
}

func TestAX25AddressRoundTrip(t *testing.T) {
	c, err := callsign.New("KF7HVM", 2, true)
	require.NoError(t, err)

	enc := callsign.EncodeAX25Address(c, true)
	dec, last, err := callsign.ParseAX25Address(enc)
	require.NoError(t, err)
	assert.True(t, last)
	assert.Equal(t, c, dec)
}

func TestAX25AddressExtensionBit(t *testing.T) {
	c, _ := callsign.New("APRS", 0, false)

	enc := callsign.EncodeAX25Address(c, false)
	assert.Equal(t, byte(0), enc[6]&0x01)

	enc = callsign.EncodeAX25Address(c, true)
	assert.Equal(t, byte(1), enc[6]&0x01)
}
