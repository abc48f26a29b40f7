package ax25_test

import (
	"testing"

	"github.com/kc2g/aprscore/ax25"
	"github.com/kc2g/aprscore/callsign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustCallsign(t *testing.T, base string, ssid int, heard bool) callsign.Callsign {
	t.Helper()
	cs, err := callsign.New(base, ssid, heard)
	require.NoError(t, err)
	cs.Heard = heard
	return cs
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := ax25.Frame{
		Destination: mustCallsign(t, "APRS", 0, false),
		Source:      mustCallsign(t, "KC2GJH", 9, false),
		Path: []callsign.Callsign{
			mustCallsign(t, "WIDE1", 1, true),
			mustCallsign(t, "WIDE2", 1, false),
		},
		Control: 0x03,
		PID:     0xF0,
		Info:    []byte("!4903.50N/07201.75W>Test"),
	}

	enc := f.Encode()

	decoded, err := ax25.Decode(enc, false)
	require.NoError(t, err)

	assert.Equal(t, f.Destination, decoded.Destination)
	assert.Equal(t, f.Source, decoded.Source)
	assert.Equal(t, f.Path, decoded.Path)
	assert.Equal(t, f.Control, decoded.Control)
	assert.Equal(t, f.PID, decoded.PID)
	assert.Equal(t, f.Info, decoded.Info)
}

func TestEncodeDecodeWithFCS(t *testing.T) {
	f := ax25.Frame{
		Destination: mustCallsign(t, "APRS", 0, false),
		Source:      mustCallsign(t, "N0CALL", 0, false),
		Control:     0x03,
		PID:         0xF0,
		Info:        []byte("!4903.50N/07201.75W>"),
	}

	enc := f.EncodeWithFCS()

	decoded, err := ax25.Decode(enc, true)
	require.NoError(t, err)
	assert.True(t, decoded.FCSValid)
	assert.Equal(t, f.Info, decoded.Info)
}

func TestDecodeDetectsBadFCS(t *testing.T) {
	f := ax25.Frame{
		Destination: mustCallsign(t, "APRS", 0, false),
		Source:      mustCallsign(t, "N0CALL", 0, false),
		Control:     0x03,
		PID:         0xF0,
		Info:        []byte("!4903.50N/07201.75W>"),
	}

	enc := f.EncodeWithFCS()
	enc[len(enc)-1] ^= 0xFF

	decoded, err := ax25.Decode(enc, true)
	require.Error(t, err)
	assert.False(t, decoded.FCSValid)

	var fcsErr *ax25.FrameCheckError
	assert.ErrorAs(t, err, &fcsErr)
}

func TestDecodeRejectsUnsupportedControl(t *testing.T) {
	f := ax25.Frame{
		Destination: mustCallsign(t, "APRS", 0, false),
		Source:      mustCallsign(t, "N0CALL", 0, false),
		Control:     0x03,
		PID:         0xF0,
		Info:        []byte("!"),
	}
	enc := f.Encode()
	enc[14] = 0x13 // corrupt the control octet (addresses are 2*7=14 bytes)

	_, err := ax25.Decode(enc, false)
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedFrame(t *testing.T) {
	_, err := ax25.Decode([]byte("short"), false)
	require.Error(t, err)
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		destBase := rapid.StringMatching(`[A-Z0-9]{1,6}`).Draw(rt, "destBase")
		srcBase := rapid.StringMatching(`[A-Z0-9]{1,6}`).Draw(rt, "srcBase")
		ssid := rapid.IntRange(0, 15).Draw(rt, "ssid")
		info := rapid.StringN(0, 50, 200).Draw(rt, "info")

		dest, err := callsign.New(destBase, 0, false)
		require.NoError(rt, err)
		src, err := callsign.New(srcBase, ssid, false)
		require.NoError(rt, err)

		f := ax25.Frame{
			Destination: dest,
			Source:      src,
			Control:     0x03,
			PID:         0xF0,
			Info:        []byte(info),
		}

		enc := f.EncodeWithFCS()
		decoded, err := ax25.Decode(enc, true)
		require.NoError(rt, err)
		assert.True(rt, decoded.FCSValid)
		assert.Equal(rt, f.Info, decoded.Info)
		assert.Equal(rt, f.Destination, decoded.Destination)
		assert.Equal(rt, f.Source, decoded.Source)
	})
}
