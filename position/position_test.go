package position_test

import (
	"testing"

	"github.com/kc2g/aprscore/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUncompressed(t *testing.T) {
	p, n, err := position.Decode([]byte("4903.50N/07201.75W>"))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	assert.False(t, p.Compressed)
	assert.InDelta(t, 49.05833, p.Latitude, 1e-4)
	assert.InDelta(t, -72.02917, p.Longitude, 1e-4)
	assert.Equal(t, byte('/'), p.SymbolTable)
	assert.Equal(t, byte('>'), p.SymbolCode)
	assert.Equal(t, 0, p.Ambiguity)
}

func TestUncompressedRoundTrip(t *testing.T) {
	orig := "4903.50N/07201.75W>"
	p, _, err := position.Decode([]byte(orig))
	require.NoError(t, err)

	enc, err := position.EncodeUncompressed(p)
	require.NoError(t, err)
	assert.Equal(t, orig, enc)
}

func TestAmbiguityMasking(t *testing.T) {
	p, _, err := position.Decode([]byte("4903.5 N/07201.7 W>"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Ambiguity)

	enc, err := position.EncodeUncompressed(p)
	require.NoError(t, err)
	assert.Equal(t, "4903.5 N/07201.7 W>", enc)
}

func TestDecodeCompressed(t *testing.T) {
	p, n, err := position.Decode([]byte("/5L!!<*e7>{?!"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.True(t, p.Compressed)
	assert.InDelta(t, 49.5, p.Latitude, 1e-2)
	assert.InDelta(t, -72.75, p.Longitude, 1e-2)
	assert.Equal(t, byte('/'), p.SymbolTable)
	assert.Equal(t, byte('>'), p.SymbolCode)
	require.NotNil(t, p.Extension)
	assert.Equal(t, position.ExtAltitude, p.Extension.Variant)
}

func TestLooksCompressed(t *testing.T) {
	assert.True(t, position.LooksCompressed('/'))
	assert.True(t, position.LooksCompressed('A'))
	assert.True(t, position.LooksCompressed('j'))
	assert.False(t, position.LooksCompressed('4'))
	assert.False(t, position.LooksCompressed(' '))
}

func TestDataExtensionCourseSpeed(t *testing.T) {
	ext, rest := position.DecodeExtension([]byte("088/036Test"))
	require.NotNil(t, ext)
	assert.Equal(t, position.ExtCourseSpeed, ext.Variant)
	assert.Equal(t, 88, ext.Course)
	assert.Equal(t, 36.0, ext.SpeedKnots)
	assert.Equal(t, "Test", string(rest))

	enc, err := ext.Encode()
	require.NoError(t, err)
	assert.Equal(t, "088/036", enc)
}

func TestDataExtensionPHG(t *testing.T) {
	ext, rest := position.DecodeExtension([]byte("PHG7130Chelmsford, MA"))
	require.NotNil(t, ext)
	assert.Equal(t, position.ExtPHG, ext.Variant)
	assert.Equal(t, "Chelmsford, MA", string(rest))

	enc, err := ext.Encode()
	require.NoError(t, err)
	assert.Equal(t, "PHG7130", enc)
}

func TestAltitudeLift(t *testing.T) {
	alt, rest := position.LiftAltitude([]byte("SharkRF openSPOT3 /A=000123 MMDVM"))
	require.NotNil(t, alt)
	assert.Equal(t, 123, *alt)
	assert.Equal(t, "SharkRF openSPOT3  MMDVM", string(rest))
}

func TestAltitudeNoToken(t *testing.T) {
	alt, rest := position.LiftAltitude([]byte("no altitude here"))
	assert.Nil(t, alt)
	assert.Equal(t, "no altitude here", string(rest))
}
