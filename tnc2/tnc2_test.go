package tnc2_test

import (
	"testing"

	"github.com/kc2g/aprscore/callsign"
	"github.com/kc2g/aprscore/tnc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLine(t *testing.T) {
	l, err := tnc2.DecodeLine("KC2GJH-9>APRS,WIDE1-1,WIDE2-1:!4903.50N/07201.75W>Test")
	require.NoError(t, err)

	assert.Equal(t, "KC2GJH", l.Source.Base)
	assert.Equal(t, 9, l.Source.SSID)
	assert.Equal(t, "APRS", l.Destination.Base)
	require.Len(t, l.Path, 2)
	assert.Equal(t, "WIDE1", l.Path[0].Base)
	assert.Equal(t, 1, l.Path[0].SSID)
	assert.Equal(t, "!4903.50N/07201.75W>Test", l.Info)
}

func TestEncodeLineRoundTrip(t *testing.T) {
	orig := "KC2GJH-9>APRS,WIDE1-1,WIDE2-1*:!4903.50N/07201.75W>Test"
	l, err := tnc2.DecodeLine(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, tnc2.EncodeLine(l))
}

func TestDecodeLineMissingColon(t *testing.T) {
	_, err := tnc2.DecodeLine("KC2GJH>APRS,WIDE1-1")
	require.Error(t, err)
}

func TestDecodeLineMissingGt(t *testing.T) {
	_, err := tnc2.DecodeLine("KC2GJHAPRS:!test")
	require.Error(t, err)
}

func TestServerComment(t *testing.T) {
	assert.True(t, tnc2.IsServerComment("# aprsc 2.1.0-g...  javaAPRSSrvr"))
	c := tnc2.DecodeServerLine("# logresp KC2GJH verified, server THIRD")
	assert.Equal(t, "logresp KC2GJH verified, server THIRD", c.Text)
}

func TestLoginLine(t *testing.T) {
	call, err := callsign.New("KC2GJH", 9, false)
	require.NoError(t, err)

	s := tnc2.LoginLine(call, 12345, "aprscore", "1.0", "")
	assert.Equal(t, "user KC2GJH-9 pass 12345 vers aprscore 1.0", s)

	s2 := tnc2.LoginLine(call, 12345, "aprscore", "1.0", "m/50")
	assert.Equal(t, "user KC2GJH-9 pass 12345 vers aprscore 1.0 filter m/50", s2)
}
