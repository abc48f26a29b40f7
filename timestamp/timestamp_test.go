package timestamp_test

import (
	"testing"

	"github.com/kc2g/aprscore/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDHMZ(t *testing.T) {
	st, err := timestamp.Decode([]byte("092345z"))
	require.NoError(t, err)
	assert.Equal(t, timestamp.DHMZ, st.Variant)
	assert.Equal(t, 9, st.Day)
	assert.Equal(t, 23, st.Hour)
	assert.Equal(t, 45, st.Minute)
	assert.Equal(t, "092345z", st.Encode())
}

func TestDecodeVariants(t *testing.T) {
	cases := []struct {
		raw     string
		variant timestamp.Variant
	}{
		{"092345z", timestamp.DHMZ},
		{"092345/", timestamp.DHML},
		{"234501h", timestamp.HMS},
		{"07091545", timestamp.MDHM},
	}

	for _, c := range cases {
		st, err := timestamp.Decode([]byte(c.raw))
		require.NoError(t, err, c.raw)
		assert.Equal(t, c.variant, st.Variant, c.raw)
		assert.Equal(t, c.raw, st.Encode(), c.raw)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	_, err := timestamp.Decode([]byte("329945z")) // day 32
	assert.Error(t, err)

	_, err = timestamp.Decode([]byte("096145z")) // hour 61
	assert.Error(t, err)
}

func TestDecodeUnknownSuffix(t *testing.T) {
	_, err := timestamp.Decode([]byte("092345x"))
	assert.Error(t, err)
}
