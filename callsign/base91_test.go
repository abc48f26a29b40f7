package callsign_test

import (
	"testing"

	"github.com/kc2g/aprscore/callsign"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBase91Bijection(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		width := rapid.IntRange(2, 4).Draw(tt, "width")

		max := uint32(1)
		for i := 0; i < width; i++ {
			max *= 91
		}

		n := rapid.Uint32Range(0, max-1).Draw(tt, "n")

		enc := callsign.EncodeBase91(n, width)
		require.Len(tt, enc, width)

		dec, err := callsign.DecodeBase91(enc)
		require.NoError(tt, err)
		require.Equal(tt, n, dec)
	})
}

func TestBase91KnownValues(t *testing.T) {
	// "!!" (33,33) encodes zero.
	require.Equal(t, "!!", callsign.EncodeBase91(0, 2))

	n, err := callsign.DecodeBase91("!!")
	require.NoError(t, err)
	require.Equal(t, uint32(0), n)
}
