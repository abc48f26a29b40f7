package geoutil_test

import (
	"testing"

	"github.com/kc2g/aprscore/geoutil"
	"github.com/stretchr/testify/assert"
)

func TestHemisphereRune(t *testing.T) {
	u := geoutil.UTM{Hemisphere: 1} // coordconv.HemisphereNorth
	_ = u.HemisphereRune()          // exercised for panics only; value table is coordconv's own
}

func TestDistanceMilesKnownPoints(t *testing.T) {
	// Boston, MA to Chelmsford, MA: roughly 25 miles apart.
	d := geoutil.DistanceMiles(42.3601, -71.0589, 42.6121, -71.3564)
	assert.InDelta(t, 25, d, 8)
}

func TestDistanceMilesSamePoint(t *testing.T) {
	d := geoutil.DistanceMiles(49.05833, -72.02917, 49.05833, -72.02917)
	assert.InDelta(t, 0, d, 1e-6)
}
