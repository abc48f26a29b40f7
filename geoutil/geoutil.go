// Package geoutil converts decoded APRS positions to UTM/MGRS grid
// coordinates, grounded on the teacher's cmd/samoyed-ll2utm and
// cmd/samoyed-utm2ll commands, which wrap github.com/tzneal/coordconv
// atop github.com/golang/geo's s1/s2 angle and lat/lng types.
package geoutil

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// UTM is a Universal Transverse Mercator grid coordinate.
type UTM struct {
	Zone       int
	Hemisphere coordconv.Hemisphere
	Easting    float64
	Northing   float64
}

// HemisphereRune renders the coordinate's hemisphere as 'N' or 'S', 'I' or
// '?' for invalid/other values, the same table the teacher's
// HemisphereToRune uses.
func (u UTM) HemisphereRune() rune {
	switch u.Hemisphere {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return 'I'
	default:
		return '?'
	}
}

func toLatLng(lat, lon float64) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(degreesToRadians(lat)),
		Lng: s1.Angle(degreesToRadians(lon)),
	}
}

func degreesToRadians(d float64) float64 { return d * math.Pi / 180 }
func radiansToDegrees(r float64) float64 { return r * 180 / math.Pi }

// ToUTM converts a decoded decimal-degree lat/lon to a UTM grid
// coordinate.
func ToUTM(lat, lon float64) (UTM, error) {
	coord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(toLatLng(lat, lon), 0)
	if err != nil {
		return UTM{}, fmt.Errorf("aprs: geoutil: convert to UTM: %w", err)
	}
	return UTM{
		Zone:       coord.Zone,
		Hemisphere: coord.Hemisphere,
		Easting:    coord.Easting,
		Northing:   coord.Northing,
	}, nil
}

// FromUTM converts a UTM grid coordinate back to decimal-degree lat/lon.
func FromUTM(u UTM) (lat, lon float64, err error) {
	latlng, cerr := coordconv.DefaultUTMConverter.ConvertToGeodetic(coordconv.UTMCoord{
		Zone:       u.Zone,
		Hemisphere: u.Hemisphere,
		Easting:    u.Easting,
		Northing:   u.Northing,
	})
	if cerr != nil {
		return 0, 0, fmt.Errorf("aprs: geoutil: convert from UTM: %w", cerr)
	}
	return radiansToDegrees(float64(latlng.Lat)), radiansToDegrees(float64(latlng.Lng)), nil
}

// ToMGRS renders a decimal-degree lat/lon as an MGRS grid reference at the
// given precision (1-5, matching the teacher's ll2utm loop).
func ToMGRS(lat, lon float64, precision int) (string, error) {
	coord, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(toLatLng(lat, lon), precision)
	if err != nil {
		return "", fmt.Errorf("aprs: geoutil: convert to MGRS: %w", err)
	}
	return fmt.Sprintf("%s", coord), nil
}

// FromMGRS parses an MGRS/USNG grid reference back to decimal-degree
// lat/lon.
func FromMGRS(s string) (lat, lon float64, err error) {
	latlng, cerr := coordconv.DefaultMGRSConverter.ConvertToGeodetic(s)
	if cerr != nil {
		return 0, 0, fmt.Errorf("aprs: geoutil: convert from MGRS: %w", cerr)
	}
	return radiansToDegrees(float64(latlng.Lat)), radiansToDegrees(float64(latlng.Lng)), nil
}

// DistanceMiles returns the great-circle distance in statute miles
// between two decimal-degree lat/lon points, using golang/geo's s2
// spherical distance rather than a hand-rolled haversine.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	const earthRadiusMiles = 3958.7613
	return a.Distance(b).Radians() * earthRadiusMiles
}
