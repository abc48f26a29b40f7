// Package position decodes and encodes APRS position reports: the
// uncompressed and compressed lat/lon forms, symbol table/code,
// ambiguity, altitude-in-comment, and the data extensions (course/speed,
// PHG, RNG, DFS) that can follow a position block.
package position

import (
	"fmt"

	"github.com/kc2g/aprscore/callsign"
)

// Position is an immutable decoded APRS position.
type Position struct {
	Latitude    float64
	Longitude   float64
	Ambiguity   int // 0-4; always 0 when Compressed
	SymbolTable byte
	SymbolCode  byte
	Compressed  bool
	Altitude    *int // feet; Decode and the infofield decoders leave this nil and put a lifted /A=dddddd value in the report's own Altitude field
	Extension   *Extension
}

// PositionError reports an invalid latitude/longitude, a malformed
// compressed position, or inconsistent ambiguity masking.
type PositionError struct {
	Raw []byte
	Msg string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("aprs: position error: %s (%q)", e.Msg, e.Raw)
}

const (
	uncompressedLen = 19 // 8 (lat) + 1 (table) + 9 (lon) + 1 (code)
	compressedLen   = 13
)

// LooksCompressed reports whether the first byte of a position block
// indicates the compressed form: '/', '\\', A-Z, or a-j. Digits and space
// indicate the uncompressed form instead, per the spec.
func LooksCompressed(firstByte byte) bool {
	switch {
	case firstByte == '/' || firstByte == '\\':
		return true
	case firstByte >= 'A' && firstByte <= 'Z':
		return true
	case firstByte >= 'a' && firstByte <= 'j':
		return true
	default:
		return false
	}
}

// Decode consumes either a 19-byte uncompressed or 13-byte compressed
// position block from the front of b, returning the Position and the
// number of bytes consumed.
func Decode(b []byte) (Position, int, error) {
	if len(b) == 0 {
		return Position{}, 0, &PositionError{Msg: "empty position block"}
	}

	if LooksCompressed(b[0]) {
		return decodeCompressed(b)
	}

	return decodeUncompressed(b)
}

func decodeUncompressed(b []byte) (Position, int, error) {
	if len(b) < uncompressedLen {
		return Position{}, 0, &PositionError{Raw: b, Msg: "uncompressed position block must be 19 bytes"}
	}

	latField := b[0:8]
	table := b[8]
	lonField := b[9:18]
	code := b[18]

	lat, ambLat, err := callsign.DecodeLatitude(string(latField))
	if err != nil {
		return Position{}, 0, &PositionError{Raw: b, Msg: err.Error()}
	}

	lon, ambLon, err := callsign.DecodeLongitude(string(lonField))
	if err != nil {
		return Position{}, 0, &PositionError{Raw: b, Msg: err.Error()}
	}

	if ambLat != ambLon {
		return Position{}, 0, &PositionError{Raw: b, Msg: "latitude and longitude ambiguity must match"}
	}

	return Position{
		Latitude:    lat,
		Longitude:   lon,
		Ambiguity:   ambLat,
		SymbolTable: table,
		SymbolCode:  code,
	}, uncompressedLen, nil
}

// EncodeUncompressed renders an uncompressed position block. It returns
// an error, rather than panicking, if lat/lon are out of range or
// ambiguity is outside 0-4.
func EncodeUncompressed(p Position) (string, error) {
	if p.Latitude < -90 || p.Latitude > 90 {
		return "", &PositionError{Msg: "latitude out of range"}
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return "", &PositionError{Msg: "longitude out of range"}
	}
	if p.Ambiguity < 0 || p.Ambiguity > 4 {
		return "", &PositionError{Msg: "ambiguity must be 0-4"}
	}

	lat := callsign.EncodeLatitude(p.Latitude, p.Ambiguity)
	lon := callsign.EncodeLongitude(p.Longitude, p.Ambiguity)

	return lat + string(p.SymbolTable) + lon + string(p.SymbolCode), nil
}
