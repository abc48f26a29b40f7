package position

import (
	"math"

	"github.com/kc2g/aprscore/callsign"
)

// decodeCompressed parses the 13-byte compressed position block:
// symbol table (1) + base-91 latitude (4) + base-91 longitude (4) +
// symbol code (1) + course/speed|altitude|range (2) + compression type (1).
func decodeCompressed(b []byte) (Position, int, error) {
	if len(b) < compressedLen {
		return Position{}, 0, &PositionError{Raw: b, Msg: "compressed position block must be 13 bytes"}
	}

	rawTable := b[0]
	yField := string(b[1:5])
	xField := string(b[5:9])
	code := b[9]
	c1 := b[10]
	c2 := b[11]
	typeByte := b[12]

	table, err := decodeCompressedSymbolTable(rawTable)
	if err != nil {
		return Position{}, 0, &PositionError{Raw: b, Msg: err.Error()}
	}

	y, err := callsign.DecodeBase91(yField)
	if err != nil {
		return Position{}, 0, &PositionError{Raw: b, Msg: "invalid compressed latitude: " + err.Error()}
	}
	lat := 90 - float64(y)/380926

	x, err := callsign.DecodeBase91(xField)
	if err != nil {
		return Position{}, 0, &PositionError{Raw: b, Msg: "invalid compressed longitude: " + err.Error()}
	}
	lon := -180 + float64(x)/190463

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Position{}, 0, &PositionError{Raw: b, Msg: "decoded compressed lat/lon out of range"}
	}

	p := Position{
		Latitude:    lat,
		Longitude:   lon,
		Ambiguity:   0,
		SymbolTable: table,
		SymbolCode:  code,
		Compressed:  true,
	}

	if ext := decodeCompressedExtension(c1, c2, typeByte); ext != nil {
		p.Extension = ext
	}

	return p, compressedLen, nil
}

// decodeCompressedSymbolTable maps the compressed form's table-id byte
// (/, \, A-Z, or a-j standing in for overlay digits 0-9) back to the
// uncompressed form's table-id character.
func decodeCompressedSymbolTable(b byte) (byte, error) {
	switch {
	case b == '/' || b == '\\':
		return b, nil
	case b >= 'A' && b <= 'Z':
		return b, nil
	case b >= 'a' && b <= 'j':
		return b - 'a' + '0', nil
	default:
		return 0, &PositionError{Raw: []byte{b}, Msg: "invalid compressed symbol table id"}
	}
}

func encodeCompressedSymbolTable(b byte) byte {
	if b >= '0' && b <= '9' {
		return b - '0' + 'a'
	}
	return b
}

// CompressionOrigin identifies the GPS fix source recorded in bits 3-4 of
// the compressed position's compression-type byte.
type CompressionOrigin int

const (
	OriginCompressed CompressionOrigin = iota
	OriginTNC
	OriginSoftware
	OriginOther
)

func compressionOrigin(typeByte byte) CompressionOrigin {
	switch (typeByte - 33) & 0x18 {
	case 0x00:
		return OriginCompressed
	case 0x08:
		return OriginTNC
	case 0x10:
		return OriginSoftware
	default:
		return OriginOther
	}
}

// decodeCompressedExtension interprets the two-byte course/speed-or-
// altitude-or-range slot. Per the spec: a space in c1 means no extension
// data is present; a leading '{' means the pair encodes altitude as
// 1.002^N feet; otherwise it is course/speed.
func decodeCompressedExtension(c1, c2, typeByte byte) *Extension {
	if c1 == ' ' {
		return nil
	}

	if c1 == '{' {
		n, err := callsign.DecodeBase91(string([]byte{c1, c2}))
		if err != nil {
			return nil
		}
		alt := int(math.Pow(1.002, float64(n)))
		return &Extension{Variant: ExtAltitude, AltitudeFeet: alt}
	}

	course := int(c1-33) * 4
	speed := math.Pow(1.08, float64(c2-33)) - 1

	return &Extension{Variant: ExtCourseSpeed, Course: course, SpeedKnots: speed}
}

func encodeCompressedExtension(e *Extension) (c1, c2, typeByte byte) {
	typeByte = byte(33 + int(OriginSoftware)<<3)

	if e == nil {
		return ' ', ' ', typeByte
	}

	switch e.Variant {
	case ExtAltitude:
		n := uint32(math.Round(math.Log(float64(e.AltitudeFeet)) / math.Log(1.002)))
		enc := callsign.EncodeBase91(n, 2)
		return enc[0], enc[1], typeByte
	case ExtCourseSpeed:
		c1 = byte(e.Course/4) + 33
		s := math.Log(e.SpeedKnots+1) / math.Log(1.08)
		c2 = byte(math.Round(s)) + 33
		return c1, c2, typeByte
	default:
		return ' ', ' ', typeByte
	}
}

// EncodeCompressed renders a compressed 13-byte position block.
func EncodeCompressed(p Position) (string, error) {
	if p.Latitude < -90 || p.Latitude > 90 {
		return "", &PositionError{Msg: "latitude out of range"}
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return "", &PositionError{Msg: "longitude out of range"}
	}

	y := uint32(math.Round((90 - p.Latitude) * 380926))
	x := uint32(math.Round((p.Longitude + 180) * 190463))

	table := encodeCompressedSymbolTable(p.SymbolTable)

	c1, c2, typeByte := encodeCompressedExtension(p.Extension)

	out := make([]byte, 0, compressedLen)
	out = append(out, table)
	out = append(out, callsign.EncodeBase91(y, 4)...)
	out = append(out, callsign.EncodeBase91(x, 4)...)
	out = append(out, p.SymbolCode, c1, c2, typeByte)

	return string(out), nil
}
