package position

import (
	"fmt"
)

// ExtVariant identifies which data extension a position comment carries.
type ExtVariant int

const (
	ExtCourseSpeed ExtVariant = iota
	ExtPHG
	ExtRNG
	ExtDFS
	ExtAltitude // compressed-position-only: altitude packed into the course/speed slot
)

// Extension is an immutable APRS data extension: course/speed, PHG, RNG
// or DFS, consumed from the first 7 bytes of a position's comment (or, for
// ExtAltitude, from the compressed position's course/speed byte pair).
type Extension struct {
	Variant ExtVariant

	// ExtCourseSpeed
	Course     int // degrees, 0-360
	SpeedKnots float64

	// ExtAltitude (compressed form only)
	AltitudeFeet int

	// ExtPHG / ExtDFS
	Power        int // watts (PHG only)
	Strength     int // DF signal strength, 0-9 (DFS only)
	HeightFeet   int
	Gain         int // dB
	Directivity  string

	// ExtRNG
	RangeMiles int
}

var directivityByDigit = [...]string{"omni", "NE", "E", "SE", "S", "SW", "W", "NW", "N"}

// DecodeExtension consumes a 7-byte data extension from the front of
// comment, if one is present, returning the Extension and the remaining
// comment bytes. If comment is too short or does not match a recognised
// extension shape, it is returned unchanged with a nil Extension.
func DecodeExtension(comment []byte) (*Extension, []byte) {
	if len(comment) < 7 {
		return nil, comment
	}

	head := comment[:7]
	rest := comment[7:]

	switch {
	case head[3] == '/' && isDigits(head[0:3]) && isDigits(head[4:7]):
		course := atoi3(head[0:3])
		speed := atoi3(head[4:7])
		return &Extension{Variant: ExtCourseSpeed, Course: course, SpeedKnots: float64(speed)}, rest

	case string(head[0:3]) == "PHG" && isDigits(head[3:7]):
		power := int(head[3]-'0') * int(head[3]-'0')
		height := 10 << (head[4] - '0')
		gain := int(head[5] - '0')
		dir := directivityFor(head[6])
		return &Extension{Variant: ExtPHG, Power: power, HeightFeet: height, Gain: gain, Directivity: dir}, rest

	case string(head[0:3]) == "RNG" && isDigits(head[3:7]):
		return &Extension{Variant: ExtRNG, RangeMiles: atoi4(head[3:7])}, rest

	case string(head[0:3]) == "DFS" && isDigits(head[3:7]):
		strength := int(head[3] - '0')
		height := 10 << (head[4] - '0')
		gain := int(head[5] - '0')
		dir := directivityFor(head[6])
		return &Extension{Variant: ExtDFS, Strength: strength, HeightFeet: height, Gain: gain, Directivity: dir}, rest

	default:
		return nil, comment
	}
}

// Encode renders the 7-byte data extension prefix for a comment.
func (e *Extension) Encode() (string, error) {
	switch e.Variant {
	case ExtCourseSpeed:
		return fmt.Sprintf("%03d/%03d", e.Course%1000, int(e.SpeedKnots)%1000), nil
	case ExtPHG:
		return fmt.Sprintf("PHG%d%d%d%s", isqrt(e.Power), heightDigit(e.HeightFeet), e.Gain, directivityDigit(e.Directivity)), nil
	case ExtRNG:
		return fmt.Sprintf("RNG%04d", e.RangeMiles%10000), nil
	case ExtDFS:
		return fmt.Sprintf("DFS%d%d%d%s", e.Strength, heightDigit(e.HeightFeet), e.Gain, directivityDigit(e.Directivity)), nil
	default:
		return "", fmt.Errorf("aprs: extension variant %d has no comment encoding", e.Variant)
	}
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func atoi3(b []byte) int {
	return int(b[0]-'0')*100 + int(b[1]-'0')*10 + int(b[2]-'0')
}

func atoi4(b []byte) int {
	return int(b[0]-'0')*1000 + int(b[1]-'0')*100 + int(b[2]-'0')*10 + int(b[3]-'0')
}

func isqrt(n int) int {
	for i := 0; i <= 9; i++ {
		if i*i == n {
			return i
		}
	}
	return 0
}

func heightDigit(feet int) int {
	for i := 0; i <= 9; i++ {
		if 10<<i == feet {
			return i
		}
	}
	return 0
}

func directivityFor(digit byte) string {
	if digit >= '0' && digit <= '8' {
		return directivityByDigit[digit-'0']
	}
	return ""
}

func directivityDigit(dir string) string {
	for i, d := range directivityByDigit {
		if d == dir {
			return string(rune('0' + i))
		}
	}
	return "0"
}
