package callsign

import "fmt"

// Base91Min and Base91Max bound the printable ASCII range APRS uses for
// base-91 digits: '!' (33) through '{' (123).
const (
	Base91Min = '!'
	Base91Max = '{'
	base91Radix = Base91Max - Base91Min + 1 // 91
)

// EncodeBase91 renders n as width base-91 digits in [Base91Min,Base91Max],
// most significant digit first. Used for compressed latitude/longitude
// (width 4), course/speed and altitude (width 2).
func EncodeBase91(n uint32, width int) string {
	out := make([]byte, width)

	for i := width - 1; i >= 0; i-- {
		out[i] = byte(Base91Min + n%base91Radix)
		n /= base91Radix
	}

	return string(out)
}

// DecodeBase91 parses a base-91 digit string back into its integer value.
func DecodeBase91(s string) (uint32, error) {
	var n uint32

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < Base91Min || c > Base91Max {
			return 0, fmt.Errorf("aprs: byte %d (%q) outside base-91 range", i, c)
		}
		n = n*base91Radix + uint32(c-Base91Min)
	}

	return n, nil
}
