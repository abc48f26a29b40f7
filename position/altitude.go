package position

import "regexp"

// altitudeRe matches the /A=dddddd altitude-in-comment token: six decimal
// digits in feet, optionally negative (a leading '-' takes the place of
// one leading digit).
var altitudeRe = regexp.MustCompile(`/A=(-[0-9]{5}|[0-9]{6})`)

// LiftAltitude scans comment for the first /A=dddddd token, removing it
// and returning the altitude in feet alongside the remaining comment. Any
// later token is left in the comment. If no token is found, comment is
// returned unchanged with a nil altitude.
func LiftAltitude(comment []byte) (*int, []byte) {
	loc := altitudeRe.FindSubmatchIndex(comment)
	if loc == nil {
		return nil, comment
	}

	digits := string(comment[loc[2]:loc[3]])

	feet := 0
	neg := false
	for i, c := range digits {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		feet = feet*10 + int(c-'0')
	}
	if neg {
		feet = -feet
	}

	out := make([]byte, 0, len(comment)-(loc[1]-loc[0]))
	out = append(out, comment[:loc[0]]...)
	out = append(out, comment[loc[1]:]...)

	return &feet, out
}

// InjectAltitude renders the /A=dddddd token for alt and prepends it to
// comment, matching the placement decoders expect to find it in.
func InjectAltitude(alt int, comment []byte) []byte {
	token := formatAltitudeToken(alt)
	out := make([]byte, 0, len(token)+len(comment))
	out = append(out, token...)
	out = append(out, comment...)
	return out
}

func formatAltitudeToken(alt int) string {
	neg := alt < 0
	if neg {
		alt = -alt
	}

	digits := itoaPad(alt, 6)
	if neg {
		// A negative six-digit field has no room for a sign; the spec's
		// encoding drops the most significant digit to make room.
		digits = "-" + digits[1:]
	}

	return "/A=" + digits
}

func itoaPad(n, width int) string {
	s := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		s[i] = byte('0' + n%10)
		n /= 10
	}
	return string(s)
}
