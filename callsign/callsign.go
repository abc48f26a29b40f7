// Package callsign holds the APRS primitives: station callsigns, AX.25
// address encoding, base-91 integers, frame-check sequences and the
// decimal-degree conversions shared by the position codec.
package callsign

import (
	"fmt"
	"strconv"
	"strings"
)

// Callsign is an amateur-radio station identifier: a 1-6 character
// alphanumeric base plus an optional SSID (0-15) and an AX.25 path "heard"
// flag. It is an immutable value; build one with New or ParseTNC2.
type Callsign struct {
	Base  string
	SSID  int
	Heard bool
}

// AddressError reports a malformed callsign or AX.25 address octet group.
type AddressError struct {
	Offset int
	Bytes  []byte
	Msg    string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("aprs: address error at offset %d: %s (%q)", e.Offset, e.Msg, e.Bytes)
}

func isBaseChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// New validates base and ssid and constructs a Callsign. base is
// upper-cased automatically; it must be 1-6 alphanumerics after that and
// ssid must be in [0,15].
func New(base string, ssid int, heard bool) (Callsign, error) {
	base = strings.ToUpper(strings.TrimSpace(base))

	if len(base) < 1 || len(base) > 6 {
		return Callsign{}, &AddressError{Bytes: []byte(base), Msg: "base must be 1-6 characters"}
	}

	for _, r := range base {
		if !isBaseChar(r) {
			return Callsign{}, &AddressError{Bytes: []byte(base), Msg: "base must be upper-alphanumeric"}
		}
	}

	if ssid < 0 || ssid > 15 {
		return Callsign{}, &AddressError{Bytes: []byte(base), Msg: "ssid out of range [0,15]"}
	}

	return Callsign{Base: base, SSID: ssid, Heard: heard}, nil
}

// String renders BASE-SSID, omitting "-0".
func (c Callsign) String() string {
	if c.SSID == 0 {
		return c.Base
	}
	return fmt.Sprintf("%s-%d", c.Base, c.SSID)
}

// ParseTNC2 parses the textual TNC2 callsign form BASE[-SSID][*], where a
// trailing '*' marks the heard (repeated) flag on a digipeater path entry.
func ParseTNC2(s string) (Callsign, error) {
	heard := false
	if strings.HasSuffix(s, "*") {
		heard = true
		s = s[:len(s)-1]
	}

	base := s
	ssid := 0

	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		base = s[:idx]
		ssidStr := s[idx+1:]

		n, err := strconv.Atoi(ssidStr)
		if err != nil {
			return Callsign{}, &AddressError{Bytes: []byte(s), Msg: "malformed SSID"}
		}
		ssid = n
	}

	return New(base, ssid, heard)
}

// TNC2 renders the callsign in TNC2 text form, including the trailing '*'
// when Heard is set.
func (c Callsign) TNC2() string {
	s := c.String()
	if c.Heard {
		s += "*"
	}
	return s
}

const addressLen = 7

// ParseAX25Address decodes one 7-byte AX.25 address octet group. It
// returns the Callsign, whether the extension bit (bit 0 of the last
// octet) was set — meaning this is the final address in the header — and
// any error.
func ParseAX25Address(b [addressLen]byte) (cs Callsign, last bool, err error) {
	var baseRunes [6]byte
	for i := 0; i < 6; i++ {
		baseRunes[i] = b[i] >> 1
	}
	base := strings.TrimRight(string(baseRunes[:]), " ")

	if base == "" {
		return Callsign{}, false, &AddressError{Bytes: b[:], Msg: "empty callsign base"}
	}

	for _, r := range base {
		if !isBaseChar(r) {
			return Callsign{}, false, &AddressError{Bytes: b[:], Msg: "base must be upper-alphanumeric"}
		}
	}

	ssidOctet := b[6]
	ssid := int(ssidOctet>>1) & 0x0F
	heard := ssidOctet&0x80 != 0
	last = ssidOctet&0x01 != 0

	cs = Callsign{Base: base, SSID: ssid, Heard: heard}

	return cs, last, nil
}

// EncodeAX25Address is the inverse of ParseAX25Address: it shifts the
// base left one bit, space-pads to 6 characters, and packs SSID/H-bit/
// extension-bit into the 7th octet. last sets the AX.25 extension bit,
// which must be set on exactly the final address in a header.
func EncodeAX25Address(c Callsign, last bool) [addressLen]byte {
	var out [addressLen]byte

	padded := c.Base
	if len(padded) < 6 {
		padded += strings.Repeat(" ", 6-len(padded))
	}

	for i := 0; i < 6; i++ {
		out[i] = padded[i] << 1
	}

	ssidOctet := byte(0x60) | byte(c.SSID<<1) // RR bits = 11 per spec
	if c.Heard {
		ssidOctet |= 0x80
	}
	if last {
		ssidOctet |= 0x01
	}
	out[6] = ssidOctet

	return out
}
