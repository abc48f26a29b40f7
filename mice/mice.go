// Package mice decodes Mic-E position reports: APRS's most compact
// encoding, which smuggles latitude and status bits into the AX.25
// destination callsign and packs longitude/course/speed into the first
// bytes of the information field.
//
// spec.md lists Mic-E (DTI '`' and '\'') as not required — the repository
// this spec distills from does not support it — but names it as an open
// question implementations may address. This package supplements the
// typed information fields with it, grounded on the Mic-E destination-
// address decoding table used throughout the APRS ecosystem.
package mice

import (
	"fmt"
	"math"
	"strings"

	"github.com/kc2g/aprscore/position"
)

// MessageType identifies the 3-bit standard or custom Mic-E status code
// packed into the destination callsign.
type MessageType int

const (
	MsgOffDuty MessageType = iota
	MsgEnRoute
	MsgInService
	MsgReturning
	MsgCommitted
	MsgSpecial
	MsgPriority
	MsgEmergency
	MsgUnknown
)

var standardMessages = map[string]MessageType{
	"111": MsgOffDuty,
	"110": MsgEnRoute,
	"101": MsgInService,
	"100": MsgReturning,
	"011": MsgCommitted,
	"010": MsgSpecial,
	"001": MsgPriority,
	"000": MsgEmergency,
}

// Report is a decoded Mic-E position report.
type Report struct {
	Position     position.Position
	MessageType  MessageType
	CustomFormat bool // true if the message bits used the custom (not standard) table
	Course       int
	SpeedKnots   float64
	Comment      string
}

// MiceError reports a malformed Mic-E destination address or information
// field.
type MiceError struct {
	Msg string
}

func (e *MiceError) Error() string { return "aprs: mic-e error: " + e.Msg }

// Decode parses a Mic-E report from the 6-character destination callsign
// base (SSID stripped) and the information field bytes starting after the
// DTI ('`' or '\'').
func Decode(destBase string, info []byte) (Report, error) {
	if len(destBase) != 6 {
		return Report{}, &MiceError{Msg: "destination callsign base must be 6 characters"}
	}
	if len(info) < 8 {
		return Report{}, &MiceError{Msg: "information field too short"}
	}

	lat, ambiguity, msgBits, custom, err := decodeDestLatitude(destBase)
	if err != nil {
		return Report{}, err
	}

	lon, err := decodeLongitude(info[0], info[1], info[2], destBase[4], destBase[5])
	if err != nil {
		return Report{}, err
	}

	speed, course := decodeSpeedCourse(info[3], info[4], info[5])

	symbolCode := info[6]
	symbolTable := info[7]

	msgType := MsgUnknown
	if mt, ok := standardMessages[msgBits]; ok {
		msgType = mt
	}

	p := position.Position{
		Latitude:    lat,
		Longitude:   lon,
		Ambiguity:   ambiguity,
		SymbolTable: symbolTable,
		SymbolCode:  symbolCode,
	}

	comment := ""
	if len(info) > 8 {
		comment = string(info[8:])
	}

	return Report{
		Position:     p,
		MessageType:  msgType,
		CustomFormat: custom,
		Course:       course,
		SpeedKnots:   speed,
		Comment:      comment,
	}, nil
}

// decodeDestLatitude implements the "Mic-E Destination Address Field
// Encoding" table: each of the 6 destination-base characters carries a
// latitude digit (or ambiguity space) plus one of three status bits.
func decodeDestLatitude(base string) (lat float64, ambiguity int, msgBits string, custom bool, err error) {
	digits := make([]byte, 6)
	var bits strings.Builder

	for i := 0; i < 6; i++ {
		c := base[i]

		// Only the first three characters carry a message bit; the rest
		// encode the latitude digit (or ambiguity space) alone.
		var bit byte
		switch {
		case c >= '0' && c <= '9':
			digits[i] = c
			bit = '0'
		case c == 'A' || c == 'B' || c == 'C':
			digits[i] = c - 'A' + '0'
			bit = '1'
			custom = true
		case c == 'D' || c == 'E' || c == 'F':
			digits[i] = c - 'D' + '0'
			bit = '1'
		case c == 'G' || c == 'H' || c == 'I':
			digits[i] = c - 'G' + '0'
			bit = '2'
			custom = true
		case c == 'J' || c == 'K' || c == 'L':
			if c == 'K' || c == 'L' {
				digits[i] = ' '
			} else {
				digits[i] = '0'
			}
			bit = '2'
		case c == 'P' || (c >= 'Q' && c <= 'Y'):
			digits[i] = c - 'P' + '0'
			bit = '1'
			custom = true
		case c == 'Z':
			digits[i] = ' '
			bit = '2'
			custom = true
		default:
			err = &MiceError{Msg: fmt.Sprintf("invalid destination character %q", c)}
			return
		}

		if i < 3 {
			bits.WriteByte(bit)
		}
	}

	digitStr := string(digits)

	ambiguity = 0
	for i := 5; i >= 0 && digitStr[i] == ' '; i-- {
		ambiguity++
	}

	filled := []byte(digitStr)
	for i := range filled {
		if filled[i] == ' ' {
			filled[i] = '5'
		}
	}

	deg := int(filled[0]-'0')*10 + int(filled[1]-'0')
	min := float64(filled[2]-'0')*10 + float64(filled[3]-'0') + float64(filled[4]-'0')*0.1 + float64(filled[5]-'0')*0.01

	lat = float64(deg) + min/60
	if base[3] <= 'L' { // per the table, base[3] < 'P' indicates south
		lat = -lat
	}

	msgBits = bits.String()

	return lat, ambiguity, msgBits, custom, nil
}

func decodeLongitude(b0, b1, b2, destD, destE byte) (float64, error) {
	lon := float64(b0) - 28
	if destD >= 'P' {
		lon += 100
	}
	if lon >= 180 && lon <= 189 {
		lon -= 80
	} else if lon >= 190 && lon <= 199 {
		lon -= 190
	}

	minutes := float64(b1) - 28
	if minutes >= 60 {
		minutes -= 60
	}
	minutes += (float64(b2) - 28) / 100

	lon += minutes / 60

	if destE >= 'P' {
		lon = -lon
	}

	return lon, nil
}

func decodeSpeedCourse(b3, b4, b5 byte) (speedKnots float64, course int) {
	speed := (float64(b3) - 28) * 10
	crs := float64(b4) - 28

	quotient := math.Floor(crs / 10)
	crs -= quotient * 10
	crs = crs*100 + float64(b5) - 28
	speed += quotient

	if speed >= 800 {
		speed -= 800
	}
	if crs >= 400 {
		crs -= 400
	}

	return speed, int(crs)
}
