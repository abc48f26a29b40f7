// Package infofield dispatches an APRS information field on its leading
// Data Type Indicator byte into a typed report, generalizing the
// teacher's giant decode_aprs switch-on-pinfo[0] into a small Go type
// switch over concrete report structs.
package infofield

import (
	"bytes"
	"regexp"

	"github.com/kc2g/aprscore/position"
	"github.com/kc2g/aprscore/timestamp"
)

// InformationField is implemented by every typed report this package
// produces: PositionReport, ObjectReport, ItemReport, Message,
// StatusReport, and Raw.
type InformationField interface {
	DTI() byte
}

// InformationFieldError reports a malformed information field.
type InformationFieldError struct {
	Raw []byte
	Msg string
}

func (e *InformationFieldError) Error() string {
	return "aprs: information field error: " + e.Msg
}

// PositionReport is a '!', '=', '/' or '@' report: a position, optionally
// timestamped, optionally messaging-capable.
type PositionReport struct {
	Dti         byte
	Messaging   bool
	Timestamp   *timestamp.Stamp
	Position    position.Position
	Comment     string
	Altitude    *int
}

func (p PositionReport) DTI() byte { return p.Dti }

// ObjectReport is a ';' report.
type ObjectReport struct {
	Name     string
	Live     bool
	Timestamp timestamp.Stamp
	Position position.Position
	Comment  string
	Altitude *int
}

func (ObjectReport) DTI() byte { return ';' }

// ItemReport is a ')' report.
type ItemReport struct {
	Name     string
	Live     bool
	Position position.Position
	Comment  string
	Altitude *int
}

func (ItemReport) DTI() byte { return ')' }

// Message is a ':' report: APRS messaging, addressed to a 9-character
// (space-padded) addressee, with an optional message number for ACK/REJ
// correlation.
type Message struct {
	Addressee string
	Text      string
	Number    string // empty if none
	IsAck     bool
	IsRej     bool
}

func (Message) DTI() byte { return ':' }

// StatusReport is a '>' report: free-text status, optionally prefixed
// with a DDHHMMz timestamp.
type StatusReport struct {
	Timestamp *timestamp.Stamp
	Status    string
}

func (StatusReport) DTI() byte { return '>' }

// Raw is any information field this package does not parse structurally:
// the DTI byte and the field verbatim.
type Raw struct {
	Dti  byte
	Body string
}

func (r Raw) DTI() byte { return r.Dti }

var badAddresseeRe = regexp.MustCompile(`[A-Z0-9]+ +-[0-9]`)

// Decode dispatches info (the AX.25 frame's information field, DTI byte
// first) to a typed InformationField.
func Decode(info []byte) (InformationField, error) {
	if len(info) == 0 {
		return nil, &InformationFieldError{Msg: "empty information field"}
	}

	dti := info[0]
	body := info[1:]

	switch dti {
	case '!', '=':
		return decodePositionNoTime(dti, body)
	case '/', '@':
		return decodePositionWithTime(dti, body)
	case ';':
		return decodeObject(body)
	case ')':
		return decodeItem(body)
	case ':':
		return decodeMessage(body)
	case '>':
		return decodeStatus(body)
	default:
		return Raw{Dti: dti, Body: string(body)}, nil
	}
}

func decodePositionNoTime(dti byte, body []byte) (PositionReport, error) {
	p, n, err := position.Decode(body)
	if err != nil {
		return PositionReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}
	comment := body[n:]

	ext, rest := position.DecodeExtension(comment)
	if ext != nil {
		p.Extension = ext
		comment = rest
	}

	alt, rest2 := position.LiftAltitude(comment)

	return PositionReport{
		Dti:       dti,
		Messaging: dti == '=',
		Position:  p,
		Comment:   string(rest2),
		Altitude:  alt,
	}, nil
}

func decodePositionWithTime(dti byte, body []byte) (PositionReport, error) {
	if len(body) < 7 {
		return PositionReport{}, &InformationFieldError{Raw: body, Msg: "timestamped position field too short for timestamp"}
	}

	ts, err := timestamp.Decode(body[:7])
	if err != nil {
		return PositionReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}

	rest := body[7:]
	p, n, err := position.Decode(rest)
	if err != nil {
		return PositionReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}
	comment := rest[n:]

	ext, crest := position.DecodeExtension(comment)
	if ext != nil {
		p.Extension = ext
		comment = crest
	}

	alt, crest2 := position.LiftAltitude(comment)

	return PositionReport{
		Dti:       dti,
		Messaging: dti == '@',
		Timestamp: &ts,
		Position:  p,
		Comment:   string(crest2),
		Altitude:  alt,
	}, nil
}

func decodeObject(body []byte) (ObjectReport, error) {
	if len(body) < 10 {
		return ObjectReport{}, &InformationFieldError{Raw: body, Msg: "object field too short for name"}
	}

	name := string(bytes.TrimRight(body[:9], " "))
	liveByte := body[9]

	var live bool
	switch liveByte {
	case '*':
		live = true
	case '_':
		live = false
	default:
		return ObjectReport{}, &InformationFieldError{Raw: body, Msg: "object field missing live/killed marker"}
	}

	rest := body[10:]
	if len(rest) < 7 {
		return ObjectReport{}, &InformationFieldError{Raw: body, Msg: "object field too short for timestamp"}
	}
	ts, err := timestamp.Decode(rest[:7])
	if err != nil {
		return ObjectReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}

	posBytes := rest[7:]
	p, n, err := position.Decode(posBytes)
	if err != nil {
		return ObjectReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}
	comment := posBytes[n:]

	ext, crest := position.DecodeExtension(comment)
	if ext != nil {
		p.Extension = ext
		comment = crest
	}
	alt, crest2 := position.LiftAltitude(comment)

	return ObjectReport{
		Name:      name,
		Live:      live,
		Timestamp: ts,
		Position:  p,
		Comment:   string(crest2),
		Altitude:  alt,
	}, nil
}

func decodeItem(body []byte) (ItemReport, error) {
	idx := bytes.IndexAny(body, "!_")
	if idx < 3 || idx > 9 {
		return ItemReport{}, &InformationFieldError{Raw: body, Msg: "item field missing live/killed marker"}
	}

	name := string(body[:idx])
	live := body[idx] == '!'

	rest := body[idx+1:]
	p, n, err := position.Decode(rest)
	if err != nil {
		return ItemReport{}, &InformationFieldError{Raw: body, Msg: err.Error()}
	}
	comment := rest[n:]

	ext, crest := position.DecodeExtension(comment)
	if ext != nil {
		p.Extension = ext
		comment = crest
	}
	alt, crest2 := position.LiftAltitude(comment)

	return ItemReport{
		Name:     name,
		Live:     live,
		Position: p,
		Comment:  string(crest2),
		Altitude: alt,
	}, nil
}

func decodeMessage(body []byte) (Message, error) {
	if len(body) < 10 || body[9] != ':' {
		return Message{}, &InformationFieldError{Raw: body, Msg: "message field must have a 9-character addressee followed by ':'"}
	}

	addressee := bytes.TrimRight(body[:9], " ")
	if badAddresseeRe.Match(addressee) {
		return Message{}, &InformationFieldError{Raw: body, Msg: "malformed addressee with space before SSID"}
	}

	text := body[10:]

	m := Message{Addressee: string(addressee)}

	switch {
	case bytes.HasPrefix(text, []byte("ack")):
		m.IsAck = true
		m.Number = string(bytes.TrimRight(text[3:], "}"))
	case bytes.HasPrefix(text, []byte("rej")):
		m.IsRej = true
		m.Number = string(bytes.TrimRight(text[3:], "}"))
	default:
		if idx := bytes.LastIndexByte(text, '{'); idx >= 0 {
			m.Text = string(text[:idx])
			m.Number = string(text[idx+1:])
		} else {
			m.Text = string(text)
		}
	}

	return m, nil
}

func decodeStatus(body []byte) (StatusReport, error) {
	if len(body) >= 7 && body[6] == 'z' {
		if ts, err := timestamp.Decode(body[:7]); err == nil {
			return StatusReport{Timestamp: &ts, Status: string(body[7:])}, nil
		}
	}
	return StatusReport{Status: string(body)}, nil
}
