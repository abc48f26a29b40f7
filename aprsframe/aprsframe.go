// Package aprsframe is the top-level facade: an APRSFrame couples an
// AX.25 (or TNC2) envelope with its typed information field, mirroring
// the way the teacher's decode_aprs() sits on top of ax25_pad's packet_t.
package aprsframe

import (
	"fmt"

	"github.com/kc2g/aprscore/ax25"
	"github.com/kc2g/aprscore/callsign"
	"github.com/kc2g/aprscore/infofield"
	"github.com/kc2g/aprscore/position"
	"github.com/kc2g/aprscore/tnc2"
)

// APRSFrame is a fully decoded APRS packet: its link-layer envelope plus
// the typed information field it carried.
type APRSFrame struct {
	Destination callsign.Callsign
	Source      callsign.Callsign
	Path        []callsign.Callsign
	Info        infofield.InformationField
}

// EncodingError reports a failure to encode an APRSFrame — typically an
// InformationField variant with no wire encoding.
type EncodingError struct {
	Msg string
}

func (e *EncodingError) Error() string { return "aprs: encoding error: " + e.Msg }

// DecodeAX25 decodes a raw AX.25 frame (see ax25.Decode) and dispatches
// its information field. If the information field fails a typed decode,
// the failure is recovered locally and an infofield.Raw is substituted,
// matching decode_aprs's "unknown data type" fallback rather than
// failing the whole frame.
func DecodeAX25(b []byte, withFCS bool) (APRSFrame, error) {
	f, err := ax25.Decode(b, withFCS)
	if err != nil {
		if _, ok := err.(*ax25.FrameCheckError); !ok {
			return APRSFrame{}, err
		}
	}

	info := decodeInfoWithRecovery(f.Info)

	return APRSFrame{
		Destination: f.Destination,
		Source:      f.Source,
		Path:        f.Path,
		Info:        info,
	}, err
}

// DecodeTNC2 decodes a TNC2 text line and dispatches its information
// field with the same local-recovery policy as DecodeAX25.
func DecodeTNC2(text string) (APRSFrame, error) {
	l, err := tnc2.DecodeLine(text)
	if err != nil {
		return APRSFrame{}, err
	}

	info := decodeInfoWithRecovery([]byte(l.Info))

	return APRSFrame{
		Destination: l.Destination,
		Source:      l.Source,
		Path:        l.Path,
		Info:        info,
	}, nil
}

func decodeInfoWithRecovery(raw []byte) infofield.InformationField {
	info, err := infofield.Decode(raw)
	if err != nil {
		dti := byte(0)
		if len(raw) > 0 {
			dti = raw[0]
		}
		return infofield.Raw{Dti: dti, Body: string(raw)}
	}
	return info
}

// EncodeAX25 renders f as a raw AX.25 UI frame. withFCS appends the
// CRC-16/X.25 frame check sequence.
func EncodeAX25(f APRSFrame, withFCS bool) ([]byte, error) {
	infoBytes, err := encodeInfo(f.Info)
	if err != nil {
		return nil, err
	}

	frame := ax25.Frame{
		Destination: f.Destination,
		Source:      f.Source,
		Path:        f.Path,
		Control:     0x03,
		PID:         0xF0,
		Info:        infoBytes,
	}

	if withFCS {
		return frame.EncodeWithFCS(), nil
	}
	return frame.Encode(), nil
}

// EncodeTNC2 renders f as a TNC2 text line.
func EncodeTNC2(f APRSFrame) (string, error) {
	infoBytes, err := encodeInfo(f.Info)
	if err != nil {
		return "", err
	}

	l := tnc2.Line{
		Destination: f.Destination,
		Source:      f.Source,
		Path:        f.Path,
		Info:        string(infoBytes),
	}
	return tnc2.EncodeLine(l), nil
}

func encodeInfo(f infofield.InformationField) ([]byte, error) {
	switch v := f.(type) {
	case infofield.Raw:
		return append([]byte{v.Dti}, v.Body...), nil

	case infofield.PositionReport:
		body, err := encodePosition(v.Position)
		if err != nil {
			return nil, err
		}
		comment := []byte(v.Comment)
		if v.Altitude != nil {
			comment = position.InjectAltitude(*v.Altitude, comment)
		}
		var out []byte
		out = append(out, v.Dti)
		if v.Timestamp != nil {
			out = append(out, v.Timestamp.Encode()...)
		}
		out = append(out, body...)
		out = append(out, comment...)
		return out, nil

	case infofield.ObjectReport:
		body, err := encodePosition(v.Position)
		if err != nil {
			return nil, err
		}
		live := byte('_')
		if v.Live {
			live = '*'
		}
		comment := []byte(v.Comment)
		if v.Altitude != nil {
			comment = position.InjectAltitude(*v.Altitude, comment)
		}
		var out []byte
		out = append(out, ';')
		out = append(out, padName(v.Name, 9)...)
		out = append(out, live)
		out = append(out, v.Timestamp.Encode()...)
		out = append(out, body...)
		out = append(out, comment...)
		return out, nil

	case infofield.ItemReport:
		body, err := encodePosition(v.Position)
		if err != nil {
			return nil, err
		}
		live := byte('_')
		if v.Live {
			live = '!'
		}
		comment := []byte(v.Comment)
		if v.Altitude != nil {
			comment = position.InjectAltitude(*v.Altitude, comment)
		}
		var out []byte
		out = append(out, ')')
		out = append(out, v.Name...)
		out = append(out, live)
		out = append(out, body...)
		out = append(out, comment...)
		return out, nil

	case infofield.Message:
		s := ":" + padName(v.Addressee, 9) + ":"
		switch {
		case v.IsAck:
			s += "ack" + v.Number
		case v.IsRej:
			s += "rej" + v.Number
		case v.Number != "":
			s += v.Text + "{" + v.Number
		default:
			s += v.Text
		}
		return []byte(s), nil

	case infofield.StatusReport:
		s := ">"
		if v.Timestamp != nil {
			s += v.Timestamp.Encode()
		}
		s += v.Status
		return []byte(s), nil

	case nil:
		return nil, &EncodingError{Msg: "frame has no information field to encode"}

	default:
		return nil, &EncodingError{Msg: fmt.Sprintf("unsupported information field variant %T for encoding", v)}
	}
}

func encodePosition(p position.Position) (string, error) {
	if p.Compressed {
		return position.EncodeCompressed(p)
	}
	return position.EncodeUncompressed(p)
}

func padName(name string, width int) string {
	if len(name) >= width {
		return name[:width]
	}
	return name + spaces(width-len(name))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
