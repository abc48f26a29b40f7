// Package timestamp decodes and encodes the four APRS timestamp formats
// that appear in position, object and status reports.
package timestamp

import (
	"fmt"
)

// Variant identifies which of the four APRS timestamp layouts a Stamp
// holds.
type Variant int

const (
	// DHMZ is day/hour/minute, UTC, selected by a trailing 'z'.
	DHMZ Variant = iota
	// DHML is day/hour/minute, local time, selected by a trailing '/'.
	DHML
	// HMS is hour/minute/second, UTC, selected by a trailing 'h'.
	HMS
	// MDHM is month/day/hour/minute, no suffix character (8 digits).
	MDHM
)

// Stamp is an immutable APRS timestamp. Only the fields relevant to its
// Variant are meaningful: DHMZ/DHML use Day/Hour/Minute, HMS uses
// Hour/Minute/Second, MDHM uses Month/Day/Hour/Minute.
type Stamp struct {
	Variant Variant
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
}

// TimestampError reports an out-of-range component or unrecognised
// variant suffix.
type TimestampError struct {
	Raw []byte
	Msg string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("aprs: timestamp error: %s (%q)", e.Msg, e.Raw)
}

// Decode parses the 7-or-8 byte timestamp that follows certain DTIs. The
// 7th character (or absence of one, for the 8-char MDHM form) selects the
// Variant per the spec:
//
//	z -> DHMZ (DDHHMM)
//	/ -> DHML (DDHHMM)
//	h -> HMS  (HHMMSS)
//	digit, 8 bytes total -> MDHM (MMDDHHMM)
func Decode(raw []byte) (Stamp, error) {
	switch len(raw) {
	case 7:
		return decode7(raw)
	case 8:
		return decodeMDHM(raw)
	default:
		return Stamp{}, &TimestampError{Raw: raw, Msg: fmt.Sprintf("timestamp must be 7 or 8 bytes, got %d", len(raw))}
	}
}

func decode7(raw []byte) (Stamp, error) {
	suffix := raw[6]

	var variant Variant
	switch suffix {
	case 'z':
		variant = DHMZ
	case '/':
		variant = DHML
	case 'h':
		variant = HMS
	default:
		return Stamp{}, &TimestampError{Raw: raw, Msg: fmt.Sprintf("unknown timestamp suffix %q", suffix)}
	}

	a, err := digits2(raw[0:2])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	b, err := digits2(raw[2:4])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	c, err := digits2(raw[4:6])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}

	switch variant {
	case DHMZ, DHML:
		if err := validateRange("day", a, 1, 31); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		if err := validateRange("hour", b, 0, 23); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		if err := validateRange("minute", c, 0, 59); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		return Stamp{Variant: variant, Day: a, Hour: b, Minute: c}, nil
	case HMS:
		if err := validateRange("hour", a, 0, 23); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		if err := validateRange("minute", b, 0, 59); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		if err := validateRange("second", c, 0, 59); err != nil {
			return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
		}
		return Stamp{Variant: HMS, Hour: a, Minute: b, Second: c}, nil
	}

	panic("unreachable")
}

func decodeMDHM(raw []byte) (Stamp, error) {
	month, err := digits2(raw[0:2])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	day, err := digits2(raw[2:4])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	hour, err := digits2(raw[4:6])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	minute, err := digits2(raw[6:8])
	if err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}

	if err := validateRange("month", month, 1, 12); err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	if err := validateRange("day", day, 1, 31); err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	if err := validateRange("hour", hour, 0, 23); err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}
	if err := validateRange("minute", minute, 0, 59); err != nil {
		return Stamp{}, &TimestampError{Raw: raw, Msg: err.Error()}
	}

	return Stamp{Variant: MDHM, Month: month, Day: day, Hour: hour, Minute: minute}, nil
}

// Encode renders the Stamp in its wire-format width, zero-padding
// day/month as the spec requires.
func (s Stamp) Encode() string {
	switch s.Variant {
	case DHMZ:
		return fmt.Sprintf("%02d%02d%02dz", s.Day, s.Hour, s.Minute)
	case DHML:
		return fmt.Sprintf("%02d%02d%02d/", s.Day, s.Hour, s.Minute)
	case HMS:
		return fmt.Sprintf("%02d%02d%02dh", s.Hour, s.Minute, s.Second)
	case MDHM:
		return fmt.Sprintf("%02d%02d%02d%02d", s.Month, s.Day, s.Hour, s.Minute)
	default:
		return ""
	}
}

func digits2(b []byte) (int, error) {
	if len(b) != 2 || b[0] < '0' || b[0] > '9' || b[1] < '0' || b[1] > '9' {
		return 0, fmt.Errorf("expected 2 digits, got %q", b)
	}
	return int(b[0]-'0')*10 + int(b[1]-'0'), nil
}

func validateRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %d out of range [%d,%d]", name, v, lo, hi)
	}
	return nil
}
