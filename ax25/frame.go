// Package ax25 decodes and encodes AX.25 UI frames: the link-layer
// envelope that carries an APRS information field between destination,
// source, and up to eight digipeater addresses, generalized here from
// the teacher's C.packet_t buffer walk into a plain []byte decoder with
// Go error returns in place of Assert/global error state.
package ax25

import (
	"fmt"

	"github.com/kc2g/aprscore/callsign"
)

const (
	addressLen  = 7
	minAddrs    = 2
	maxAddrs    = 10 // destination + source + up to 8 digipeaters
	controlUI   = 0x03
	pidNoLayer3 = 0xF0
)

// Frame is a decoded AX.25 UI frame.
type Frame struct {
	Destination callsign.Callsign
	Source      callsign.Callsign
	Path        []callsign.Callsign
	Control     byte
	PID         byte
	Info        []byte
	FCS         uint16
	FCSValid    bool
}

// FrameError reports a malformed AX.25 frame.
type FrameError struct {
	Msg string
}

func (e *FrameError) Error() string { return "aprs: ax25 frame error: " + e.Msg }

// FrameCheckError reports a frame whose trailing FCS did not match its
// computed value. The frame is still returned by Decode so callers can
// inspect or log the mismatch.
type FrameCheckError struct {
	Computed  uint16
	Delivered uint16
}

func (e *FrameCheckError) Error() string {
	return fmt.Sprintf("aprs: ax25 frame check sequence mismatch: computed %04X, delivered %04X", e.Computed, e.Delivered)
}

// Decode parses an AX.25 UI frame from b. When withFCS is true, the final
// two bytes of b are consumed as the little-endian frame check sequence
// and checked against the CRC of everything before it; a mismatch is
// returned as a *FrameCheckError alongside the (still populated) Frame,
// so callers may choose to accept or discard it.
func Decode(b []byte, withFCS bool) (Frame, error) {
	var f Frame

	if withFCS {
		if len(b) < 2 {
			return f, &FrameError{Msg: "frame too short to hold a frame check sequence"}
		}
		payload := b[:len(b)-2]
		delivered := callsign.DecodeFCS([2]byte{b[len(b)-2], b[len(b)-1]})
		computed := callsign.ComputeFCS(payload)

		f.FCS = delivered
		f.FCSValid = delivered == computed

		frame, err := decodeAddressesAndInfo(payload)
		if err != nil {
			return f, err
		}
		frame.FCS = f.FCS
		frame.FCSValid = f.FCSValid

		if !f.FCSValid {
			return frame, &FrameCheckError{Computed: computed, Delivered: delivered}
		}
		return frame, nil
	}

	return decodeAddressesAndInfo(b)
}

func decodeAddressesAndInfo(b []byte) (Frame, error) {
	var f Frame

	if len(b) < addressLen*minAddrs+2 {
		return f, &FrameError{Msg: "frame too short to hold two addresses, control and pid"}
	}

	var addrs []callsign.Callsign
	offset := 0

	for {
		if offset+addressLen > len(b) {
			return f, &FrameError{Msg: "address field runs past end of frame"}
		}
		if len(addrs) >= maxAddrs {
			return f, &FrameError{Msg: "too many addresses in header"}
		}

		var octets [addressLen]byte
		copy(octets[:], b[offset:offset+addressLen])

		cs, last, err := callsign.ParseAX25Address(octets)
		if err != nil {
			return f, err
		}

		addrs = append(addrs, cs)
		offset += addressLen

		if last {
			break
		}
	}

	if len(addrs) < minAddrs {
		return f, &FrameError{Msg: "frame must have at least a destination and source address"}
	}

	if offset+2 > len(b) {
		return f, &FrameError{Msg: "frame truncated before control/pid octets"}
	}

	control := b[offset]
	pid := b[offset+1]
	if control != controlUI {
		return f, &FrameError{Msg: fmt.Sprintf("unsupported control field 0x%02X, only UI frames (0x03) are decoded", control)}
	}
	if pid != pidNoLayer3 {
		return f, &FrameError{Msg: fmt.Sprintf("unsupported PID 0x%02X, only no-layer-3 (0xF0) is decoded", pid)}
	}

	f.Destination = addrs[0]
	f.Source = addrs[1]
	f.Path = addrs[2:]
	f.Control = control
	f.PID = pid
	f.Info = append([]byte(nil), b[offset+2:]...)

	return f, nil
}

// Encode renders the frame as a raw AX.25 byte sequence: addresses,
// control, pid, and information field, WITHOUT a trailing frame check
// sequence. Use EncodeWithFCS to append one.
func (f Frame) Encode() []byte {
	out := make([]byte, 0, addressLen*(2+len(f.Path))+2+len(f.Info))

	out = append(out, encodeAddress(f.Destination, false)...)

	last := len(f.Path) == 0
	out = append(out, encodeAddress(f.Source, last)...)

	for i, hop := range f.Path {
		isLast := i == len(f.Path)-1
		out = append(out, encodeAddress(hop, isLast)...)
	}

	control := f.Control
	if control == 0 {
		control = controlUI
	}
	pid := f.PID
	if pid == 0 {
		pid = pidNoLayer3
	}

	out = append(out, control, pid)
	out = append(out, f.Info...)

	return out
}

// EncodeWithFCS renders the frame followed by its CRC-16/X.25 frame
// check sequence, as carried over the air or a KISS TNC link.
func (f Frame) EncodeWithFCS() []byte {
	payload := f.Encode()
	fcs := callsign.ComputeFCS(payload)
	enc := callsign.EncodeFCS(fcs)
	return append(payload, enc[0], enc[1])
}

func encodeAddress(c callsign.Callsign, last bool) [addressLen]byte {
	return callsign.EncodeAX25Address(c, last)
}
