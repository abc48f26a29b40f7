// Package tnc2 decodes and encodes the APRS-IS textual wire format:
// SRC>DEST,PATH:INFO lines, plus the server's "# comment" lines and
// login command, grounded on the teacher's igate.go client.
package tnc2

import (
	"fmt"
	"strings"

	"github.com/kc2g/aprscore/callsign"
)

// Line is a decoded TNC2 packet: the address header plus raw info field
// bytes. Further interpretation of Info is left to the infofield package.
type Line struct {
	Source      callsign.Callsign
	Destination callsign.Callsign
	Path        []callsign.Callsign
	Info        string
}

// TNC2Error reports a malformed TNC2 text line.
type TNC2Error struct {
	Raw string
	Msg string
}

func (e *TNC2Error) Error() string {
	return fmt.Sprintf("aprs: tnc2 error: %s (%q)", e.Msg, e.Raw)
}

// ServerComment is an APRS-IS server line beginning with '#' — login
// banners, keepalives, and status comments. Servers send these instead
// of packet lines outside of the data stream proper.
type ServerComment struct {
	Text string
}

// DecodeLine parses one TNC2 text line: "SRC>DEST,PATH:INFO". A line
// beginning with '#' is returned as a ServerComment via DecodeServerLine
// instead; callers should check for that prefix before calling DecodeLine.
func DecodeLine(raw string) (Line, error) {
	raw = strings.TrimRight(raw, "\r\n")

	colon := strings.IndexByte(raw, ':')
	if colon < 0 {
		return Line{}, &TNC2Error{Raw: raw, Msg: "missing ':' separating header from information field"}
	}

	header := raw[:colon]
	info := raw[colon+1:]

	gt := strings.IndexByte(header, '>')
	if gt < 0 {
		return Line{}, &TNC2Error{Raw: raw, Msg: "missing '>' separating source from destination/path"}
	}

	srcStr := header[:gt]
	rest := header[gt+1:]

	src, err := callsign.ParseTNC2(srcStr)
	if err != nil {
		return Line{}, &TNC2Error{Raw: raw, Msg: "bad source callsign: " + err.Error()}
	}

	fields := strings.Split(rest, ",")
	if len(fields) == 0 || fields[0] == "" {
		return Line{}, &TNC2Error{Raw: raw, Msg: "missing destination"}
	}

	dest, err := callsign.ParseTNC2(fields[0])
	if err != nil {
		return Line{}, &TNC2Error{Raw: raw, Msg: "bad destination callsign: " + err.Error()}
	}

	path := make([]callsign.Callsign, 0, len(fields)-1)
	for _, hop := range fields[1:] {
		if hop == "" {
			continue
		}
		cs, err := callsign.ParseTNC2(hop)
		if err != nil {
			return Line{}, &TNC2Error{Raw: raw, Msg: "bad path callsign: " + err.Error()}
		}
		path = append(path, cs)
	}

	return Line{Source: src, Destination: dest, Path: path, Info: info}, nil
}

// EncodeLine renders l in TNC2 text form.
func EncodeLine(l Line) string {
	var b strings.Builder
	b.WriteString(l.Source.String())
	b.WriteByte('>')
	b.WriteString(l.Destination.TNC2())
	for _, hop := range l.Path {
		b.WriteByte(',')
		b.WriteString(hop.TNC2())
	}
	b.WriteByte(':')
	b.WriteString(l.Info)
	return b.String()
}

// IsServerComment reports whether raw is an APRS-IS server comment line
// rather than a packet line.
func IsServerComment(raw string) bool {
	return strings.HasPrefix(raw, "#")
}

// DecodeServerLine strips the leading '#' (and following space, if any)
// from an APRS-IS server comment line.
func DecodeServerLine(raw string) ServerComment {
	raw = strings.TrimRight(raw, "\r\n")
	text := strings.TrimPrefix(raw, "#")
	text = strings.TrimPrefix(text, " ")
	return ServerComment{Text: text}
}

// LoginLine renders the APRS-IS client login command: "user CALL pass
// PASSCODE vers SOFTWARE VERSION[ filter FILTER]". An empty filter omits
// the filter clause entirely.
func LoginLine(call callsign.Callsign, passcode int, software string, version string, filter string) string {
	s := fmt.Sprintf("user %s pass %d vers %s %s", call.String(), passcode, software, version)
	if filter != "" {
		s += " filter " + filter
	}
	return s
}
