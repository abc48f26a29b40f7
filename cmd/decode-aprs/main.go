// Command decode-aprs reads TNC2-format APRS lines, one per line, from
// stdin or a named file and prints a human-readable decode of each,
// modeled on the teacher's cmd/decode_aprs (DecodeAPRSLine) but routed
// through the aprsframe facade instead of cgo's decode_aprs_t.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kc2g/aprscore/aprsframe"
	"github.com/kc2g/aprscore/geoutil"
	"github.com/kc2g/aprscore/infofield"
	"github.com/kc2g/aprscore/internal/logfmt"
	"github.com/spf13/pflag"
)

func main() {
	showUTM := pflag.Bool("utm", false, "also print the UTM grid coordinate for decoded positions")
	pflag.Parse()

	logger := logfmt.Default()

	var r io.Reader = os.Stdin
	if args := pflag.Args(); len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			logger.Fatal("opening input file", "err", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		DecodeAPRSLine(scanner.Text(), *showUTM)
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("reading input", "err", err)
	}
}

// DecodeAPRSLine decodes a single TNC2 text line and prints its report to
// stdout, recovering from decode errors by printing them instead of
// exiting — the same "keep going" policy the teacher's command uses.
func DecodeAPRSLine(line string, showUTM bool) {
	f, err := aprsframe.DecodeTNC2(line)
	if err != nil {
		fmt.Printf("ERROR decoding %q: %s\n\n", line, err)
		return
	}

	fmt.Printf("%s>%s", f.Source, f.Destination)
	for _, hop := range f.Path {
		fmt.Printf(",%s", hop.TNC2())
	}
	fmt.Println()

	switch v := f.Info.(type) {
	case infofield.PositionReport:
		fmt.Printf("Position: lat=%.5f lon=%.5f symbol=%c%c\n", v.Position.Latitude, v.Position.Longitude, v.Position.SymbolTable, v.Position.SymbolCode)
		if v.Comment != "" {
			fmt.Printf("Comment: %s\n", v.Comment)
		}
		if v.Altitude != nil {
			fmt.Printf("Altitude: %d ft\n", *v.Altitude)
		}
		if showUTM {
			if u, err := geoutil.ToUTM(v.Position.Latitude, v.Position.Longitude); err == nil {
				fmt.Printf("UTM: zone=%d%c easting=%.0f northing=%.0f\n", u.Zone, u.HemisphereRune(), u.Easting, u.Northing)
			}
		}
	case infofield.ObjectReport:
		fmt.Printf("Object %q: lat=%.5f lon=%.5f\n", v.Name, v.Position.Latitude, v.Position.Longitude)
	case infofield.ItemReport:
		fmt.Printf("Item %q: lat=%.5f lon=%.5f\n", v.Name, v.Position.Latitude, v.Position.Longitude)
	case infofield.Message:
		fmt.Printf("Message to %q: %s\n", v.Addressee, v.Text)
	case infofield.StatusReport:
		fmt.Printf("Status: %s\n", v.Status)
	case infofield.Raw:
		fmt.Printf("Unparsed data type %q\n", v.Dti)
	}

	fmt.Println()
}
