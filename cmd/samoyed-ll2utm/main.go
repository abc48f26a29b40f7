// Command samoyed-ll2utm converts a decimal-degree latitude/longitude to
// UTM and MGRS grid coordinates, now routed through the geoutil package
// instead of calling coordconv directly.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kc2g/aprscore/geoutil"
)

func main() {
	if len(os.Args) != 3 {
		usage()
		return
	}

	lat, _ := strconv.ParseFloat(os.Args[1], 64)
	lon, _ := strconv.ParseFloat(os.Args[2], 64)

	if u, err := geoutil.ToUTM(lat, lon); err == nil {
		fmt.Printf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f\n", u.Zone, u.HemisphereRune(), u.Easting, u.Northing)
	} else {
		fmt.Printf("Conversion to UTM failed:\n%s\n\n", err)
	}

	if _, err := geoutil.ToMGRS(lat, lon, 5); err == nil {
		fmt.Printf("MGRS =")
		for precision := 1; precision <= 5; precision++ {
			mgrs, _ := geoutil.ToMGRS(lat, lon, precision)
			fmt.Printf("  %s", mgrs)
		}
		fmt.Printf("\n")
	} else {
		fmt.Printf("Conversion to MGRS failed:\n%s\n", err)
	}
}

func usage() {
	fmt.Printf("Latitude / Longitude to UTM conversion\n")
	fmt.Printf("\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("\tll2utm  latitude  longitude\n")
	fmt.Printf("\n")
	fmt.Printf("where,\n")
	fmt.Printf("\tLatitude and longitude are in decimal degrees.\n")
	fmt.Printf("\t   Use negative for south or west.\n")
	fmt.Printf("\n")
	fmt.Printf("Example:\n")
	fmt.Printf("\tll2utm 42.662139 -71.365553\n")
}
