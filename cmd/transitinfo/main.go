// Command transitinfo prints eclipse timing and transit durations for a
// set of orbital parameters.
//
// Usage:
//
//	transitinfo [flags]
//
// Examples:
//
//	transitinfo -t0 2454955.788 -per 3.5247 -p 0.155 -b 0.16 -a 8.9
//	transitinfo -per 1.58 -p 0.1 -a 6 -phase 2454000.1,2454000.9
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/exophot/lightcurve/ephem"
)

func main() {
	t0 := flag.Float64("t0", 0, "mid-transit time")
	per := flag.Float64("per", 1, "orbital period (same units as t0)")
	p := flag.Float64("p", 0.1, "planet-to-star radius ratio")
	b := flag.Float64("b", 0, "impact parameter in stellar radii")
	a := flag.Float64("a", 10, "semi-major axis in stellar radii")
	phase := flag.String("phase", "", "comma-separated times to convert to orbital phase")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: transitinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints eclipse timing and transit durations for a circular orbit.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  transitinfo -t0 2454955.788 -per 3.5247 -p 0.155 -b 0.16 -a 8.9\n")
		fmt.Fprintf(os.Stderr, "  transitinfo -per 1.58 -p 0.1 -a 6 -phase 2454000.1,2454000.9\n")
	}
	flag.Parse()

	if *per <= 0 {
		fmt.Fprintf(os.Stderr, "error: period must be > 0\n")
		os.Exit(1)
	}

	params := ephem.Params{T0: *t0, Per: *per, P: *p, B: *b, A: *a}

	printTimings(params)

	if *phase != "" {
		times, err := parseTimes(*phase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printPhases(params, times)
	}
}

func printTimings(params ephem.Params) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Quantity\tValue\n")
	fmt.Fprintf(tw, "--------\t-----\n")
	fmt.Fprintf(tw, "mid-eclipse time\t%.6f\n", ephem.EclipseTime(params))

	for _, k := range []ephem.DurationKind{ephem.DurationFull, ephem.DurationCenter, ephem.DurationShort} {
		d, err := ephem.TransitDuration(params, k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "duration (%s)\t%.6f\n", k, d)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printPhases(params ephem.Params, times []float64) {
	phases := ephem.Phase(times, params)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "\nTime\tPhase\n")
	fmt.Fprintf(tw, "----\t-----\n")
	for i := range times {
		fmt.Fprintf(tw, "%.6f\t%.6f\n", times[i], phases[i])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func parseTimes(s string) ([]float64, error) {
	parts := strings.Split(s, ",")

	times := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q", part)
		}
		times = append(times, v)
	}
	return times, nil
}
