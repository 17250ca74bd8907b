package ephem_test

import (
	"fmt"

	"github.com/exophot/lightcurve/ephem"
)

func ExamplePhase() {
	p := ephem.Params{T0: 100, Per: 10}

	phi := ephem.Phase([]float64{100, 102.5, 110}, p)
	fmt.Printf("%.2f\n", phi)

	// Output:
	// [0.00 0.25 0.00]
}

func ExampleTransitDuration() {
	p := ephem.Params{T0: 0, Per: 3.5, P: 0.1, B: 0.2, A: 8}

	for _, k := range []ephem.DurationKind{ephem.DurationFull, ephem.DurationCenter, ephem.DurationShort} {
		d, err := ephem.TransitDuration(p, k)
		if err != nil {
			fmt.Println("error:", err)
			return
		}

		fmt.Printf("%s: %.4f\n", k, d)
	}

	// Output:
	// full: 0.1511
	// center: 0.1368
	// short: 0.1224
}

func ExampleSupersampleTime() {
	expanded := ephem.SupersampleTime([]float64{10}, 5, 0.1)
	fmt.Printf("%.3f\n", expanded)

	// Output:
	// [9.950 9.975 10.000 10.025 10.050]
}
