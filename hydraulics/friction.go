package hydraulics

import (
	"fmt"
	"math"
)

// FrictionModel selects the turbulent friction-factor correlation.
// Laminar flow always uses 64/Re.
type FrictionModel int

const (
	FrictionHaaland   FrictionModel = iota // explicit Haaland approximation
	FrictionColebrook                      // implicit Colebrook-White, solved iteratively
)

// ReynoldsLaminar is the laminar/turbulent switch threshold.
const ReynoldsLaminar = 2300.0

const (
	colebrookTol     = 1e-10
	colebrookMaxIter = 50
)

// Velocity returns the mean velocity of flow rate q through a circular
// section of diameter d.
func Velocity(q, d float64) (float64, error) {
	if d <= 0 {
		return 0, domainErr("diameter", d, "D > 0")
	}
	return q / (math.Pi * d * d / 4.0), nil
}

// Reynolds returns rho*v*d/mu.
func Reynolds(rho, v, d, mu float64) float64 {
	return rho * v * d / mu
}

// FrictionFactor returns the Darcy friction factor for the given regime.
func FrictionFactor(model FrictionModel, re, relRough float64) (float64, error) {
	if re <= 0 {
		return 0, domainErr("reynolds", re, "Re > 0")
	}
	if re < ReynoldsLaminar {
		return 64.0 / re, nil
	}
	f := haaland(re, relRough)
	if model == FrictionColebrook {
		return colebrook(re, relRough, f)
	}
	return f, nil
}

func haaland(re, relRough float64) float64 {
	root := -1.8 * math.Log10(math.Pow(relRough/3.7, 1.11)+6.9/re)
	return 1.0 / (root * root)
}

// colebrook iterates x = -2*log10(rr/3.7 + 2.51*x/Re) with x = 1/sqrt(f),
// seeded from the Haaland value.
func colebrook(re, relRough, seed float64) (float64, error) {
	x := 1.0 / math.Sqrt(seed)
	for i := 0; i < colebrookMaxIter; i++ {
		next := -2.0 * math.Log10(relRough/3.7+2.51*x/re)
		if math.Abs(next-x) < colebrookTol {
			return 1.0 / (next * next), nil
		}
		x = next
	}
	return 0, fmt.Errorf("colebrook did not converge: Re=%g relRough=%g", re, relRough)
}
