package hydraulics

// Fluid holds the transport properties of an incompressible working fluid.
type Fluid struct {
	Density   float64 // kg/m^3
	Viscosity float64 // Pa*s, dynamic
}

// Water20C is the default working fluid.
func Water20C() Fluid {
	return Fluid{Density: 998.0, Viscosity: 1.002e-3}
}
