package hydraulics

// Outlet is the downstream boundary policy.
type Outlet int

const (
	// OutletPipe discharges through an open pipe end: the kinetic head
	// is retained and no exit loss applies.
	OutletPipe Outlet = iota
	// OutletFreeSurface discharges below a still reservoir surface: the
	// kinetic head is zero and an exit loss of K=1 applies at the main
	// diameter.
	OutletFreeSurface
)

// SystemConfig describes one pump-and-pipe system between two points.
// Values are fixed at construction; Solve never modifies them.
type SystemConfig struct {
	FlowRate   float64 // m^3/s
	Z1         float64 // m, upstream elevation
	Z2         float64 // m, downstream elevation
	Main       PipeSegment
	Fluid      Fluid
	Fittings   []MinorLoss
	Efficiency float64 // pump efficiency, (0,1]
	Outlet     Outlet
	Friction   FrictionModel
}

// Validate checks the physical domain of every input.
func (c SystemConfig) Validate() error {
	if c.FlowRate <= 0 {
		return domainErr("flow rate", c.FlowRate, "Q > 0")
	}
	if c.Main.Diameter <= 0 {
		return domainErr("diameter", c.Main.Diameter, "D > 0")
	}
	if c.Main.Length <= 0 {
		return domainErr("length", c.Main.Length, "L > 0")
	}
	if c.Main.Roughness < 0 {
		return domainErr("roughness", c.Main.Roughness, "eps >= 0")
	}
	if c.Fluid.Density <= 0 {
		return domainErr("density", c.Fluid.Density, "rho > 0")
	}
	if c.Fluid.Viscosity <= 0 {
		return domainErr("viscosity", c.Fluid.Viscosity, "mu > 0")
	}
	if c.Efficiency <= 0 || c.Efficiency > 1 {
		return domainErr("efficiency", c.Efficiency, "0 < eta <= 1")
	}
	for _, fit := range c.Fittings {
		if fit.Diameter < 0 {
			return domainErr("fitting diameter", fit.Diameter, "D >= 0")
		}
	}
	return nil
}
