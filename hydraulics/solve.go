// Package hydraulics sizes pumps for single-line pipe networks: mean
// velocity, Reynolds number, Darcy friction, fitting losses and the
// resulting pump head and power.
package hydraulics

// Result is the complete breakdown of one sizing run.
type Result struct {
	FlowRate       float64 // m^3/s
	Velocity       float64 // m/s, main line
	Reynolds       float64
	FrictionFactor float64
	ElevationRise  float64 // m, z2 - z1
	KineticHead    float64 // m, at the outlet
	MajorLoss      float64 // m
	MinorLoss      float64 // m
	TotalLoss      float64 // m
	PumpHead       float64 // m
	Efficiency     float64
	HydraulicPower float64 // W
	ShaftPower     float64 // W
	HydraulicHP    float64 // hp
	ShaftHP        float64 // hp
}

// MinorLossHead sums K*V^2/(2g) over the fitting inventory. Fittings
// with their own diameter use the velocity there. A free-surface outlet
// contributes one extra K=1 term at the main diameter; the inventory
// itself is never modified.
func MinorLossHead(cfg SystemConfig, vMain float64) (float64, error) {
	var head float64
	for _, fit := range cfg.Fittings {
		v := vMain
		if fit.Diameter > 0 {
			fv, err := Velocity(cfg.FlowRate, fit.Diameter)
			if err != nil {
				return 0, err
			}
			v = fv
		}
		head += fit.K * v * v / (2.0 * Gravity)
	}
	if cfg.Outlet == OutletFreeSurface {
		head += vMain * vMain / (2.0 * Gravity) // exit loss, K = 1
	}
	return head, nil
}

// MajorLossHead returns the Darcy-Weisbach loss over the main segment.
func MajorLossHead(cfg SystemConfig, vMain float64) (float64, error) {
	re := Reynolds(cfg.Fluid.Density, vMain, cfg.Main.Diameter, cfg.Fluid.Viscosity)
	f, err := FrictionFactor(cfg.Friction, re, cfg.Main.RelativeRoughness())
	if err != nil {
		return 0, err
	}
	return darcy(f, cfg.Main.Length, cfg.Main.Diameter, vMain), nil
}

func darcy(f, length, d, v float64) float64 {
	return f * (length / d) * v * v / (2.0 * Gravity)
}

// PumpPower converts a required head to hydraulic and shaft power, W.
func PumpPower(rho, q, head, eta float64) (hydraulic, shaft float64, err error) {
	if eta <= 0 || eta > 1 {
		return 0, 0, domainErr("efficiency", eta, "0 < eta <= 1")
	}
	hydraulic = rho * Gravity * q * head
	return hydraulic, hydraulic / eta, nil
}

// Solve runs the full pipeline: velocity, Reynolds number, friction,
// losses, pump head, power. Deterministic and free of side effects, so
// independent configurations may be solved concurrently.
func Solve(cfg SystemConfig) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	vMain, err := Velocity(cfg.FlowRate, cfg.Main.Diameter)
	if err != nil {
		return Result{}, err
	}
	re := Reynolds(cfg.Fluid.Density, vMain, cfg.Main.Diameter, cfg.Fluid.Viscosity)
	f, err := FrictionFactor(cfg.Friction, re, cfg.Main.RelativeRoughness())
	if err != nil {
		return Result{}, err
	}
	major := darcy(f, cfg.Main.Length, cfg.Main.Diameter, vMain)

	minor, err := MinorLossHead(cfg, vMain)
	if err != nil {
		return Result{}, err
	}

	kinetic := 0.0
	if cfg.Outlet == OutletPipe {
		kinetic = vMain * vMain / (2.0 * Gravity)
	}

	total := major + minor
	head := (cfg.Z2 - cfg.Z1) + kinetic + total

	hyd, shaft, err := PumpPower(cfg.Fluid.Density, cfg.FlowRate, head, cfg.Efficiency)
	if err != nil {
		return Result{}, err
	}

	return Result{
		FlowRate:       cfg.FlowRate,
		Velocity:       vMain,
		Reynolds:       re,
		FrictionFactor: f,
		ElevationRise:  cfg.Z2 - cfg.Z1,
		KineticHead:    kinetic,
		MajorLoss:      major,
		MinorLoss:      minor,
		TotalLoss:      total,
		PumpHead:       head,
		Efficiency:     cfg.Efficiency,
		HydraulicPower: hyd,
		ShaftPower:     shaft,
		HydraulicHP:    hyd / WattPerHorsepower,
		ShaftHP:        shaft / WattPerHorsepower,
	}, nil
}
