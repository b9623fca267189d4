// Package model defines the yaml scenario documents the CLI consumes
// and their mapping onto hydraulic system configurations.
package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pumphead/hydraulics"
)

// GallonsPerMinutePerM3s converts m^3/s to US gpm.
const GallonsPerMinutePerM3s = 15850.3

const (
	OutletPipe        = "pipe"
	OutletFreeSurface = "free_surface"
)

const (
	FrictionHaaland   = "haaland"
	FrictionColebrook = "colebrook"
)

// Scenario is one system description as read from a yaml document.
// Quantities carry their own unit fields; anything left empty falls
// back to SI.
type Scenario struct {
	Name          string        `yaml:"name"`
	Fluid         FluidSpec     `yaml:"fluid"`
	Pipe          PipeSpec      `yaml:"pipe"`
	FlowRate      float64       `yaml:"flow_rate"`
	FlowRateUnit  string        `yaml:"flow_rate_unit"` // m3/s | m3/h | gpm
	Z1            float64       `yaml:"z1"`
	Z2            float64       `yaml:"z2"`
	ElevationUnit string        `yaml:"elevation_unit"` // m | ft
	Fittings      []FittingSpec `yaml:"fittings"`
	Outlet        string        `yaml:"outlet"`     // pipe | free_surface
	Efficiency    float64       `yaml:"efficiency"` // (0,1]
	FrictionModel string        `yaml:"friction_model,omitempty"`
}

// FluidSpec starts from water at 20 C; non-zero fields override it.
type FluidSpec struct {
	Preset    string  `yaml:"preset,omitempty"`
	Density   float64 `yaml:"density,omitempty"`   // kg/m3
	Viscosity float64 `yaml:"viscosity,omitempty"` // Pa*s
}

type PipeSpec struct {
	Diameter     float64 `yaml:"diameter"`
	DiameterUnit string  `yaml:"diameter_unit"` // m | mm | in
	Length       float64 `yaml:"length"`
	LengthUnit   string  `yaml:"length_unit"`         // m | ft
	Roughness    float64 `yaml:"roughness,omitempty"` // m, absolute; 0 = smooth PVC
}

// FittingSpec diameters share the pipe's diameter unit; 0 means the
// fitting sees the main-line velocity.
type FittingSpec struct {
	Name     string  `yaml:"name"`
	K        float64 `yaml:"k"`
	Diameter float64 `yaml:"diameter,omitempty"`
}

// ParseScenario decodes and validates one scenario document.
func ParseScenario(input []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(input, &sc); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func (s Scenario) Validate() error {
	if s.FlowRate <= 0 {
		return fmt.Errorf("scenario.flow_rate must be positive, got %g", s.FlowRate)
	}
	if !oneOf(s.FlowRateUnit, "", "m3/s", "m3/h", "gpm") {
		return fmt.Errorf("scenario.flow_rate_unit unsupported: %q", s.FlowRateUnit)
	}
	if s.Pipe.Diameter <= 0 {
		return fmt.Errorf("scenario.pipe.diameter must be positive, got %g", s.Pipe.Diameter)
	}
	if !oneOf(s.Pipe.DiameterUnit, "", "m", "mm", "in") {
		return fmt.Errorf("scenario.pipe.diameter_unit unsupported: %q", s.Pipe.DiameterUnit)
	}
	if s.Pipe.Length <= 0 {
		return fmt.Errorf("scenario.pipe.length must be positive, got %g", s.Pipe.Length)
	}
	if !oneOf(s.Pipe.LengthUnit, "", "m", "ft") {
		return fmt.Errorf("scenario.pipe.length_unit unsupported: %q", s.Pipe.LengthUnit)
	}
	if s.Pipe.Roughness < 0 {
		return fmt.Errorf("scenario.pipe.roughness must be non-negative, got %g", s.Pipe.Roughness)
	}
	if !oneOf(s.ElevationUnit, "", "m", "ft") {
		return fmt.Errorf("scenario.elevation_unit unsupported: %q", s.ElevationUnit)
	}
	if !oneOf(s.Fluid.Preset, "", "water") {
		return fmt.Errorf("scenario.fluid.preset unsupported: %q", s.Fluid.Preset)
	}
	if s.Fluid.Density < 0 {
		return fmt.Errorf("scenario.fluid.density must be non-negative, got %g", s.Fluid.Density)
	}
	if s.Fluid.Viscosity < 0 {
		return fmt.Errorf("scenario.fluid.viscosity must be non-negative, got %g", s.Fluid.Viscosity)
	}
	if s.Efficiency <= 0 || s.Efficiency > 1 {
		return fmt.Errorf("scenario.efficiency must be in (0, 1], got %g", s.Efficiency)
	}
	if !oneOf(s.Outlet, "", OutletPipe, OutletFreeSurface) {
		return fmt.Errorf("scenario.outlet unsupported: %q", s.Outlet)
	}
	if !oneOf(s.FrictionModel, "", FrictionHaaland, FrictionColebrook) {
		return fmt.Errorf("scenario.friction_model unsupported: %q", s.FrictionModel)
	}
	for i, fit := range s.Fittings {
		if fit.Name == "" {
			return fmt.Errorf("scenario.fittings[%d].name is required", i)
		}
		if fit.K < 0 {
			return fmt.Errorf("scenario.fittings[%d].k must be non-negative, got %g", i, fit.K)
		}
		if fit.Diameter < 0 {
			return fmt.Errorf("scenario.fittings[%d].diameter must be non-negative, got %g", i, fit.Diameter)
		}
	}
	return nil
}

// ToSystemConfig normalizes every quantity to SI. The scenario must
// already be validated. fallback applies when no friction model is
// named in the document.
func (s Scenario) ToSystemConfig(fallback hydraulics.FrictionModel) hydraulics.SystemConfig {
	fluid := hydraulics.Water20C()
	if s.Fluid.Density > 0 {
		fluid.Density = s.Fluid.Density
	}
	if s.Fluid.Viscosity > 0 {
		fluid.Viscosity = s.Fluid.Viscosity
	}

	roughness := s.Pipe.Roughness
	if roughness == 0 {
		roughness = hydraulics.RoughnessPVC
	}

	fittings := make([]hydraulics.MinorLoss, len(s.Fittings))
	for i, fit := range s.Fittings {
		fittings[i] = hydraulics.MinorLoss{
			Name:     fit.Name,
			K:        fit.K,
			Diameter: lengthToM(fit.Diameter, s.Pipe.DiameterUnit),
		}
	}

	outlet := hydraulics.OutletPipe
	if s.Outlet == OutletFreeSurface {
		outlet = hydraulics.OutletFreeSurface
	}

	friction := fallback
	if s.FrictionModel != "" {
		friction, _ = FrictionModelFromName(s.FrictionModel)
	}

	return hydraulics.SystemConfig{
		FlowRate: flowRateToM3s(s.FlowRate, s.FlowRateUnit),
		Z1:       lengthToM(s.Z1, s.ElevationUnit),
		Z2:       lengthToM(s.Z2, s.ElevationUnit),
		Main: hydraulics.PipeSegment{
			Diameter:  lengthToM(s.Pipe.Diameter, s.Pipe.DiameterUnit),
			Length:    lengthToM(s.Pipe.Length, s.Pipe.LengthUnit),
			Roughness: roughness,
		},
		Fluid:      fluid,
		Fittings:   fittings,
		Efficiency: s.Efficiency,
		Outlet:     outlet,
		Friction:   friction,
	}
}

// FrictionModelFromName maps a config or document name to the model.
func FrictionModelFromName(name string) (hydraulics.FrictionModel, error) {
	switch name {
	case "", FrictionHaaland:
		return hydraulics.FrictionHaaland, nil
	case FrictionColebrook:
		return hydraulics.FrictionColebrook, nil
	default:
		return hydraulics.FrictionHaaland, fmt.Errorf("friction model unsupported: %q", name)
	}
}

func flowRateToM3s(v float64, unit string) float64 {
	switch unit {
	case "m3/h":
		return v / 3600.0
	case "gpm":
		return v / GallonsPerMinutePerM3s
	default:
		return v // already m3/s
	}
}

func lengthToM(v float64, unit string) float64 {
	switch unit {
	case "mm":
		return v / 1000.0
	case "in":
		return v * hydraulics.InchToMeter
	case "ft":
		return v * hydraulics.FootToMeter
	default:
		return v
	}
}
