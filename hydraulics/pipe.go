package hydraulics

import "math"

// RoughnessPVC is the absolute wall roughness of smooth plastic pipe, m.
const RoughnessPVC = 1.5e-6

// PipeSegment is a straight run of constant inner diameter.
type PipeSegment struct {
	Diameter  float64 // m
	Length    float64 // m
	Roughness float64 // m, absolute
}

// Area returns the flow cross section, m^2.
func (p PipeSegment) Area() float64 {
	return math.Pi * p.Diameter * p.Diameter / 4.0
}

// RelativeRoughness returns roughness over diameter.
func (p PipeSegment) RelativeRoughness() float64 {
	return p.Roughness / p.Diameter
}
