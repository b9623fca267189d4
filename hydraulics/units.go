package hydraulics

// Physical constants and unit conversions, SI base.
const (
	Gravity           = 9.80665    // m/s^2
	WattPerHorsepower = 745.699872 // mechanical horsepower (US)
	FootToMeter       = 0.3048
	InchToMeter       = 0.0254
)
