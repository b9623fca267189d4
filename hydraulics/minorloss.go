package hydraulics

// MinorLoss is one fitting, valve or transition in the line. Diameter 0
// means the element sees the main-line velocity.
type MinorLoss struct {
	Name     string
	K        float64 // dimensionless loss coefficient
	Diameter float64 // m, 0 = main diameter
}
