package service

import (
	"fmt"
	"strconv"
	"strings"

	"pumphead/hydraulics"
)

// renderReport formats the two fixed result blocks with prec
// significant digits.
func renderReport(name string, res hydraulics.Result, prec int) string {
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', prec, 64) }

	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", name)
	b.WriteString("\n--- Results ---\n")
	fmt.Fprintf(&b, "Q               : %s m^3/s\n", g(res.FlowRate))
	fmt.Fprintf(&b, "z2 - z1         : %s m\n", g(res.ElevationRise))
	fmt.Fprintf(&b, "V main          : %s m/s\n", g(res.Velocity))
	fmt.Fprintf(&b, "Re              : %s\n", g(res.Reynolds))
	fmt.Fprintf(&b, "f               : %s\n", g(res.FrictionFactor))
	fmt.Fprintf(&b, "h_kinetic       : %s m\n", g(res.KineticHead))
	fmt.Fprintf(&b, "h_minor         : %s m\n", g(res.MinorLoss))
	fmt.Fprintf(&b, "h_major         : %s m\n", g(res.MajorLoss))
	fmt.Fprintf(&b, "h_L (total)     : %s m\n", g(res.TotalLoss))
	fmt.Fprintf(&b, "h_s (pump head) : %s m\n", g(res.PumpHead))
	b.WriteString("\n--- Power ---\n")
	fmt.Fprintf(&b, "Hydraulic power : %s W  (%s hp)\n", g(res.HydraulicPower), g(res.HydraulicHP))
	fmt.Fprintf(&b, "Pump efficiency : %s\n", g(res.Efficiency))
	fmt.Fprintf(&b, "Shaft power     : %s W  (%s hp)\n", g(res.ShaftPower), g(res.ShaftHP))
	return b.String()
}
