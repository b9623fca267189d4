package service

import (
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"pumphead/model"
)

// sweepColumn reports whether a workbook header names a parameter the
// sweep can override.
func sweepColumn(name string) bool {
	switch strings.ToLower(name) {
	case "flow_rate", "diameter", "length", "roughness", "z1", "z2", "efficiency":
		return true
	default:
		return false
	}
}

// applyCase returns the base scenario with the case's overrides set.
// Override values are in the base scenario's units.
func applyCase(base model.Scenario, c SweepCase) model.Scenario {
	sc := base
	for col, v := range c.Overrides {
		switch col {
		case "flow_rate":
			sc.FlowRate = v
		case "diameter":
			sc.Pipe.Diameter = v
		case "length":
			sc.Pipe.Length = v
		case "roughness":
			sc.Pipe.Roughness = v
		case "z1":
			sc.Z1 = v
		case "z2":
			sc.Z2 = v
		case "efficiency":
			sc.Efficiency = v
		}
	}
	return sc
}

func scenarioName(sc model.Scenario, path string) string {
	if sc.Name != "" {
		return sc.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// summarize aggregates the successful rows of a sweep.
func summarize(rows []SweepRow) SweepSummary {
	var heads, shafts []float64
	failed := 0
	for _, r := range rows {
		if r.Err != "" {
			failed++
			continue
		}
		heads = append(heads, r.PumpHead)
		shafts = append(shafts, r.ShaftW)
	}
	sum := SweepSummary{Cases: len(rows), Failed: failed}
	if len(heads) > 0 {
		sum.Head = newStats(heads)
		sum.Shaft = newStats(shafts)
	}
	return sum
}

func newStats(xs []float64) Stats {
	st := Stats{
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
		Mean: stat.Mean(xs, nil),
	}
	if len(xs) > 1 {
		st.StdDev = stat.StdDev(xs, nil)
	}
	return st
}
