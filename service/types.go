package service

import "pumphead/hydraulics"

// Config carries the knobs main reads from the yaml config. Zero
// values fall back to the defaults in the accessor methods.
type Config struct {
	OutDir        string
	Precision     int
	Workers       int
	Jitter        float64
	FrictionModel hydraulics.FrictionModel
}

// RunOutput is one solved scenario plus its rendered artifacts.
type RunOutput struct {
	Scenario string
	Result   hydraulics.Result
	Report   string
	CSVPath  string
}

// SweepCase is one override row from a sweep workbook. Values are read
// in the base scenario's units.
type SweepCase struct {
	Label     string
	Overrides map[string]float64
}

// SweepRow is the outcome of one sweep case.
type SweepRow struct {
	Label    string
	Velocity float64 // m/s
	PumpHead float64 // m
	ShaftW   float64 // W
	ShaftHP  float64 // hp
	Err      string
}

// Stats summarizes one sweep column.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// SweepSummary aggregates a finished sweep.
type SweepSummary struct {
	Cases  int
	Failed int
	Head   Stats // pump head, m
	Shaft  Stats // shaft power, W
}

// SweepOutput is the full result of one sweep run.
type SweepOutput struct {
	Rows    []SweepRow
	Summary SweepSummary
	CSVPath string
}
