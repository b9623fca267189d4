package service

import (
	"encoding/csv"
	"os"
	"strconv"
	"testing"

	"pumphead/hydraulics"
)

func TestExportResultCSV_RoundTrip(t *testing.T) {
	s := NewService(Config{OutDir: t.TempDir()})

	res := hydraulics.Result{FlowRate: 0.006, Velocity: 1.3157, PumpHead: 11.07, ShaftPower: 928.5}
	path, err := s.exportResultCSV("Lab Rig", res)
	if err != nil {
		t.Fatalf("exportResultCSV() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(recs) != 16 {
		t.Fatalf("len(recs) = %d, want header plus 15 rows", len(recs))
	}
	if recs[0][0] != "parameter" || recs[0][2] != "unit" {
		t.Fatalf("header = %v", recs[0])
	}
	if recs[1][0] != "flow_rate" || recs[1][2] != "m3/s" {
		t.Fatalf("first row = %v, want flow_rate", recs[1])
	}
	v, err := strconv.ParseFloat(recs[1][1], 64)
	if err != nil || v != 0.006 {
		t.Fatalf("flow_rate cell = %q (%v), want 0.006", recs[1][1], err)
	}
}

func TestExportSweepCSV_CarriesErrors(t *testing.T) {
	s := NewService(Config{OutDir: t.TempDir()})

	rows := []SweepRow{
		{Label: "a", Velocity: 1.3, PumpHead: 11.0, ShaftW: 920, ShaftHP: 1.23},
		{Label: "broken", Err: "scenario.efficiency must be in (0, 1], got 0"},
	}
	path, err := s.exportSweepCSV("lab-rig", rows)
	if err != nil {
		t.Fatalf("exportSweepCSV() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want header plus 2 rows", len(recs))
	}
	if recs[1][0] != "a" || recs[1][5] != "" {
		t.Fatalf("good row = %v", recs[1])
	}
	if recs[2][0] != "broken" || recs[2][5] == "" {
		t.Fatalf("failed row = %v", recs[2])
	}
}

func TestSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Lab Rig", "lab-rig"},
		{"lab_rig 2", "lab-rig-2"},
		{"!!!", "scenario"},
	}
	for _, c := range cases {
		if got := slug(c.in); got != c.want {
			t.Fatalf("slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
