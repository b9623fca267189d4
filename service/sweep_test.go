package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"pumphead/model"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestGenerateSweep_ImportRoundTrip(t *testing.T) {
	scenario := writeScenario(t)
	s := NewService(Config{OutDir: t.TempDir()})

	path, err := s.GenerateSweep(scenario, 8, 0.05, "")
	if err != nil {
		t.Fatalf("GenerateSweep() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	cases, err := s.ImportSweep(f)
	if err != nil {
		t.Fatalf("ImportSweep() error: %v", err)
	}
	if len(cases) != 8 {
		t.Fatalf("len(cases) = %d, want 8", len(cases))
	}
	if cases[0].Label != "case-01" {
		t.Fatalf("cases[0].Label = %q, want case-01", cases[0].Label)
	}
	for i, c := range cases {
		q, ok := c.Overrides["flow_rate"]
		if !ok {
			t.Fatalf("case %d has no flow_rate override", i)
		}
		if q < 0.006*0.9 || q > 0.006*1.1 {
			t.Fatalf("case %d flow_rate = %g, want near 0.006", i, q)
		}
	}
}

func TestRunSweepFiles(t *testing.T) {
	scenario := writeScenario(t)
	outDir := t.TempDir()
	s := NewService(Config{OutDir: outDir, Workers: 3})

	wbPath, err := s.GenerateSweep(scenario, 6, 0.05, filepath.Join(outDir, "cases.xlsx"))
	if err != nil {
		t.Fatalf("GenerateSweep() error: %v", err)
	}

	out, err := s.RunSweepFiles(scenario, wbPath)
	if err != nil {
		t.Fatalf("RunSweepFiles() error: %v", err)
	}
	if out.Summary.Cases != 6 || out.Summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 6 cases, 0 failed", out.Summary)
	}
	for i, row := range out.Rows {
		if row.Err != "" {
			t.Fatalf("rows[%d] failed: %s", i, row.Err)
		}
		if row.PumpHead <= 0 || row.ShaftW <= 0 {
			t.Fatalf("rows[%d] = %+v, want positive head and power", i, row)
		}
	}
	h := out.Summary.Head
	if h.Min > h.Mean || h.Mean > h.Max {
		t.Fatalf("head stats out of order: %+v", h)
	}
	if _, err := os.Stat(out.CSVPath); err != nil {
		t.Fatalf("sweep csv: %v", err)
	}
}

func TestImportSweep_RejectsBadWorkbooks(t *testing.T) {
	s := NewService(Config{})

	if _, err := s.ImportSweep(buildWorkbook(t, [][]any{
		{"case", "flow_rate"},
	})); err == nil {
		t.Fatal("header-only workbook did not error")
	}

	if _, err := s.ImportSweep(buildWorkbook(t, [][]any{
		{"label", "flow_rate"},
		{"a", 0.006},
	})); err == nil {
		t.Fatal("missing case column did not error")
	}

	if _, err := s.ImportSweep(buildWorkbook(t, [][]any{
		{"case", "viscosity"},
		{"a", 0.001},
	})); err == nil {
		t.Fatal("unsupported column did not error")
	}
}

func TestImportSweep_SkipsBadRows(t *testing.T) {
	s := NewService(Config{})
	wb := buildWorkbook(t, [][]any{
		{"case", "flow_rate", "efficiency"},
		{"good", 0.007, 0.65},
		{"", 0.008, 0.6},
		{"bad", "fast", 0.6},
		{"sparse", "", 0.8},
	})

	cases, err := s.ImportSweep(wb)
	if err != nil {
		t.Fatalf("ImportSweep() error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Label != "good" || cases[1].Label != "sparse" {
		t.Fatalf("labels = %q, %q", cases[0].Label, cases[1].Label)
	}
	if got := cases[0].Overrides["flow_rate"]; got != 0.007 {
		t.Fatalf("good flow_rate = %g, want 0.007", got)
	}
	if _, ok := cases[1].Overrides["flow_rate"]; ok {
		t.Fatal("blank cell produced an override")
	}
	if got := cases[1].Overrides["efficiency"]; got != 0.8 {
		t.Fatalf("sparse efficiency = %g, want 0.8", got)
	}
}

func TestApplyCase_OverridesOnlyNamedFields(t *testing.T) {
	base, err := model.ParseScenario([]byte(sweepScenario))
	if err != nil {
		t.Fatalf("ParseScenario() error: %v", err)
	}

	got := applyCase(base, SweepCase{Label: "x", Overrides: map[string]float64{
		"diameter": 0.1,
		"z2":       3.0,
	}})
	if got.Pipe.Diameter != 0.1 || got.Z2 != 3.0 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.FlowRate != base.FlowRate || got.Pipe.Length != base.Pipe.Length {
		t.Fatal("untouched fields changed")
	}
	if base.Pipe.Diameter != 0.0762 {
		t.Fatal("base scenario mutated")
	}
}

func TestSolveCases_KeepsOrderAndRecordsFailures(t *testing.T) {
	base, err := model.ParseScenario([]byte(sweepScenario))
	if err != nil {
		t.Fatalf("ParseScenario() error: %v", err)
	}
	s := NewService(Config{Workers: 4})

	cases := []SweepCase{
		{Label: "a", Overrides: map[string]float64{"flow_rate": 0.004}},
		{Label: "broken", Overrides: map[string]float64{"efficiency": 0}},
		{Label: "c", Overrides: map[string]float64{"flow_rate": 0.008}},
	}
	rows := s.solveCases(base, cases)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for i, label := range []string{"a", "broken", "c"} {
		if rows[i].Label != label {
			t.Fatalf("rows[%d].Label = %q, want %q", i, rows[i].Label, label)
		}
	}
	if rows[1].Err == "" {
		t.Fatal("broken case did not record an error")
	}
	if rows[0].Err != "" || rows[2].Err != "" {
		t.Fatalf("good cases errored: %q, %q", rows[0].Err, rows[2].Err)
	}
	if rows[0].PumpHead >= rows[2].PumpHead {
		t.Fatalf("head at 0.004 = %g, not below head at 0.008 = %g", rows[0].PumpHead, rows[2].PumpHead)
	}
}

func TestSummarize(t *testing.T) {
	rows := []SweepRow{
		{Label: "a", PumpHead: 10, ShaftW: 500},
		{Label: "b", PumpHead: 14, ShaftW: 700},
		{Label: "broken", Err: "boom"},
	}
	sum := summarize(rows)
	if sum.Cases != 3 || sum.Failed != 1 {
		t.Fatalf("cases = %d, failed = %d", sum.Cases, sum.Failed)
	}
	if sum.Head.Min != 10 || sum.Head.Max != 14 || sum.Head.Mean != 12 {
		t.Fatalf("head stats = %+v", sum.Head)
	}
	if sum.Shaft.Mean != 600 {
		t.Fatalf("shaft mean = %g, want 600", sum.Shaft.Mean)
	}
	if sum.Head.StdDev <= 0 {
		t.Fatalf("head stddev = %g, want positive", sum.Head.StdDev)
	}

	empty := summarize([]SweepRow{{Label: "x", Err: "bad"}})
	if empty.Failed != 1 || empty.Head.Mean != 0 {
		t.Fatalf("all-failed summary = %+v", empty)
	}
}
