package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pumphead/hydraulics"
)

type paramRow struct {
	Name  string
	Value float64
	Unit  string
}

// resultRows is the fixed export order of the parameter table.
func resultRows(res hydraulics.Result) []paramRow {
	return []paramRow{
		{"flow_rate", res.FlowRate, "m3/s"},
		{"velocity_main", res.Velocity, "m/s"},
		{"reynolds", res.Reynolds, "-"},
		{"friction_factor", res.FrictionFactor, "-"},
		{"elevation_rise", res.ElevationRise, "m"},
		{"kinetic_head", res.KineticHead, "m"},
		{"minor_loss", res.MinorLoss, "m"},
		{"major_loss", res.MajorLoss, "m"},
		{"total_loss", res.TotalLoss, "m"},
		{"pump_head", res.PumpHead, "m"},
		{"efficiency", res.Efficiency, "-"},
		{"hydraulic_power", res.HydraulicPower, "W"},
		{"shaft_power", res.ShaftPower, "W"},
		{"hydraulic_power_hp", res.HydraulicHP, "hp"},
		{"shaft_power_hp", res.ShaftHP, "hp"},
	}
}

// exportResultCSV writes one (parameter, value, unit) table. The file
// name carries a timestamp and a short run id so same-second runs do
// not collide.
func (s *Service) exportResultCSV(name string, res hydraulics.Result) (string, error) {
	if err := os.MkdirAll(s.outDir(), 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.outDir(),
		fmt.Sprintf("%s_%s_%s.csv", slug(name), time.Now().Format("20060102-150405"), runID()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"parameter", "value", "unit"}); err != nil {
		return "", err
	}
	for _, row := range resultRows(res) {
		rec := []string{row.Name, strconv.FormatFloat(row.Value, 'g', -1, 64), row.Unit}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// exportSweepCSV writes the per-case table of a finished sweep.
func (s *Service) exportSweepCSV(name string, rows []SweepRow) (string, error) {
	if err := os.MkdirAll(s.outDir(), 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.outDir(),
		fmt.Sprintf("%s_sweep_%s_%s.csv", slug(name), time.Now().Format("20060102-150405"), runID()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"case", "velocity_mps", "pump_head_m", "shaft_power_w", "shaft_power_hp", "error"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		rec := []string{
			row.Label,
			strconv.FormatFloat(row.Velocity, 'g', -1, 64),
			strconv.FormatFloat(row.PumpHead, 'g', -1, 64),
			strconv.FormatFloat(row.ShaftW, 'g', -1, 64),
			strconv.FormatFloat(row.ShaftHP, 'g', -1, 64),
			row.Err,
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func runID() string {
	return uuid.NewString()[:8]
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "scenario"
	}
	return b.String()
}
