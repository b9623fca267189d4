package service

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"pumphead/model"
	"pumphead/pkg/logger"
)

var sweepHeader = []string{"case", "flow_rate", "diameter", "length", "roughness", "z1", "z2", "efficiency"}

// GenerateSweep writes a workbook of n cases derived from the base
// scenario, each numeric field wobbled around its base value by the
// jitter fraction. An empty outPath places the file in the output
// directory.
func (s *Service) GenerateSweep(scenarioPath string, n int, jitter float64, outPath string) (string, error) {
	raw, err := os.ReadFile(scenarioPath)
	if err != nil {
		logger.Logger.Errorf("read scenario file %s error: %v", scenarioPath, err)
		return "", err
	}
	base, err := model.ParseScenario(raw)
	if err != nil {
		return "", err
	}

	if n <= 0 {
		n = 20
	}
	if jitter <= 0 {
		jitter = s.jitter()
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, col := range sweepHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return "", err
		}
	}

	wobble := func(v float64) float64 { return v + (rand.Float64()-0.5)*v*jitter }
	for row := 0; row < n; row++ {
		eta := wobble(base.Efficiency)
		if eta > 1 {
			eta = 1
		}
		values := []any{
			fmt.Sprintf("case-%02d", row+1),
			wobble(base.FlowRate),
			wobble(base.Pipe.Diameter),
			wobble(base.Pipe.Length),
			wobble(base.Pipe.Roughness),
			base.Z1, // elevation datum stays put
			wobble(base.Z2),
			eta,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if outPath == "" {
		if err := os.MkdirAll(s.outDir(), 0o755); err != nil {
			return "", err
		}
		name := fmt.Sprintf("%s_cases_%s.xlsx", slug(scenarioName(base, scenarioPath)), time.Now().Format("20060102-150405"))
		outPath = filepath.Join(s.outDir(), name)
	}
	if err := f.SaveAs(outPath); err != nil {
		return "", err
	}
	return outPath, nil
}
