package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"pumphead/hydraulics"
	"pumphead/model"
	"pumphead/pkg/logger"
)

// ImportSweep reads a case workbook: a "case" label column followed by
// any of the supported parameter columns. Blank cells keep the base
// scenario's value. Rows that fail to parse are skipped with a warning.
func (s *Service) ImportSweep(file io.Reader) ([]SweepCase, error) {
	xlsx, err := excelize.OpenReader(file)
	if err != nil {
		logger.Logger.Errorf("open excel file error: %v", err)
		return nil, err
	}

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("sweep workbook has no data rows")
	}

	header := rows[0]
	if len(header) == 0 || !strings.EqualFold(header[0], "case") {
		return nil, errors.New(`sweep workbook must lead with a "case" column`)
	}
	for _, col := range header[1:] {
		if !sweepColumn(col) {
			return nil, fmt.Errorf("sweep column unsupported: %q", col)
		}
	}

	var cases []SweepCase
	for rowNum, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			logger.Logger.Warnf("sweep row %d has no case label, skipped", rowNum+2)
			continue
		}
		c := SweepCase{Label: row[0], Overrides: make(map[string]float64)}
		valid := true
		for i, col := range header[1:] {
			if i+1 >= len(row) || row[i+1] == "" {
				continue
			}
			v, err := cast.ToFloat64E(row[i+1])
			if err != nil {
				logger.Logger.Warnf("sweep row %d column %s is not numeric, row skipped: %v", rowNum+2, col, err)
				valid = false
				break
			}
			c.Overrides[strings.ToLower(col)] = v
		}
		if valid {
			cases = append(cases, c)
		}
	}
	return cases, nil
}

// RunSweepFiles applies every workbook case to the base scenario,
// solves them all, and exports the per-case table as csv.
func (s *Service) RunSweepFiles(scenarioPath, sweepPath string) (*SweepOutput, error) {
	raw, err := os.ReadFile(scenarioPath)
	if err != nil {
		logger.Logger.Errorf("read scenario file %s error: %v", scenarioPath, err)
		return nil, err
	}
	base, err := model.ParseScenario(raw)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(sweepPath)
	if err != nil {
		logger.Logger.Errorf("open sweep file %s error: %v", sweepPath, err)
		return nil, err
	}
	defer f.Close()

	cases, err := s.ImportSweep(f)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, errors.New("sweep workbook has no usable rows")
	}

	rows := s.solveCases(base, cases)

	csvPath, err := s.exportSweepCSV(scenarioName(base, scenarioPath), rows)
	if err != nil {
		return nil, err
	}
	return &SweepOutput{Rows: rows, Summary: summarize(rows), CSVPath: csvPath}, nil
}

// solveCases fans the cases out over a bounded worker pool. Row order
// matches case order.
func (s *Service) solveCases(base model.Scenario, cases []SweepCase) []SweepRow {
	rows := make([]SweepRow, len(cases))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = s.solveCase(base, cases[i])
			}
		}()
	}
	for i := range cases {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return rows
}

// solveCase records a per-case failure in the row instead of aborting
// the sweep.
func (s *Service) solveCase(base model.Scenario, c SweepCase) SweepRow {
	sc := applyCase(base, c)
	if err := sc.Validate(); err != nil {
		return SweepRow{Label: c.Label, Err: err.Error()}
	}
	res, err := hydraulics.Solve(sc.ToSystemConfig(s.cfg.FrictionModel))
	if err != nil {
		return SweepRow{Label: c.Label, Err: err.Error()}
	}
	return SweepRow{
		Label:    c.Label,
		Velocity: res.Velocity,
		PumpHead: res.PumpHead,
		ShaftW:   res.ShaftPower,
		ShaftHP:  res.ShaftHP,
	}
}
