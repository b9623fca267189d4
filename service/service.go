package service

import (
	"os"

	"pumphead/hydraulics"
	"pumphead/model"
	"pumphead/pkg/logger"
)

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) outDir() string {
	if s.cfg.OutDir == "" {
		return "./out"
	}
	return s.cfg.OutDir
}

func (s *Service) precision() int {
	if s.cfg.Precision <= 0 {
		return 6
	}
	return s.cfg.Precision
}

func (s *Service) workers() int {
	if s.cfg.Workers <= 0 {
		return 4
	}
	return s.cfg.Workers
}

func (s *Service) jitter() float64 {
	if s.cfg.Jitter <= 0 {
		return 0.05
	}
	return s.cfg.Jitter
}

// RunScenario loads one scenario document, solves it and renders the
// report. With exportCSV the parameter table is also written to a
// timestamped file under the output directory.
func (s *Service) RunScenario(path string, exportCSV bool) (*RunOutput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Logger.Errorf("read scenario %s error: %v", path, err)
		return nil, err
	}
	sc, err := model.ParseScenario(raw)
	if err != nil {
		return nil, err
	}

	res, err := hydraulics.Solve(sc.ToSystemConfig(s.cfg.FrictionModel))
	if err != nil {
		return nil, err
	}

	name := scenarioName(sc, path)
	out := &RunOutput{Scenario: name, Result: res, Report: renderReport(name, res, s.precision())}
	if exportCSV {
		csvPath, err := s.exportResultCSV(name, res)
		if err != nil {
			return nil, err
		}
		out.CSVPath = csvPath
	}
	return out, nil
}
