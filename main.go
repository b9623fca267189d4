package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"pumphead/model"
	"pumphead/pkg/conf"
	"pumphead/pkg/logger"
	"pumphead/service"
)

func main() {
	conf.InitConf("./pumphead.yaml")
	logger.InitLogger("pumphead")

	if len(os.Args) < 2 {
		usage()
		return
	}

	frictionName := conf.Conf.GetString("solver.friction_model")
	friction, err := model.FrictionModelFromName(frictionName)
	if err != nil {
		logger.Logger.Warnf("config solver.friction_model %q unknown, using haaland", frictionName)
	}

	svc := service.NewService(service.Config{
		OutDir:        conf.Conf.GetString("output.dir"),
		Precision:     conf.Conf.GetInt("report.precision"),
		Workers:       conf.Conf.GetInt("sweep.workers"),
		Jitter:        conf.Conf.GetFloat64("sweep.jitter"),
		FrictionModel: friction,
	})

	switch os.Args[1] {
	case "solve":
		runSolve(svc, os.Args[2:])
	case "sweep":
		runSweep(svc, os.Args[2:])
	case "gen":
		runGen(svc, os.Args[2:])
	case "watch":
		runWatch(svc, os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: pumphead <solve|sweep|gen|watch> [flags]")
	fmt.Println("  solve -f scenario.yaml [-csv]")
	fmt.Println("  sweep -f scenario.yaml -s cases.xlsx")
	fmt.Println("  gen   -f scenario.yaml [-n count] [-j jitter] [-o cases.xlsx]")
	fmt.Println("  watch -f scenario.yaml [-csv]")
}

func runSolve(svc *service.Service, args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	file := fs.String("f", "", "scenario yaml file")
	exportCSV := fs.Bool("csv", false, "export the parameter table as csv")
	_ = fs.Parse(args)

	if *file == "" {
		fs.Usage()
		return
	}

	out, err := svc.RunScenario(*file, *exportCSV)
	if err != nil {
		logger.Logger.Errorf("solve %s failed: %v", *file, err)
		os.Exit(1)
	}
	fmt.Print(out.Report)
	if out.CSVPath != "" {
		fmt.Printf("\nexported %s\n", out.CSVPath)
	}
}

func runSweep(svc *service.Service, args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	file := fs.String("f", "", "scenario yaml file")
	cases := fs.String("s", "", "sweep xlsx workbook")
	_ = fs.Parse(args)

	if *file == "" || *cases == "" {
		fs.Usage()
		return
	}

	now := time.Now()
	out, err := svc.RunSweepFiles(*file, *cases)
	if err != nil {
		logger.Logger.Errorf("sweep %s failed: %v", *cases, err)
		os.Exit(1)
	}

	sum := out.Summary
	fmt.Printf("swept %d cases (%d failed) in %.2fs\n", sum.Cases, sum.Failed, time.Since(now).Seconds())
	if sum.Cases > sum.Failed {
		fmt.Printf("pump head   : min %.4g  max %.4g  mean %.4g  stddev %.4g  m\n",
			sum.Head.Min, sum.Head.Max, sum.Head.Mean, sum.Head.StdDev)
		fmt.Printf("shaft power : min %.4g  max %.4g  mean %.4g  stddev %.4g  W\n",
			sum.Shaft.Min, sum.Shaft.Max, sum.Shaft.Mean, sum.Shaft.StdDev)
	}
	fmt.Printf("exported %s\n", out.CSVPath)
}

func runGen(svc *service.Service, args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	file := fs.String("f", "", "scenario yaml file")
	n := fs.Int("n", 20, "number of cases")
	jitter := fs.Float64("j", 0, "jitter fraction, 0 takes the config value")
	out := fs.String("o", "", "output xlsx path")
	_ = fs.Parse(args)

	if *file == "" {
		fs.Usage()
		return
	}

	path, err := svc.GenerateSweep(*file, *n, *jitter, *out)
	if err != nil {
		logger.Logger.Errorf("gen from %s failed: %v", *file, err)
		os.Exit(1)
	}
	fmt.Printf("generated %d cases in %s\n", *n, path)
}

func runWatch(svc *service.Service, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	file := fs.String("f", "", "scenario yaml file")
	exportCSV := fs.Bool("csv", false, "export csv on every change")
	_ = fs.Parse(args)

	if *file == "" {
		fs.Usage()
		return
	}

	if err := watchScenario(svc, *file, *exportCSV); err != nil {
		logger.Logger.Errorf("watch %s failed: %v", *file, err)
		os.Exit(1)
	}
}

// watchScenario re-solves the scenario whenever its file changes. The
// directory is watched rather than the file so editors that save by
// rename-and-replace are caught too.
func watchScenario(svc *service.Service, path string, exportCSV bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	run := func() {
		out, err := svc.RunScenario(path, exportCSV)
		if err != nil {
			logger.Logger.Errorf("solve %s failed: %v", path, err)
			return
		}
		fmt.Print(out.Report)
		if out.CSVPath != "" {
			fmt.Printf("\nexported %s\n", out.CSVPath)
		}
	}
	run()

	target := filepath.Clean(path)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			run()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Errorf("watch error: %v", werr)
		}
	}
}
