package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/cepro/fleetoptimizer/fleetoptimizer"
	"github.com/cepro/fleetoptimizer/repository"
	"github.com/cepro/fleetoptimizer/scenario"
	"github.com/cepro/fleetoptimizer/solver"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	var scenarioFilePath string
	var dbPath string
	flag.StringVar(&scenarioFilePath, "f", "./scenario.yaml", "Specify scenario file path")
	flag.StringVar(&dbPath, "db", "", "Optional sqlite path to persist the solved result to")
	flag.Parse()

	slog.Info("Starting", "scenario_file", scenarioFilePath)

	sc, err := scenario.Read(scenarioFilePath)
	if err != nil {
		slog.Error("Failed to read scenario", "error", err)
		return
	}

	batteries, err := sc.Batteries()
	if err != nil {
		slog.Error("Failed to build batteries", "error", err)
		return
	}
	grid, err := sc.Grid()
	if err != nil {
		slog.Error("Failed to build grid", "error", err)
		return
	}

	opt := fleetoptimizer.New(sc.Dt, sc.Config)
	for _, b := range batteries {
		opt.AddBattery(b)
	}
	if grid != nil {
		opt.AddGrid(*grid)
	}
	opt.AddSiteLoad(sc.SiteLoad)
	opt.AddPrices(sc.TariffImport, sc.TariffExport, sc.CapacityTariffImport, sc.CapacityTariffExport, nil, nil)
	opt.AddDateRange(sc.DateIndex(len(sc.TariffImport)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		slog.Info("Received interrupt, cancelling optimization")
		cancel()
	}()

	res, err := opt.Optimize(ctx, solver.Options{TimeLimit: 60 * time.Second})
	if err != nil {
		slog.Error("Optimize failed", "error", err)
		return
	}

	slog.Info("Optimize complete",
		"status", res.Status.String(),
		"objective", res.Objective,
		"peak_import", res.PeakImport,
		"peak_export", res.PeakExport,
	)

	if dbPath != "" {
		repo, err := repository.New(dbPath)
		if err != nil {
			slog.Error("Failed to open result database", "error", err)
			return
		}
		if err := repo.StoreResult(0, time.Now(), res); err != nil {
			slog.Error("Failed to store result", "error", err)
		}
	}
}
