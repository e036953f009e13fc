// Command trafficsim runs a headless traffic simulation and prints a
// summary of the run counters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.IntVar(&cfg.NumVehicles, "vehicles", cfg.NumVehicles, "number of vehicles")
	flag.IntVar(&cfg.NumCrossings, "crossings", cfg.NumCrossings, "number of pedestrian crossings")
	flag.Float64Var(&cfg.Duration, "duration", cfg.Duration, "simulated seconds to run (0 = forever)")
	flag.Float64Var(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per simulated second")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	metricsPath := flag.String("metrics", "", "write run metrics to this JSON file")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sm, err := sim.NewSimulator(cfg)
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := sm.Run(ctx)
	if err != nil {
		slog.Warn("run interrupted", "err", err)
	}

	fmt.Printf("run %s: %d ticks over %.1fs simulated\n", m.RunID, m.Ticks, m.SimulatedTime)
	fmt.Printf("  moves=%d arrivals=%d replans=%d retargets=%d\n",
		m.MovesCommitted, m.Arrivals, m.Replans, m.DestinationChanges)
	fmt.Printf("  rejected: light=%d occupied=%d pedestrian=%d obstacle=%d\n",
		m.RejectedLight, m.RejectedOccupied, m.RejectedPedestrian, m.RejectedObstacle)
	fmt.Printf("  pedestrians: spawned=%d completed=%d\n",
		m.PedestriansSpawned, m.PedestriansCompleted)

	if *metricsPath != "" {
		if err := sm.ExportMetrics(*metricsPath); err != nil {
			slog.Error("metrics export failed", "path", *metricsPath, "err", err)
			os.Exit(1)
		}
		slog.Info("metrics written", "path", *metricsPath)
	}
}
