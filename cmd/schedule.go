package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jaewonkim/ivsched/config"
	"github.com/jaewonkim/ivsched/core/events"
	coremetrics "github.com/jaewonkim/ivsched/core/metrics"
	"github.com/jaewonkim/ivsched/core/scheduling"
	"github.com/jaewonkim/ivsched/core/slots"
	"github.com/jaewonkim/ivsched/infra/logger"
	"github.com/jaewonkim/ivsched/infra/metrics"
	"github.com/jaewonkim/ivsched/internal/eventbus"
)

var teamsPath string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule all teams onto the configured slot grid",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&teamsPath, "teams", "t", "teams.json", "team roster file")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, _ := zerolog.ParseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)
	logg := logger.New("schedule-command")

	grid, err := slots.Generate(cfg.Grid)
	if err != nil {
		return fmt.Errorf("slot grid: %w", err)
	}
	teams, err := config.LoadTeams(teamsPath)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		sink, err = metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PrometheusPort); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}

	bus := eventbus.New()
	defer bus.Close()
	go logRunEvents(bus.Subscribe(), logg)

	engine, err := scheduling.NewEngine(scheduling.DefaultStrategies(), logg, sink, bus)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	result, err := engine.Schedule(ctx, teams, grid, cfg.Scheduling)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func logRunEvents(ch <-chan eventbus.Event, logg logger.Logger) {
	for ev := range ch {
		switch e := ev.(type) {
		case events.StrategyStarted:
			logg.Debugf("run %s: strategy %s started", e.RunID, e.Strategy)
		case events.StrategyFinished:
			logg.Debugf("run %s: strategy %s finished, status=%s elapsed=%s", e.RunID, e.Strategy, e.Status, e.Elapsed)
		case events.RunCompleted:
			logg.Infof("run %s: completed, selected=%s options=%d unplaced=%d", e.RunID, e.Selected, e.Options, e.Unplaced)
		}
	}
}
