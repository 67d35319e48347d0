package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/packtherm/app"
	"github.com/kilianp07/packtherm/config"
	"github.com/kilianp07/packtherm/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "packtherm",
	Short: "EV battery pack thermal simulation",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	outcome, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	logg := logger.New("main")
	logg.Infof("run %s: peak %.2f°C, avg efficiency %.3f%%, risk %s",
		outcome.RunID, outcome.Summary.PeakTempC, outcome.Summary.AvgEfficiencyPct, outcome.Summary.Risk)
	logg.Infof("advisory: %s", outcome.Advice)

	if err := svc.Export(outcome.Samples); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Keep the metrics endpoint up for scraping until interrupted.
	if cfg.Metrics.PrometheusEnabled {
		<-ctx.Done()
	}
	return nil
}
