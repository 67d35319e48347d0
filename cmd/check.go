package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/packtherm/config"
	"github.com/kilianp07/packtherm/core/sim"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the simulation request without running it",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	req, err := cfg.Simulation.ToModel()
	if err != nil {
		return err
	}
	if _, err := sim.Validate(req); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "configuration valid")
	return nil
}
