package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/packtherm/config"
	"github.com/kilianp07/packtherm/core/model"
	"github.com/kilianp07/packtherm/core/sim"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the configured load under every cooling method",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	req, err := cfg.Simulation.ToModel()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COOLING\tH (W/m²K)\tPEAK (°C)\tAVG EFF (%)\tRISK")
	for _, cooling := range model.CoolingTypes() {
		r := req
		r.Cooling = cooling
		vc, err := sim.Validate(r)
		if err != nil {
			return err
		}
		sum := sim.Summarize(sim.Simulate(vc))
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.3f\t%s\n",
			cooling, cooling.DissipationCoeff(), sum.PeakTempC, sum.AvgEfficiencyPct, sum.Risk)
	}
	return w.Flush()
}
