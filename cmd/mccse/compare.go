package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

var (
	cmpBy          string
	cmpVessel      string
	cmpFuel        string
	cmpSpeed       float64
	cmpDistance    float64
	cmpFouling     float64
	cmpWind        float64
	cmpSolar       float64
	cmpCarbonPrice float64
	cmpLogFile     string
)

// sweep evaluates base once per catalog key along the chosen axis and
// returns the rows ranked by total spend.
func sweep(exp *explorer.Explorer, by string, base voyage.Request) ([]voyage.ScenarioRow, error) {
	var keys []string
	if by == "fuel" {
		keys = exp.Catalog().FuelLabels()
	} else {
		keys = exp.Catalog().VesselNames()
	}

	var rows []voyage.ScenarioRow
	for _, key := range keys {
		req := base
		if by == "fuel" {
			req.FuelKey = key
		} else {
			req.VesselKey = key
		}
		row, err := exp.Evaluate(req)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalSpendUSD < rows[j].TotalSpendUSD
	})
	return rows, nil
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a scenario across all fuels or vessel classes",
	Long:  "compare sweeps the catalog along one axis (fuel or vessel) with the remaining inputs fixed and prints a ranking by total spend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmpBy != "fuel" && cmpBy != "vessel" {
			return fmt.Errorf("unknown compare axis %q (want fuel or vessel)", cmpBy)
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		var writer explorer.ResultWriter
		var cleanup = func() {}
		if cmpLogFile != "" {
			fw, err := explorer.NewFileWriter(cmpLogFile)
			if err != nil {
				return err
			}
			writer, cleanup = fw, func() { fw.Close() }
		}
		defer cleanup()

		exp, err := explorer.New(cat, writer)
		if err != nil {
			return err
		}

		base := voyage.Request{
			VesselKey:       cmpVessel,
			FuelKey:         cmpFuel,
			SpeedKn:         cmpSpeed,
			DistanceNM:      cmpDistance,
			HullFoulingPct:  cmpFouling,
			WindAssistPct:   cmpWind,
			SolarAssistPct:  cmpSolar,
			CarbonPriceUSDT: cmpCarbonPrice,
		}

		rows, err := sweep(exp, cmpBy, base)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VESSEL\tFUEL\tFUEL t\tCO2 t\tFUEL $\tCARBON $\tTOTAL $\tUSD/t-mile\t")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%.0f\t%.0f\t%.0f\t%.6f\t\n",
				r.VesselKey, r.FuelKey, r.FuelTonnes, r.CO2Tonnes,
				r.FuelSpendUSD, r.CarbonSpendUSD, r.TotalSpendUSD, r.USDPerTonneMile)
		}
		return tw.Flush()
	},
}

func init() {
	compareCmd.Flags().StringVar(&cmpBy, "by", "fuel", "Sweep axis: fuel or vessel")
	compareCmd.Flags().StringVar(&cmpVessel, "vessel", "Panamax", "Vessel class name (fixed when sweeping fuels)")
	compareCmd.Flags().StringVar(&cmpFuel, "fuel", "VLSFO", "Fuel label (fixed when sweeping vessels)")
	compareCmd.Flags().Float64Var(&cmpSpeed, "speed", 13, "Speed in knots")
	compareCmd.Flags().Float64Var(&cmpDistance, "distance", 10000, "Voyage distance in nautical miles")
	compareCmd.Flags().Float64Var(&cmpFouling, "fouling", 0, "Hull fouling penalty in percent")
	compareCmd.Flags().Float64Var(&cmpWind, "wind", 0, "Wind-assist benefit in percent")
	compareCmd.Flags().Float64Var(&cmpSolar, "solar", 0, "Solar-assist benefit in percent")
	compareCmd.Flags().Float64Var(&cmpCarbonPrice, "carbon-price", 100, "Carbon price in USD per tonne CO2")
	compareCmd.Flags().StringVar(&cmpLogFile, "log-file", "", "Path to export scenario rows (JSONL)")
}
