package main

import (
	"github.com/spf13/cobra"

	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

var (
	evalVessel      string
	evalFuel        string
	evalSpeed       float64
	evalDistance    float64
	evalFouling     float64
	evalWind        float64
	evalSolar       float64
	evalCarbonPrice float64
	evalJSON        bool
	evalLogFile     string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a single voyage scenario",
	Long:  "evaluate computes fuel burn, emissions, and cost for one vessel/fuel/voyage combination and prints the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		writer, cleanup, err := newWriter(cat, evalJSON, evalLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		exp, err := explorer.New(cat, writer)
		if err != nil {
			return err
		}
		_, err = exp.Evaluate(voyage.Request{
			VesselKey:       evalVessel,
			FuelKey:         evalFuel,
			SpeedKn:         evalSpeed,
			DistanceNM:      evalDistance,
			HullFoulingPct:  evalFouling,
			WindAssistPct:   evalWind,
			SolarAssistPct:  evalSolar,
			CarbonPriceUSDT: evalCarbonPrice,
		})
		return err
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evalVessel, "vessel", "Panamax", "Vessel class name")
	evaluateCmd.Flags().StringVar(&evalFuel, "fuel", "VLSFO", "Fuel label")
	evaluateCmd.Flags().Float64Var(&evalSpeed, "speed", 13, "Speed in knots")
	evaluateCmd.Flags().Float64Var(&evalDistance, "distance", 10000, "Voyage distance in nautical miles")
	evaluateCmd.Flags().Float64Var(&evalFouling, "fouling", 0, "Hull fouling penalty in percent")
	evaluateCmd.Flags().Float64Var(&evalWind, "wind", 0, "Wind-assist benefit in percent")
	evaluateCmd.Flags().Float64Var(&evalSolar, "solar", 0, "Solar-assist benefit in percent")
	evaluateCmd.Flags().Float64Var(&evalCarbonPrice, "carbon-price", 100, "Carbon price in USD per tonne CO2")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the result as JSON instead of the colored line")
	evaluateCmd.Flags().StringVar(&evalLogFile, "log-file", "", "Path to export scenario rows (JSONL)")
}
