package catalog

// Propulsion coefficients derived from a 16 kn reference consumption per
// class: tonnes/day at 16 kn divided by 16³.
const (
	coeffHandysize = 24.0 / 4096.0
	coeffSupramax  = 30.0 / 4096.0
	coeffPanamax   = 44.0 / 4096.0
)

// Default returns the built-in reference catalog: five fuels (including one
// non-combustion power source) and three dry-bulk size classes. Prices are
// Q1-2025 spot averages; CO2 factors and LHVs follow SGMF 2024 figures.
func Default() *Catalog {
	c, err := New(
		[]Fuel{
			{Label: "VLSFO", DensityTM3: 0.97, LHVMJKg: 40.2, CO2FactorKgT: 3114, PriceUSDT: 650},
			{Label: "LNG", DensityTM3: 0.45, LHVMJKg: 50.0, CO2FactorKgT: 2750, PriceUSDT: 450},
			{Label: "Bio-VLSFO", DensityTM3: 0.93, LHVMJKg: 39.7, CO2FactorKgT: 180, PriceUSDT: 900},
			{Label: "Methanol", DensityTM3: 0.79, LHVMJKg: 19.9, CO2FactorKgT: 1375, PriceUSDT: 550},
			{Label: "SMR (Nuclear)", DensityTM3: 19.1, LHVMJKg: 80620, CO2FactorKgT: 0, PriceUSDT: 0, NonCombustion: true},
		},
		[]VesselClass{
			{Name: "Handysize", CoefficientA: coeffHandysize, CargoTonnes: 40000},
			{Name: "Supramax", CoefficientA: coeffSupramax, CargoTonnes: 55000},
			{Name: "Panamax", CoefficientA: coeffPanamax, CargoTonnes: 75000},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
