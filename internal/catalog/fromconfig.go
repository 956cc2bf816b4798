package catalog

import (
	"mccse/internal/config"
)

// FromConfig builds a catalog from a loaded configuration file, applying
// the same record validation as New.
func FromConfig(cfg *config.CatalogConfig) (*Catalog, error) {
	fuels := make([]Fuel, 0, len(cfg.Fuels))
	for _, f := range cfg.Fuels {
		fuels = append(fuels, Fuel{
			Label:         f.Label,
			DensityTM3:    f.DensityTM3,
			LHVMJKg:       f.LHVMJKg,
			CO2FactorKgT:  f.CO2FactorKgT,
			PriceUSDT:     f.PriceUSDT,
			NonCombustion: f.NonCombustion,
		})
	}
	vessels := make([]VesselClass, 0, len(cfg.VesselClasses))
	for _, v := range cfg.VesselClasses {
		vessels = append(vessels, VesselClass{
			Name:         v.Name,
			CoefficientA: v.CoefficientA,
			CargoTonnes:  v.CargoTonnes,
		})
	}
	return New(fuels, vessels)
}
