// YAML catalog loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FuelEntry defines one fuel record in the catalog file.
type FuelEntry struct {
	Label         string  `yaml:"label"`
	DensityTM3    float64 `yaml:"density_t_m3"`
	LHVMJKg       float64 `yaml:"lhv_mj_kg"`
	CO2FactorKgT  float64 `yaml:"co2_factor_kg_t"`
	PriceUSDT     float64 `yaml:"price_usd_t"`
	NonCombustion bool    `yaml:"non_combustion"`
}

// VesselEntry defines one vessel size class in the catalog file.
type VesselEntry struct {
	Name         string  `yaml:"name"`
	CoefficientA float64 `yaml:"coefficient_a"`
	CargoTonnes  float64 `yaml:"cargo_tonnes"`
}

// CatalogConfig is the root configuration for fuels and vessel classes.
type CatalogConfig struct {
	Fuels         []FuelEntry   `yaml:"fuels"`
	VesselClasses []VesselEntry `yaml:"vessel_classes"`
}

// Load loads a YAML catalog file and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*CatalogConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Fuels) == 0 {
		return nil, fmt.Errorf("catalog config %s defines no fuels", configPath)
	}
	if len(cfg.VesselClasses) == 0 {
		return nil, fmt.Errorf("catalog config %s defines no vessel classes", configPath)
	}
	return &cfg, nil
}
