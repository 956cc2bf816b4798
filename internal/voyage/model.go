// Package voyage implements the scenario calculation model: deterministic
// formulas converting voyage parameters into fuel, emissions, and cost
// figures. Every function is pure; identical inputs give identical outputs.
package voyage

import (
	"errors"
	"fmt"

	"mccse/internal/catalog"
)

// ErrInvalidParameter is returned when speed, distance, or carbon price is
// outside its valid range.
var ErrInvalidParameter = errors.New("invalid parameter")

// penaltyFloor is the hard lower clamp on the combined efficiency factor.
// It keeps over-optimistic wind+solar combinations from driving consumption
// below a physically plausible bound.
const penaltyFloor = 0.7

// PenaltyFactor combines hull fouling and assist benefits into a single
// consumption multiplier, clamped at the floor.
func PenaltyFactor(foulPct, windPct, solarPct float64) float64 {
	fouling := 1 + foulPct/100
	assist := 1 - (windPct+solarPct)/100
	factor := fouling * assist
	if factor < penaltyFloor {
		return penaltyFloor
	}
	return factor
}

// Days returns the voyage duration in days. Callers must guarantee
// speedKn > 0.
func Days(distanceNM, speedKn float64) float64 {
	return distanceNM / (speedKn * 24)
}

// FuelTonnes returns total fuel burned over the voyage. Non-combustion
// power sources burn exactly zero regardless of the other parameters.
// Otherwise daily burn follows the cubic speed-to-power relationship
// a * v³ scaled by the efficiency factor.
func FuelTonnes(vessel catalog.VesselClass, fuel catalog.Fuel, speedKn, distanceNM, foulPct, windPct, solarPct float64) float64 {
	if fuel.NonCombustion {
		return 0
	}
	daily := vessel.CoefficientA * speedKn * speedKn * speedKn * PenaltyFactor(foulPct, windPct, solarPct)
	return daily * Days(distanceNM, speedKn)
}

// CO2Tonnes converts fuel burn into emitted CO2 tonnes.
func CO2Tonnes(fuelTonnes float64, fuel catalog.Fuel) float64 {
	return fuelTonnes * fuel.CO2FactorKgT / 1000
}

// FuelCost returns the bunker spend in USD.
func FuelCost(fuelTonnes float64, fuel catalog.Fuel) float64 {
	return fuelTonnes * fuel.PriceUSDT
}

// CarbonCost returns the carbon spend in USD at the given price per tonne
// of CO2.
func CarbonCost(co2Tonnes, priceUSDT float64) float64 {
	return co2Tonnes * priceUSDT
}

// CostPerTonneMile returns the total spend normalized by freight work.
// Callers must guarantee cargoTonnes and distanceNM are positive.
func CostPerTonneMile(totalUSD, cargoTonnes, distanceNM float64) float64 {
	return totalUSD / (cargoTonnes * distanceNM)
}

// Evaluate resolves the request keys against the catalog, validates the
// numeric preconditions, and computes all six scenario outputs. It returns
// catalog.ErrUnknownKey for unrecognized keys and ErrInvalidParameter for
// out-of-range speed, distance, or carbon price. Out-of-range percentages
// never fail; the factor floor clamps them instead.
func Evaluate(cat *catalog.Catalog, req Request) (Result, error) {
	vessel, err := cat.VesselClass(req.VesselKey)
	if err != nil {
		return Result{}, err
	}
	fuel, err := cat.Fuel(req.FuelKey)
	if err != nil {
		return Result{}, err
	}
	if req.SpeedKn <= 0 {
		return Result{}, fmt.Errorf("speed %.2f kn: %w", req.SpeedKn, ErrInvalidParameter)
	}
	if req.DistanceNM <= 0 {
		return Result{}, fmt.Errorf("distance %.2f nm: %w", req.DistanceNM, ErrInvalidParameter)
	}
	if req.CarbonPriceUSDT < 0 {
		return Result{}, fmt.Errorf("carbon price %.2f USD/t: %w", req.CarbonPriceUSDT, ErrInvalidParameter)
	}

	fuelT := FuelTonnes(vessel, fuel, req.SpeedKn, req.DistanceNM, req.HullFoulingPct, req.WindAssistPct, req.SolarAssistPct)
	co2T := CO2Tonnes(fuelT, fuel)
	fuelSpend := FuelCost(fuelT, fuel)
	carbonSpend := CarbonCost(co2T, req.CarbonPriceUSDT)
	total := fuelSpend + carbonSpend

	return Result{
		FuelTonnes:      fuelT,
		CO2Tonnes:       co2T,
		FuelSpendUSD:    fuelSpend,
		CarbonSpendUSD:  carbonSpend,
		TotalSpendUSD:   total,
		USDPerTonneMile: CostPerTonneMile(total, vessel.CargoTonnes, req.DistanceNM),
	}, nil
}
