package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultCatalogContents(t *testing.T) {
	cat := Default()

	wantFuels := []string{"Bio-VLSFO", "LNG", "Methanol", "SMR (Nuclear)", "VLSFO"}
	gotFuels := cat.FuelLabels()
	if len(gotFuels) != len(wantFuels) {
		t.Fatalf("FuelLabels = %v, want %v", gotFuels, wantFuels)
	}
	for i, l := range wantFuels {
		if gotFuels[i] != l {
			t.Errorf("FuelLabels[%d] = %q, want %q", i, gotFuels[i], l)
		}
	}

	wantVessels := []string{"Handysize", "Panamax", "Supramax"}
	gotVessels := cat.VesselNames()
	if len(gotVessels) != len(wantVessels) {
		t.Fatalf("VesselNames = %v, want %v", gotVessels, wantVessels)
	}
	for i, n := range wantVessels {
		if gotVessels[i] != n {
			t.Errorf("VesselNames[%d] = %q, want %q", i, gotVessels[i], n)
		}
	}
}

func TestDefaultFuelRecords(t *testing.T) {
	cat := Default()

	vlsfo, err := cat.Fuel("VLSFO")
	if err != nil {
		t.Fatal(err)
	}
	if vlsfo.CO2FactorKgT != 3114 || vlsfo.PriceUSDT != 650 {
		t.Errorf("VLSFO = %+v, want CO2 3114 price 650", vlsfo)
	}
	if vlsfo.NonCombustion {
		t.Error("VLSFO must be a combustion fuel")
	}

	smr, err := cat.Fuel("SMR (Nuclear)")
	if err != nil {
		t.Fatal(err)
	}
	if !smr.NonCombustion {
		t.Error("SMR (Nuclear) must be flagged non-combustion")
	}
	if smr.CO2FactorKgT != 0 || smr.PriceUSDT != 0 {
		t.Errorf("SMR (Nuclear) = %+v, want zero CO2 factor and price", smr)
	}
}

func TestDefaultVesselCoefficients(t *testing.T) {
	cat := Default()

	// Each coefficient is the daily burn at 16 kn divided by 16³.
	cases := []struct {
		name     string
		burnAt16 float64
		cargo    float64
	}{
		{"Handysize", 24, 40000},
		{"Supramax", 30, 55000},
		{"Panamax", 44, 75000},
	}
	for _, c := range cases {
		v, err := cat.VesselClass(c.name)
		if err != nil {
			t.Fatalf("VesselClass(%q): %v", c.name, err)
		}
		if math.Abs(v.CoefficientA-c.burnAt16/4096) > 1e-15 {
			t.Errorf("%s coefficient = %v, want %v", c.name, v.CoefficientA, c.burnAt16/4096)
		}
		if v.CargoTonnes != c.cargo {
			t.Errorf("%s cargo = %v, want %v", c.name, v.CargoTonnes, c.cargo)
		}
	}
}

func TestLookupUnknownKey(t *testing.T) {
	cat := Default()
	if _, err := cat.Fuel("Ammonia"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Fuel(Ammonia) error = %v, want ErrUnknownKey", err)
	}
	if _, err := cat.VesselClass("Capesize"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("VesselClass(Capesize) error = %v, want ErrUnknownKey", err)
	}
}

func TestNewValidation(t *testing.T) {
	goodFuel := Fuel{Label: "Test", CO2FactorKgT: 100, PriceUSDT: 10}
	goodVessel := VesselClass{Name: "Test", CoefficientA: 0.01, CargoTonnes: 1000}

	cases := []struct {
		name    string
		fuels   []Fuel
		vessels []VesselClass
	}{
		{"empty fuel label", []Fuel{{CO2FactorKgT: 1, PriceUSDT: 1}}, []VesselClass{goodVessel}},
		{"negative CO2 factor", []Fuel{{Label: "X", CO2FactorKgT: -1}}, []VesselClass{goodVessel}},
		{"negative price", []Fuel{{Label: "X", PriceUSDT: -1}}, []VesselClass{goodVessel}},
		{"empty vessel name", []Fuel{goodFuel}, []VesselClass{{CoefficientA: 0.01, CargoTonnes: 1}}},
		{"zero coefficient", []Fuel{goodFuel}, []VesselClass{{Name: "X", CargoTonnes: 1}}},
		{"zero cargo", []Fuel{goodFuel}, []VesselClass{{Name: "X", CoefficientA: 0.01}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.fuels, c.vessels); err == nil {
				t.Error("New accepted invalid entry")
			}
		})
	}

	if _, err := New([]Fuel{goodFuel}, []VesselClass{goodVessel}); err != nil {
		t.Errorf("New rejected valid entries: %v", err)
	}
}

func TestOrderedRecordViews(t *testing.T) {
	cat := Default()
	fuels := cat.Fuels()
	labels := cat.FuelLabels()
	for i, f := range fuels {
		if f.Label != labels[i] {
			t.Errorf("Fuels()[%d].Label = %q, want %q", i, f.Label, labels[i])
		}
	}
	vessels := cat.VesselClasses()
	names := cat.VesselNames()
	for i, v := range vessels {
		if v.Name != names[i] {
			t.Errorf("VesselClasses()[%d].Name = %q, want %q", i, v.Name, names[i])
		}
	}
}
