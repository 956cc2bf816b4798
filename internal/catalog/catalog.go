// Package catalog holds the static reference tables of fuels and vessel
// classes the voyage model computes against. A Catalog is built once at
// startup and shared read-only; there is no update or delete.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey is returned when a fuel label or vessel class name is not in
// the catalog.
var ErrUnknownKey = errors.New("unknown catalog key")

// Fuel is an immutable fuel record. Density and LHV are carried for
// reference; the model formulas use only the CO2 factor and price.
type Fuel struct {
	Label         string
	DensityTM3    float64 // tonnes per m³
	LHVMJKg       float64 // lower heating value, MJ/kg
	CO2FactorKgT  float64 // kg CO2 per tonne burned
	PriceUSDT     float64 // USD per tonne
	NonCombustion bool    // true for power sources that burn no bunker fuel
}

// VesselClass is an immutable vessel size class.
type VesselClass struct {
	Name         string
	CoefficientA float64 // tonnes/day per knot³
	CargoTonnes  float64
}

// Catalog maps fuel labels and vessel class names to their records.
type Catalog struct {
	fuels   map[string]Fuel
	vessels map[string]VesselClass
}

// New builds a catalog from the given records, validating each entry.
func New(fuels []Fuel, vessels []VesselClass) (*Catalog, error) {
	c := &Catalog{
		fuels:   make(map[string]Fuel, len(fuels)),
		vessels: make(map[string]VesselClass, len(vessels)),
	}
	for _, f := range fuels {
		if f.Label == "" {
			return nil, fmt.Errorf("fuel with empty label")
		}
		if f.CO2FactorKgT < 0 || f.PriceUSDT < 0 {
			return nil, fmt.Errorf("fuel %q: CO2 factor and price must be >= 0", f.Label)
		}
		c.fuels[f.Label] = f
	}
	for _, v := range vessels {
		if v.Name == "" {
			return nil, fmt.Errorf("vessel class with empty name")
		}
		if v.CoefficientA <= 0 || v.CargoTonnes <= 0 {
			return nil, fmt.Errorf("vessel class %q: coefficient and cargo must be > 0", v.Name)
		}
		c.vessels[v.Name] = v
	}
	return c, nil
}

// Fuel returns the fuel record for label.
func (c *Catalog) Fuel(label string) (Fuel, error) {
	f, ok := c.fuels[label]
	if !ok {
		return Fuel{}, fmt.Errorf("fuel %q: %w", label, ErrUnknownKey)
	}
	return f, nil
}

// VesselClass returns the vessel class record for name.
func (c *Catalog) VesselClass(name string) (VesselClass, error) {
	v, ok := c.vessels[name]
	if !ok {
		return VesselClass{}, fmt.Errorf("vessel class %q: %w", name, ErrUnknownKey)
	}
	return v, nil
}

// FuelLabels returns all fuel labels in sorted order.
func (c *Catalog) FuelLabels() []string {
	labels := make([]string, 0, len(c.fuels))
	for l := range c.fuels {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// VesselNames returns all vessel class names in sorted order.
func (c *Catalog) VesselNames() []string {
	names := make([]string, 0, len(c.vessels))
	for n := range c.vessels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Fuels returns all fuel records ordered by label.
func (c *Catalog) Fuels() []Fuel {
	fuels := make([]Fuel, 0, len(c.fuels))
	for _, l := range c.FuelLabels() {
		fuels = append(fuels, c.fuels[l])
	}
	return fuels
}

// VesselClasses returns all vessel class records ordered by name.
func (c *Catalog) VesselClasses() []VesselClass {
	vessels := make([]VesselClass, 0, len(c.vessels))
	for _, n := range c.VesselNames() {
		vessels = append(vessels, c.vessels[n])
	}
	return vessels
}
