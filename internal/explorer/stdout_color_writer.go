// ColorStdoutWriter prints human-friendly, colorized scenario results to STDOUT.
package explorer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"mccse/internal/catalog"
	"mccse/internal/voyage"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorBlue    = "\x1b[34m"
	colorMagenta = "\x1b[35m"
	colorCyan    = "\x1b[36m"
	colorGray    = "\x1b[90m"
	colorWhite   = "\x1b[97m"
)

var fuelPalette = []string{colorRed, colorGreen, colorYellow, colorBlue, colorMagenta, colorCyan}

// ColorStdoutWriter prints scenario rows using ANSI colors, preceded by a
// one-time catalog overview.
type ColorStdoutWriter struct {
	cat        *catalog.Catalog
	out        io.Writer
	once       sync.Once
	fuelColors map[string]string
	colorIdx   int
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter(cat *catalog.Catalog) *ColorStdoutWriter {
	return &ColorStdoutWriter{
		cat:        cat,
		out:        os.Stdout,
		fuelColors: make(map[string]string),
	}
}

func (w *ColorStdoutWriter) getFuelColor(label string) string {
	if c, ok := w.fuelColors[label]; ok {
		return c
	}
	c := fuelPalette[w.colorIdx%len(fuelPalette)]
	w.fuelColors[label] = c
	w.colorIdx++
	return c
}

func (w *ColorStdoutWriter) printOverview() {
	if w.cat == nil {
		return
	}
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUEL\tCO2 kg/t\tUSD/t\t")
	for _, f := range w.cat.Fuels() {
		fmt.Fprintf(tw, "%s%s%s\t%.0f\t%.0f\t\n", w.getFuelColor(f.Label), f.Label, colorReset, f.CO2FactorKgT, f.PriceUSDT)
	}
	fmt.Fprintln(tw, "VESSEL\tcoeff a\tcargo t\t")
	for _, v := range w.cat.VesselClasses() {
		fmt.Fprintf(tw, "%s\t%.6f\t%.0f\t\n", v.Name, v.CoefficientA, v.CargoTonnes)
	}
	tw.Flush()
	fmt.Fprintln(w.out)
}

// Write outputs one scenario as a colorized line.
func (w *ColorStdoutWriter) Write(row voyage.ScenarioRow) error {
	w.once.Do(w.printOverview)
	fColor := w.getFuelColor(row.FuelKey)
	line := fmt.Sprintf("%s[%s]%s %svessel=%s%s %sfuel=%s%s %sspeed=%.1fkn%s %sdist=%.0fnm%s %sfuel_t=%.1f%s %sco2_t=%.1f%s %stotal=$%.0f%s %susd/tmi=%.6f%s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.VesselKey, colorReset,
		fColor, row.FuelKey, colorReset,
		colorYellow, row.SpeedKn, colorReset,
		colorCyan, row.DistanceNM, colorReset,
		colorGreen, row.FuelTonnes, colorReset,
		colorMagenta, row.CO2Tonnes, colorReset,
		colorWhite, row.TotalSpendUSD, colorReset,
		colorGray, row.USDPerTonneMile, colorReset,
	)
	if row.Cached {
		line += fmt.Sprintf(" %scached%s", colorGray, colorReset)
	}
	fmt.Fprintln(w.out, line)
	return nil
}

// WriteBatch outputs multiple scenario rows.
func (w *ColorStdoutWriter) WriteBatch(rows []voyage.ScenarioRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}
