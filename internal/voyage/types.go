// Scenario request/result structs with greptime tags
package voyage

import (
	"os"
	"time"
)

// Request is the full input tuple for one voyage scenario. All fields are
// value types so a Request can key a memoization cache directly.
type Request struct {
	VesselKey       string  `json:"vessel"`
	FuelKey         string  `json:"fuel"`
	SpeedKn         float64 `json:"speed_kn"`
	DistanceNM      float64 `json:"distance_nm"`
	HullFoulingPct  float64 `json:"hull_fouling_pct"`
	WindAssistPct   float64 `json:"wind_assist_pct"`
	SolarAssistPct  float64 `json:"solar_assist_pct"`
	CarbonPriceUSDT float64 `json:"carbon_price_usd_t"`
}

// Result holds the six scenario outputs. A Result has no identity beyond
// its values and is never mutated after creation.
type Result struct {
	FuelTonnes      float64 `json:"fuel_t"`
	CO2Tonnes       float64 `json:"co2_t"`
	FuelSpendUSD    float64 `json:"fuel_spend_usd"`
	CarbonSpendUSD  float64 `json:"carbon_spend_usd"`
	TotalSpendUSD   float64 `json:"total_spend_usd"`
	USDPerTonneMile float64 `json:"usd_per_tonne_mile"`
}

// ScenarioRow is one evaluated scenario flattened for writers and the
// session history log.
type ScenarioRow struct {
	SessionID       string    `json:"session_id"` // TAG
	ScenarioID      string    `json:"scenario_id"`
	VesselKey       string    `json:"vessel"` // TAG
	FuelKey         string    `json:"fuel"`   // TAG
	SpeedKn         float64   `json:"speed_kn"`
	DistanceNM      float64   `json:"distance_nm"`
	HullFoulingPct  float64   `json:"hull_fouling_pct"`
	WindAssistPct   float64   `json:"wind_assist_pct"`
	SolarAssistPct  float64   `json:"solar_assist_pct"`
	CarbonPriceUSDT float64   `json:"carbon_price_usd_t"`
	FuelTonnes      float64   `json:"fuel_t"`
	CO2Tonnes       float64   `json:"co2_t"`
	FuelSpendUSD    float64   `json:"fuel_spend_usd"`
	CarbonSpendUSD  float64   `json:"carbon_spend_usd"`
	TotalSpendUSD   float64   `json:"total_spend_usd"`
	USDPerTonneMile float64   `json:"usd_per_tonne_mile"`
	Cached          bool      `json:"cached"`
	Timestamp       time.Time `json:"ts"` // TIME INDEX
}

// ScenarioTableName holds the table name used when writing to GreptimeDB.
// It defaults to "voyage_scenarios" but can be overridden via the
// GREPTIMEDB_TABLE environment variable.
var ScenarioTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "voyage_scenarios"
}()

func (ScenarioRow) TableName() string {
	return ScenarioTableName
}
