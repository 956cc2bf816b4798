package explorer

import (
	"context"
	"log"

	"mccse/internal/voyage"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter persists scenario rows to GreptimeDB via the ingester
// client, giving long-running sessions a queryable record.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
}

// NewGreptimeDBWriter connects to a GreptimeDB host and returns a writer.
// The scenario table is created on first write by the ingester.
func NewGreptimeDBWriter(host, database string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{
		client: client,
		table:  voyage.ScenarioRow{}.TableName(),
	}, nil
}

// Write inserts a single scenario row.
func (w *GreptimeDBWriter) Write(row voyage.ScenarioRow) error {
	return w.WriteBatch([]voyage.ScenarioRow{row})
}

// WriteBatch inserts multiple scenario rows.
func (w *GreptimeDBWriter) WriteBatch(rows []voyage.ScenarioRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("session_id", types.STRING)
	tbl.AddTagColumn("vessel", types.STRING)
	tbl.AddTagColumn("fuel", types.STRING)
	tbl.AddFieldColumn("scenario_id", types.STRING)
	tbl.AddFieldColumn("speed_kn", types.FLOAT)
	tbl.AddFieldColumn("distance_nm", types.FLOAT)
	tbl.AddFieldColumn("hull_fouling_pct", types.FLOAT)
	tbl.AddFieldColumn("wind_assist_pct", types.FLOAT)
	tbl.AddFieldColumn("solar_assist_pct", types.FLOAT)
	tbl.AddFieldColumn("carbon_price_usd_t", types.FLOAT)
	tbl.AddFieldColumn("fuel_t", types.FLOAT)
	tbl.AddFieldColumn("co2_t", types.FLOAT)
	tbl.AddFieldColumn("fuel_spend_usd", types.FLOAT)
	tbl.AddFieldColumn("carbon_spend_usd", types.FLOAT)
	tbl.AddFieldColumn("total_spend_usd", types.FLOAT)
	tbl.AddFieldColumn("usd_per_tonne_mile", types.FLOAT)
	tbl.AddFieldColumn("cached", types.BOOLEAN)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	for _, r := range rows {
		if err := tbl.AddRow(
			r.SessionID, r.VesselKey, r.FuelKey,
			r.ScenarioID,
			r.SpeedKn, r.DistanceNM,
			r.HullFoulingPct, r.WindAssistPct, r.SolarAssistPct,
			r.CarbonPriceUSDT,
			r.FuelTonnes, r.CO2Tonnes,
			r.FuelSpendUSD, r.CarbonSpendUSD, r.TotalSpendUSD,
			r.USDPerTonneMile,
			r.Cached,
			r.Timestamp,
		); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}
	return nil
}
