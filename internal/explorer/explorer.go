// Explorer orchestrating scenario evaluation, memoization, and history
package explorer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mccse/internal/catalog"
	"mccse/internal/voyage"
)

// ResultWriter is an interface to support different output writers.
type ResultWriter interface {
	Write(voyage.ScenarioRow) error
}

// Optional: Writers can also support batch mode
type batchWriter interface {
	WriteBatch([]voyage.ScenarioRow) error
}

// Explorer wraps the pure voyage model with the session plumbing: a
// memoization cache, the append-only history log, and result writers.
type Explorer struct {
	sessionID string
	cat       *catalog.Catalog
	memo      *Memo
	history   *History
	writer    ResultWriter
	now       func() time.Time
}

// New creates an Explorer around the given catalog and writer. writer may
// be nil when results are consumed directly (e.g. by the web handlers).
func New(cat *catalog.Catalog, writer ResultWriter) (*Explorer, error) {
	memo, err := NewMemo(0)
	if err != nil {
		return nil, err
	}
	return &Explorer{
		sessionID: uuid.New().String(),
		cat:       cat,
		memo:      memo,
		history:   &History{},
		writer:    writer,
		now:       time.Now,
	}, nil
}

// SessionID returns the identifier tagged onto every row of this session.
func (e *Explorer) SessionID() string {
	return e.sessionID
}

// Catalog returns the shared read-only catalog.
func (e *Explorer) Catalog() *catalog.Catalog {
	return e.cat
}

// Evaluate computes a scenario, serving repeated identical requests from
// the memo cache, then appends it to the history and emits it to the
// writer. The returned row carries both inputs and outputs.
func (e *Explorer) Evaluate(req voyage.Request) (voyage.ScenarioRow, error) {
	res, cached := e.memo.Get(req)
	if !cached {
		var err error
		res, err = voyage.Evaluate(e.cat, req)
		if err != nil {
			return voyage.ScenarioRow{}, err
		}
		e.memo.Add(req, res)
	}

	row := voyage.ScenarioRow{
		SessionID:       e.sessionID,
		ScenarioID:      uuid.New().String(),
		VesselKey:       req.VesselKey,
		FuelKey:         req.FuelKey,
		SpeedKn:         req.SpeedKn,
		DistanceNM:      req.DistanceNM,
		HullFoulingPct:  req.HullFoulingPct,
		WindAssistPct:   req.WindAssistPct,
		SolarAssistPct:  req.SolarAssistPct,
		CarbonPriceUSDT: req.CarbonPriceUSDT,
		FuelTonnes:      res.FuelTonnes,
		CO2Tonnes:       res.CO2Tonnes,
		FuelSpendUSD:    res.FuelSpendUSD,
		CarbonSpendUSD:  res.CarbonSpendUSD,
		TotalSpendUSD:   res.TotalSpendUSD,
		USDPerTonneMile: res.USDPerTonneMile,
		Cached:          cached,
		Timestamp:       e.now().UTC(),
	}
	e.history.Append(row)

	if e.writer != nil {
		if err := e.writer.Write(row); err != nil {
			return row, fmt.Errorf("write scenario %s: %w", row.ScenarioID, err)
		}
	}
	return row, nil
}

// History returns a copy of the session history in evaluation order.
func (e *Explorer) History() []voyage.ScenarioRow {
	return e.history.Snapshot()
}

// FuelSummary aggregates per-fuel totals across the session.
type FuelSummary struct {
	Fuel          string  `json:"fuel"`
	Scenarios     int     `json:"scenarios"`
	FuelTonnes    float64 `json:"fuel_t"`
	CO2Tonnes     float64 `json:"co2_t"`
	TotalSpendUSD float64 `json:"total_spend_usd"`
}

// SessionStats summarizes the session for the web UI and TUI footer.
type SessionStats struct {
	Scenarios int           `json:"scenarios"`
	MemoHits  int64         `json:"memo_hits"`
	ByFuel    []FuelSummary `json:"by_fuel"`
}

// Stats returns aggregated session statistics.
func (e *Explorer) Stats() SessionStats {
	rows := e.history.Snapshot()
	byFuel := make(map[string]*FuelSummary)
	for _, r := range rows {
		s, ok := byFuel[r.FuelKey]
		if !ok {
			s = &FuelSummary{Fuel: r.FuelKey}
			byFuel[r.FuelKey] = s
		}
		s.Scenarios++
		s.FuelTonnes += r.FuelTonnes
		s.CO2Tonnes += r.CO2Tonnes
		s.TotalSpendUSD += r.TotalSpendUSD
	}
	stats := SessionStats{Scenarios: len(rows), MemoHits: e.memo.Hits()}
	for _, label := range e.cat.FuelLabels() {
		if s, ok := byFuel[label]; ok {
			stats.ByFuel = append(stats.ByFuel, *s)
		}
	}
	return stats
}
