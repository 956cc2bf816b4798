package explorer

import (
	"sync"

	"mccse/internal/voyage"
)

// History is the append-only in-session log of evaluated scenarios. It lives
// for the process lifetime and is discarded on exit.
type History struct {
	mu   sync.Mutex
	rows []voyage.ScenarioRow
}

// Append adds a scenario row to the log.
func (h *History) Append(row voyage.ScenarioRow) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = append(h.rows, row)
}

// Snapshot returns a copy of all recorded rows in append order.
func (h *History) Snapshot() []voyage.ScenarioRow {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows := make([]voyage.ScenarioRow, len(h.rows))
	copy(rows, h.rows)
	return rows
}

// Len returns the number of recorded rows.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rows)
}
