package explorer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"mccse/internal/voyage"
)

// JSONStdoutWriter prints scenario rows as JSON to STDOUT.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

// Write outputs a scenario row in JSON format.
func (w *JSONStdoutWriter) Write(row voyage.ScenarioRow) error {
	data, _ := json.Marshal(row)
	fmt.Fprintln(w.out, string(data))
	return nil
}

// WriteBatch outputs multiple scenario rows in JSON format.
func (w *JSONStdoutWriter) WriteBatch(rows []voyage.ScenarioRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}
