package explorer

import (
	"encoding/json"
	"os"

	"mccse/internal/voyage"
)

// FileWriter writes scenario rows to a JSONL file, giving a session an
// exportable record without any database.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates a FileWriter appending to path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write logs a single scenario row.
func (f *FileWriter) Write(row voyage.ScenarioRow) error {
	return f.enc.Encode(row)
}

// WriteBatch logs multiple scenario rows.
func (f *FileWriter) WriteBatch(rows []voyage.ScenarioRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	return f.file.Close()
}
