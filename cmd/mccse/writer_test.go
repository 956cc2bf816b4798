package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mccse/internal/catalog"
	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

func TestNewWriterJSONOnly(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	w, cleanup, err := newWriter(catalog.Default(), true, "")
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*explorer.JSONStdoutWriter); !ok {
		t.Fatalf("expected *explorer.JSONStdoutWriter, got %T", w)
	}
}

func TestNewWriterColorFallback(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	w, cleanup, err := newWriter(catalog.Default(), false, "")
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*explorer.ColorStdoutWriter); !ok {
		t.Fatalf("expected *explorer.ColorStdoutWriter, got %T", w)
	}
}

func TestNewWriterLogFile(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	path := filepath.Join(t.TempDir(), "scenarios.log")
	w, cleanup, err := newWriter(catalog.Default(), true, path)
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	if _, ok := w.(*explorer.MultiWriter); !ok {
		t.Fatalf("expected *explorer.MultiWriter, got %T", w)
	}

	row := voyage.ScenarioRow{SessionID: "s1", ScenarioID: "sc1", VesselKey: "Panamax", FuelKey: "VLSFO", Timestamp: time.Now()}
	if err := w.Write(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cleanup()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected log file to be non-empty")
	}
}

func TestGreptimeDatabaseDefault(t *testing.T) {
	t.Setenv("GREPTIMEDB_DATABASE", "")
	if got := greptimeDatabase(); got != "public" {
		t.Errorf("greptimeDatabase = %q, want public", got)
	}
	t.Setenv("GREPTIMEDB_DATABASE", "voyages")
	if got := greptimeDatabase(); got != "voyages" {
		t.Errorf("greptimeDatabase = %q, want voyages", got)
	}
}
