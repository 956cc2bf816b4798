package main

import (
	"os"

	"mccse/internal/catalog"
	"mccse/internal/explorer"
)

// newWriter sets up the result writer chain based on flags and env vars.
// It returns the writer and a cleanup function to close any resources.
func newWriter(cat *catalog.Catalog, jsonOut bool, logFile string) (explorer.ResultWriter, func(), error) {
	cleanup := func() {}

	var writer explorer.ResultWriter
	if jsonOut {
		writer = explorer.NewJSONStdoutWriter()
	} else {
		writer = explorer.NewColorStdoutWriter(cat)
	}

	if host := os.Getenv("GREPTIMEDB_ENDPOINT"); host != "" {
		gw, err := explorer.NewGreptimeDBWriter(host, greptimeDatabase())
		if err != nil {
			return nil, nil, err
		}
		writer = explorer.NewMultiWriter(writer, gw)
	}

	if logFile == "" {
		return writer, cleanup, nil
	}
	fw, err := explorer.NewFileWriter(logFile)
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() { fw.Close() }
	return explorer.NewMultiWriter(writer, fw), cleanup, nil
}

func greptimeDatabase() string {
	if db := os.Getenv("GREPTIMEDB_DATABASE"); db != "" {
		return db
	}
	return "public"
}
