// Package storage implements the JSON-file-backed collection store: a flat
// file codec plus one lazily loaded in-memory cache slot per collection.
package storage

import (
	"encoding/json"
	"log/slog"
	"os"
)

// ReadCollection parses the file at path as a JSON array of T. On any I/O or
// parse failure it logs the error and returns an empty slice; a failed load
// is indistinguishable from legitimately empty data at this layer.
func ReadCollection[T any](path string, log *slog.Logger) []T {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("failed to read collection file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Error("failed to parse collection file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// WriteCollection serializes items as pretty-printed JSON and overwrites the
// file at path. The write is a direct overwrite, not write-to-temp-then-rename,
// matching the legacy on-disk behavior.
func WriteCollection[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
