package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/stash/internal/archive"
	"github.com/dshills/stash/internal/cache"
)

// JSONWriter outputs machine-readable JSON.
type JSONWriter struct{}

func (j *JSONWriter) WriteStats(w io.Writer, stats cache.Stats) error {
	return writeJSON(w, stats)
}

func (j *JSONWriter) WriteEntries(w io.Writer, entries []cache.Entry) error {
	if entries == nil {
		entries = []cache.Entry{}
	}
	return writeJSON(w, entries)
}

func (j *JSONWriter) WriteListing(w io.Writer, name string, files []archive.FileInfo) error {
	if files == nil {
		files = []archive.FileInfo{}
	}
	return writeJSON(w, struct {
		Name  string             `json:"name"`
		Files []archive.FileInfo `json:"files"`
	}{Name: name, Files: files})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
